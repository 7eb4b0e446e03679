// SPDX-License-Identifier: MIT

package check

import (
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/simplicity/arrow"
	"github.com/katalvlaran/simplicity/closure"
	"github.com/katalvlaran/simplicity/core"
)

// Kind tells rules from nets.
type Kind string

const (
	KindRule Kind = "rule"
	KindNet  Kind = "net"
)

// Verdict is the outcome for one rule or net.
type Verdict struct {
	Kind   Kind   `json:"kind"`
	Name   string `json:"name"`
	Line   int    `json:"line,omitempty"`
	Simple bool   `json:"simple"`

	Nodes int           `json:"nodes"`
	Edges int           `json:"edges"`
	Stats closure.Stats `json:"stats"`

	// Components counts the node groups still joined by non-empty labels
	// after saturation. A simple verdict always has exactly one.
	Components int `json:"components"`

	// Contradictions lists the empty labels, both directions of each pair.
	Contradictions []core.Edge[arrow.Arrow] `json:"contradictions,omitempty"`

	// DOT is the saturated diagram, when the checker renders it.
	DOT string `json:"dot,omitempty"`

	// Cached is set when the verdict came from the checker's cache.
	Cached bool `json:"cached,omitempty"`
}

// Label is the verdict in words: "simple" or "non-simple".
func (v Verdict) Label() string {
	if v.Simple {
		return "simple"
	}
	return "non-simple"
}

// Report collects the verdicts of one Check call.
type Report struct {
	ID       uuid.UUID     `json:"id"`
	Source   string        `json:"source,omitempty"`
	Verdicts []Verdict     `json:"verdicts"`
	Elapsed  time.Duration `json:"elapsed"`
}

// Simple reports whether every verdict is simple.
func (r *Report) Simple() bool {
	return r.NonSimple() == 0
}

// NonSimple counts the verdicts that are not simple.
func (r *Report) NonSimple() int {
	n := 0
	for _, v := range r.Verdicts {
		if !v.Simple {
			n++
		}
	}
	return n
}
