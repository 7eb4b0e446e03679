// Package closure provides options, statistics and error definitions for
// path-consistency saturation over a core.Graph.
package closure

import (
	"errors"

	"github.com/katalvlaran/simplicity/core"
)

// Sentinel errors for Saturate.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("closure: graph is nil")

	// ErrComposeNil is returned if the compose callback is nil.
	ErrComposeNil = errors.New("closure: compose callback is nil")
)

// Compose derives a candidate label for a→c from a→b (ab) and b→c (bc).
// ok=false means the path carries no new information and nothing is
// inserted. Callers may use the node ids to restrict which paths compose.
type Compose[E core.Relation[E]] func(a core.NodeID, ab E, b core.NodeID, bc E, c core.NodeID) (ac E, ok bool)

// Option configures Saturate via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customise saturation.
type Options struct {
	// SelfLoops, when true, also offers paths x→y→x to the compose callback.
	SelfLoops bool

	// OnNarrow is called after the label on a→c changed (its mirror included).
	OnNarrow func(a, c core.NodeID)

	// OnDequeue is called for every dirty pair taken off the worklist.
	OnDequeue func(a, b core.NodeID)
}

// DefaultOptions returns Options with sane defaults:
//   - x→y→x paths are skipped
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		SelfLoops: false,
		OnNarrow:  func(_, _ core.NodeID) {},
		OnDequeue: func(_, _ core.NodeID) {},
	}
}

// WithSelfLoops lets the compose callback see paths that return to their
// start node; the callback decides whether they produce a label.
func WithSelfLoops() Option {
	return func(o *Options) { o.SelfLoops = true }
}

// WithOnNarrow registers a callback to run after every label change.
func WithOnNarrow(fn func(a, c core.NodeID)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnNarrow = fn
		}
	}
}

// WithOnDequeue registers a callback to run for every dequeued pair.
func WithOnDequeue(fn func(a, b core.NodeID)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// Stats summarises one Saturate run.
type Stats struct {
	// Dequeued counts pairs taken off the worklist.
	Dequeued int

	// Compositions counts compose callback invocations.
	Compositions int

	// Narrowed counts label changes, including newly created labels.
	Narrowed int

	// PeakDirty is the largest worklist length observed.
	PeakDirty int
}
