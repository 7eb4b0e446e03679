package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/katalvlaran/simplicity/check"
)

// Styles
var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// printer writes reports as styled text or as JSON.
type printer struct {
	w     io.Writer
	color bool
	json  bool
}

func newPrinter(w io.Writer, noColor, asJSON bool) *printer {
	return &printer{w: w, color: !noColor && !asJSON && isTerminal(w), json: asJSON}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (p *printer) paint(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}

// reports prints every report followed by a one-line summary.
func (p *printer) reports(reps []*check.Report) error {
	if p.json {
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(reps)
	}
	total, bad := 0, 0
	for _, rep := range reps {
		fmt.Fprintln(p.w, p.paint(headerStyle, rep.Source))
		for _, v := range rep.Verdicts {
			fmt.Fprintln(p.w, "  "+p.verdict(v))
		}
		total += len(rep.Verdicts)
		bad += rep.NonSimple()
	}
	summary := fmt.Sprintf("%d checked, %d non-simple", total, bad)
	if bad > 0 {
		summary = p.paint(failStyle, summary)
	} else {
		summary = p.paint(okStyle, summary)
	}
	_, err := fmt.Fprintln(p.w, summary)
	return err
}

// verdict renders "rule Con Dup: non-simple".
func (p *printer) verdict(v check.Verdict) string {
	label := p.paint(okStyle, v.Label())
	if !v.Simple {
		label = p.paint(failStyle, v.Label())
	}
	line := fmt.Sprintf("%s %s: %s", v.Kind, v.Name, label)
	if p.color {
		line += p.paint(subtleStyle, fmt.Sprintf("  (%d nodes, %d narrowed)", v.Nodes, v.Stats.Narrowed))
	}
	return line
}

func (p *printer) problem(err error) {
	fmt.Fprintln(p.w, p.paint(failStyle, "error: ")+err.Error())
}

// writeDOT stores each verdict's diagram as <dir>/<file>.<nn>-<kind>-<name>.dot.
func writeDOT(dir string, rep *check.Report) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	base := strings.TrimSuffix(filepath.Base(rep.Source), filepath.Ext(rep.Source))
	var written []string
	for i, v := range rep.Verdicts {
		name := fmt.Sprintf("%s.%02d-%s-%s.dot", base, i, v.Kind, sanitize(v.Name))
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(v.DOT), 0o644); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		}
		return '_'
	}, s)
}
