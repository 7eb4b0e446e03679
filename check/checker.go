// SPDX-License-Identifier: MIT

package check

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/simplicity/ast"
	"github.com/katalvlaran/simplicity/diagram"
	"github.com/katalvlaran/simplicity/parser"
)

// ErrSystemNil is returned by Check for a nil system.
var ErrSystemNil = errors.New("check: system is nil")

// Checker produces verdicts. It is safe for concurrent use.
type Checker struct {
	opts    Options
	metrics *metrics
	cache   *lru.Cache[string, Verdict]
}

// job is one rule or net waiting for its diagram.
type job struct {
	kind  Kind
	name  string
	line  int
	key   string
	build func() (*diagram.Diagram, error)
}

// New returns a Checker configured by opts. It fails when the metrics cannot
// be registered or the cache cannot be created.
func New(opts ...Option) (*Checker, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	m, err := newMetrics(o.Registry)
	if err != nil {
		return nil, err
	}
	c := &Checker{opts: o, metrics: m}
	if o.CacheSize > 0 {
		if c.cache, err = lru.New[string, Verdict](o.CacheSize); err != nil {
			return nil, fmt.Errorf("check: cache: %w", err)
		}
	}
	return c, nil
}

// CheckSource parses src and checks the result.
func (c *Checker) CheckSource(ctx context.Context, name, src string) (*Report, error) {
	sys, err := parser.Parse(name, src)
	if err != nil {
		return nil, err
	}
	rep, err := c.Check(ctx, sys)
	if rep != nil {
		rep.Source = name
	}
	return rep, err
}

// CheckFile parses the file at path and checks the result.
func (c *Checker) CheckFile(ctx context.Context, path string) (*Report, error) {
	sys, err := parser.ParseFile(path)
	if err != nil {
		return nil, err
	}
	rep, err := c.Check(ctx, sys)
	if rep != nil {
		rep.Source = path
	}
	return rep, err
}

// Check builds, saturates and judges every rule and net of sys.
//
// Implementation:
//   - Stage 1: Turn every rule and net into a job, in source order.
//   - Stage 2: Run the jobs on a pool bounded by Options.Workers; each job
//     owns its diagram.
//   - Stage 3: Log and record every verdict, then the summary.
//
// A malformed system (unknown agent, bad arity, variable not used twice)
// aborts the run with the diagram error. A cancelled ctx stops scheduling
// further jobs.
func (c *Checker) Check(ctx context.Context, sys *ast.System) (*Report, error) {
	if sys == nil {
		return nil, ErrSystemNil
	}
	start := time.Now()
	jobs := c.jobs(sys)
	out := make([]Verdict, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.opts.Workers)
	for i := range jobs {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			v, err := c.run(gctx, jobs[i])
			if err != nil {
				return err
			}
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("check: %w", err)
	}

	rep := &Report{ID: uuid.New(), Verdicts: out, Elapsed: time.Since(start)}
	for _, v := range out {
		c.metrics.observe(v)
		c.opts.Logger.Debug("verdict",
			"kind", v.Kind, "name", v.Name, "verdict", v.Label(),
			"nodes", v.Nodes, "narrowed", v.Stats.Narrowed, "cached", v.Cached)
	}
	c.opts.Logger.Info("check finished",
		"report", rep.ID, "verdicts", len(out), "non_simple", rep.NonSimple(), "elapsed", rep.Elapsed)
	return rep, nil
}

func (c *Checker) jobs(sys *ast.System) []job {
	jobs := make([]job, 0, len(sys.Rules)+len(sys.Nets))
	for _, r := range sys.Rules {
		r := r
		jobs = append(jobs, job{
			kind:  KindRule,
			name:  sys.RuleName(r),
			line:  r.Pos.Line,
			key:   ruleKey(sys, r),
			build: func() (*diagram.Diagram, error) { return diagram.FromRule(sys, r) },
		})
	}
	for _, n := range sys.Nets {
		n := n
		jobs = append(jobs, job{
			kind:  KindNet,
			name:  n.Name,
			line:  n.Pos.Line,
			key:   netKey(sys, n),
			build: func() (*diagram.Diagram, error) { return diagram.FromNet(sys, n) },
		})
	}
	return jobs
}

// run produces one verdict, consulting the cache first.
func (c *Checker) run(ctx context.Context, j job) (Verdict, error) {
	if err := ctx.Err(); err != nil {
		return Verdict{}, err
	}
	if c.cache != nil {
		if v, ok := c.cache.Get(j.key); ok {
			v.Name, v.Line, v.Cached = j.name, j.line, true
			return v, nil
		}
	}

	d, err := j.build()
	if err != nil {
		return Verdict{}, err
	}
	st, err := d.Complete()
	if err != nil {
		return Verdict{}, err
	}
	v := Verdict{
		Kind:           j.kind,
		Name:           j.name,
		Line:           j.line,
		Simple:         d.Simple(),
		Nodes:          d.NodeCount(),
		Edges:          d.EdgeCount(),
		Stats:          st,
		Components:     len(d.Components()),
		Contradictions: d.Contradictions(),
	}
	if c.opts.DOT {
		v.DOT = d.DOT(string(j.kind) + " " + j.name)
	}
	if c.cache != nil {
		c.cache.Add(j.key, v)
	}
	return v, nil
}
