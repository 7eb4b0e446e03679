package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/simplicity/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartNotFound is returned when the start node is absent.
	ErrStartNotFound = errors.New("bfs: start node not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option (e.g. negative depth) is recorded and surfaced as
// ErrOptionViolation when BFS runs.
type Option[E core.Relation[E]] func(*Options[E])

// Options holds parameters and callbacks for one traversal.
type Options[E core.Relation[E]] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a node is enqueued, with its depth.
	OnEnqueue func(id core.NodeID, depth int)

	// OnDequeue is called immediately before visiting a node.
	OnDequeue func(id core.NodeID, depth int)

	// OnVisit is called when visiting a node. A non-nil error aborts BFS.
	OnVisit func(id core.NodeID, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// Filter skips the label from→to when it returns false.
	Filter func(from, to core.NodeID, rel E) bool

	err error
}

// DefaultOptions returns Options with a background context, no depth limit,
// no filtering and no-op hooks.
func DefaultOptions[E core.Relation[E]]() Options[E] {
	return Options[E]{
		Ctx:       context.Background(),
		OnEnqueue: func(core.NodeID, int) {},
		OnDequeue: func(core.NodeID, int) {},
		OnVisit:   func(core.NodeID, int) error { return nil },
		Filter:    func(_, _ core.NodeID, _ E) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[E core.Relation[E]](ctx context.Context) Option[E] {
	return func(o *Options[E]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue[E core.Relation[E]](fn func(id core.NodeID, depth int)) Option[E] {
	return func(o *Options[E]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue[E core.Relation[E]](fn func(id core.NodeID, depth int)) Option[E] {
	return func(o *Options[E]) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from it stops the search.
func WithOnVisit[E core.Relation[E]](fn func(id core.NodeID, depth int) error) Option[E] {
	return func(o *Options[E]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[E core.Relation[E]](d int) Option[E] {
	return func(o *Options[E]) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilter skips labels for which fn returns false.
func WithFilter[E core.Relation[E]](fn func(from, to core.NodeID, rel E) bool) Option[E] {
	return func(o *Options[E]) {
		if fn != nil {
			o.Filter = fn
		}
	}
}

// Result holds the outcome of a traversal.
type Result struct {
	Order  []core.NodeID
	Depth  map[core.NodeID]int
	Parent map[core.NodeID]core.NodeID
}

// PathTo reconstructs the path from the start node to dest.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest core.NodeID) ([]core.NodeID, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
	}
	path := []core.NodeID{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
