package sbtree

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for tree walks.
var (
	// ErrOptionViolation is returned when an invalid WalkOption is supplied.
	ErrOptionViolation = errors.New("sbtree: invalid walk option")

	// ErrStopWalk may be returned by an OnVisit hook to end a walk early
	// without an error.
	ErrStopWalk = errors.New("sbtree: stop walk")
)

// WalkOption configures BFS and InOrder via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type WalkOption func(*WalkOptions)

// WalkOptions holds parameters and callbacks of a walk.
type WalkOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called for every visited fraction with its distance from
	// the start. A non-nil error aborts the walk; ErrStopWalk ends it quietly.
	OnVisit func(f Fraction, depth int) error

	// MaxDepth, if > 0, stops the walk below this depth.
	// 0 means no limit, which BFS accepts and InOrder rejects.
	MaxDepth int

	// FilterChild prunes the subtree rooted at child when it returns false.
	FilterChild func(parent, child Fraction) bool

	err error
}

// DefaultWalkOptions returns background context, no depth limit, no
// filtering and a no-op OnVisit.
func DefaultWalkOptions() WalkOptions {
	return WalkOptions{
		Ctx:         context.Background(),
		OnVisit:     func(Fraction, int) error { return nil },
		FilterChild: func(_, _ Fraction) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) WalkOption {
	return func(o *WalkOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers the visit hook.
func WithOnVisit(fn func(f Fraction, depth int) error) WalkOption {
	return func(o *WalkOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the walk to depth d (inclusive); d < 0 is a violation.
func WithMaxDepth(d int) WalkOption {
	return func(o *WalkOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterChild prunes subtrees whose root fails fn.
func WithFilterChild(fn func(parent, child Fraction) bool) WalkOption {
	return func(o *WalkOptions) {
		if fn != nil {
			o.FilterChild = fn
		}
	}
}

// WalkResult holds the visit order and the depth of every visited fraction.
type WalkResult struct {
	Order []Fraction
	Depth map[Fraction]int
}

// PathTo returns the fathers from the walk's start down to f.
func (r *WalkResult) PathTo(f Fraction) ([]Fraction, error) {
	d, ok := r.Depth[f]
	if !ok {
		return nil, fmt.Errorf("sbtree: %v was not visited", f)
	}
	path := make([]Fraction, d+1)
	for i := d; i >= 0; i-- {
		path[i] = f
		if i > 0 {
			f = f.Father()
		}
	}

	return path, nil
}

// walkItem pairs a fraction with its depth below the start.
type walkItem struct {
	f     Fraction
	depth int
}

type walker struct {
	opts WalkOptions
	res  *WalkResult
}

func newWalker(start Fraction, opts []WalkOption) (*walker, error) {
	if start.IsNull() {
		return nil, ErrNullFraction
	}
	if start.id == zeroOverOne || start.id == oneOverZero {
		return nil, ErrRootFraction
	}
	o := DefaultWalkOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &walker{
		opts: o,
		res:  &WalkResult{Depth: make(map[Fraction]int)},
	}, nil
}

// BFS visits the subtree below start level by level, left to right.
// Children are built on demand, so an unbounded walk must be stopped through
// the context or the OnVisit hook.
// Complexity: O(V) for V visited fractions.
func BFS(start Fraction, opts ...WalkOption) (*WalkResult, error) {
	w, err := newWalker(start, opts)
	if err != nil {
		return nil, err
	}

	queue := []walkItem{{f: start}}
	for len(queue) > 0 {
		if err := w.opts.Ctx.Err(); err != nil {
			return w.res, err
		}
		item := queue[0]
		queue = queue[1:]

		if err := w.visit(item); err != nil {
			return w.res, w.stop(err)
		}
		if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
			continue
		}
		for _, c := range [2]Fraction{item.f.Left(), item.f.Right()} {
			if w.opts.FilterChild(item.f, c) {
				queue = append(queue, walkItem{f: c, depth: item.depth + 1})
			}
		}
	}

	return w.res, nil
}

// InOrder visits the subtree below start down to MaxDepth in increasing
// order of value. MaxDepth must be positive.
// Complexity: O(V) for V visited fractions, recursion depth MaxDepth.
func InOrder(start Fraction, opts ...WalkOption) (*WalkResult, error) {
	w, err := newWalker(start, opts)
	if err != nil {
		return nil, err
	}
	if w.opts.MaxDepth == 0 {
		return nil, fmt.Errorf("%w: InOrder needs a positive MaxDepth", ErrOptionViolation)
	}

	return w.res, w.stop(w.inorder(walkItem{f: start}))
}

func (w *walker) inorder(item walkItem) error {
	if err := w.opts.Ctx.Err(); err != nil {
		return err
	}
	if item.depth < w.opts.MaxDepth {
		if l := item.f.Left(); w.opts.FilterChild(item.f, l) {
			if err := w.inorder(walkItem{f: l, depth: item.depth + 1}); err != nil {
				return err
			}
		}
	}
	if err := w.visit(item); err != nil {
		return err
	}
	if item.depth < w.opts.MaxDepth {
		if r := item.f.Right(); w.opts.FilterChild(item.f, r) {
			return w.inorder(walkItem{f: r, depth: item.depth + 1})
		}
	}

	return nil
}

// visit records item and calls OnVisit.
func (w *walker) visit(item walkItem) error {
	w.res.Order = append(w.res.Order, item.f)
	w.res.Depth[item.f] = item.depth
	if err := w.opts.OnVisit(item.f, item.depth); err != nil {
		if errors.Is(err, ErrStopWalk) {
			return err
		}
		return fmt.Errorf("sbtree: OnVisit error at %v: %w", item.f, err)
	}

	return nil
}

// stop turns ErrStopWalk into a clean end.
func (w *walker) stop(err error) error {
	if errors.Is(err, ErrStopWalk) {
		return nil
	}

	return err
}
