package orbit

import (
	"context"
	"errors"
	"fmt"

	"github.com/nbrody/exactnum/mat2"
	"github.com/nbrody/exactnum/projective"
)

// Sentinel errors for orbit exploration.
var (
	// ErrNoGenerators is returned when the generator set is empty.
	ErrNoGenerators = errors.New("orbit: no generators supplied")

	// ErrOptionViolation is returned when an invalid Option was applied.
	ErrOptionViolation = errors.New("orbit: invalid option supplied")

	// ErrNoPath is returned by FindPath when the beam exhausts without
	// reaching any target.
	ErrNoPath = errors.New("orbit: no path to a target found")
)

// Generator is a named matrix acting on P¹(Q). Names label the edges of
// reconstructed words ("T", "S'", …).
type Generator struct {
	Name string
	M    mat2.Matrix
}

// Result of an Explore run.
type Result struct {
	// Order lists the orbit points in visit (non-decreasing word length)
	// order, seed first.
	Order []projective.Point

	// Depth maps the canonical string form of each visited point to the
	// length of the shortest generator word reaching it.
	Depth map[string]int

	// HitCap is true when the node budget stopped the enumeration, in
	// which case the orbit may be larger than what was recorded.
	HitCap bool
}

// CoverResult of a Cover run.
type CoverResult struct {
	// Reps lists the chosen orbit representatives in test-set order: the
	// first member of each group of S_H not reached from an earlier
	// representative.
	Reps []projective.Point

	// Total is the size of the test set S_H that was covered.
	Total int

	// HitCap is true when at least one orbit enumeration stopped on its
	// node budget, in which case Reps may over-count the orbits.
	HitCap bool
}

// Step is one edge of a reconstructed path: applying the named generator
// to From yields To.
type Step struct {
	From projective.Point
	Gen  string
	To   projective.Point
}

// Path is the result of FindPath: the generator word carrying the start
// point to Target. Steps is empty when the start itself was a target.
type Path struct {
	Steps  []Step
	Target projective.Point
}

// Option configures orbit searches via functional arguments.
type Option func(*Options)

// Options holds search parameters. The defaults bound every search:
// orbit enumeration is only finite when capped.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth bounds the generator word length.
	MaxDepth int

	// HeightCap prunes any non-infinite point whose height exceeds it.
	HeightCap int64

	// MaxNodes bounds the number of distinct points visited.
	MaxNodes int

	// BeamWidth bounds the per-level frontier in FindPath.
	BeamWidth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the standard search bounds: word length 50,
// height cap 10000, node budget 100000, beam width 5000.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		MaxDepth:  50,
		HeightCap: 10000,
		MaxNodes:  100000,
		BeamWidth: 5000,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth bounds the generator word length; d must be positive.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 1 {
			o.err = fmt.Errorf("%w: MaxDepth must be positive (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithHeightCap prunes points above the cap; h must be positive.
func WithHeightCap(h int64) Option {
	return func(o *Options) {
		if h < 1 {
			o.err = fmt.Errorf("%w: HeightCap must be positive (%d)", ErrOptionViolation, h)
			return
		}
		o.HeightCap = h
	}
}

// WithMaxNodes bounds the visited-set size; n must be positive.
func WithMaxNodes(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxNodes must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxNodes = n
	}
}

// WithBeamWidth bounds the FindPath frontier; w must be positive.
func WithBeamWidth(w int) Option {
	return func(o *Options) {
		if w < 1 {
			o.err = fmt.Errorf("%w: BeamWidth must be positive (%d)", ErrOptionViolation, w)
			return
		}
		o.BeamWidth = w
	}
}

// buildOptions applies opts over the defaults and validates the
// generator set.
func buildOptions(gens []Generator, opts []Option) (Options, error) {
	if len(gens) == 0 {
		return Options{}, ErrNoGenerators
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}
	return o, nil
}

// withinCap reports whether pt survives the height cap; infinity is
// always kept.
func withinCap(pt projective.Point, cap int64) bool {
	if pt.IsInfinity() {
		return true
	}
	return pt.Height().Cmp(bigInt(cap)) <= 0
}
