package bruhattits

import (
	"errors"
	"fmt"

	"github.com/nbrody/exactnum/padic"
)

// Sentinel errors for tree-vertex reduction.
var (
	// ErrUndefined is returned when the matrix is singular at the
	// working precision and therefore spans no lattice: both bottom-row
	// entries are zero, or the pivoted diagonal entry vanishes.
	ErrUndefined = errors.New("bruhattits: reduction undefined for singular matrix")
)

// Vertex is the canonical name of a Bruhat–Tits tree vertex: the lattice
// class of [[p^Level, Offset], [0, 1]] with Offset reduced modulo
// p^Level.
type Vertex struct {
	Level  int
	Offset padic.Number
}

// String renders the canonical matrix form.
func (v Vertex) String() string {
	return fmt.Sprintf("[[%d^%d, %s], [0, 1]]", v.Offset.Prime(), v.Level, v.Offset)
}

// Equal reports whether two vertices name the same lattice class.
func (v Vertex) Equal(o Vertex) bool {
	return v.Level == o.Level && v.Offset.Equal(o.Offset)
}

// Reduce column-reduces the matrix [[a,b],[c,d]] over Q_p to the
// canonical vertex of the lattice its columns span.
//
// Steps:
//  1. pick the bottom-row entry of minimal valuation as the pivot
//     (swapping columns if needed, a unimodular move),
//  2. clear the lower-left entry with a Z_p column operation,
//  3. scale each column by a unit so the diagonal holds pure powers
//     p^m, p^n,
//  4. factor out the homothety p^n and truncate the offset modulo
//     p^{m−n}.
//
// Returns ErrUndefined when the matrix is singular at the working
// precision, and padic.ErrFieldMismatch for entries from different
// fields.
func Reduce(a, b, c, d padic.Number) (Vertex, error) {
	if err := sameField(a, b, c, d); err != nil {
		return Vertex{}, err
	}
	if c.IsZero() && d.IsZero() {
		return Vertex{}, fmt.Errorf("%w: bottom row is zero", ErrUndefined)
	}
	// pivot: make d the bottom entry of minimal valuation
	if d.IsZero() || (!c.IsZero() && c.Valuation() < d.Valuation()) {
		a, b = b, a
		c, d = d, c
	}
	if !c.IsZero() {
		// t = c/d ∈ Z_p since v(c) ≥ v(d); col1 ← col1 − t·col2
		t, err := c.Div(d)
		if err != nil {
			return Vertex{}, err
		}
		tb, err := t.Mul(b)
		if err != nil {
			return Vertex{}, err
		}
		a, err = a.Sub(tb)
		if err != nil {
			return Vertex{}, err
		}
	}
	if a.IsZero() {
		return Vertex{}, fmt.Errorf("%w: determinant vanishes at this precision", ErrUndefined)
	}
	m, n := a.Valuation(), d.Valuation()

	// scale col2 by the inverse unit of d, so d becomes p^n exactly and
	// b lands in the same basis; col1 scaling only affects a, whose
	// valuation m is all we keep.
	unit := d.Shift(-n)
	beta, err := b.Div(unit)
	if err != nil {
		return Vertex{}, err
	}
	// homothety p^{-n}, then reduce the offset modulo p^{m-n}
	level := m - n
	beta = beta.Shift(-n).TruncateAt(level - 1)
	return Vertex{Level: level, Offset: beta}, nil
}

// Distance returns the combinatorial tree distance between two vertices:
//
//	d = k₁ + k₂ − 2·min(k₁, k₂, v(β₁ − β₂))
//
// a finite, deterministic computation. Returns padic.ErrFieldMismatch
// for vertices over different fields.
func Distance(u, v Vertex) (int, error) {
	diff, err := u.Offset.Sub(v.Offset)
	if err != nil {
		return 0, err
	}
	m := u.Level
	if v.Level < m {
		m = v.Level
	}
	if w := diff.Valuation(); w < m {
		m = w
	}
	return u.Level + v.Level - 2*m, nil
}

// sameField validates that all four entries share one field
// configuration.
func sameField(nums ...padic.Number) error {
	for i := 1; i < len(nums); i++ {
		if nums[i].Prime() != nums[0].Prime() || nums[i].Precision() != nums[0].Precision() {
			return fmt.Errorf("%w: entry %d", padic.ErrFieldMismatch, i)
		}
	}
	return nil
}
