package mat2

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/nbrody/exactnum/projective"
	"github.com/nbrody/exactnum/rational"
)

// Sentinel errors for the mat2 package.
var (
	// ErrSingularMatrix is returned by Inverse when the determinant is
	// the canonical zero.
	ErrSingularMatrix = errors.New("mat2: matrix is singular")
)

// Matrix is an immutable 2×2 matrix [[A,B],[C,D]] over exact rationals.
// The zero value is the zero matrix, which is a legal (singular) value.
type Matrix struct {
	A, B, C, D rational.Rational
}

// New builds the matrix [[a,b],[c,d]].
func New(a, b, c, d rational.Rational) Matrix {
	return Matrix{A: a, B: b, C: c, D: d}
}

// FromInt64s builds an integer matrix [[a,b],[c,d]].
func FromInt64s(a, b, c, d int64) Matrix {
	return Matrix{
		A: rational.FromInt64(a),
		B: rational.FromInt64(b),
		C: rational.FromInt64(c),
		D: rational.FromInt64(d),
	}
}

// Identity returns the identity matrix.
func Identity() Matrix { return FromInt64s(1, 0, 0, 1) }

// Mul returns the matrix product m·o.
func (m Matrix) Mul(o Matrix) Matrix {
	return Matrix{
		A: m.A.Mul(o.A).Add(m.B.Mul(o.C)),
		B: m.A.Mul(o.B).Add(m.B.Mul(o.D)),
		C: m.C.Mul(o.A).Add(m.D.Mul(o.C)),
		D: m.C.Mul(o.B).Add(m.D.Mul(o.D)),
	}
}

// Add returns the entrywise sum m + o.
func (m Matrix) Add(o Matrix) Matrix {
	return Matrix{
		A: m.A.Add(o.A),
		B: m.B.Add(o.B),
		C: m.C.Add(o.C),
		D: m.D.Add(o.D),
	}
}

// Scale returns s·m.
func (m Matrix) Scale(s rational.Rational) Matrix {
	return Matrix{A: m.A.Mul(s), B: m.B.Mul(s), C: m.C.Mul(s), D: m.D.Mul(s)}
}

// Det returns the exact determinant A·D − B·C.
func (m Matrix) Det() rational.Rational {
	return m.A.Mul(m.D).Sub(m.B.Mul(m.C))
}

// Trace returns A + D.
func (m Matrix) Trace() rational.Rational { return m.A.Add(m.D) }

// Inverse returns m⁻¹ via the adjugate-over-determinant formula.
// Returns ErrSingularMatrix when Det is zero.
func (m Matrix) Inverse() (Matrix, error) {
	det := m.Det()
	if det.IsZero() {
		return Matrix{}, ErrSingularMatrix
	}
	inv, _ := det.Inv() // det nonzero by the check above
	return m.Adjugate().Scale(inv), nil
}

// Adjugate returns [[D,-B],[-C,A]], the inverse up to the scalar Det.
// Unlike Inverse it is total, and for the projective action it is all
// that is needed: scalars act trivially on P¹.
func (m Matrix) Adjugate() Matrix {
	return Matrix{A: m.D, B: m.B.Neg(), C: m.C.Neg(), D: m.A}
}

// Equal reports entrywise equality.
func (m Matrix) Equal(o Matrix) bool {
	return m.A.Equal(o.A) && m.B.Equal(o.B) && m.C.Equal(o.C) && m.D.Equal(o.D)
}

// String renders "[[a, b], [c, d]]" with exact entries.
func (m Matrix) String() string {
	return fmt.Sprintf("[[%s, %s], [%s, %s]]", m.A, m.B, m.C, m.D)
}

// Apply computes the Möbius action of m on a projective point: the image
// of (p:q) is (A·p + B·q : C·p + D·q), cross-multiplied back to an
// integer pair and reduced to canonical coprime form. Infinity maps to
// (A:C); a vanishing image denominator yields infinity.
func (m Matrix) Apply(pt projective.Point) projective.Point {
	if pt.IsInfinity() {
		out, _ := projective.NewPoint(crossPair(m.A, m.C))
		return out
	}
	x, y := m.imageCoords(pt)
	out, _ := projective.NewPoint(crossPair(x, y))
	return out
}

// imageCoords evaluates the two coordinates of the image in exact
// rational arithmetic.
func (m Matrix) imageCoords(pt projective.Point) (rational.Rational, rational.Rational) {
	p, _ := rational.FromBigInt(pt.P())
	q, _ := rational.FromBigInt(pt.Q())
	x := m.A.Mul(p).Add(m.B.Mul(q))
	y := m.C.Mul(p).Add(m.D.Mul(q))
	return x, y
}

// crossPair clears the denominators of the pair (x, y): the projective
// class of (x:y) equals (x.Num·y.Den : y.Num·x.Den).
func crossPair(x, y rational.Rational) (*big.Int, *big.Int) {
	n1 := new(big.Int).Mul(x.Num(), y.Den())
	n2 := new(big.Int).Mul(y.Num(), x.Den())
	return n1, n2
}

// ReducesHeight reports whether the action of m strictly lowers the
// height of pt. Points whose image is infinity never count as reduced
// (height 0 is the infinity convention, not a smaller representative).
func (m Matrix) ReducesHeight(pt projective.Point) bool {
	img := m.Apply(pt)
	if img.IsInfinity() {
		return false
	}
	if pt.IsInfinity() {
		return true
	}
	return img.Height().Cmp(pt.Height()) < 0
}

// CommonFactorAt returns the p-adic valuation of the common factor the
// action of m introduces between the image coordinates of pt, before
// reduction to coprime form. A positive return certifies that every
// point in pt's congruence class modulo a power of p is contracted the
// same way. Returns projective.ValuationInfinite when the raw image pair
// is (0, 0).
func (m Matrix) CommonFactorAt(pt projective.Point, p int64) (int, error) {
	var n1, n2 *big.Int
	if pt.IsInfinity() {
		n1, n2 = crossPair(m.A, m.C)
	} else {
		x, y := m.imageCoords(pt)
		n1, n2 = crossPair(x, y)
	}
	return projective.Valuation(gcdAbs(n1, n2), p)
}

// gcdAbs returns gcd(|a|, |b|) iteratively; gcd(0, b) = |b| and
// gcd(0, 0) = 0 (big.Int.GCD zeroes out on non-positive operands, which
// is the wrong convention here).
func gcdAbs(a, b *big.Int) *big.Int {
	x := new(big.Int).Abs(a)
	y := new(big.Int).Abs(b)
	for y.Sign() != 0 {
		r := new(big.Int).Mod(x, y)
		x, y = y, r
	}
	return x
}
