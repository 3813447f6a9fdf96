package projective

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/nbrody/exactnum/rational"
)

// Sentinel errors for the projective package.
var (
	// ErrNilOperand is returned when a nil *big.Int is supplied.
	ErrNilOperand = errors.New("projective: nil operand")

	// ErrBadModulus is returned by Valuation when p < 2.
	ErrBadModulus = errors.New("projective: valuation modulus must be at least 2")

	// ErrBadPoint is returned by ParsePoint for unparseable input.
	ErrBadPoint = errors.New("projective: cannot parse point")
)

// ValuationInfinite is returned by Valuation for n = 0 (p divides zero
// arbitrarily often). It matches the padic package's sentinel value.
const ValuationInfinite = math.MaxInt32

// Point is a point of P¹(Q) in canonical coprime form: q > 0 with
// gcd(|p|, q) = 1, zero = (0:1), infinity = (1:0). Points are immutable.
type Point struct {
	p *big.Int
	q *big.Int
}

// Infinity returns the point at infinity, (1:0).
func Infinity() Point { return Point{p: big.NewInt(1), q: big.NewInt(0)} }

// Zero returns the origin, (0:1).
func Zero() Point { return Point{p: big.NewInt(0), q: big.NewInt(1)} }

// NewPoint canonicalizes the pair (p:q): q = 0 yields infinity, p = 0
// yields zero, otherwise the sign moves onto p and the gcd is divided
// out. Canonicalization is idempotent. Returns ErrNilOperand for nil
// inputs; every pair of concrete integers has a canonical form.
func NewPoint(p, q *big.Int) (Point, error) {
	if p == nil || q == nil {
		return Point{}, ErrNilOperand
	}
	if q.Sign() == 0 {
		return Infinity(), nil
	}
	if p.Sign() == 0 {
		return Zero(), nil
	}
	pp := new(big.Int).Set(p)
	qq := new(big.Int).Set(q)
	if qq.Sign() < 0 {
		pp.Neg(pp)
		qq.Neg(qq)
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(pp), qq)
	if g.Cmp(big.NewInt(1)) != 0 {
		pp.Quo(pp, g)
		qq.Quo(qq, g)
	}
	return Point{p: pp, q: qq}, nil
}

// NewPointInt64 is NewPoint for machine integers; it is total.
func NewPointInt64(p, q int64) Point {
	pt, _ := NewPoint(big.NewInt(p), big.NewInt(q))
	return pt
}

// FromRational embeds a rational number r = n/d as the point (n:d).
func FromRational(r rational.Rational) Point {
	pt, _ := NewPoint(r.Num(), r.Den())
	return pt
}

// ParsePoint accepts "∞", "inf", an integer "n", or a fraction "p/q".
func ParsePoint(s string) (Point, error) {
	s = strings.TrimSpace(s)
	if s == "∞" || strings.EqualFold(s, "inf") || strings.EqualFold(s, "infinity") {
		return Infinity(), nil
	}
	num, den := s, "1"
	if i := strings.IndexByte(s, '/'); i >= 0 {
		num, den = s[:i], s[i+1:]
	}
	p, ok := new(big.Int).SetString(num, 10)
	if !ok {
		return Point{}, fmt.Errorf("%w: %q", ErrBadPoint, s)
	}
	q, ok := new(big.Int).SetString(den, 10)
	if !ok {
		return Point{}, fmt.Errorf("%w: %q", ErrBadPoint, s)
	}
	return NewPoint(p, q)
}

// P returns a copy of the numerator coordinate.
func (pt Point) P() *big.Int { return new(big.Int).Set(pt.p) }

// Q returns a copy of the denominator coordinate.
func (pt Point) Q() *big.Int { return new(big.Int).Set(pt.q) }

// IsInfinity reports whether pt is the point at infinity.
func (pt Point) IsInfinity() bool { return pt.q.Sign() == 0 }

// IsZero reports whether pt is the origin.
func (pt Point) IsZero() bool { return pt.p.Sign() == 0 && pt.q.Sign() != 0 }

// Equal reports whether two canonical points coincide.
func (pt Point) Equal(o Point) bool {
	return pt.p.Cmp(o.p) == 0 && pt.q.Cmp(o.q) == 0
}

// Height returns max(|p|, |q|) for the canonical representative.
// Infinity has height 0.
func (pt Point) Height() *big.Int {
	if pt.IsInfinity() {
		return big.NewInt(0)
	}
	ap := new(big.Int).Abs(pt.p)
	if ap.Cmp(pt.q) >= 0 {
		return ap
	}
	return new(big.Int).Set(pt.q)
}

// String renders "∞" for infinity, "n" for integers, else "p/q".
func (pt Point) String() string {
	if pt.IsInfinity() {
		return "∞"
	}
	if pt.q.Cmp(big.NewInt(1)) == 0 {
		return pt.p.String()
	}
	return fmt.Sprintf("%s/%s", pt.p.String(), pt.q.String())
}

// Valuation counts how many times p divides n. It is a finite,
// deterministic loop; only n = 0 yields ValuationInfinite.
// Returns ErrBadModulus for p < 2.
func Valuation(n *big.Int, p int64) (int, error) {
	if n == nil {
		return 0, ErrNilOperand
	}
	if p < 2 {
		return 0, fmt.Errorf("%w: got %d", ErrBadModulus, p)
	}
	if n.Sign() == 0 {
		return ValuationInfinite, nil
	}
	pBig := big.NewInt(p)
	m := new(big.Int).Abs(n)
	r := new(big.Int)
	v := 0
	for {
		q, rem := new(big.Int).QuoRem(m, pBig, r)
		if rem.Sign() != 0 {
			return v, nil
		}
		m = q
		v++
		r = new(big.Int)
	}
}
