package rational

import (
	"errors"
	"fmt"
	"math"
	"math/big"
)

// Sentinel errors returned by the rational package.
var (
	// ErrZeroDenominator is returned when a Rational is constructed with
	// a zero denominator.
	ErrZeroDenominator = errors.New("rational: denominator is zero")

	// ErrDivisionByZero is returned when dividing by the canonical zero,
	// inverting zero, or raising zero to a negative power.
	ErrDivisionByZero = errors.New("rational: division by zero")

	// ErrNonFinite is returned when FromFloat64 receives NaN or ±Inf.
	ErrNonFinite = errors.New("rational: non-finite float input")

	// ErrNilOperand is returned when a nil *big.Int is supplied to a
	// constructor. Operands must always be concrete integers.
	ErrNilOperand = errors.New("rational: nil operand")
)

// Rational is an immutable exact rational number in canonical form:
// denominator > 0, gcd(|num|, den) = 1, zero stored as 0/1.
//
// The zero value of the type is NOT valid; use Zero(), One(), or a
// constructor. All methods treat the receiver as read-only and return
// fresh values.
type Rational struct {
	num *big.Int // signed numerator
	den *big.Int // always > 0
}

// Zero returns the canonical zero, 0/1.
func Zero() Rational { return Rational{num: big.NewInt(0), den: big.NewInt(1)} }

// One returns the canonical one, 1/1.
func One() Rational { return Rational{num: big.NewInt(1), den: big.NewInt(1)} }

// New constructs num/den in canonical form.
// Returns ErrZeroDenominator if den is zero and ErrNilOperand if either
// argument is nil. The inputs are copied, never aliased.
func New(num, den *big.Int) (Rational, error) {
	if num == nil || den == nil {
		return Rational{}, ErrNilOperand
	}
	if den.Sign() == 0 {
		return Rational{}, ErrZeroDenominator
	}
	return canonical(new(big.Int).Set(num), new(big.Int).Set(den)), nil
}

// FromInt64 returns the rational n/1.
func FromInt64(n int64) Rational {
	return Rational{num: big.NewInt(n), den: big.NewInt(1)}
}

// FromBigInt returns the rational n/1. The input is copied.
func FromBigInt(n *big.Int) (Rational, error) {
	if n == nil {
		return Rational{}, ErrNilOperand
	}
	return Rational{num: new(big.Int).Set(n), den: big.NewInt(1)}, nil
}

// FromFloat64 rounds f to the nearest integer and returns it as a
// rational. Fractional inputs are intentionally not embedded exactly:
// callers that need an exact fraction must pre-scale and use New.
// Returns ErrNonFinite for NaN or ±Inf.
func FromFloat64(f float64) (Rational, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Rational{}, ErrNonFinite
	}
	n, _ := big.NewFloat(math.Round(f)).Int(nil)
	return Rational{num: n, den: big.NewInt(1)}, nil
}

// canonical reduces num/den in place to canonical form. den must be
// nonzero. Both arguments are owned by the caller and consumed.
func canonical(num, den *big.Int) Rational {
	if num.Sign() == 0 {
		return Rational{num: num, den: den.SetInt64(1)}
	}
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	g := gcdAbs(num, den)
	if g.Cmp(oneInt) != 0 {
		num.Quo(num, g)
		den.Quo(den, g)
	}
	return Rational{num: num, den: den}
}

var oneInt = big.NewInt(1)

// gcdAbs returns gcd(|a|, |b|) via the iterative Euclidean algorithm.
// gcd(0, b) = |b|. The arguments are not modified.
func gcdAbs(a, b *big.Int) *big.Int {
	x := new(big.Int).Abs(a)
	y := new(big.Int).Abs(b)
	for y.Sign() != 0 {
		r := new(big.Int).Mod(x, y)
		x, y = y, r
	}
	return x
}

// Num returns a copy of the numerator.
func (r Rational) Num() *big.Int { return new(big.Int).Set(r.num) }

// Den returns a copy of the denominator (always positive).
func (r Rational) Den() *big.Int { return new(big.Int).Set(r.den) }

// Sign returns -1, 0, or +1 according to the sign of r.
func (r Rational) Sign() int { return r.num.Sign() }

// IsZero reports whether r is the canonical zero.
func (r Rational) IsZero() bool { return r.num.Sign() == 0 }

// IsInteger reports whether r has denominator 1.
func (r Rational) IsInteger() bool { return r.den.Cmp(oneInt) == 0 }

// Add returns r + o.
func (r Rational) Add(o Rational) Rational {
	// a/b + c/d = (a·d + c·b) / (b·d)
	num := new(big.Int).Mul(r.num, o.den)
	num.Add(num, new(big.Int).Mul(o.num, r.den))
	den := new(big.Int).Mul(r.den, o.den)
	return canonical(num, den)
}

// Sub returns r − o.
func (r Rational) Sub(o Rational) Rational {
	num := new(big.Int).Mul(r.num, o.den)
	num.Sub(num, new(big.Int).Mul(o.num, r.den))
	den := new(big.Int).Mul(r.den, o.den)
	return canonical(num, den)
}

// Mul returns r · o.
func (r Rational) Mul(o Rational) Rational {
	num := new(big.Int).Mul(r.num, o.num)
	den := new(big.Int).Mul(r.den, o.den)
	return canonical(num, den)
}

// Neg returns −r.
func (r Rational) Neg() Rational {
	return Rational{num: new(big.Int).Neg(r.num), den: new(big.Int).Set(r.den)}
}

// Abs returns |r|.
func (r Rational) Abs() Rational {
	return Rational{num: new(big.Int).Abs(r.num), den: new(big.Int).Set(r.den)}
}

// Inv returns 1/r, or ErrDivisionByZero if r is zero.
// The numerator/denominator swap fixes the sign so the denominator
// stays positive.
func (r Rational) Inv() (Rational, error) {
	if r.num.Sign() == 0 {
		return Rational{}, ErrDivisionByZero
	}
	num := new(big.Int).Set(r.den)
	den := new(big.Int).Set(r.num)
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	// r is canonical, so num/den is already in lowest terms.
	return Rational{num: num, den: den}, nil
}

// Div returns r / o, or ErrDivisionByZero if o is zero.
func (r Rational) Div(o Rational) (Rational, error) {
	inv, err := o.Inv()
	if err != nil {
		return Rational{}, err
	}
	return r.Mul(inv), nil
}

// Pow returns r^n by binary exponentiation (O(log n) multiplications).
// n = 0 yields one for any r, including zero. For n < 0 the reciprocal
// is taken first, so Pow returns ErrDivisionByZero when r is zero.
func (r Rational) Pow(n int64) (Rational, error) {
	if n == 0 {
		return One(), nil
	}
	base := r
	if n < 0 {
		inv, err := r.Inv()
		if err != nil {
			return Rational{}, err
		}
		base = inv
	}
	// square-and-multiply on |n|
	e := uint64(n)
	if n < 0 {
		e = uint64(-n)
	}
	acc := One()
	for e > 0 {
		if e&1 == 1 {
			acc = acc.Mul(base)
		}
		base = base.Mul(base)
		e >>= 1
	}
	return acc, nil
}

// Cmp compares r and o, returning -1, 0, or +1.
// Cross-multiplication is valid because both denominators are positive
// by the canonical-form invariant.
func (r Rational) Cmp(o Rational) int {
	lhs := new(big.Int).Mul(r.num, o.den)
	rhs := new(big.Int).Mul(o.num, r.den)
	return lhs.Cmp(rhs)
}

// Equal reports whether r and o represent the same rational number.
// Canonical form makes structural comparison sufficient.
func (r Rational) Equal(o Rational) bool {
	return r.num.Cmp(o.num) == 0 && r.den.Cmp(o.den) == 0
}

// Float64 returns the nearest floating-point approximation of r.
func (r Rational) Float64() float64 {
	f, _ := new(big.Rat).SetFrac(r.num, r.den).Float64()
	return f
}

// String renders r exactly: "num/den", or just "num" for integers.
func (r Rational) String() string {
	if r.IsInteger() {
		return r.num.String()
	}
	return fmt.Sprintf("%s/%s", r.num.String(), r.den.String())
}

// Latex renders r as a LaTeX fraction with the sign extracted to the
// front: -3/2 becomes "-\frac{3}{2}". Integers render without \frac.
func (r Rational) Latex() string {
	if r.IsInteger() {
		return r.num.String()
	}
	sign := ""
	abs := r.num
	if r.num.Sign() < 0 {
		sign = "-"
		abs = new(big.Int).Abs(r.num)
	}
	return fmt.Sprintf(`%s\frac{%s}{%s}`, sign, abs.String(), r.den.String())
}
