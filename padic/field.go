package padic

import (
	"errors"
	"fmt"
	"math"
	"math/big"
)

// Sentinel errors for field configuration and arithmetic.
var (
	// ErrNotPrime is returned by NewField when p is smaller than 2 or
	// fails the primality test. Composite moduli would make nonzero
	// residues non-invertible and the digit solve in Inv undefined.
	ErrNotPrime = errors.New("padic: p is not prime")

	// ErrPrimeTooLarge is returned by NewField when p exceeds MaxPrime.
	// The bound keeps every intermediate digit product within int64.
	ErrPrimeTooLarge = errors.New("padic: p exceeds MaxPrime")

	// ErrBadPrecision is returned by NewField when the requested digit
	// count is outside [1, MaxPrecision].
	ErrBadPrecision = errors.New("padic: precision out of range")

	// ErrNotInvertible is returned when inverting (or dividing by) the
	// zero element, whose valuation is infinite.
	ErrNotInvertible = errors.New("padic: zero element is not invertible")

	// ErrFieldMismatch is returned when two operands were created by
	// fields with different primes or precisions.
	ErrFieldMismatch = errors.New("padic: operands belong to different fields")

	// ErrDivisionByZero is returned by FromRatio for a zero denominator.
	ErrDivisionByZero = errors.New("padic: division by zero")

	// ErrNilOperand is returned when a nil *big.Int is supplied.
	ErrNilOperand = errors.New("padic: nil operand")
)

const (
	// ValuationInfinite is the valuation of the zero element. Any finite
	// valuation a computation can produce is far below this sentinel.
	ValuationInfinite = math.MaxInt32

	// MaxPrime bounds the prime so that a digit convolution term
	// (p−1)²·MaxPrecision stays well inside int64.
	MaxPrime = 1 << 20

	// MaxPrecision bounds the tracked digit count.
	MaxPrecision = 4096

	// primalityRounds for big.Int.ProbablyPrime; the test is in fact
	// deterministic for every value below MaxPrime.
	primalityRounds = 20
)

// Field is the validated configuration (prime, precision) from which all
// Numbers are created. A Field is immutable and safe for concurrent use.
type Field struct {
	p    int64
	prec int
}

// NewField validates p and precision and returns the field Q_p tracked
// to the given number of significant base-p digits.
//
// Returns ErrNotPrime, ErrPrimeTooLarge, or ErrBadPrecision.
func NewField(p int64, precision int) (*Field, error) {
	if precision < 1 || precision > MaxPrecision {
		return nil, fmt.Errorf("%w: got %d, want 1..%d", ErrBadPrecision, precision, MaxPrecision)
	}
	if p > MaxPrime {
		return nil, fmt.Errorf("%w: got %d, max %d", ErrPrimeTooLarge, p, MaxPrime)
	}
	if p < 2 || !big.NewInt(p).ProbablyPrime(primalityRounds) {
		return nil, fmt.Errorf("%w: got %d", ErrNotPrime, p)
	}
	return &Field{p: p, prec: precision}, nil
}

// Prime returns the field's prime.
func (f *Field) Prime() int64 { return f.p }

// Precision returns the number of significant digits tracked.
func (f *Field) Precision() int { return f.prec }

// Zero returns the canonical zero: infinite valuation, all digits zero.
func (f *Field) Zero() Number {
	return Number{p: f.p, prec: f.prec, val: ValuationInfinite, digits: make([]int64, f.prec)}
}

// One returns the multiplicative identity: valuation 0, digits [1,0,…,0].
func (f *Field) One() Number {
	d := make([]int64, f.prec)
	d[0] = 1
	return Number{p: f.p, prec: f.prec, val: 0, digits: d}
}

// FromInt64 embeds the integer n into the field.
func (f *Field) FromInt64(n int64) Number {
	x, _ := f.FromBigInt(big.NewInt(n))
	return x
}

// FromBigInt embeds an arbitrary-precision integer into the field:
// the valuation is extracted by repeated division by p, then the unit
// part is expanded to Precision base-p digits. Negative integers get the
// usual infinite (here truncated) complement expansion.
func (f *Field) FromBigInt(n *big.Int) (Number, error) {
	if n == nil {
		return Number{}, ErrNilOperand
	}
	if n.Sign() == 0 {
		return f.Zero(), nil
	}
	pBig := big.NewInt(f.p)
	m := new(big.Int).Set(n)
	v := 0
	r := new(big.Int)
	for {
		q, rem := new(big.Int).QuoRem(m, pBig, r)
		if rem.Sign() != 0 {
			break
		}
		m = q
		v++
		r = new(big.Int)
	}
	digits := make([]int64, f.prec)
	for i := 0; i < f.prec; i++ {
		if m.Sign() == 0 {
			break
		}
		d := new(big.Int).Mod(m, pBig) // Euclidean: always in [0, p)
		digits[i] = d.Int64()
		m.Sub(m, d)
		m.Quo(m, pBig)
	}
	return Number{p: f.p, prec: f.prec, val: v, digits: digits}, nil
}

// FromRatio embeds the fraction num/den. The denominator may carry
// factors of p; they surface as a negative valuation.
// Returns ErrDivisionByZero when den is zero.
func (f *Field) FromRatio(num, den *big.Int) (Number, error) {
	if num == nil || den == nil {
		return Number{}, ErrNilOperand
	}
	if den.Sign() == 0 {
		return Number{}, ErrDivisionByZero
	}
	x, err := f.FromBigInt(num)
	if err != nil {
		return Number{}, err
	}
	y, err := f.FromBigInt(den)
	if err != nil {
		return Number{}, err
	}
	return x.Div(y)
}
