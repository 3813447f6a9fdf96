package padic

import (
	"fmt"
	"strconv"
	"strings"
)

// Number is an immutable p-adic number at fixed precision. Obtain values
// through a Field; the zero value of the type is not usable.
//
// Representation invariant: len(digits) == prec, every digit lies in
// [0, p), and digits[0] != 0 — except for the canonical zero, which has
// val == ValuationInfinite and all digits zero.
type Number struct {
	p      int64
	prec   int
	val    int
	digits []int64
}

// Prime returns the prime of the field this value belongs to.
func (x Number) Prime() int64 { return x.p }

// Precision returns the number of significant digits tracked.
func (x Number) Precision() int { return x.prec }

// IsZero reports whether x is the canonical zero.
func (x Number) IsZero() bool { return x.val == ValuationInfinite }

// Valuation returns the p-adic valuation of x, or ValuationInfinite for
// the zero element.
func (x Number) Valuation() int { return x.val }

// Digits returns a copy of the digit array, least-significant first.
func (x Number) Digits() []int64 {
	out := make([]int64, len(x.digits))
	copy(out, x.digits)
	return out
}

// compat checks that two operands came from identically configured
// fields.
func (x Number) compat(y Number) error {
	if x.p != y.p || x.prec != y.prec {
		return fmt.Errorf("%w: %d-adic/%d digits vs %d-adic/%d digits",
			ErrFieldMismatch, x.p, x.prec, y.p, y.prec)
	}
	return nil
}

// Add returns x + y. Returns ErrFieldMismatch for incompatible operands.
func (x Number) Add(y Number) (Number, error) {
	if err := x.compat(y); err != nil {
		return Number{}, err
	}
	return x.linearCombine(y, 1), nil
}

// Sub returns x − y. Returns ErrFieldMismatch for incompatible operands.
func (x Number) Sub(y Number) (Number, error) {
	if err := x.compat(y); err != nil {
		return Number{}, err
	}
	return x.linearCombine(y, -1), nil
}

// linearCombine computes x + cy·y for cy ∈ {+1, −1}: the digit streams
// are aligned at the minimum valuation (the higher-valuation operand is
// shifted rightward by the difference), combined position-wise, and
// carry-normalized.
func (x Number) linearCombine(y Number, cy int64) Number {
	if y.IsZero() {
		return x
	}
	if x.IsZero() {
		if cy == 1 {
			return y
		}
		return y.Neg()
	}
	v := x.val
	if y.val < v {
		v = y.val
	}
	raw := make([]int64, x.prec)
	dx, dy := x.val-v, y.val-v
	for i := range raw {
		if i >= dx {
			raw[i] += x.digits[i-dx]
		}
		if i >= dy && i-dy < y.prec {
			raw[i] += cy * y.digits[i-dy]
		}
	}
	return normalize(x.p, x.prec, v, raw)
}

// Neg returns −x. The complement expansion keeps the leading digit
// nonzero, so the valuation is unchanged.
func (x Number) Neg() Number {
	if x.IsZero() {
		return x
	}
	raw := make([]int64, x.prec)
	for i, d := range x.digits {
		raw[i] = -d
	}
	return normalize(x.p, x.prec, x.val, raw)
}

// Mul returns x · y: valuations add, digits convolve, and the result is
// carry-normalized. Returns ErrFieldMismatch for incompatible operands.
func (x Number) Mul(y Number) (Number, error) {
	if err := x.compat(y); err != nil {
		return Number{}, err
	}
	if x.IsZero() || y.IsZero() {
		return Number{p: x.p, prec: x.prec, val: ValuationInfinite, digits: make([]int64, x.prec)}, nil
	}
	raw := make([]int64, x.prec)
	for i := 0; i < x.prec; i++ {
		if x.digits[i] == 0 {
			continue
		}
		for j := 0; i+j < x.prec; j++ {
			raw[i+j] += x.digits[i] * y.digits[j]
		}
	}
	return normalize(x.p, x.prec, x.val+y.val, raw), nil
}

// Inv returns 1/x. Returns ErrNotInvertible when x is zero.
//
// The unit digit d[0] is inverted modulo p by the extended Euclidean
// algorithm; each subsequent digit of the inverse is then solved for by
// requiring the running product to match the identity digit-by-digit
// (a Hensel-style lift, O(N²) over N digit positions). The valuation of
// the result is the negated valuation of x.
func (x Number) Inv() (Number, error) {
	if x.IsZero() {
		return Number{}, ErrNotInvertible
	}
	inv0, ok := modInverse(x.digits[0], x.p)
	if !ok {
		// unreachable when the Field validated primality
		return Number{}, fmt.Errorf("%w: leading digit %d has no inverse mod %d",
			ErrNotInvertible, x.digits[0], x.p)
	}
	b := make([]int64, x.prec)
	b[0] = inv0

	// prod tracks the carry-normalized digits of x·(b so far).
	prod := make([]int64, x.prec)
	carry := int64(0)
	for i := 0; i < x.prec; i++ {
		t := x.digits[i]*inv0 + carry
		prod[i] = t % x.p
		carry = t / x.p
	}
	// prod[0] == 1 by construction of inv0.
	for k := 1; k < x.prec; k++ {
		if prod[k] == 0 {
			continue
		}
		// choose b[k] so that prod[k] + d[0]·b[k] ≡ 0 (mod p)
		c := ((x.p - prod[k]) * inv0) % x.p
		b[k] = c
		carry = 0
		for i := 0; i+k < x.prec; i++ {
			t := prod[i+k] + x.digits[i]*c + carry
			prod[i+k] = t % x.p
			carry = t / x.p
		}
	}
	return Number{p: x.p, prec: x.prec, val: -x.val, digits: b}, nil
}

// Div returns x / y. A zero dividend short-circuits to zero before the
// divisor is inverted; a zero divisor otherwise yields ErrNotInvertible.
func (x Number) Div(y Number) (Number, error) {
	if err := x.compat(y); err != nil {
		return Number{}, err
	}
	if x.IsZero() {
		return x, nil
	}
	inv, err := y.Inv()
	if err != nil {
		return Number{}, err
	}
	return x.Mul(inv)
}

// Shift returns x · p^k (total; shifting zero is zero).
func (x Number) Shift(k int) Number {
	if x.IsZero() {
		return x
	}
	out := x
	out.val += k
	return out
}

// TruncateAt zeroes every digit whose absolute position index val+i
// exceeds n. Callers use it to keep only the digits guaranteed exact
// before comparing results across different derivations. Truncating all
// digits away collapses the value to canonical zero.
func (x Number) TruncateAt(n int) Number {
	if x.IsZero() {
		return x
	}
	if x.val > n {
		return Number{p: x.p, prec: x.prec, val: ValuationInfinite, digits: make([]int64, x.prec)}
	}
	out := make([]int64, x.prec)
	copy(out, x.digits)
	for i := range out {
		if x.val+i > n {
			out[i] = 0
		}
	}
	return Number{p: x.p, prec: x.prec, val: x.val, digits: out}
}

// Equal reports digit-for-digit equality. Values from different fields
// are never equal.
func (x Number) Equal(y Number) bool {
	if x.p != y.p || x.prec != y.prec || x.val != y.val {
		return false
	}
	for i := range x.digits {
		if x.digits[i] != y.digits[i] {
			return false
		}
	}
	return true
}

// String renders the digit expansion most-significant first:
// "(d_{N-1}…d_1d_0)_p" with a "·p^v" suffix for nonzero valuations.
// Digits are space-separated when p > 10.
func (x Number) String() string {
	if x.IsZero() {
		return "0"
	}
	var sb strings.Builder
	sb.WriteByte('(')
	for i := x.prec - 1; i >= 0; i-- {
		sb.WriteString(strconv.FormatInt(x.digits[i], 10))
		if x.p > 10 && i > 0 {
			sb.WriteByte(' ')
		}
	}
	fmt.Fprintf(&sb, ")_%d", x.p)
	if x.val != 0 {
		fmt.Fprintf(&sb, "·%d^%d", x.p, x.val)
	}
	return sb.String()
}

// Latex renders the expansion for display layers, mirroring String.
func (x Number) Latex() string {
	if x.IsZero() {
		return "0"
	}
	var sb strings.Builder
	sb.WriteString(`\left(`)
	for i := x.prec - 1; i >= 0; i-- {
		sb.WriteString(strconv.FormatInt(x.digits[i], 10))
		if x.p > 10 && i > 0 {
			sb.WriteString(`\,`)
		}
	}
	fmt.Fprintf(&sb, `\right)_{%d}`, x.p)
	if x.val != 0 {
		fmt.Fprintf(&sb, `\cdot %d^{%d}`, x.p, x.val)
	}
	return sb.String()
}

// normalize carry-propagates raw into canonical digits, then strips
// leading zeros into the valuation. Negative entries are handled with
// floor-division carries so every digit lands in [0, p); truncating
// division here would produce out-of-range digits on subtraction.
// An all-zero result collapses to the canonical zero.
func normalize(p int64, prec int, val int, raw []int64) Number {
	carry := int64(0)
	for i := range raw {
		t := raw[i] + carry
		d := t % p
		if d < 0 {
			d += p
		}
		carry = (t - d) / p
		raw[i] = d
	}
	// carry beyond the precision horizon is dropped: results are exact
	// modulo p^prec only.
	lead := -1
	for i, d := range raw {
		if d != 0 {
			lead = i
			break
		}
	}
	if lead < 0 {
		return Number{p: p, prec: prec, val: ValuationInfinite, digits: make([]int64, prec)}
	}
	if lead > 0 {
		shifted := make([]int64, prec)
		copy(shifted, raw[lead:])
		raw = shifted
		val += lead
	}
	return Number{p: p, prec: prec, val: val, digits: raw}
}

// modInverse returns a⁻¹ mod p via the iterative extended Euclidean
// algorithm, with ok == false when gcd(a, p) ≠ 1.
func modInverse(a, p int64) (int64, bool) {
	t, newT := int64(0), int64(1)
	r, newR := p, a%p
	for newR != 0 {
		q := r / newR
		t, newT = newT, t-q*newT
		r, newR = newR, r-q*newR
	}
	if r != 1 {
		return 0, false
	}
	if t < 0 {
		t += p
	}
	return t, true
}
