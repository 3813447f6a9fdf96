// Package rational implements exact arbitrary-precision rational numbers.
//
// What:
//
//	A Rational is an immutable fraction num/den over math/big integers,
//	always held in canonical form:
//	  • den > 0 (sign lives on the numerator)
//	  • gcd(|num|, den) = 1 (lowest terms)
//	  • zero is stored as 0/1
//
// Why:
//
//	Height and continued-fraction computations on the projective line are
//	meaningless under floating-point rounding; every operation here is
//	exact for operands of any magnitude.
//
// Guarantees:
//
//	Every constructor and every arithmetic method returns a freshly
//	canonicalized value; canonicalization is a projection, so normalizing
//	an already-canonical value is the identity. Values are immutable and
//	safe for concurrent use.
//
// Errors (sentinel, matched with errors.Is):
//
//	– ErrZeroDenominator — construction with a zero denominator
//	– ErrDivisionByZero  — Div/Inv/Pow with a zero divisor or base
//	– ErrNonFinite       — FromFloat64 with NaN or ±Inf
//	– ErrNilOperand      — construction from a nil *big.Int
package rational
