// Package padic implements fixed-precision p-adic numbers.
//
// What:
//
//	A Number represents an element of the field Q_p truncated to a fixed
//	precision of N base-p digits:
//
//	    value = p^v · (d[0] + d[1]·p + d[2]·p² + … + d[N-1]·p^{N-1})
//
//	with valuation v (negative valuations encode denominators divisible
//	by p) and d[0] ≠ 0. The zero element is the single degenerate value
//	with valuation ValuationInfinite and all digits zero.
//
// Why:
//
//	Divisibility and congruence questions (which power of p divides an
//	expression, whether two derivations agree modulo p^N) are impractical
//	with floating point; p-adic arithmetic answers them exactly within
//	the declared precision horizon. There is no rounding error — results
//	are exact modulo p^N.
//
// Configuration:
//
//	The prime and the precision are mandatory, explicitly-typed
//	parameters of NewField; nothing is inferred from operand shapes.
//	NewField rejects composite p, since the digit-at-a-time inverse
//	requires every nonzero residue to be invertible modulo p.
//
// Algorithm notes:
//
//	Add and Sub share one linear-combination routine: the operands'
//	digit streams are aligned at the minimum valuation, combined with
//	±1 coefficients, and then carry-normalized. Carry normalization uses
//	floor-division carries so that negative intermediate sums (which
//	subtraction produces) still reduce to digits in [0, p). Mul adds
//	valuations and convolves digits; Inv combines an extended-Euclid
//	inverse of the unit digit with an O(N²) digit-at-a-time lift.
//
// Errors (sentinel, matched with errors.Is):
//
//	– ErrNotPrime       — NewField with p < 2 or composite p
//	– ErrPrimeTooLarge  — NewField with p beyond the overflow-safe bound
//	– ErrBadPrecision   — NewField with precision outside [1, MaxPrecision]
//	– ErrNotInvertible  — Inv/Div on the zero element
//	– ErrFieldMismatch  — mixing operands of different primes/precisions
//	– ErrDivisionByZero — FromRatio with a zero denominator
//	– ErrNilOperand     — a nil *big.Int argument
package padic
