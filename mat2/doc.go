// Package mat2 implements 2×2 matrices over exact rationals and their
// Möbius action on the projective line.
//
// What:
//
//	A Matrix [[A,B],[C,D]] of rational.Rational entries supports exact
//	composition, determinant, inverse, and the action
//
//	    (p:q)  ↦  (A·p + B·q : C·p + D·q)
//
//	with the image reduced back to canonical coprime form. On top of the
//	action sit the height-reduction utilities: comparing the height of a
//	point before and after the action, and measuring (p-adically) the
//	common factor the action introduces, which certifies reduction for a
//	whole congruence class rather than a single point.
//
// Invariants:
//
//	No structural invariant is enforced on construction — singular
//	matrices are legal values; only Inverse rejects them, with
//	ErrSingularMatrix. Matrices are immutable; every operation returns
//	a fresh value.
//
// Failure semantics:
//
//	Errors are terminal for the single operation that produced them and
//	never corrupt other values. There are no retries and no floating
//	point fallback.
package mat2
