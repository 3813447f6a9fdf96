// Package projective represents points of the projective line P¹(Q) as
// coprime integer pairs and measures their arithmetic complexity.
//
// What:
//
//	A Point is an equivalence class (p:q) under scalar multiplication,
//	held canonically: q > 0 with gcd(|p|, q) = 1, zero = (0:1), and the
//	point at infinity = (1:0). Height(p:q) = max(|p|, |q|), with the
//	convention that infinity has height 0.
//
// Why:
//
//	Möbius actions of integer and rational matrices contract or expand
//	regions of P¹(Q); the height of the canonical representative is the
//	exact complexity measure those classifications are stated in. The
//	package also exposes the p-adic valuation of integers, which
//	certifies height reduction on whole congruence classes at once.
//
// Construction is total: NewPoint canonicalizes any pair, including
// (0, 0), which collapses to infinity by the q = 0 rule.
package projective
