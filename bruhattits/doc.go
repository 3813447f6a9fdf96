// Package bruhattits names vertices of the Bruhat–Tits tree of GL₂(Q_p).
//
// What:
//
//	A vertex of the tree is a homothety class of rank-2 lattices in
//	Q_p², canonically represented by a matrix of the form
//
//	    [[p^k, β], [0, 1]]      k ∈ Z,  β ∈ Q_p / p^k·Z_p
//
//	Reduce takes the four entries of a matrix over Q_p (its columns
//	spanning a lattice) and column-reduces it to this form: the entry of
//	lower valuation in the bottom row pivots the lower-left entry to
//	zero, the diagonal is scaled to powers of p by units of Z_p, the
//	common power of p is factored out as the homothety, and the offset
//	is truncated below the level.
//
// Why:
//
//	The tree's combinatorics classify lattices the way the upper
//	half-plane classifies real quadratic forms; explorer frontends walk
//	it by reducing matrices vertex by vertex. Reduction is undefined
//	(ErrUndefined) exactly when the matrix is singular at the working
//	precision — the caller treats that as "this step has no vertex",
//	not as a crash.
package bruhattits
