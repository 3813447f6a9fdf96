// Package exactnum is a toolkit for exact arithmetic over the rationals
// and the p-adic numbers, built for number-theoretic exploration where
// floating point would silently lie.
//
// 🚀 What is exactnum?
//
//	A collection of small, composable packages:
//		• rational/   — immutable arbitrary-precision rationals in lowest terms
//		• padic/      — truncated p-adic expansions: digits, valuations, Hensel inverses
//		• projective/ — points of P¹(Q) with heights and p-adic valuations
//		• mat2/       — exact 2×2 rational matrices and their Möbius action
//		• orbit/      — orbit enumeration and word search under matrix generators
//		• bruhattits/ — vertices and distances in the Bruhat–Tits tree of SL₂(Q_p)
//
// ✨ Why choose exactnum?
//
//   - Exact by construction – every value is canonical, no rounding anywhere
//   - Total where possible – ring operations never fail; partial ones return
//     sentinel errors matched with errors.Is, never panics
//   - Immutable values – share freely across goroutines without locks
//   - Cancellable searches – long orbit enumerations honor context.Context
//
// Quick example, the Möbius action of [[1,1],[0,1]] on −5/2:
//
//	m := mat2.FromInt64s(1, 1, 0, 1)
//	pt := projective.NewPointInt64(-5, 2)
//	img := m.Apply(pt) // -3/2
//
// The cmd/plexplore binary exposes the same operations from the terminal.
//
//	go get github.com/nbrody/exactnum
package exactnum
