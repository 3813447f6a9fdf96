package orbit

import (
	"sort"

	"github.com/nbrody/exactnum/projective"
)

// Sphere enumerates the height-bounded test set
//
//	S_H = { p/q : |p| ≤ H, 1 ≤ q ≤ H, gcd(p, q) = 1 } ∪ {∞}
//
// ordered by (height, denominator, numerator) with ∞ first. S_H is the
// standard probe set for transitivity experiments: a generator set acts
// transitively on heights ≤ H exactly when every member of S_H flows to
// the same representative. For h < 1 only {∞} is returned.
func Sphere(h int64) []projective.Point {
	pts := []projective.Point{projective.Infinity()}
	for q := int64(1); q <= h; q++ {
		for p := -h; p <= h; p++ {
			if gcd64(abs64(p), q) == 1 {
				pts = append(pts, projective.NewPointInt64(p, q))
			}
		}
	}
	sort.Slice(pts, func(i, j int) bool {
		return sphereLess(pts[i], pts[j])
	})
	return pts
}

// sphereLess orders by (height, q, p), infinity first.
func sphereLess(a, b projective.Point) bool {
	if a.IsInfinity() {
		return !b.IsInfinity()
	}
	if b.IsInfinity() {
		return false
	}
	if c := a.Height().Cmp(b.Height()); c != 0 {
		return c < 0
	}
	if c := a.Q().Cmp(b.Q()); c != 0 {
		return c < 0
	}
	return a.P().Cmp(b.P()) < 0
}

func gcd64(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
