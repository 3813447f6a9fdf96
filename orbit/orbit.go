package orbit

import (
	"math/big"

	"github.com/nbrody/exactnum/projective"
)

// Explore runs a breadth-first enumeration of the orbit of seed under
// gens, recording the shortest word length reaching each point.
//
// Pruning:
//   - word length stops at MaxDepth,
//   - non-infinite points above HeightCap are skipped (the point at
//     infinity is exempt — its height convention is 0),
//   - the enumeration stops with Result.HitCap once MaxNodes distinct
//     points are recorded.
//
// Complexity: O(nodes · |gens|) Möbius applications, each exact.
// Returns ErrNoGenerators, ErrOptionViolation, or a context error.
func Explore(gens []Generator, seed projective.Point, opts ...Option) (*Result, error) {
	o, err := buildOptions(gens, opts)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Order: []projective.Point{seed},
		Depth: map[string]int{seed.String(): 0},
	}
	queue := []projective.Point{seed}

	for len(queue) > 0 {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		x := queue[0]
		queue = queue[1:]
		d := res.Depth[x.String()]
		if d >= o.MaxDepth {
			continue
		}
		for _, g := range gens {
			y := g.M.Apply(x)
			if !withinCap(y, o.HeightCap) {
				continue
			}
			key := y.String()
			if _, seen := res.Depth[key]; seen {
				continue
			}
			res.Depth[key] = d + 1
			res.Order = append(res.Order, y)
			queue = append(queue, y)
			if len(res.Depth) >= o.MaxNodes {
				res.HitCap = true
				return res, nil
			}
		}
	}
	return res, nil
}

func bigInt(n int64) *big.Int { return big.NewInt(n) }
