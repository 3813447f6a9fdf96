package orbit

import (
	"sort"

	"github.com/nbrody/exactnum/projective"
)

// parentLink records how a point was first reached during the search.
type parentLink struct {
	prev projective.Point
	gen  string
}

// FindPath beam-searches for a generator word from start to the simplest
// (minimum-height) point of targets. The beam keeps the BeamWidth
// lowest-height candidates per word length; among multiple reachable
// targets the lowest-height one wins, and a height-0 target (infinity)
// ends the search immediately.
//
// Returns ErrNoPath when the beam exhausts without touching any target,
// plus the usual ErrNoGenerators / ErrOptionViolation / context errors.
func FindPath(gens []Generator, start projective.Point, targets []projective.Point, opts ...Option) (*Path, error) {
	o, err := buildOptions(gens, opts)
	if err != nil {
		return nil, err
	}

	targetSet := make(map[string]bool, len(targets))
	for _, t := range targets {
		targetSet[t.String()] = true
	}

	parent := make(map[string]parentLink)
	visited := map[string]bool{start.String(): true}

	var best *Path
	if targetSet[start.String()] {
		best = &Path{Target: start}
		if start.IsInfinity() {
			return best, nil
		}
	}

	beam := []projective.Point{start}
	for depth := 0; depth < o.MaxDepth; depth++ {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		var candidates []projective.Point
		for _, curr := range beam {
			for _, g := range gens {
				next := g.M.Apply(curr)
				key := next.String()
				if visited[key] {
					continue
				}
				if !withinCap(next, o.HeightCap) {
					continue
				}
				visited[key] = true
				parent[key] = parentLink{prev: curr, gen: g.Name}
				candidates = append(candidates, next)

				if targetSet[key] && (best == nil || next.Height().Cmp(best.Target.Height()) < 0) {
					best = &Path{Steps: reconstruct(next, parent), Target: next}
					if next.IsInfinity() {
						return best, nil
					}
				}
			}
		}
		if len(candidates) == 0 {
			break
		}
		if len(candidates) > o.BeamWidth {
			sort.Slice(candidates, func(i, j int) bool {
				hi, hj := candidates[i].Height(), candidates[j].Height()
				if c := hi.Cmp(hj); c != 0 {
					return c < 0
				}
				// deterministic tie-break
				return candidates[i].String() < candidates[j].String()
			})
			candidates = candidates[:o.BeamWidth]
		}
		beam = candidates
	}

	if best == nil {
		return nil, ErrNoPath
	}
	return best, nil
}

// reconstruct walks the parent links back from end to the search root.
func reconstruct(end projective.Point, parent map[string]parentLink) []Step {
	var steps []Step
	curr := end
	for {
		link, ok := parent[curr.String()]
		if !ok {
			break
		}
		steps = append(steps, Step{From: link.prev, Gen: link.gen, To: curr})
		curr = link.prev
	}
	for l, r := 0, len(steps)-1; l < r; l, r = l+1, r-1 {
		steps[l], steps[r] = steps[r], steps[l]
	}
	return steps
}
