package orbit

// Cover greedily covers the test set S_h with orbits of gens: walking
// Sphere(h) in its canonical order, each point not yet reached becomes
// a representative and its orbit (enumerated with Explore under the
// same options) is marked covered. A transitive action yields exactly
// one representative, ∞.
//
// The count is an upper bound on the number of orbits meeting S_h:
// pruning by MaxDepth, HeightCap or MaxNodes can split one true orbit
// into several representatives, never merge two.
//
// Complexity: one Explore per representative.
// Returns ErrNoGenerators, ErrOptionViolation, or a context error.
func Cover(gens []Generator, h int64, opts ...Option) (*CoverResult, error) {
	if _, err := buildOptions(gens, opts); err != nil {
		return nil, err
	}

	pts := Sphere(h)
	cov := &CoverResult{Total: len(pts)}
	covered := make(map[string]bool, len(pts))

	for _, x := range pts {
		if covered[x.String()] {
			continue
		}
		cov.Reps = append(cov.Reps, x)

		res, err := Explore(gens, x, opts...)
		if err != nil {
			return nil, err
		}
		if res.HitCap {
			cov.HitCap = true
		}
		for _, y := range res.Order {
			covered[y.String()] = true
		}
	}
	return cov, nil
}
