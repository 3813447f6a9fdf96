// Package orbit_test validates orbit enumeration, beam-search path
// finding, and the S_H test-set generator against small hand-checked
// group actions.
package orbit_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nbrody/exactnum/mat2"
	"github.com/nbrody/exactnum/orbit"
	"github.com/nbrody/exactnum/projective"
)

// modularGens returns the standard SL(2,Z) generators S, T and their
// projective inverses.
func modularGens() []orbit.Generator {
	s := mat2.FromInt64s(0, -1, 1, 0)
	t := mat2.FromInt64s(1, 1, 0, 1)
	return []orbit.Generator{
		{Name: "S", M: s},
		{Name: "T", M: t},
		{Name: "S'", M: s.Adjugate()},
		{Name: "T'", M: t.Adjugate()},
	}
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestExplore_NoGenerators(t *testing.T) {
	_, err := orbit.Explore(nil, projective.Zero())
	require.ErrorIs(t, err, orbit.ErrNoGenerators)
}

func TestExplore_OptionViolation(t *testing.T) {
	_, err := orbit.Explore(modularGens(), projective.Zero(), orbit.WithMaxDepth(-1))
	require.ErrorIs(t, err, orbit.ErrOptionViolation)
	_, err = orbit.Explore(modularGens(), projective.Zero(), orbit.WithHeightCap(0))
	require.ErrorIs(t, err, orbit.ErrOptionViolation)
	_, err = orbit.Explore(modularGens(), projective.Zero(), orbit.WithMaxNodes(0))
	require.ErrorIs(t, err, orbit.ErrOptionViolation)
	_, err = orbit.Explore(modularGens(), projective.Zero(), orbit.WithBeamWidth(0))
	require.ErrorIs(t, err, orbit.ErrOptionViolation)
}

func TestExplore_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := orbit.Explore(modularGens(), projective.Zero(), orbit.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// ------------------------------------------------------------------------
// 2. Orbit enumeration
// ------------------------------------------------------------------------

func TestExplore_ShiftOnly(t *testing.T) {
	// With only T: x ↦ x+1 the orbit of 0 under word length 3 is
	// exactly {0, 1, 2, 3}.
	gens := []orbit.Generator{{Name: "T", M: mat2.FromInt64s(1, 1, 0, 1)}}
	res, err := orbit.Explore(gens, projective.Zero(), orbit.WithMaxDepth(3))
	require.NoError(t, err)
	require.Len(t, res.Order, 4)
	require.Equal(t, 0, res.Depth["0"])
	require.Equal(t, 3, res.Depth["3"])
	require.False(t, res.HitCap)
}

func TestExplore_HeightCapPrunes(t *testing.T) {
	// Same shift orbit, but nothing above height 5 survives.
	gens := []orbit.Generator{{Name: "T", M: mat2.FromInt64s(1, 1, 0, 1)}}
	res, err := orbit.Explore(gens, projective.Zero(),
		orbit.WithMaxDepth(50), orbit.WithHeightCap(5))
	require.NoError(t, err)
	require.Len(t, res.Order, 6) // 0..5
	require.False(t, res.HitCap)
}

func TestExplore_InfinityExemptFromCap(t *testing.T) {
	// S sends 0 to ∞; the cap must not prune the infinite point.
	gens := []orbit.Generator{{Name: "S", M: mat2.FromInt64s(0, -1, 1, 0)}}
	res, err := orbit.Explore(gens, projective.Zero(),
		orbit.WithMaxDepth(2), orbit.WithHeightCap(1))
	require.NoError(t, err)
	require.Contains(t, res.Depth, "∞")
	require.Equal(t, 1, res.Depth["∞"])
}

func TestExplore_NodeBudget(t *testing.T) {
	gens := []orbit.Generator{{Name: "T", M: mat2.FromInt64s(1, 1, 0, 1)}}
	res, err := orbit.Explore(gens, projective.Zero(),
		orbit.WithMaxDepth(50), orbit.WithMaxNodes(10))
	require.NoError(t, err)
	require.True(t, res.HitCap)
	require.Len(t, res.Depth, 10)
}

func TestExplore_ModularOrbitCoversSmallPoints(t *testing.T) {
	// The modular group acts transitively on P¹(Q); every point of S_2
	// must appear in a generous exploration from 0.
	res, err := orbit.Explore(modularGens(), projective.Zero(),
		orbit.WithMaxDepth(12), orbit.WithHeightCap(50), orbit.WithMaxNodes(50000))
	require.NoError(t, err)
	for _, pt := range orbit.Sphere(2) {
		require.Contains(t, res.Depth, pt.String(), "missing %s", pt)
	}
}

// ------------------------------------------------------------------------
// 3. Path finding
// ------------------------------------------------------------------------

// replay verifies that a path's steps chain correctly under the named
// generators and end at the target.
func replay(t *testing.T, gens []orbit.Generator, start projective.Point, p *orbit.Path) {
	t.Helper()
	byName := make(map[string]mat2.Matrix, len(gens))
	for _, g := range gens {
		byName[g.Name] = g.M
	}
	curr := start
	for i, s := range p.Steps {
		require.True(t, s.From.Equal(curr), "step %d: from mismatch", i)
		m, ok := byName[s.Gen]
		require.True(t, ok, "step %d: unknown generator %q", i, s.Gen)
		require.True(t, m.Apply(s.From).Equal(s.To), "step %d: edge does not replay", i)
		curr = s.To
	}
	require.True(t, curr.Equal(p.Target))
}

func TestFindPath_ContinuedFractionReduction(t *testing.T) {
	// The modular group reduces every rational to ∞ (the cusp); this is
	// the continued-fraction algorithm in matrix form.
	gens := modularGens()
	start := projective.NewPointInt64(-5, 2)
	p, err := orbit.FindPath(gens, start, []projective.Point{projective.Infinity()},
		orbit.WithMaxDepth(30), orbit.WithHeightCap(1000))
	require.NoError(t, err)
	require.True(t, p.Target.IsInfinity())
	require.NotEmpty(t, p.Steps)
	replay(t, gens, start, p)
}

func TestFindPath_StartIsTarget(t *testing.T) {
	p, err := orbit.FindPath(modularGens(), projective.Infinity(),
		[]projective.Point{projective.Infinity()})
	require.NoError(t, err)
	require.Empty(t, p.Steps)
	require.True(t, p.Target.IsInfinity())
}

func TestFindPath_PrefersSimplestTarget(t *testing.T) {
	// Both 1 and 5 are reachable from 0 by shifts; the simpler (lower
	// height) target must win.
	gens := []orbit.Generator{{Name: "T", M: mat2.FromInt64s(1, 1, 0, 1)}}
	targets := []projective.Point{
		projective.NewPointInt64(5, 1),
		projective.NewPointInt64(1, 1),
	}
	p, err := orbit.FindPath(gens, projective.Zero(), targets, orbit.WithMaxDepth(10))
	require.NoError(t, err)
	require.Equal(t, "1", p.Target.String())
}

func TestFindPath_NoPath(t *testing.T) {
	// Shifts alone never leave the denominator-2 line, so ∞ is
	// unreachable.
	gens := []orbit.Generator{{Name: "T", M: mat2.FromInt64s(1, 1, 0, 1)}}
	_, err := orbit.FindPath(gens, projective.NewPointInt64(1, 2),
		[]projective.Point{projective.Infinity()},
		orbit.WithMaxDepth(10), orbit.WithHeightCap(30))
	require.ErrorIs(t, err, orbit.ErrNoPath)
}

// ------------------------------------------------------------------------
// 4. Test-set enumeration
// ------------------------------------------------------------------------

func TestSphere_H2(t *testing.T) {
	got := orbit.Sphere(2)
	want := []string{"∞", "-1", "0", "1", "-2", "2", "-1/2", "1/2"}
	require.Len(t, got, len(want))
	for i, pt := range got {
		require.Equal(t, want[i], pt.String(), "index %d", i)
	}
}

func TestSphere_BelowOne(t *testing.T) {
	got := orbit.Sphere(0)
	require.Len(t, got, 1)
	require.True(t, got[0].IsInfinity())
}

func TestSphere_CoprimeOnly(t *testing.T) {
	// canonical form is already coprime, so 2/4 and 1/2 must not both
	// appear
	seen := map[string]bool{}
	for _, pt := range orbit.Sphere(6) {
		require.False(t, seen[pt.String()], "duplicate %s", pt)
		seen[pt.String()] = true
	}
}

// ------------------------------------------------------------------------
// 5. Greedy orbit covering
// ------------------------------------------------------------------------

func TestCover_ModularIsTransitive(t *testing.T) {
	// SL(2,Z) acts transitively on P¹(Q): one representative, ∞, covers
	// all of S_2. The first orbit is infinite, so the node budget stops
	// it after it has swept every small point.
	cov, err := orbit.Cover(modularGens(), 2, orbit.WithMaxNodes(500))
	require.NoError(t, err)
	require.Equal(t, 8, cov.Total)
	require.Len(t, cov.Reps, 1)
	require.True(t, cov.Reps[0].IsInfinity())
	require.True(t, cov.HitCap)
}

func TestCover_ShiftOnlySplitsByDenominator(t *testing.T) {
	// x ↦ x±1 preserves the denominator, so S_2 splits into three
	// orbits: {∞}, the integers, and the half-integers.
	tr := mat2.FromInt64s(1, 1, 0, 1)
	gens := []orbit.Generator{
		{Name: "T", M: tr},
		{Name: "T'", M: tr.Adjugate()},
	}
	cov, err := orbit.Cover(gens, 2, orbit.WithHeightCap(10))
	require.NoError(t, err)
	require.Equal(t, 8, cov.Total)
	require.Len(t, cov.Reps, 3)
	require.Equal(t, "∞", cov.Reps[0].String())
	require.Equal(t, "-1", cov.Reps[1].String())
	require.Equal(t, "-1/2", cov.Reps[2].String())
	require.False(t, cov.HitCap)
}

func TestCover_OptionViolation(t *testing.T) {
	_, err := orbit.Cover(modularGens(), 2, orbit.WithMaxNodes(0))
	require.ErrorIs(t, err, orbit.ErrOptionViolation)
}
