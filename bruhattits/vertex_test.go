// Package bruhattits_test validates tree-vertex reduction of 2×2
// matrices over Q_p against hand-reduced lattices.
package bruhattits_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nbrody/exactnum/bruhattits"
	"github.com/nbrody/exactnum/padic"
)

func field(t *testing.T) *padic.Field {
	t.Helper()
	f, err := padic.NewField(5, 8)
	require.NoError(t, err)
	return f
}

// reduceInts is a test shorthand embedding four integers first.
func reduceInts(t *testing.T, f *padic.Field, a, b, c, d int64) (bruhattits.Vertex, error) {
	t.Helper()
	return bruhattits.Reduce(f.FromInt64(a), f.FromInt64(b), f.FromInt64(c), f.FromInt64(d))
}

// ------------------------------------------------------------------------
// 1. Canonical reductions
// ------------------------------------------------------------------------

func TestReduce_UnimodularIsRoot(t *testing.T) {
	f := field(t)
	// every element of GL₂(Z₅) fixes the standard lattice
	for _, m := range [][4]int64{
		{1, 0, 0, 1},  // identity
		{1, 3, 0, 1},  // upper unipotent
		{1, 0, 3, 1},  // lower unipotent
		{0, 1, 1, 0},  // swap
		{2, 1, 1, 1},  // unit determinant
		{3, 4, 2, 3},  // det 1
	} {
		v, err := reduceInts(t, f, m[0], m[1], m[2], m[3])
		require.NoError(t, err, "matrix %v", m)
		require.Equal(t, 0, v.Level, "matrix %v", m)
		require.True(t, v.Offset.IsZero(), "matrix %v", m)
	}
}

func TestReduce_DiagonalLevels(t *testing.T) {
	f := field(t)

	v, err := reduceInts(t, f, 5, 0, 0, 1)
	require.NoError(t, err)
	require.Equal(t, 1, v.Level)
	require.True(t, v.Offset.IsZero())

	v, err = reduceInts(t, f, 1, 0, 0, 5)
	require.NoError(t, err)
	require.Equal(t, -1, v.Level)
	require.True(t, v.Offset.IsZero())

	v, err = reduceInts(t, f, 25, 0, 0, 1)
	require.NoError(t, err)
	require.Equal(t, 2, v.Level)
}

func TestReduce_OffsetSurvivesModLevel(t *testing.T) {
	f := field(t)

	// [[5, 3], [0, 1]]: offset 3 is nonzero modulo 5¹
	v, err := reduceInts(t, f, 5, 3, 0, 1)
	require.NoError(t, err)
	require.Equal(t, 1, v.Level)
	require.True(t, v.Offset.Equal(f.FromInt64(3)))

	// [[5, 10], [0, 1]]: offset 10 ≡ 0 modulo 5, so it truncates away
	v, err = reduceInts(t, f, 5, 10, 0, 1)
	require.NoError(t, err)
	require.Equal(t, 1, v.Level)
	require.True(t, v.Offset.IsZero())

	// [[25, 7], [0, 1]]: offset 7 survives in full modulo 25
	v, err = reduceInts(t, f, 25, 7, 0, 1)
	require.NoError(t, err)
	require.Equal(t, 2, v.Level)
	require.True(t, v.Offset.Equal(f.FromInt64(7)))
}

func TestReduce_LowerLeftPivot(t *testing.T) {
	f := field(t)

	// [[25, 7], [5, 5]] spans Z₅ × 5Z₅ up to homothety: level −1,
	// offset 0.
	v, err := reduceInts(t, f, 25, 7, 5, 5)
	require.NoError(t, err)
	require.Equal(t, -1, v.Level)
	require.True(t, v.Offset.IsZero())
}

func TestReduce_ColumnSwapWhenDZero(t *testing.T) {
	f := field(t)
	// bottom row (1, 0) forces the swap branch
	v, err := reduceInts(t, f, 0, 1, 1, 0)
	require.NoError(t, err)
	require.Equal(t, 0, v.Level)
	require.True(t, v.Offset.IsZero())
}

func TestReduce_InvarianceUnderRightUnimodular(t *testing.T) {
	// Right multiplication by GL₂(Z₅) does not move the vertex:
	// compare [[5,3],[0,1]] with its column-operated variants.
	f := field(t)
	base, err := reduceInts(t, f, 5, 3, 0, 1)
	require.NoError(t, err)

	// swap columns: [[3,5],[1,0]]
	v, err := reduceInts(t, f, 3, 5, 1, 0)
	require.NoError(t, err)
	require.True(t, base.Equal(v))

	// add col1 to col2: [[5,8],[0,1]]
	v, err = reduceInts(t, f, 5, 8, 0, 1)
	require.NoError(t, err)
	require.True(t, base.Equal(v))

	// scale col2 by the unit 2: [[5,6],[0,2]]
	v, err = reduceInts(t, f, 5, 6, 0, 2)
	require.NoError(t, err)
	require.True(t, base.Equal(v))
}

// ------------------------------------------------------------------------
// 2. Failure semantics
// ------------------------------------------------------------------------

func TestReduce_SingularMatrix(t *testing.T) {
	f := field(t)

	_, err := reduceInts(t, f, 1, 2, 2, 4)
	require.ErrorIs(t, err, bruhattits.ErrUndefined)

	_, err = reduceInts(t, f, 1, 2, 0, 0)
	require.ErrorIs(t, err, bruhattits.ErrUndefined)

	_, err = reduceInts(t, f, 0, 0, 0, 0)
	require.ErrorIs(t, err, bruhattits.ErrUndefined)
}

func TestReduce_FieldMismatch(t *testing.T) {
	f5, err := padic.NewField(5, 8)
	require.NoError(t, err)
	f7, err := padic.NewField(7, 8)
	require.NoError(t, err)
	_, err = bruhattits.Reduce(f5.FromInt64(1), f5.FromInt64(0), f5.FromInt64(0), f7.FromInt64(1))
	require.ErrorIs(t, err, padic.ErrFieldMismatch)
}

// ------------------------------------------------------------------------
// 3. Tree distance
// ------------------------------------------------------------------------

func TestDistance(t *testing.T) {
	f := field(t)
	root, err := reduceInts(t, f, 1, 0, 0, 1)
	require.NoError(t, err)
	up, err := reduceInts(t, f, 5, 0, 0, 1)
	require.NoError(t, err)
	side, err := reduceInts(t, f, 5, 3, 0, 1)
	require.NoError(t, err)

	d, err := bruhattits.Distance(root, root)
	require.NoError(t, err)
	require.Equal(t, 0, d)

	d, err = bruhattits.Distance(root, up)
	require.NoError(t, err)
	require.Equal(t, 1, d)

	// two distinct neighbors of the root are at distance 2
	d, err = bruhattits.Distance(up, side)
	require.NoError(t, err)
	require.Equal(t, 2, d)

	// symmetry
	d2, err := bruhattits.Distance(side, up)
	require.NoError(t, err)
	require.Equal(t, d, d2)
}
