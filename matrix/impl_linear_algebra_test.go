// Package matrix_test contains unit tests for arithmetic, comparison and transpose.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/densemat/matrix"
	"github.com/stretchr/testify/require"
)

func TestAdd_Succeeds(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustFromRows(t, [][]float64{{10, 20}, {30, 40}})

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{11, 22}, {33, 44}}, sum.ToRows())
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, a.ToRows()) // copying form leaves a intact

	same, err := a.AddInPlace(b)
	require.NoError(t, err)
	require.Same(t, a, same)
	require.Equal(t, [][]float64{{11, 22}, {33, 44}}, a.ToRows())
}

func TestSub_Succeeds(t *testing.T) {
	a := MustFromRows(t, [][]float64{{5, 5}, {5, 5}})
	b := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	diff, err := a.Sub(b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{4, 3}, {2, 1}}, diff.ToRows())

	_, err = a.SubInPlace(a)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 0}, {0, 0}}, a.ToRows())
}

// TestAddSub_ShapeMismatch ensures validation happens before any write.
func TestAddSub_ShapeMismatch(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustDense(t, 2, 3)
	empty := &matrix.Dense{}

	for name, op := range map[string]func(x, y *matrix.Dense) (*matrix.Dense, error){
		"Add":        (*matrix.Dense).Add,
		"AddInPlace": (*matrix.Dense).AddInPlace,
		"Sub":        (*matrix.Dense).Sub,
		"SubInPlace": (*matrix.Dense).SubInPlace,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := op(a, b)
			require.ErrorIs(t, err, matrix.ErrShapeMismatch)
			_, err = op(a, empty)
			require.ErrorIs(t, err, matrix.ErrShapeMismatch)
			_, err = op(empty, a)
			require.ErrorIs(t, err, matrix.ErrShapeMismatch)
			_, err = op(a, nil)
			require.ErrorIs(t, err, matrix.ErrShapeMismatch)
			require.Equal(t, [][]float64{{1, 2}, {3, 4}}, a.ToRows())
		})
	}
}

// TestAddThenSubRoundTrip checks (A + B) − B == A on random data.
func TestAddThenSubRoundTrip(t *testing.T) {
	for _, n := range []int{1, 3, 6} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			a := MustDense(t, n, n+1)
			b := MustDense(t, n, n+1)
			fillRand(t, a, int64(n))
			fillRand(t, b, int64(100+n))

			sum, err := a.Add(b)
			require.NoError(t, err)
			back, err := sum.Sub(b)
			require.NoError(t, err)
			eq, err := back.Equal(a)
			require.NoError(t, err)
			require.True(t, eq)
		})
	}
}

func TestScale(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, -2}, {0, 4}})

	s, err := a.Scale(2.5)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{2.5, -5}, {0, 10}}, s.ToRows())
	require.Equal(t, [][]float64{{1, -2}, {0, 4}}, a.ToRows())

	same, err := a.ScaleInPlace(-1)
	require.NoError(t, err)
	require.Same(t, a, same)
	require.Equal(t, [][]float64{{-1, 2}, {0, -4}}, a.ToRows())

	a.Release()
	_, err = a.Scale(2)
	require.ErrorIs(t, err, matrix.ErrInvalidShape)
}

// TestMul_Rectangular checks the canonical 2×3 · 3×2 product.
func TestMul_Rectangular(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustFromRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	p, err := a.Mul(b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{58, 64}, {139, 154}}, p.ToRows())

	same, err := a.MulInPlace(b)
	require.NoError(t, err)
	require.Same(t, a, same)
	require.Equal(t, 2, a.Rows())
	require.Equal(t, 2, a.Cols())
	require.Equal(t, [][]float64{{58, 64}, {139, 154}}, a.ToRows())
}

// TestMul_SelfSquare ensures m.MulInPlace(m) reads the original values.
func TestMul_SelfSquare(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 1}, {0, 1}})
	_, err := a.MulInPlace(a)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2}, {0, 1}}, a.ToRows())
}

func TestMul_ShapeMismatch(t *testing.T) {
	m := MustDense(t, 12, 12)
	n := MustDense(t, 1, 1)

	_, err := m.Mul(n)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	_, err = m.MulInPlace(n)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	require.Equal(t, 12, m.Cols()) // unchanged

	empty := &matrix.Dense{}
	_, err = empty.Mul(&matrix.Dense{})
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
}

func TestEqual(t *testing.T) {
	a := MustDense(t, 1, 1)
	b := MustDense(t, 1, 1)
	MustSet(t, a, 0, 0, 10)

	eq, err := a.Equal(b)
	require.NoError(t, err)
	require.False(t, eq)

	MustSet(t, b, 0, 0, 10+5e-8) // inside tolerance
	eq, err = a.Equal(b)
	require.NoError(t, err)
	require.True(t, eq)

	MustSet(t, b, 0, 0, 10+1e-6) // outside tolerance
	eq, err = a.Equal(b)
	require.NoError(t, err)
	require.False(t, eq)
}

// TestEqual_ShapeMismatch covers the checked contract and its total counterpart.
func TestEqual_ShapeMismatch(t *testing.T) {
	m := MustDense(t, 12, 12)
	n := MustDense(t, 1, 1)

	_, err := m.Equal(n)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	require.False(t, m.StructuralEqual(n))

	empty := &matrix.Dense{}
	_, err = empty.Equal(&matrix.Dense{})
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	require.False(t, empty.StructuralEqual(empty))

	clone, err := m.Clone()
	require.NoError(t, err)
	require.True(t, m.StructuralEqual(clone))
}

func TestTranspose_Rectangular(t *testing.T) {
	a := MustDense(t, 3, 2)
	MustSet(t, a, 2, 0, 10)

	b, err := a.Transpose()
	require.NoError(t, err)
	require.Equal(t, 2, b.Rows())
	require.Equal(t, 3, b.Cols())
	require.Equal(t, MustAt(t, a, 2, 0), MustAt(t, b, 0, 2))
}

// TestTranspose_Involution checks (Aᵀ)ᵀ == A without mutating A.
func TestTranspose_Involution(t *testing.T) {
	for _, shape := range [][2]int{{1, 1}, {1, 5}, {4, 3}, {6, 6}} {
		t.Run(fmt.Sprintf("%dx%d", shape[0], shape[1]), func(t *testing.T) {
			a := MustDense(t, shape[0], shape[1])
			fillRand(t, a, int64(shape[0]*10+shape[1]))
			orig, err := a.Clone()
			require.NoError(t, err)

			at, err := matrix.T(a)
			require.NoError(t, err)
			att, err := at.Transpose()
			require.NoError(t, err)

			eq, err := att.Equal(a)
			require.NoError(t, err)
			require.True(t, eq)
			require.True(t, a.StructuralEqual(orig))
		})
	}
}

func TestTranspose_Empty(t *testing.T) {
	var m *matrix.Dense
	_, err := m.Transpose()
	require.ErrorIs(t, err, matrix.ErrInvalidShape)
}

func TestNewFromRows(t *testing.T) {
	_, err := matrix.NewFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidShape)
	_, err = matrix.NewFromRows([][]float64{{}})
	require.ErrorIs(t, err, matrix.ErrInvalidShape)
	_, err = matrix.NewFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)

	src := [][]float64{{1, 2}, {3, 4}}
	m := MustFromRows(t, src)
	src[0][0] = 99
	require.Equal(t, 1.0, MustAt(t, m, 0, 0)) // values were copied
}

func TestNewIdentity(t *testing.T) {
	I, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, I.ToRows())

	_, err = matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidShape)

	_, err = matrix.IdentityLike(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrInvalidShape)

	z, err := matrix.ZerosLike(I)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}, z.ToRows())
}
