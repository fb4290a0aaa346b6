package op_test

import (
	"testing"

	"github.com/katalvlaran/trotter/cmat"
	"github.com/katalvlaran/trotter/op"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewPauli_Validation covers accepted and rejected labels.
func TestNewPauli_Validation(t *testing.T) {
	p, err := op.NewPauli("IXYZ")
	require.NoError(t, err)
	assert.Equal(t, "IXYZ", p.Label())
	assert.Equal(t, 4, p.Len())

	_, err = op.NewPauli("")
	assert.ErrorIs(t, err, op.ErrBadPauliLabel, "empty label must error")

	_, err = op.NewPauli("XQ")
	assert.ErrorIs(t, err, op.ErrBadPauliLabel, "rune outside IXYZ must error")

	_, err = op.NewPauli("xz")
	assert.ErrorIs(t, err, op.ErrBadPauliLabel, "lowercase must error")
}

// TestPauli_Equal verifies label equality semantics.
func TestPauli_Equal(t *testing.T) {
	assert.True(t, op.MustPauli("XZ").Equal(op.MustPauli("XZ")))
	assert.False(t, op.MustPauli("XZ").Equal(op.MustPauli("ZX")))
}

// TestMustPauli_Panics verifies MustPauli panics on a bad label.
func TestMustPauli_Panics(t *testing.T) {
	assert.Panics(t, func() { op.MustPauli("A") })
}

// TestPauli_Matrix_SingleQubit checks the four 2×2 Pauli matrices.
func TestPauli_Matrix_SingleQubit(t *testing.T) {
	cases := []struct {
		label   string
		entries [2][2]complex128
	}{
		{"I", [2][2]complex128{{1, 0}, {0, 1}}},
		{"X", [2][2]complex128{{0, 1}, {1, 0}}},
		{"Y", [2][2]complex128{{0, complex(0, -1)}, {complex(0, 1), 0}}},
		{"Z", [2][2]complex128{{1, 0}, {0, -1}}},
	}

	for _, tc := range cases {
		m, err := op.MustPauli(tc.label).Matrix()
		require.NoError(t, err, tc.label)
		require.Equal(t, 2, m.Rows(), tc.label)
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				v, aerr := m.At(i, j)
				require.NoError(t, aerr)
				assert.Equal(t, tc.entries[i][j], v, "%s[%d][%d]", tc.label, i, j)
			}
		}
	}
}

// TestPauli_Matrix_TwoQubit verifies the Kronecker layout: ZX = Z ⊗ X.
func TestPauli_Matrix_TwoQubit(t *testing.T) {
	zx, err := op.MustPauli("ZX").Matrix()
	require.NoError(t, err)
	require.Equal(t, 4, zx.Rows())

	zm, _ := op.MustPauli("Z").Matrix()
	xm, _ := op.MustPauli("X").Matrix()
	want := zm.Kron(xm)
	assert.True(t, zx.AllClose(want, 0), "ZX must equal Z⊗X")

	// Spot-check the sign structure.
	v, _ := zx.At(3, 2)
	assert.Equal(t, complex(-1.0, 0.0), v)
}

// TestPauli_Matrix_Dimensions checks 2ⁿ scaling of the lowered matrix.
func TestPauli_Matrix_Dimensions(t *testing.T) {
	m, err := op.MustPauli("XYZ").Matrix()
	require.NoError(t, err)
	assert.Equal(t, 8, m.Rows())
	assert.Equal(t, 8, m.Cols())
	assert.IsType(t, &cmat.Dense{}, m)
}
