package matrix_test

import (
	"testing"

	"github.com/coldbrew-labs/tspbb/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewDense_BadShape(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewDense(3, -1)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestDense_AtSet_RoundTrip(t *testing.T) {
	d, err := matrix.NewDense(3, 3)
	require.NoError(t, err)

	require.NoError(t, d.Set(1, 2, 7))
	v, err := d.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, int64(7), v)

	// Untouched cells default to zero.
	v, err = d.At(0, 0)
	require.NoError(t, err)
	require.Zero(t, v)
}

func TestDense_OutOfRange(t *testing.T) {
	d, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = d.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = d.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, d.Set(2, 0, 1), matrix.ErrOutOfRange)
}

func TestNewDenseFromRowMajor(t *testing.T) {
	values := []int64{
		0, 1, 2,
		1, 0, 3,
		2, 3, 0,
	}
	d, err := matrix.NewDenseFromRowMajor(values, 3)
	require.NoError(t, err)
	require.Equal(t, 3, d.Rows())
	require.Equal(t, 3, d.Cols())

	v, err := d.At(2, 1)
	require.NoError(t, err)
	require.Equal(t, int64(3), v)
}

func TestNewDenseFromRowMajor_DimensionMismatch(t *testing.T) {
	_, err := matrix.NewDenseFromRowMajor([]int64{1, 2, 3}, 2)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestNewDenseFromRowMajor_CopiesInput(t *testing.T) {
	values := []int64{0, 1, 1, 0}
	d, err := matrix.NewDenseFromRowMajor(values, 2)
	require.NoError(t, err)

	values[0] = 99
	v, err := d.At(0, 0)
	require.NoError(t, err)
	require.Zero(t, v, "Dense must copy the input buffer, not alias it")
}
