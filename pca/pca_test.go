package pca

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// genericDense fills a matrix with sine samples, which is full rank for the
// shapes used here.
func genericDense(r, c int) *mat.Dense {
	data := make([]float64, r*c)
	for i := range data {
		data[i] = math.Sin(float64(i+1)) + 0.1*math.Cos(float64(3*i))
	}
	return mat.NewDense(r, c, data)
}

func TestReduceShapes(t *testing.T) {
	a := genericDense(6, 4)
	coords, inverse, err := TruncatedSVD{}.Reduce(a, 2)
	require.NoError(t, err)

	r, c := coords.Dims()
	assert.Equal(t, 6, r)
	assert.Equal(t, 2, c)

	rec, err := inverse(coords)
	require.NoError(t, err)
	rr, rc := rec.Dims()
	assert.Equal(t, 6, rr)
	assert.Equal(t, 4, rc)
}

func TestReduceMatchesSingularValueTail(t *testing.T) {
	// The truncated-SVD reconstruction is optimal: its squared Frobenius
	// residual equals the sum of squared discarded singular values.
	a := genericDense(8, 5)
	k := 2

	var svd mat.SVD
	require.True(t, svd.Factorize(a, mat.SVDNone))
	vals := svd.Values(nil)
	want := 0.0
	for _, v := range vals[k:] {
		want += v * v
	}
	want = math.Sqrt(want)

	coords, inverse, err := TruncatedSVD{}.Reduce(a, k)
	require.NoError(t, err)
	rec, err := inverse(coords)
	require.NoError(t, err)

	var diff mat.Dense
	diff.Sub(a, rec)
	assert.InDelta(t, want, mat.Norm(&diff, 2), 1e-8)
}

func TestReduceClampsRank(t *testing.T) {
	a := genericDense(6, 4)
	coords, inverse, err := TruncatedSVD{}.Reduce(a, 100)
	require.NoError(t, err)

	_, c := coords.Dims()
	assert.Equal(t, 4, c)

	// Full rank keeps everything: the reconstruction is A itself.
	rec, err := inverse(coords)
	require.NoError(t, err)
	assert.True(t, mat.EqualApprox(a, rec, 1e-10))
}

func TestReduceRejectsNonPositiveRank(t *testing.T) {
	a := genericDense(6, 4)
	for _, rank := range []int{0, -1} {
		_, _, err := TruncatedSVD{}.Reduce(a, rank)
		assert.Error(t, err, "rank %d", rank)
	}
}

func TestInverseRejectsWrongWidth(t *testing.T) {
	a := genericDense(6, 4)
	_, inverse, err := TruncatedSVD{}.Reduce(a, 2)
	require.NoError(t, err)

	_, err = inverse(mat.NewDense(6, 3, nil))
	assert.Error(t, err)
}
