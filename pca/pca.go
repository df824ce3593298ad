// Package pca wraps gonum's SVD as a truncated dimensionality reducer, used
// as the exact baseline the randomized approximator is benchmarked against.
package pca

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrFactorization reports that the SVD of the input failed to converge.
var ErrFactorization = errors.New("failed to factorize input matrix")

// TruncatedSVD reduces a matrix onto its top-k right singular directions,
// following sklearn's class of the same name. The zero value is ready to use.
type TruncatedSVD struct{}

// Reduce projects a onto its top-rank right singular vectors. It returns the
// reduced coordinates (rows×k) and an inverse transform mapping coordinates
// back to a rows×cols reconstruction; the reconstruction is the optimal
// rank-k approximation of a in the Frobenius norm.
//
// rank is clamped to min(rows, cols); non-positive ranks are an error.
func (TruncatedSVD) Reduce(a mat.Matrix, rank int) (*mat.Dense, func(*mat.Dense) (*mat.Dense, error), error) {
	if rank < 1 {
		return nil, nil, fmt.Errorf("rank must be positive, got %d", rank)
	}

	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDThinV) {
		return nil, nil, ErrFactorization
	}
	var v mat.Dense
	svd.VTo(&v)

	rows, cols := a.Dims()
	k := min(rank, min(rows, cols))

	components := v.Slice(0, cols, 0, k).(*mat.Dense)

	coords := mat.NewDense(rows, k, nil)
	coords.Mul(a, components)

	inverse := func(x *mat.Dense) (*mat.Dense, error) {
		xr, xc := x.Dims()
		if xc != k {
			return nil, fmt.Errorf("coordinates have %d columns, want %d", xc, k)
		}
		out := mat.NewDense(xr, cols, nil)
		out.Mul(x, components.T())
		return out, nil
	}
	return coords, inverse, nil
}
