// Package approx computes randomized low-rank approximations of dense
// matrices: the input is sketched against a random Gaussian projection, the
// sketch is orthonormalized, and the input is projected back through the
// resulting basis. For target ranks well below min(rows, cols) this costs
// two dense multiplications plus one small factorization instead of a full
// decomposition of the input.
package approx

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	// ErrInvalidRank reports a target rank outside 1..min(rows, cols).
	ErrInvalidRank = errors.New("invalid target rank")

	// ErrNumericalDegeneracy reports that the orthonormalization of the
	// sketch failed to converge.
	ErrNumericalDegeneracy = errors.New("sketch orthonormalization failed")
)

// Approximate returns a rows×cols reconstruction of a whose column space has
// dimension at most rank. The reconstruction is a randomized surrogate for
// the optimal rank-limited approximation, not the truncated-SVD optimum.
//
// rank must satisfy 1 ≤ rank ≤ min(rows, cols); anything else is rejected
// with ErrInvalidRank. Ranks above min(rows, cols) are never clamped.
//
// src drives the Gaussian projection draw. A nil src uses a fresh generator
// seeded from OS entropy; supply a fixed source for reproducible output.
// The source is used only by this call and is never shared.
//
// NaN or Inf entries in a are not detected; as with any floating-point
// pipeline they yield meaningless output rather than an error.
func Approximate(a mat.Matrix, rank int, src rand.Source) (*mat.Dense, error) {
	rows, cols := a.Dims()
	if rank < 1 || rank > rows || rank > cols {
		return nil, fmt.Errorf("%w: rank %d for %d×%d matrix", ErrInvalidRank, rank, rows, cols)
	}
	if src == nil {
		src = rand.NewSource(entropySeed())
	}

	omega := drawProjection(cols, rank, src)

	// Y = A·Ω sketches the dominant column space of A.
	var y mat.Dense
	y.Mul(a, omega)

	// Thin-SVD left factor of Y is an orthonormal basis for its range.
	var svd mat.SVD
	if !svd.Factorize(&y, mat.SVDThinU) {
		return nil, fmt.Errorf("%w: sketch is %d×%d", ErrNumericalDegeneracy, rows, rank)
	}
	var q mat.Dense
	svd.UTo(&q)

	// B = Qᵀ·A holds A's rows in the reduced basis.
	var b mat.Dense
	b.Mul(q.T(), a)

	out := mat.NewDense(rows, cols, nil)
	out.Mul(&q, &b)
	return out, nil
}

// drawProjection returns a cols×rank matrix of independent standard-normal
// entries. Columns are drawn in order, so with a fixed source the projection
// for a smaller rank is a prefix of the projection for a larger one; residual
// error is then exactly non-increasing in rank for a fixed seed.
func drawProjection(cols, rank int, src rand.Source) *mat.Dense {
	dist := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	omega := mat.NewDense(cols, rank, nil)
	for j := 0; j < rank; j++ {
		for i := 0; i < cols; i++ {
			omega.Set(i, j, dist.Rand())
		}
	}
	return omega
}

func entropySeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return uint64(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint64(b[:])
}
