package lpc

import "math"

// choleskySolve solves mat*x = rhs for a symmetric positive-definite mat of
// size order x order, writing the result into out. mat is overwritten
// in-place with its lower-triangular Cholesky factor L (mat[i][i] holds
// L[i][i], not its reciprocal); diagInv is order-length scratch that caches
// 1/L[i][i] as each pivot is factored, avoiding a repeated division in the
// two substitution passes that follow.
//
// A non-positive pivot means mat is not positive-definite to working
// precision — typically a near-silent or degenerate input block — and is
// reported as errSingularMatrix so the caller can fall back rather than
// propagate a divide-by-zero.
func choleskySolve(mat [][]float64, rhs []float64, order int, diagInv []float64, out []float64) error {
	for i := 0; i < order; i++ {
		sum := mat[i][i]
		for k := 0; k < i; k++ {
			sum -= mat[i][k] * mat[i][k]
		}
		if sum <= 0 {
			return errSingularMatrix
		}
		diagInv[i] = 1 / math.Sqrt(sum)
		mat[i][i] = sum * diagInv[i]

		for j := i + 1; j < order; j++ {
			sum := mat[j][i]
			for k := 0; k < i; k++ {
				sum -= mat[j][k] * mat[i][k]
			}
			mat[j][i] = sum * diagInv[i]
		}
	}

	// Forward substitution: L*y = rhs.
	for i := 0; i < order; i++ {
		sum := rhs[i]
		for k := 0; k < i; k++ {
			sum -= mat[i][k] * out[k]
		}
		out[i] = sum * diagInv[i]
	}

	// Back substitution: L^T*x = y.
	for i := order - 1; i >= 0; i-- {
		sum := out[i]
		for k := i + 1; k < order; k++ {
			sum -= mat[k][i] * out[k]
		}
		out[i] = sum * diagInv[i]
	}
	return nil
}
