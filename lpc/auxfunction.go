package lpc

import "math"

// auxWeightEpsilon floors the per-sample weight update so a near-exact
// residual cannot blow the next iteration's weighted normal equations up
// toward a singular matrix.
const auxWeightEpsilon = 1e-9

// auxFunctionL1 estimates direct prediction coefficients coef[0:order]
// (x[n] ~ sum_i coef[i]*x[n-1-i]) by iteratively reweighted least squares:
// each round solves the weighted normal equations for the current
// weights, then reweights every sample inversely to the magnitude of its
// own prediction residual. Iterated to convergence this approximates
// minimizing the sum of absolute residuals (an L1 fit) rather than the
// sum of squared residuals Levinson-Durbin and Burg minimize, which
// tends to produce sharper coefficients for signals with occasional large
// outliers.
//
// coef must hold an initial guess on entry — a Levinson-Durbin solution on
// the same block is the intended warm start — which seeds the first
// round's weights before any system is solved. mat is order x order
// scratch (typically a Calculator's rMat submatrix), rhs and diagInv are
// order-length scratch, weight is numSamples-length scratch. A weighted
// system that turns singular, at any round including the first, zeros
// every coefficient and returns success: a singular normal-equations
// matrix is a degenerate-input condition, not a numerical failure, the
// same way Levinson-Durbin's own guard treats it.
func auxFunctionL1(data []float64, numSamples, order, maxIter int, mat [][]float64, rhs, diagInv, weight, coef []float64) error {
	if order <= 0 || numSamples <= order || maxIter <= 0 {
		return ErrInvalidArgument
	}

	updateAuxWeights(data, numSamples, order, coef, weight)

	for iter := 0; iter < maxIter; iter++ {
		for i := 0; i < order; i++ {
			for j := 0; j <= i; j++ {
				var sum float64
				for n := order; n < numSamples; n++ {
					sum += weight[n] * data[n-1-i] * data[n-1-j]
				}
				mat[i][j] = sum
				mat[j][i] = sum
			}
			var r float64
			for n := order; n < numSamples; n++ {
				r += weight[n] * data[n-1-i] * data[n]
			}
			rhs[i] = r
		}

		if err := choleskySolve(mat, rhs, order, diagInv, coef); err != nil {
			for i := 0; i < order; i++ {
				coef[i] = 0
			}
			return nil
		}

		updateAuxWeights(data, numSamples, order, coef, weight)
	}
	return nil
}

// updateAuxWeights recomputes each sample's L1 reweighting from its
// current forward-prediction residual under coef. It is used both to
// seed the first round's weights from a warm-start coefficient guess and
// to reweight after every subsequent solve.
func updateAuxWeights(data []float64, numSamples, order int, coef, weight []float64) {
	for n := order; n < numSamples; n++ {
		var pred float64
		for i := 0; i < order; i++ {
			pred += coef[i] * data[n-1-i]
		}
		resid := data[n] - pred
		weight[n] = 1 / (math.Abs(resid) + auxWeightEpsilon)
	}
}

func (c *Calculator) computeAuxFunctionL1(data []float64, numSamples, order, maxIter int, window WindowType) error {
	if numSamples <= order {
		if err := applyWindow(window, data[:numSamples], c.windowBuf[:numSamples]); err != nil {
			return err
		}
		for i := 0; i <= order; i++ {
			c.lpcCoef[i] = 0
			c.parcorCoef[i] = 0
		}
		c.lpcCoef[0] = 1
		return nil
	}

	// Seed from the Levinson-Durbin solution on the same windowed block;
	// this also leaves the windowed signal in c.windowBuf for the
	// iterative solve below.
	if err := c.computeLevinson(data, numSamples, order, window); err != nil {
		return err
	}

	mat := c.auxMat[:order]
	for i := 0; i < order; i++ {
		mat[i] = c.rMat[i][:order]
	}
	for i := 0; i < order; i++ {
		c.auxCoef[i] = -c.lpcCoef[i+1]
	}
	if err := auxFunctionL1(c.windowBuf, numSamples, order, maxIter, mat, c.auxRHS[:order], c.auxDiagInv[:order], c.auxWeight, c.auxCoef[:order]); err != nil {
		return err
	}

	c.lpcCoef[0] = 1
	c.parcorCoef[0] = 0
	for i := 1; i <= order; i++ {
		c.lpcCoef[i] = -c.auxCoef[i-1]
		c.parcorCoef[i] = 0
	}
	return nil
}
