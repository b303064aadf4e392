package lpc

// levinsonDurbin solves the order-th normal equations implied by
// autoCorr[0:order+1] for the LPC prediction coefficients and the
// corresponding PARCOR (reflection) coefficients, using the classic
// in-place recursion: each step derives parcor[i] from the current
// prediction error and the i-th order coefficient, then folds it into the
// lower-order coefficients with the standard front/back symmetric update.
//
// a is scratch space of length order+2, reused across calls. On return
// lpcCoef[0] == 1 and lpcCoef[1:order+1] hold the coefficients such that
// the predictor is sum_{j=1}^{order} -lpcCoef[j]*x[n-j]; parcorCoef[0] == 0
// and parcorCoef[1:order+1] hold the reflection coefficients — the
// negation of the recursion's own running coefficient a[i] at the step
// that fixes it — each satisfying |parcorCoef[i]| < 1 for a stable,
// non-degenerate input.
//
// A vanishing or negative prediction error at any step — the input is
// silence, or otherwise exactly reproducible by a lower order — ends the
// recursion early and leaves the remaining higher-order coefficients at
// zero rather than returning an error: this is a normal, expected
// terminal condition, not a failure.
func levinsonDurbin(autoCorr []float64, order int, a []float64, lpcCoef, parcorCoef []float64) error {
	if order <= 0 || len(autoCorr) < order+1 || len(a) < order+2 {
		return ErrInvalidArgument
	}

	for i := range a[:order+1] {
		a[i] = 0
	}
	for i := 0; i <= order; i++ {
		lpcCoef[i] = 0
		parcorCoef[i] = 0
	}
	lpcCoef[0] = 1

	predErr := autoCorr[0]
	if predErr <= 0 {
		return nil
	}

	a[0] = 1
	for i := 1; i <= order; i++ {
		acc := autoCorr[i]
		for j := 1; j < i; j++ {
			acc += a[j] * autoCorr[i-j]
		}
		k := -acc / predErr
		if k > 1 {
			k = 1
		} else if k < -1 {
			k = -1
		}

		a[i] = k
		for j := 1; j <= i/2; j++ {
			tmp := a[j] + k*a[i-j]
			a[i-j] += k * a[j]
			a[j] = tmp
		}

		parcorCoef[i] = -k
		predErr *= 1 - k*k
		if predErr <= 0 {
			break
		}
	}

	copy(lpcCoef[1:order+1], a[1:order+1])
	return nil
}
