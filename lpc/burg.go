package lpc

// burg estimates LPC and PARCOR coefficients using the covariance-matrix
// form of Burg's method: build cov[i][j] = sum_n x[n-i]*x[n-j] once, by
// reusing the autocorrelation routine on successively shorter prefixes of
// the block, then run the same order-recursive lattice update
// Levinson-Durbin uses on the running coefficient vector a, deriving each
// reflection coefficient from the cached covariance terms instead of
// re-walking the raw samples at every order.
//
// cov is (order+1)x(order+1) scratch (typically a Calculator's rMat), a is
// scratch of length order+2.
func burg(data []float64, numSamples, order int, cov [][]float64, a []float64, lpcCoef, parcorCoef []float64) error {
	if order <= 0 || numSamples <= 0 || len(cov) < order+1 {
		return ErrInvalidArgument
	}

	for i := 0; i <= order; i++ {
		lpcCoef[i] = 0
		parcorCoef[i] = 0
	}
	lpcCoef[0] = 1

	if numSamples <= order {
		return nil
	}

	for i := 0; i <= order; i++ {
		autocorrelate(data, numSamples-i, order+1-i, cov[i][i:order+1])
		for j := i + 1; j <= order; j++ {
			cov[j][i] = cov[i][j]
		}
	}

	for i := 0; i <= order; i++ {
		a[i] = 0
	}
	a[0] = 1

	for k := 0; k < order; k++ {
		var fkpbk, crossSum, ck float64
		for i := 0; i <= k; i++ {
			fkpbk += a[i] * a[i] * (cov[i][i] + cov[k+1-i][k+1-i])
			for j := i + 1; j <= k; j++ {
				crossSum += a[i] * a[j] * (cov[i][j] + cov[k+1-i][k+1-j])
			}
		}
		fkpbk += 2 * crossSum
		for i := 0; i <= k; i++ {
			for j := 0; j <= k; j++ {
				ck += a[i] * a[j] * cov[i][k+1-j]
			}
		}

		var mu float64
		if fkpbk > 0 {
			mu = -2 * ck / fkpbk
			if mu > 1 {
				mu = 1
			} else if mu < -1 {
				mu = -1
			}
		}

		for i := 0; i <= (k+1)/2; i++ {
			tmp1, tmp2 := a[i], a[k+1-i]
			a[i] = tmp1 + mu*tmp2
			a[k+1-i] = mu*tmp1 + tmp2
		}
		parcorCoef[k+1] = mu
	}

	copy(lpcCoef[1:order+1], a[1:order+1])
	return nil
}

func (c *Calculator) computeBurg(data []float64, numSamples, order int, window WindowType) error {
	if err := applyWindow(window, data[:numSamples], c.windowBuf[:numSamples]); err != nil {
		return err
	}
	cov := c.rMat[:order+1]
	for i := range cov {
		cov[i] = c.rMat[i][:order+1]
	}
	return burg(c.windowBuf, numSamples, order, cov, c.a, c.lpcCoef, c.parcorCoef)
}
