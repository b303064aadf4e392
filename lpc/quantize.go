package lpc

import (
	"math"

	"github.com/ishine/LINNE/bitutil"
)

// maxQuantizeShift caps the fixed-point shift QuantizeCoefficients will
// pick, keeping the accumulated ideal value in Predict/Synthesize's 64-bit
// intermediate comfortably clear of overflow for any realistic sample
// magnitude and order.
const maxQuantizeShift = 30

// QuantizeCoefficients converts the double-precision coefficients
// coef[0:order] (as produced by the Levinson-Durbin, Burg, or
// auxiliary-function L1 estimator) into signed coefBits-bit fixed-point
// integers, writing qcoef[0:order] and returning the common shift applied
// to every one of them.
//
// The shift is chosen once, from the largest-magnitude coefficient, so
// that every quantized value fits in coefBits bits; quantization then
// walks the coefficients from the highest tap to the lowest (tail to
// head), folding each step's rounding error into the next one's ideal
// value before it is rounded. The running error is spent on the
// lower-significance tail taps first and only reaches the head
// coefficient — coef[0], the dominant term of the predictor — as the
// very last step, which keeps the head coefficient from carrying the
// brunt of any one tap's rounding error on its own.
func QuantizeCoefficients(coef []float64, order, coefBits int, qcoef []int32) (int, error) {
	if order <= 0 || coefBits < 2 || len(coef) < order || len(qcoef) < order {
		return 0, ErrInvalidArgument
	}

	maxVal := int32(1)<<uint(coefBits-1) - 1
	minVal := -maxVal - 1

	var maxAbs float64
	for i := 0; i < order; i++ {
		if a := math.Abs(coef[i]); a > maxAbs {
			maxAbs = a
		}
	}

	// maxAbs = m * 2^ndigit with m in [0.5, 1), so maxAbs*2^shift stays
	// below 2^(coefBits-1).
	_, ndigit := math.Frexp(maxAbs)
	shift := coefBits - 1 - ndigit
	if shift < 0 {
		shift = 0
	}
	if shift > maxQuantizeShift {
		shift = maxQuantizeShift
	}

	scale := float64(int64(1) << uint(shift))
	var carry float64
	for i := order - 1; i >= 0; i-- {
		ideal := coef[i]*scale + carry
		q := bitutil.RoundHalfAwayFromZero(ideal)
		carry = ideal - q

		qi := int32(q)
		if qi > maxVal {
			qi = maxVal
		} else if qi < minVal {
			qi = minVal
		}
		qcoef[i] = qi
	}
	return shift, nil
}
