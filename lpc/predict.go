package lpc

// Predict turns buf into its prediction residual in place, using the
// quantized coefficients qcoef[0:order] and fixed-point shift produced by
// QuantizeCoefficients. Sample i is predicted from taps 1..min(i, order)
// within buf itself — there is no separate history buffer, so the first
// order samples of a block ramp up from zero taps to a full predictor
// rather than being coded verbatim as warmup samples. The coefficients use
// the estimators' sign convention (lpcCoef[j] is the negated predictor
// weight), so the rounded tap sum is added to each sample. This must be
// called with buf holding the original samples and, if Synthesize will
// later reverse it, with the same order/shift/coefficients passed back.
func Predict(buf []int32, qcoef []int32, order, shift int) error {
	if order <= 0 || shift <= 0 || len(qcoef) < order {
		return ErrInvalidArgument
	}

	bias := int64(1) << uint(shift-1)
	for i := len(buf) - 1; i >= 0; i-- {
		taps := order
		if i < taps {
			taps = i
		}
		var acc int64
		for j := 1; j <= taps; j++ {
			acc += int64(qcoef[j-1]) * int64(buf[i-j])
		}
		pred := int32((acc + bias) >> uint(shift))
		buf[i] += pred
	}
	return nil
}

// Synthesize is the exact inverse of Predict: given a residual block
// produced by it, it reconstructs the original samples in place using the
// same coefficients, order, and shift.
//
// Predict walks backward (last tap first) precisely so it never
// overwrites a not-yet-consumed earlier sample with its own residual;
// Synthesize walks forward for the mirror-image reason, since each
// reconstructed sample becomes a tap input for the ones that follow it.
func Synthesize(buf []int32, qcoef []int32, order, shift int) error {
	if order <= 0 || shift <= 0 || len(qcoef) < order {
		return ErrInvalidArgument
	}

	bias := int64(1) << uint(shift-1)
	for i := 0; i < len(buf); i++ {
		taps := order
		if i < taps {
			taps = i
		}
		var acc int64
		for j := 1; j <= taps; j++ {
			acc += int64(qcoef[j-1]) * int64(buf[i-j])
		}
		pred := int32((acc + bias) >> uint(shift))
		buf[i] -= pred
	}
	return nil
}
