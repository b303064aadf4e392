package lpc

import (
	"math"

	"github.com/ishine/LINNE/bitutil"
)

// betaConstLaplace is log2(sqrt(2*e*e)), the entropy constant for a
// Laplace-distributed residual with unit variance; EstimateCodeLength
// assumes a Laplacian residual, matching the reference estimator this is
// ported from.
const betaConstLaplace = 1.9426950408889634

// subnormalFloat32 is the smallest positive normal float32 (FLT_MIN); a
// scaled sample power at or below this magnitude is treated as silence.
const subnormalFloat32 = 1.1754943508222875e-38

// EstimateCodeLength runs the Levinson-Durbin estimator at the given
// order and window, then returns the estimated number of bits needed to
// code one sample of data at bitsPerSample of integer amplitude,
// assuming an entropy coder that tracks the residual's true variance.
//
// The estimate comes from the zero-lag autocorrelation (the block's
// signal power) scaled down by the order's cumulative PARCOR prediction
// gain, under a Laplacian residual assumption. A block whose scaled
// power underflows to within float32's smallest normal value is treated
// as silence and costs 0 bits/sample; an estimate that comes out
// non-positive (a very low-power block where even that is an
// overestimate) is clamped to 1 bit/sample, since no real entropy coder
// codes at zero bits.
func (c *Calculator) EstimateCodeLength(data []float64, order, bitsPerSample int, window WindowType) (float64, error) {
	if err := c.validate(len(data), order); err != nil {
		return 0, err
	}
	if bitsPerSample <= 0 {
		return 0, ErrInvalidArgument
	}
	if err := c.computeLevinson(data, len(data), order, window); err != nil {
		return 0, err
	}

	log2MeanResPower := c.autoCorr[0] * math.Pow(2, 2*float64(bitsPerSample-1))
	if math.Abs(log2MeanResPower) <= subnormalFloat32 {
		return 0, nil
	}
	log2MeanResPower = bitutil.Log2(log2MeanResPower) - bitutil.Log2(float64(len(data)))

	var log2VarRatio float64
	for ord := 1; ord <= order; ord++ {
		k := c.parcorCoef[ord]
		log2VarRatio += bitutil.Log2(1.0 - k*k)
	}

	bits := betaConstLaplace + 0.5*(log2MeanResPower+log2VarRatio)
	if bits <= 0 {
		return 1.0, nil
	}
	return bits, nil
}

// CalculateMDL runs the Levinson-Durbin estimator at the given order and
// window, then scores it with a classic two-part minimum description
// length: numSamples * sum_k ln(1 - parcor_k^2), the PARCOR prediction
// gain term of EstimateCodeLength in natural-log units without the signal
// power or the Laplacian entropy constant (only relative order-to-order
// comparisons matter here), plus a per-coefficient model cost of
// ln(numSamples).
// Comparing this value across candidate orders lets a caller pick the
// smallest order whose extra prediction gain still earns back the cost
// of transmitting its extra coefficients.
func (c *Calculator) CalculateMDL(data []float64, order int, window WindowType) (float64, error) {
	if err := c.validate(len(data), order); err != nil {
		return 0, err
	}
	if err := c.computeLevinson(data, len(data), order, window); err != nil {
		return 0, err
	}

	var sum float64
	for k := 1; k <= order; k++ {
		parcor := c.parcorCoef[k]
		sum += math.Log(1.0 - parcor*parcor)
	}
	sum *= float64(len(data))
	sum += float64(order) * math.Log(float64(len(data)))
	return sum, nil
}
