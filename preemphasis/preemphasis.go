package preemphasis

import "github.com/ishine/LINNE/bitutil"

// CoefShift is the fixed-point shift (Q format) the filter coefficient is
// represented in. The reference implementation leaves this as a build-time
// constant (LINNE_PREEMPHASIS_COEF_SHIFT) without fixing a value in the
// portion of the source retained for this port; Q15 is chosen here. The
// coefficient is clamped to [-2^(CoefShift-1), 2^(CoefShift-1)-1], so an
// estimated rho1 of 0.5 or more saturates at coefMax.
const CoefShift = 15

const (
	coefMax = int32(1<<(CoefShift-1)) - 1
	coefMin = -int32(1 << (CoefShift - 1))
)

// Filter holds the preemphasis/deemphasis state: the last observed
// pre-filter input sample (equivalently, the last output sample of the
// inverse filter) and the current fixed-point coefficient. The zero value
// is a valid, newly-initialized filter.
type Filter struct {
	prev int32
	coef int32
}

// New returns a zero-initialized preemphasis filter.
func New() *Filter {
	return &Filter{}
}

// Coefficient returns the filter's current fixed-point coefficient.
func (f *Filter) Coefficient() int32 {
	return f.coef
}

// SetCoefficient installs coef directly, clamping it to the representable
// range. It is used when restoring a filter's coefficient read back from a
// format's header rather than re-estimated from a signal.
func (f *Filter) SetCoefficient(coef int32) {
	f.coef = clamp(coef)
}

// EstimateCoefficient computes the preemphasis coefficient from the raw
// zero-lag and one-lag autocorrelation of buf, computed over buf[0:N-1].
// A near-silent signal, or one whose one-lag correlation is negative (the
// signal is anti-correlated sample-to-sample), yields coefficient 0 since
// preemphasis would not help in either case.
func (f *Filter) EstimateCoefficient(buf []int32) error {
	if len(buf) == 0 {
		return ErrEmptyBuffer
	}
	if len(buf) == 1 {
		f.coef = 0
		return nil
	}

	var corr0, corr1 float64
	curr := float64(buf[0])
	for i := 0; i < len(buf)-1; i++ {
		succ := float64(buf[i+1])
		corr0 += curr * curr
		corr1 += curr * succ
		curr = succ
	}

	if corr0 < 1e-6 {
		f.coef = 0
		return nil
	}
	rho1 := corr1 / corr0
	if rho1 < 0.0 {
		f.coef = 0
		return nil
	}

	f.coef = clamp(int32(bitutil.RoundHalfAwayFromZero(rho1 * float64(int64(1) << CoefShift))))
	return nil
}

// Forward applies the analysis (preemphasis) filter to buf in place,
// carrying state across calls.
func (f *Filter) Forward(buf []int32) error {
	if len(buf) == 0 {
		return ErrEmptyBuffer
	}
	prev := f.prev
	coef := int64(f.coef)
	for i, s := range buf {
		buf[i] = s - int32((int64(prev)*coef)>>CoefShift)
		prev = s
	}
	f.prev = prev
	return nil
}

// Inverse applies the synthesis (deemphasis) filter to buf in place,
// carrying state across calls. It exactly undoes Forward when the
// coefficient and carried state are unchanged between the two calls.
func (f *Filter) Inverse(buf []int32) error {
	if len(buf) == 0 {
		return ErrEmptyBuffer
	}
	coef := int64(f.coef)
	buf[0] += int32((int64(f.prev) * coef) >> CoefShift)
	for i := 1; i < len(buf); i++ {
		buf[i] += int32((int64(buf[i-1]) * coef) >> CoefShift)
	}
	f.prev = buf[len(buf)-1]
	return nil
}

func clamp(coef int32) int32 {
	if coef > coefMax {
		return coefMax
	}
	if coef < coefMin {
		return coefMin
	}
	return coef
}
