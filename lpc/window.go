package lpc

import "math"

// WindowType selects the taper applied to a sample block before
// autocorrelation is computed.
type WindowType int

const (
	// WindowRectangular applies no taper (a straight copy).
	WindowRectangular WindowType = iota
	// WindowSine applies a half-period sine taper.
	WindowSine
	// WindowWelch applies a parabolic (Welch) taper.
	WindowWelch
)

// applyWindow writes the windowed form of in into out, which must be at
// least as long as in. It fails with ErrInvalidArgument for an unknown
// window kind.
func applyWindow(kind WindowType, in []float64, out []float64) error {
	n := len(in)
	switch kind {
	case WindowRectangular:
		copy(out[:n], in)
	case WindowSine:
		if n <= 1 {
			copy(out[:n], in)
			return nil
		}
		denom := math.Pi / float64(n-1)
		for i := 0; i < n; i++ {
			out[i] = in[i] * math.Sin(denom*float64(i))
		}
	case WindowWelch:
		if n <= 1 {
			copy(out[:n], in)
			return nil
		}
		divisor := 4.0 / float64(n-1) / float64(n-1)
		for i := 0; i < n/2; i++ {
			weight := divisor * float64(i) * float64(n-1-i)
			out[i] = in[i] * weight
			out[n-i-1] = in[n-i-1] * weight
		}
		if n%2 == 1 {
			mid := n / 2
			weight := divisor * float64(mid) * float64(n-1-mid)
			out[mid] = in[mid] * weight
		}
	default:
		return ErrInvalidArgument
	}
	return nil
}
