package lpc

import "golang.org/x/sys/cpu"

// blockedAutocorrThreshold is the sample count above which the
// cache-blocked formulation is used instead of the naive double loop. Below
// it, the blocking bookkeeping costs more than it saves.
const blockedAutocorrThreshold = 256

// preferBlockedAutocorr is a capability-informed hint, not a correctness
// switch: both formulations produce the same result to rounding (§4.E), but
// the blocked one only pays for itself on cores whose cache/prefetch
// behavior rewards reusing a loaded operand across two multiplies, which is
// what the wider vector units implied by these flags also reward. This
// mirrors the teacher's capability probe (e.g. celt's AVX2/AVX detection
// gating which butterfly kernel runs) without requiring actual SIMD
// assembly for a shape this spec has no reference kernel for.
var preferBlockedAutocorr = cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD

// autocorrelate fills out[0:lags] with the biased sample autocorrelation of
// data[0:numSamples], r[0] = sum(x^2), r[k] = sum_i x[i]*x[i+k]. numSamples
// must be >= lags.
func autocorrelate(data []float64, numSamples, lags int, out []float64) {
	if preferBlockedAutocorr && numSamples >= blockedAutocorrThreshold {
		autocorrelateBlocked(data, numSamples, lags, out)
		return
	}
	autocorrelateNaive(data, numSamples, lags, out)
}

func autocorrelateNaive(data []float64, numSamples, lags int, out []float64) {
	var r0 float64
	for i := 0; i < numSamples; i++ {
		r0 += data[i] * data[i]
	}
	out[0] = r0

	for lag := 1; lag < lags; lag++ {
		var sum float64
		for i := 0; i < numSamples-lag; i++ {
			sum += data[i] * data[i+lag]
		}
		out[lag] = sum
	}
}

// autocorrelateBlocked groups consecutive outer indices into blocks of
// stride 2*lag so that the multiplicand x[l+lag+i] is reused against the
// sum (x[l+i] + x[l+2*lag+i]), halving the number of multiplies versus the
// naive loop for the bulk of the range; the remainder is finished off with
// the naive formula.
func autocorrelateBlocked(data []float64, numSamples, lags int, out []float64) {
	var r0 float64
	for i := 0; i < numSamples; i++ {
		r0 += data[i] * data[i]
	}
	out[0] = r0

	for lag := 1; lag < lags; lag++ {
		lag2 := lag << 1
		var blockCount int
		if 3*lag < numSamples {
			blockCount = 1 + (numSamples-3*lag)/lag2
		}
		blockedLen := blockCount * lag2

		var sum float64
		for i := 0; i < lag; i++ {
			for l := 0; l < blockedLen; l += lag2 {
				sum += data[l+lag+i] * (data[l+i] + data[l+lag2+i])
			}
		}
		for i := 0; i < numSamples-blockedLen-lag; i++ {
			sum += data[blockedLen+lag+i] * data[blockedLen+i]
		}
		out[lag] = sum
	}
}
