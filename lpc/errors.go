package lpc

import "errors"

var (
	// ErrInvalidArgument indicates a nil buffer, a zero length where a
	// positive one is required, or shift == 0 passed to Predict/Synthesize.
	ErrInvalidArgument = errors.New("lpc: invalid argument")

	// ErrExceedMaxOrder indicates a requested order beyond the Calculator's
	// configured max_order.
	ErrExceedMaxOrder = errors.New("lpc: order exceeds calculator maximum")

	// ErrExceedMaxNumSamples indicates a block longer than the Calculator's
	// configured max_num_samples.
	ErrExceedMaxNumSamples = errors.New("lpc: sample count exceeds calculator maximum")

	// ErrFailedToCalculate indicates a numerical failure that escaped every
	// estimator's internal degrade-to-silence fallback. This should be rare
	// and generally indicates a bug or a pathological input no fallback
	// anticipated.
	ErrFailedToCalculate = errors.New("lpc: failed to calculate coefficients")
)

// errSingularMatrix is internal: the Cholesky solver and the estimators
// built on it handle this locally by reporting all-zero coefficients with
// a success status (§7 "local recovery is the rule"). It never crosses
// the package boundary.
var errSingularMatrix = errors.New("lpc: singular matrix")
