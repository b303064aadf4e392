package preemphasis

import "errors"

// ErrEmptyBuffer indicates a zero-length or nil sample buffer where at
// least one sample is required.
var ErrEmptyBuffer = errors.New("preemphasis: empty sample buffer")
