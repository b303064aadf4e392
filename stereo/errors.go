package stereo

import "errors"

var (
	// ErrNilChannel indicates a missing L, R, M, or S channel buffer.
	ErrNilChannel = errors.New("stereo: nil channel buffer")

	// ErrMismatchedLengths indicates the two channel buffers differ in length.
	ErrMismatchedLengths = errors.New("stereo: mismatched channel lengths")
)
