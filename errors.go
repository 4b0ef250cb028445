package qoi

import "github.com/pkg/errors"

// Terminal error kinds for malformed streams and invalid input geometry.
// Sink/source I/O failures are not modeled here: they propagate verbatim
// from the reader/writer the caller supplied.
var (
	// ErrBadMagic means the stream does not start with "qoif".
	ErrBadMagic = errors.New("qoi: bad magic bytes")
	// ErrZeroDimension means the decoded width or height is zero.
	ErrZeroDimension = errors.New("qoi: width or height is zero")
	// ErrInvalidGeometry means the encoder's input buffer length is not
	// consistent with the requested width and channel count, or the
	// resulting width/height would not fit in 16 bits.
	ErrInvalidGeometry = errors.New("qoi: invalid image geometry")
)
