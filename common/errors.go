package common

import (
	"github.com/pkg/errors"
)

// Error taxonomy shared by the geometry model and all codecs. Every error
// returned by this module wraps exactly one of these, so callers can decide
// with errors.Is whether to skip a feature or abort a job.
var (
	// ErrUnsupportedShape marks a recognized but unimplemented geometry kind:
	// measures, curves, unknown type codes.
	ErrUnsupportedShape = errors.New("unsupported geometry shape")

	// ErrMalformedInput marks grammar violations, truncated buffers and
	// out-of-range offsets.
	ErrMalformedInput = errors.New("malformed geometry input")

	// ErrInvariantViolation marks geometry values that break a model rule,
	// such as a solid built from a 2D shell.
	ErrInvariantViolation = errors.New("geometry invariant violated")
)

// Unsupported wraps ErrUnsupportedShape with a formatted message.
func Unsupported(format string, args ...any) error {
	return errors.Wrapf(ErrUnsupportedShape, format, args...)
}

// Malformed wraps ErrMalformedInput with a formatted message.
func Malformed(format string, args ...any) error {
	return errors.Wrapf(ErrMalformedInput, format, args...)
}

// Invariant wraps ErrInvariantViolation with a formatted message.
func Invariant(format string, args ...any) error {
	return errors.Wrapf(ErrInvariantViolation, format, args...)
}
