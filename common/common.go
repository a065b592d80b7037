package common

import (
	"github.com/pkg/errors"
)

// MaxAllowedCount is the largest element count a codec accepts before it
// allocates. Counts in WKB headers and SDO interpretations are 32-bit, so
// anything larger is corrupt input.
const MaxAllowedCount = uint64(2147483647)

// ValidateCount checks that cnt elements of elemSize bytes can be read from
// the remaining bytes of an input.
func ValidateCount(cnt uint64, elemSize, remaining int) error {
	if cnt > MaxAllowedCount {
		return errors.Wrapf(ErrMalformedInput, "invalid count: %d (exceeds maximum allowed: %d)", cnt, MaxAllowedCount)
	}
	if elemSize > 0 && cnt > uint64(remaining/elemSize) {
		return errors.Wrapf(ErrMalformedInput, "invalid count: %d elements of %d bytes exceed the %d remaining bytes", cnt, elemSize, remaining)
	}
	return nil
}
