package order

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"time"

	"b2better/internal/pkg/errs"
)

var numberPattern = regexp.MustCompile(`^ORD-\d{9}$`)

// Number is the human-readable order identifier used by customers and in URLs.
//
// It is "ORD-" followed by the last six digits of the creation time in epoch
// milliseconds and a three-digit random suffix. Two orders created in the same
// millisecond window can collide; the storage layer enforces uniqueness.
type Number string

// NewNumber builds the number for an order created at createdAt with the given suffix (0-999).
func NewNumber(createdAt time.Time, suffix int) (Number, error) {
	if suffix < 0 || suffix > 999 {
		return "", errs.NewValueIsOutOfRangeError("suffix", suffix, 0, 999)
	}
	millis := createdAt.UnixMilli() % 1_000_000
	if millis < 0 {
		millis = -millis
	}
	return Number(fmt.Sprintf("ORD-%06d%03d", millis, suffix)), nil
}

// GenerateNumber returns a number for createdAt with a random suffix.
func GenerateNumber(createdAt time.Time) Number {
	number, _ := NewNumber(createdAt, rand.IntN(1000)) //nolint:gosec // not a security token
	return number
}

// ParseNumber validates the textual form of a number.
func ParseNumber(s string) (Number, error) {
	if !numberPattern.MatchString(s) {
		return "", errs.NewValueIsInvalidErrorWithCause("orderNumber", fmt.Errorf("%q is not a valid order number", s))
	}
	return Number(s), nil
}

func (n Number) String() string {
	return string(n)
}
