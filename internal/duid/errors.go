package duid

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedHex is returned for input that is not an even run of hex digits.
	ErrMalformedHex = errors.New("malformed hex")
	// ErrTooShort is returned when fewer than two bytes are available for the type field.
	ErrTooShort = errors.New("duid too short")
	// ErrLength is matched by every per-type length violation.
	ErrLength = errors.New("invalid duid length")
)

// TooShortForTypeError reports a DUID shorter than its type's fixed fields.
type TooShortForTypeError struct {
	Type    Type
	Minimum int
	Actual  int
}

func (e *TooShortForTypeError) Error() string {
	return fmt.Sprintf("%s too short for fixed fields: need at least %d bytes, got %d", e.Type, e.Minimum, e.Actual)
}

func (e *TooShortForTypeError) Unwrap() error { return ErrLength }

// ExactLengthMismatchError reports a DUID-UUID that is not exactly 18 bytes.
type ExactLengthMismatchError struct {
	Type     Type
	Expected int
	Actual   int
}

func (e *ExactLengthMismatchError) Error() string {
	return fmt.Sprintf("%s must be exactly %d bytes long, found %d", e.Type, e.Expected, e.Actual)
}

func (e *ExactLengthMismatchError) Unwrap() error { return ErrLength }

// UnderflowError is returned instead of computing a negative trailing length.
type UnderflowError struct {
	Type   Type
	Header int
	Total  int
}

func (e *UnderflowError) Error() string {
	return fmt.Sprintf("%s header length %d exceeds total length %d", e.Type, e.Header, e.Total)
}

func (e *UnderflowError) Unwrap() error { return ErrLength }
