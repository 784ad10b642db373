package huffcodec

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat 는 모든 *FormatError 와 errors.Is 로 매칭돼요.
	ErrFormat = errors.New("huffcodec: malformed container")
	// ErrCapacity 는 모든 *CapacityError 와 매칭돼요.
	ErrCapacity = errors.New("huffcodec: capacity exceeded")

	errDuplicateSymbol = errors.New("duplicate byte value in frequency sequence")
	errZeroCount       = errors.New("zero count in frequency sequence")
	errNonZeroPadding  = errors.New("padding bits are not zero")
)

// FormatError reports a container that cannot be decoded.
// Offset is the byte position in the container where the problem was found.
type FormatError struct {
	Offset int
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("huffcodec: malformed container at offset %d: %s: %v", e.Offset, e.Reason, e.Err)
	}
	return fmt.Sprintf("huffcodec: malformed container at offset %d: %s", e.Offset, e.Reason)
}

func (e *FormatError) Is(target error) bool { return target == ErrFormat }
func (e *FormatError) Unwrap() error        { return e.Err }

func formatErr(off int, reason string, err error) *FormatError {
	return &FormatError{Offset: off, Reason: reason, Err: err}
}

// CapacityError reports an input that the container fields cannot represent.
type CapacityError struct {
	Field string
	Value uint64
	Limit uint64
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("huffcodec: %s %d exceeds limit %d", e.Field, e.Value, e.Limit)
}

func (e *CapacityError) Is(target error) bool { return target == ErrCapacity }
