package ledger

import (
	"errors"
	"fmt"
)

var (
	ErrIndexOutOfRange = errors.New("item index out of range")
	ErrInvalidNumeric  = errors.New("invalid numeric value")
)

// IndexError reports an item index that does not exist.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d, %d items", ErrIndexOutOfRange.Error(), e.Index, e.Len)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// InvalidNumericError reports input that was coerced to zero.
type InvalidNumericError struct {
	Field string
	Input string
}

func (e *InvalidNumericError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s=%q", ErrInvalidNumeric.Error(), e.Field, e.Input)
	}
	return fmt.Sprintf("%s: %q", ErrInvalidNumeric.Error(), e.Input)
}

func (e *InvalidNumericError) Unwrap() error {
	return ErrInvalidNumeric
}
