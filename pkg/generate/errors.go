package generate

import (
	"errors"
	"fmt"
)

var ErrInvalidLength = errors.New("invalid password length")

type Reason int

const (
	ReasonNotInteger Reason = iota
	ReasonTooShort
	ReasonTooLong
)

// InvalidLengthError is returned when a requested length is missing, not an
// integer or outside the accepted range.
type InvalidLengthError struct {
	Length int
	Max    int
	Reason Reason
}

func (e *InvalidLengthError) Error() string {
	switch e.Reason {
	case ReasonTooLong:
		return fmt.Sprintf("Length must be <= %d", e.Max)
	}
	return fmt.Sprintf("Length must be an integer >= %d", MinLength)
}

func (e *InvalidLengthError) Is(target error) bool {
	return target == ErrInvalidLength
}
