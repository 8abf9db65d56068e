package lang

import (
	"errors"
	"fmt"
)

// ErrUnknownLanguage is matched by every *UnknownLanguageError.
var ErrUnknownLanguage = errors.New("unknown language")

// UnknownLanguageError is returned by Parse when no language has the given
// name or alias. Input is the string exactly as passed to Parse.
type UnknownLanguageError struct {
	Input string
}

var _ error = &UnknownLanguageError{}

func (e *UnknownLanguageError) Error() string {
	return fmt.Sprintf("unknown language: %q", e.Input)
}

func (e *UnknownLanguageError) Is(target error) bool {
	return target == ErrUnknownLanguage
}
