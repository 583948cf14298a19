package voikko

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	// ErrVariantNotFound is reported when no dictionary matches the
	// requested language, script and variant.
	ErrVariantNotFound = errors.New("specified dictionary variant was not found")
	// ErrInvalidInput is wrapped by every *InputError.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInternal marks inconsistent lexicon data and over-long words.
	ErrInternal = errors.New("internal error")
	// ErrClosed is returned by an engine after Close.
	ErrClosed = errors.New("engine is closed")
)

// LoadError describes a dictionary that could not be located or loaded.
type LoadError struct {
	Language string
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load dictionary %q: %v", e.Language, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// InputError is returned before any processing when an argument is not
// valid text.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string { return e.Reason }

func (e *InputError) Unwrap() error { return ErrInvalidInput }

// validateInput rejects invalid UTF-8 and embedded NUL characters.
func validateInput(s string) error {
	if !utf8.ValidString(s) {
		return &InputError{Reason: "input must be UTF-8 encoded"}
	}
	if strings.IndexByte(s, 0) >= 0 {
		return &InputError{Reason: "input must not contain NUL characters"}
	}
	return nil
}

func errTooLong(n int) error {
	return fmt.Errorf("%w: word of %d characters exceeds the limit of %d", ErrInternal, n, MaxWordChars)
}
