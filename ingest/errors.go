package ingest

import (
	"errors"
	"fmt"
)

var (
	ErrSourceNotFound  = errors.New("source not found")
	ErrSourceRead      = errors.New("unable to read source")
	ErrInvalidEncoding = errors.New("source is not a text in supported encoding")
)

// InputError is the only error ingestion produces. It is raised when
// manuscript text cannot be obtained from the source, once there is text
// ingestion always succeeds.
type InputError struct {
	Source string
	Err    error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("unable to ingest %q: %v", e.Source, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

func inputError(source string, kind, err error) *InputError {
	if err == nil {
		return &InputError{Source: source, Err: kind}
	}
	return &InputError{Source: source, Err: fmt.Errorf("%w: %w", kind, err)}
}
