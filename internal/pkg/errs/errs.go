package errs

import (
	cr "github.com/cockroachdb/errors"
)

// Thin wrappers over cockroachdb/errors so the rest of the codebase never
// imports it directly.

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark attaches markErr so errors.Is(result, markErr) holds while the
// original cause is preserved for %+v stack output.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}
