package find

import (
	"errors"
	"fmt"

	"github.com/metafind/metafind/internal/config"
)

// ErrNotSearch reports that the request carried no usable find trigger and
// should fall back to the surrounding plain listing behavior.
var ErrNotSearch = errors.New("find: not a search request")

// ErrEmptyCriteria reports that a find trigger was present but no field
// constraint resolved to a non-empty pattern. Callers respond with an
// unfiltered listing, never a failure.
var ErrEmptyCriteria = errors.New("find: no search criteria supplied")

// InvalidPatternError marks a field pattern that does not compile after
// sanitization. It is recovered locally: the field simply never matches.
type InvalidPatternError struct {
	Field   string
	Pattern string
	Err     error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("find: invalid pattern %q for field %q: %v", e.Pattern, e.Field, e.Err)
}

func (e *InvalidPatternError) Unwrap() error {
	return e.Err
}

// UnknownFieldError marks a criteria or index request for a field absent from
// the configuration. It is recovered by defaulting to string semantics.
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("find: field %q is not configured", e.Field)
}

// CheckField reports an *UnknownFieldError when the field lacks a
// declaration. Matching proceeds with string semantics either way; callers
// use this to warn, not to abort.
func CheckField(cfg *config.Config, field string) error {
	if !cfg.Known(field) {
		return &UnknownFieldError{Field: field}
	}
	return nil
}
