package zep

import (
	"errors"

	interrors "github.com/MrZoidberg/zep-go/internal/errors"
)

// Re-export shared SDK errors so callers compare against a single symbol.
var (
	ErrMissingField        = interrors.ErrMissingField
	ErrTypeMismatch        = interrors.ErrTypeMismatch
	ErrDimensionMismatch   = interrors.ErrDimensionMismatch
	ErrServerAssignedField = interrors.ErrServerAssignedField
)

// IsMissingField reports whether err is a missing-required-field error.
func IsMissingField(err error) bool { return errors.Is(err, ErrMissingField) }

// IsTypeMismatch reports whether err is a type-mismatch error.
func IsTypeMismatch(err error) bool { return errors.Is(err, ErrTypeMismatch) }

// IsDimensionMismatch reports whether err is an embedding-dimension error.
func IsDimensionMismatch(err error) bool { return errors.Is(err, ErrDimensionMismatch) }
