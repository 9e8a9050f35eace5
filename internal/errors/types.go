// Package errors defines the typed failure taxonomy for entity construction
// and validation. Every error identifies the entity and the offending field;
// callers match categories with errors.Is against the sentinel values.
package errors

import (
	"fmt"

	"github.com/m-mizutani/goerr/v2"
)

// Sentinel errors for the construction/validation contract.
var (
	// ErrMissingField is returned when a field documented as required is
	// absent from an inbound mapping or unset at outbound construction.
	ErrMissingField = goerr.New("missing required field")

	// ErrTypeMismatch is returned when a wire value does not match the
	// field's declared semantic type.
	ErrTypeMismatch = goerr.New("type mismatch")

	// ErrDimensionMismatch is returned when a document embedding length
	// differs from its collection's declared dimensions.
	ErrDimensionMismatch = goerr.New("embedding dimension mismatch")

	// ErrServerAssignedField is returned when a client-constructed instance
	// carries a value in a server-generated field (uuid, timestamps).
	ErrServerAssignedField = goerr.New("server-assigned field set by client")
)

// MissingField reports a required field absent from entity's wire mapping
// or unset on an outbound instance.
func MissingField(entity, field string) error {
	return goerr.Wrap(ErrMissingField,
		fmt.Sprintf("%s: missing required field %q", entity, field),
		goerr.V("entity", entity), goerr.V("field", field))
}

// TypeMismatch reports a wire value whose type does not match the field's
// declared type. want names the expected type, got is the offending value.
func TypeMismatch(entity, field, want string, got any) error {
	return goerr.Wrap(ErrTypeMismatch,
		fmt.Sprintf("%s: field %q must be %s, got %T", entity, field, want, got),
		goerr.V("entity", entity), goerr.V("field", field), goerr.V("want", want))
}

// DimensionMismatch reports a document embedding whose length differs from
// the declared dimensions of the collection it is being added to.
func DimensionMismatch(collection string, want, got int) error {
	return goerr.Wrap(ErrDimensionMismatch,
		fmt.Sprintf("collection %q expects %d-dimensional embeddings, document has %d", collection, want, got),
		goerr.V("collection", collection), goerr.V("want", want), goerr.V("got", got))
}

// ServerAssigned reports a server-generated field populated on a
// client-constructed instance. The field is never cleared silently.
func ServerAssigned(entity, field string) error {
	return goerr.Wrap(ErrServerAssignedField,
		fmt.Sprintf("%s: field %q is assigned by the server and must be unset on outbound instances", entity, field),
		goerr.V("entity", entity), goerr.V("field", field))
}
