package zep

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	interrors "github.com/MrZoidberg/zep-go/internal/errors"
)

// --------------------------------------------------------------------
// Codec core
// --------------------------------------------------------------------

// Codec converts entities to and from their wire mappings. It is immutable
// after New, holds no shared buffers, and is safe for concurrent use.
type Codec struct {
	debug     bool
	strictIDs bool
	log       zerolog.Logger
}

// New constructs a Codec. Additional options can be provided via
// functional arguments; they are applied after the environment config, so
// an explicit option wins over ZEP_DEBUG.
func New(opts ...Option) *Codec {
	c := &Codec{log: log.Logger}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		c.debug = true
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}
	return c
}

// checkIdentifier enforces strict-identifier mode on a hydrated uuid
// field. Identifiers are opaque by contract, so the check is off unless
// WithStrictIdentifiers was set; empty means absent and always passes.
func (c *Codec) checkIdentifier(entity, field, value string) error {
	if !c.strictIDs || value == "" {
		return nil
	}
	if _, err := uuid.Parse(value); err != nil {
		return interrors.TypeMismatch(entity, field, "RFC 4122 UUID", value)
	}
	return nil
}
