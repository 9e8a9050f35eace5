package zep

// This file defines functional options that configure the Codec during
// construction. Keeping them in a standalone file makes it easy to
// discover all available knobs at a glance.

import "github.com/rs/zerolog"

// Option configures a Codec during construction in New.
//
// Options are applied after the environment-driven config, so an explicit
// option overrides ZEP_DEBUG. Options must be deterministic and
// side-effect free.
type Option func(*Codec) error

// WithDebugLogging logs each construct/serialize call and its outcome at
// debug level when enabled is true.
//
// Debug logs include entity names and failure reasons but never replace
// the returned error; callers still receive every validation failure.
func WithDebugLogging(enabled bool) Option {
	return func(c *Codec) error {
		c.debug = enabled
		return nil
	}
}

// WithLogger sets the logger used for debug output. Defaults to the
// global zerolog logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Codec) error {
		c.log = l
		return nil
	}
}

// WithStrictIdentifiers requires hydrated uuid fields (including
// recent_message_uuid) to parse as RFC 4122 UUIDs.
//
// Off by default: the wire contract declares identifiers opaque, and a
// paired service is free to use another scheme. Enable only against a
// service known to issue RFC 4122 identifiers.
func WithStrictIdentifiers(enabled bool) Option {
	return func(c *Codec) error {
		c.strictIDs = enabled
		return nil
	}
}
