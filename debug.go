package zep

// Wire debug logging for troubleshooting conversion issues.
//
// When to use:
//   - Set ZEP_DEBUG=true, or pass WithDebugLogging(true)
//   - When investigating why a service response fails hydration
//   - In CI pipelines for integration test debugging
//
// Security considerations:
//   - Failure logs name entities and fields, not payload contents, so
//     message/document text never reaches the logs.
//
// Logging never substitutes for error propagation: every failure logged
// here is also returned to the caller.

// logConstruct records the outcome of one hydration.
func (c *Codec) logConstruct(entity string, err error) {
	if !c.debug {
		return
	}
	if err != nil {
		c.log.Debug().Err(err).Str("entity", entity).Msg("construct failed")
		return
	}
	c.log.Debug().Str("entity", entity).Msg("construct ok")
}

// logSerialize records one serialization.
func (c *Codec) logSerialize(entity string) {
	if !c.debug {
		return
	}
	c.log.Debug().Str("entity", entity).Msg("serialize ok")
}
