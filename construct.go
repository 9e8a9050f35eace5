package zep

import "github.com/MrZoidberg/zep-go/internal/types"

// Per-entity construct/serialize methods. One explicit method per entity
// keeps the required/optional field rules auditable; nothing here relies
// on reflection over entity fields.
//
// Construct hydrates an entity from a decoded response body and fails with
// ErrMissingField or ErrTypeMismatch, identifying entity and field.
// Serialize produces a wire mapping, recursively flattening nested
// entities; it is lossless and does not run outbound validation, so
// hydrated entities round-trip intact. Callers run Validate on
// client-constructed instances before transmission.

// finishConstruct funnels every hydration outcome through metrics and
// debug logging.
func finishConstruct[T any](c *Codec, entity string, v *T, err error) (*T, error) {
	c.logConstruct(entity, err)
	if err != nil {
		constructFailuresTotal.WithLabelValues(entity).Inc()
		return nil, err
	}
	constructsTotal.WithLabelValues(entity).Inc()
	return v, nil
}

func (c *Codec) finishSerialize(entity string, m map[string]any) map[string]any {
	serializationsTotal.WithLabelValues(entity).Inc()
	c.logSerialize(entity)
	return m
}

// --------------------------------------------------------------------
// Conversation entities
// --------------------------------------------------------------------

// ConstructSession hydrates a Session from a decoded response body.
func (c *Codec) ConstructSession(m map[string]any) (*Session, error) {
	s, err := types.SessionFromMap(m)
	if err == nil {
		err = c.checkIdentifier("session", "uuid", s.UUID)
	}
	return finishConstruct(c, "session", s, err)
}

// SerializeSession produces the session's wire mapping.
func (c *Codec) SerializeSession(s *Session) map[string]any {
	return c.finishSerialize("session", s.ToMap())
}

// ConstructMessage hydrates a Message from a decoded response body.
func (c *Codec) ConstructMessage(m map[string]any) (*Message, error) {
	msg, err := types.MessageFromMap(m)
	if err == nil {
		err = c.checkIdentifier("message", "uuid", msg.UUID)
	}
	return finishConstruct(c, "message", msg, err)
}

// SerializeMessage produces the message's wire mapping.
func (c *Codec) SerializeMessage(msg *Message) map[string]any {
	return c.finishSerialize("message", msg.ToMap())
}

// ConstructSummary hydrates a Summary from a decoded response body.
func (c *Codec) ConstructSummary(m map[string]any) (*Summary, error) {
	s, err := types.SummaryFromMap(m)
	if err == nil {
		err = c.checkIdentifier("summary", "uuid", s.UUID)
	}
	if err == nil {
		err = c.checkIdentifier("summary", "recent_message_uuid", s.RecentMessageUUID)
	}
	return finishConstruct(c, "summary", s, err)
}

// SerializeSummary produces the summary's wire mapping.
func (c *Codec) SerializeSummary(s *Summary) map[string]any {
	return c.finishSerialize("summary", s.ToMap())
}

// ConstructMemory hydrates a Memory, including its nested messages and
// summary, from a decoded response body.
func (c *Codec) ConstructMemory(m map[string]any) (*Memory, error) {
	mem, err := types.MemoryFromMap(m)
	if err == nil {
		err = c.checkIdentifier("memory", "uuid", mem.UUID)
	}
	return finishConstruct(c, "memory", mem, err)
}

// SerializeMemory produces the memory's wire mapping with nested messages
// and summary flattened to plain mappings.
func (c *Codec) SerializeMemory(mem *Memory) map[string]any {
	return c.finishSerialize("memory", mem.ToMap())
}

// --------------------------------------------------------------------
// Search entities
// --------------------------------------------------------------------

// ConstructMemorySearchPayload hydrates a search payload.
func (c *Codec) ConstructMemorySearchPayload(m map[string]any) (*MemorySearchPayload, error) {
	p, err := types.MemorySearchPayloadFromMap(m)
	return finishConstruct(c, "memory_search_payload", p, err)
}

// SerializeMemorySearchPayload produces the payload's wire mapping.
func (c *Codec) SerializeMemorySearchPayload(p *MemorySearchPayload) map[string]any {
	return c.finishSerialize("memory_search_payload", p.ToMap())
}

// ConstructMemorySearchResult hydrates one search hit. The nested message
// stays a generic mapping: the service may return a partial projection.
func (c *Codec) ConstructMemorySearchResult(m map[string]any) (*MemorySearchResult, error) {
	r, err := types.MemorySearchResultFromMap(m)
	return finishConstruct(c, "memory_search_result", r, err)
}

// SerializeMemorySearchResult produces the result's wire mapping.
func (c *Codec) SerializeMemorySearchResult(r *MemorySearchResult) map[string]any {
	return c.finishSerialize("memory_search_result", r.ToMap())
}

// --------------------------------------------------------------------
// Document entities
// --------------------------------------------------------------------

// ConstructDocument hydrates a Document from a decoded response body.
func (c *Codec) ConstructDocument(m map[string]any) (*Document, error) {
	d, err := types.DocumentFromMap(m)
	if err == nil {
		err = c.checkIdentifier("document", "uuid", d.UUID)
	}
	return finishConstruct(c, "document", d, err)
}

// SerializeDocument produces the document's wire mapping.
func (c *Codec) SerializeDocument(d *Document) map[string]any {
	return c.finishSerialize("document", d.ToMap())
}

// ConstructDocumentCollection hydrates a DocumentCollection.
func (c *Codec) ConstructDocumentCollection(m map[string]any) (*DocumentCollection, error) {
	col, err := types.DocumentCollectionFromMap(m)
	return finishConstruct(c, "document_collection", col, err)
}

// SerializeDocumentCollection produces the collection's wire mapping.
func (c *Codec) SerializeDocumentCollection(col *DocumentCollection) map[string]any {
	return c.finishSerialize("document_collection", col.ToMap())
}
