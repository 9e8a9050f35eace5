package types

import (
	"github.com/MrZoidberg/zep-go/internal/errors"
)

// Outbound validation. Validate is called on client-constructed instances
// before they are handed to the transport layer. Required fields must be
// non-empty and server-generated fields (uuid, timestamps, scores) must be
// unset; a populated server field is reported as a caller error, never
// cleared silently.

// requireUnset flags a server-generated string field carrying a value.
func requireUnset(entity, field, value string) error {
	if value != "" {
		return errors.ServerAssigned(entity, field)
	}
	return nil
}

func serverFieldsUnset(entity string, fields map[string]string) error {
	// Deterministic order keeps error messages stable.
	for _, field := range []string{"uuid", "created_at", "updated_at", "deleted_at"} {
		if v, ok := fields[field]; ok {
			if err := requireUnset(entity, field, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// Validate checks a client-constructed session for outbound use.
func (s *Session) Validate() error {
	const entity = "session"
	if s.SessionID == "" {
		return errors.MissingField(entity, "session_id")
	}
	return serverFieldsUnset(entity, map[string]string{
		"uuid":       s.UUID,
		"created_at": s.CreatedAt,
		"updated_at": s.UpdatedAt,
		"deleted_at": s.DeletedAt,
	})
}

// Validate checks a client-constructed message for outbound use.
func (msg *Message) Validate() error {
	const entity = "message"
	if msg.Role == "" {
		return errors.MissingField(entity, "role")
	}
	if msg.Content == "" {
		return errors.MissingField(entity, "content")
	}
	return serverFieldsUnset(entity, map[string]string{
		"uuid":       msg.UUID,
		"created_at": msg.CreatedAt,
	})
}

// Validate checks that a summary carries every required field. Summaries
// are produced by the service, so uuid and created_at must be present
// rather than absent.
func (s *Summary) Validate() error {
	const entity = "summary"
	if s.UUID == "" {
		return errors.MissingField(entity, "uuid")
	}
	if s.CreatedAt == "" {
		return errors.MissingField(entity, "created_at")
	}
	if s.Content == "" {
		return errors.MissingField(entity, "content")
	}
	if s.RecentMessageUUID == "" {
		return errors.MissingField(entity, "recent_message_uuid")
	}
	return nil
}

// Validate checks a client-constructed memory for outbound use. Each
// message is validated; a nested summary is left alone since summaries are
// service-produced and carried opaquely on writes.
func (mem *Memory) Validate() error {
	const entity = "memory"
	for i := range mem.Messages {
		if err := mem.Messages[i].Validate(); err != nil {
			return err
		}
	}
	return serverFieldsUnset(entity, map[string]string{
		"uuid":       mem.UUID,
		"created_at": mem.CreatedAt,
	})
}

// Validate checks a search payload for outbound use.
func (p *MemorySearchPayload) Validate() error {
	if p.Text == "" {
		return errors.MissingField("memory_search_payload", "text")
	}
	return nil
}

// Validate checks a client-constructed document for outbound use.
// is_embedded and dist are service-computed and must be unset alongside
// uuid and the timestamps.
func (d *Document) Validate() error {
	const entity = "document"
	if err := serverFieldsUnset(entity, map[string]string{
		"uuid":       d.UUID,
		"created_at": d.CreatedAt,
		"updated_at": d.UpdatedAt,
		"deleted_at": d.DeletedAt,
	}); err != nil {
		return err
	}
	if d.IsEmbedded != nil {
		return errors.ServerAssigned(entity, "is_embedded")
	}
	if d.Dist != nil {
		return errors.ServerAssigned(entity, "dist")
	}
	return nil
}

// Validate checks a client-constructed collection for outbound use.
func (c *DocumentCollection) Validate() error {
	const entity = "document_collection"
	if c.Name == "" {
		return errors.MissingField(entity, "name")
	}
	if c.EmbeddingDimensions < 0 {
		return errors.TypeMismatch(entity, "embedding_dimensions", "non-negative integer", c.EmbeddingDimensions)
	}
	return serverFieldsUnset(entity, map[string]string{
		"created_at": c.CreatedAt,
		"updated_at": c.UpdatedAt,
		"deleted_at": c.DeletedAt,
	})
}

// ValidateDocumentEmbedding checks a document's embedding length against
// the collection's declared dimensions. The calling layer invokes this
// before adding a document to the collection. Documents without an
// embedding pass (not yet embedded), as does a collection with no declared
// dimensions.
func (c *DocumentCollection) ValidateDocumentEmbedding(d *Document) error {
	if len(d.Embedding) == 0 || c.EmbeddingDimensions == 0 {
		return nil
	}
	if len(d.Embedding) != c.EmbeddingDimensions {
		return errors.DimensionMismatch(c.Name, c.EmbeddingDimensions, len(d.Embedding))
	}
	return nil
}
