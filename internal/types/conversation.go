package types

// ------------------------------
// Conversation Entities
// ------------------------------

// Session represents a durable conversation thread. uuid and the timestamp
// fields are assigned by the server and are absent on a client-constructed
// instance; session_id is the caller-chosen identifier.
type Session struct {
	UUID      string         `json:"uuid,omitempty"`
	CreatedAt string         `json:"created_at,omitempty"`
	UpdatedAt string         `json:"updated_at,omitempty"`
	DeletedAt string         `json:"deleted_at,omitempty"`
	SessionID string         `json:"session_id"`
	Metadata  map[string]any `json:"metadata"`
}

// Message represents one turn in a conversation. Role is a free-form tag
// (e.g. "user", "assistant"), not a closed enum. TokenCount is a
// precomputed value carried as-is, never recomputed by this layer.
type Message struct {
	UUID       string         `json:"uuid,omitempty"`
	CreatedAt  string         `json:"created_at,omitempty"`
	Role       string         `json:"role"`
	Content    string         `json:"content"`
	TokenCount *int           `json:"token_count,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// Summary represents a condensed digest of prior messages. All fields are
// required; RecentMessageUUID is a back-reference to the last message
// folded into the summary.
type Summary struct {
	UUID              string `json:"uuid"`
	CreatedAt         string `json:"created_at"`
	Content           string `json:"content"`
	RecentMessageUUID string `json:"recent_message_uuid"`
	TokenCount        int    `json:"token_count"`
}

// Memory is the composite bundle returned for a session: an ordered
// sequence of messages (oldest first) plus at most one summary. Messages
// is never nil so consumers can iterate unconditionally.
type Memory struct {
	Messages   []Message      `json:"messages"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	Summary    *Summary       `json:"summary,omitempty"`
	UUID       string         `json:"uuid,omitempty"`
	CreatedAt  string         `json:"created_at,omitempty"`
	TokenCount *int           `json:"token_count,omitempty"`
}

// SessionFromMap hydrates a Session from a decoded wire mapping.
// metadata is required on outbound instances but an absent inbound value
// hydrates as an empty mapping, per the shared metadata convention.
func SessionFromMap(m map[string]any) (*Session, error) {
	const entity = "session"
	s := &Session{}
	var err error
	if s.UUID, err = optString(m, entity, "uuid"); err != nil {
		return nil, err
	}
	if s.CreatedAt, err = optString(m, entity, "created_at"); err != nil {
		return nil, err
	}
	if s.UpdatedAt, err = optString(m, entity, "updated_at"); err != nil {
		return nil, err
	}
	if s.DeletedAt, err = optString(m, entity, "deleted_at"); err != nil {
		return nil, err
	}
	if s.SessionID, err = reqString(m, entity, "session_id"); err != nil {
		return nil, err
	}
	md, err := optMapping(m, entity, "metadata")
	if err != nil {
		return nil, err
	}
	s.Metadata = metadataOrEmpty(md)
	return s, nil
}

// ToMap converts the session to its wire mapping. metadata is always
// emitted, empty when unset; absent optional fields are omitted.
func (s *Session) ToMap() map[string]any {
	m := map[string]any{
		"session_id": s.SessionID,
		"metadata":   metadataOrEmpty(s.Metadata),
	}
	putString(m, "uuid", s.UUID)
	putString(m, "created_at", s.CreatedAt)
	putString(m, "updated_at", s.UpdatedAt)
	putString(m, "deleted_at", s.DeletedAt)
	return m
}

// MessageFromMap hydrates a Message from a decoded wire mapping.
func MessageFromMap(m map[string]any) (*Message, error) {
	const entity = "message"
	msg := &Message{}
	var err error
	if msg.UUID, err = optString(m, entity, "uuid"); err != nil {
		return nil, err
	}
	if msg.CreatedAt, err = optString(m, entity, "created_at"); err != nil {
		return nil, err
	}
	if msg.Role, err = reqString(m, entity, "role"); err != nil {
		return nil, err
	}
	if msg.Content, err = reqString(m, entity, "content"); err != nil {
		return nil, err
	}
	if msg.TokenCount, err = optInt(m, entity, "token_count"); err != nil {
		return nil, err
	}
	if msg.Metadata, err = optMapping(m, entity, "metadata"); err != nil {
		return nil, err
	}
	return msg, nil
}

// ToMap converts the message to its wire mapping.
func (msg *Message) ToMap() map[string]any {
	m := map[string]any{
		"role":    msg.Role,
		"content": msg.Content,
	}
	putString(m, "uuid", msg.UUID)
	putString(m, "created_at", msg.CreatedAt)
	if msg.TokenCount != nil {
		m["token_count"] = *msg.TokenCount
	}
	if msg.Metadata != nil {
		m["metadata"] = msg.Metadata
	}
	return m
}

// SummaryFromMap hydrates a Summary from a decoded wire mapping. Every
// field is required; a missing token_count is a construction error, never
// a zero.
func SummaryFromMap(m map[string]any) (*Summary, error) {
	const entity = "summary"
	s := &Summary{}
	var err error
	if s.UUID, err = reqString(m, entity, "uuid"); err != nil {
		return nil, err
	}
	if s.CreatedAt, err = reqString(m, entity, "created_at"); err != nil {
		return nil, err
	}
	if s.Content, err = reqString(m, entity, "content"); err != nil {
		return nil, err
	}
	if s.RecentMessageUUID, err = reqString(m, entity, "recent_message_uuid"); err != nil {
		return nil, err
	}
	if s.TokenCount, err = reqInt(m, entity, "token_count"); err != nil {
		return nil, err
	}
	return s, nil
}

// ToMap converts the summary to its wire mapping. All fields are emitted.
func (s *Summary) ToMap() map[string]any {
	return map[string]any{
		"uuid":                s.UUID,
		"created_at":          s.CreatedAt,
		"content":             s.Content,
		"recent_message_uuid": s.RecentMessageUUID,
		"token_count":         s.TokenCount,
	}
}

// MemoryFromMap hydrates a Memory from a decoded wire mapping. An absent
// messages field hydrates as an empty sequence; element order is the
// conversational order and is preserved as-is.
func MemoryFromMap(m map[string]any) (*Memory, error) {
	const entity = "memory"
	mem := &Memory{}

	rawMsgs, err := optMappingSeq(m, entity, "messages")
	if err != nil {
		return nil, err
	}
	mem.Messages = make([]Message, 0, len(rawMsgs))
	for _, rm := range rawMsgs {
		msg, err := MessageFromMap(rm)
		if err != nil {
			return nil, err
		}
		mem.Messages = append(mem.Messages, *msg)
	}

	if mem.Metadata, err = optMapping(m, entity, "metadata"); err != nil {
		return nil, err
	}
	rawSummary, err := optMapping(m, entity, "summary")
	if err != nil {
		return nil, err
	}
	if rawSummary != nil {
		if mem.Summary, err = SummaryFromMap(rawSummary); err != nil {
			return nil, err
		}
	}
	if mem.UUID, err = optString(m, entity, "uuid"); err != nil {
		return nil, err
	}
	if mem.CreatedAt, err = optString(m, entity, "created_at"); err != nil {
		return nil, err
	}
	if mem.TokenCount, err = optInt(m, entity, "token_count"); err != nil {
		return nil, err
	}
	return mem, nil
}

// ToMap converts the memory to its wire mapping, recursively flattening
// nested messages and the summary so the result is directly
// wire-transmissible. messages is always emitted, empty when unset.
func (mem *Memory) ToMap() map[string]any {
	msgs := make([]map[string]any, 0, len(mem.Messages))
	for i := range mem.Messages {
		msgs = append(msgs, mem.Messages[i].ToMap())
	}
	m := map[string]any{"messages": msgs}
	if mem.Metadata != nil {
		m["metadata"] = mem.Metadata
	}
	if mem.Summary != nil {
		m["summary"] = mem.Summary.ToMap()
	}
	putString(m, "uuid", mem.UUID)
	putString(m, "created_at", mem.CreatedAt)
	if mem.TokenCount != nil {
		m["token_count"] = *mem.TokenCount
	}
	return m
}
