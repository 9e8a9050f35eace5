package types

// ------------------------------
// Search Entities
// ------------------------------

// MemorySearchPayload is a semantic recall query. Metadata can carry
// filter predicates interpreted by the remote service.
type MemorySearchPayload struct {
	Text     string         `json:"text"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// MemorySearchResult is one scored hit from a memory search. Message is a
// generic mapping rather than a typed Message: the service may return a
// partial projection and this model must not reject it. Dist may be absent
// (e.g. an exact match with no computed distance); whether lower or higher
// is closer depends on the service's distance function.
type MemorySearchResult struct {
	Message  map[string]any `json:"message,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
	Summary  string         `json:"summary,omitempty"`
	Dist     *float64       `json:"dist,omitempty"`
}

// MemorySearchPayloadFromMap hydrates a search payload from a wire mapping.
func MemorySearchPayloadFromMap(m map[string]any) (*MemorySearchPayload, error) {
	const entity = "memory_search_payload"
	p := &MemorySearchPayload{}
	var err error
	if p.Text, err = reqString(m, entity, "text"); err != nil {
		return nil, err
	}
	if p.Metadata, err = optMapping(m, entity, "metadata"); err != nil {
		return nil, err
	}
	return p, nil
}

// ToMap converts the payload to its wire mapping.
func (p *MemorySearchPayload) ToMap() map[string]any {
	m := map[string]any{"text": p.Text}
	if p.Metadata != nil {
		m["metadata"] = p.Metadata
	}
	return m
}

// MemorySearchResultFromMap hydrates a search result from a wire mapping.
// Every field is optional.
func MemorySearchResultFromMap(m map[string]any) (*MemorySearchResult, error) {
	const entity = "memory_search_result"
	r := &MemorySearchResult{}
	var err error
	if r.Message, err = optMapping(m, entity, "message"); err != nil {
		return nil, err
	}
	if r.Metadata, err = optMapping(m, entity, "metadata"); err != nil {
		return nil, err
	}
	if r.Summary, err = optString(m, entity, "summary"); err != nil {
		return nil, err
	}
	if r.Dist, err = optFloat(m, entity, "dist"); err != nil {
		return nil, err
	}
	return r, nil
}

// ToMap converts the result to its wire mapping.
func (r *MemorySearchResult) ToMap() map[string]any {
	m := map[string]any{}
	if r.Message != nil {
		m["message"] = r.Message
	}
	if r.Metadata != nil {
		m["metadata"] = r.Metadata
	}
	putString(m, "summary", r.Summary)
	if r.Dist != nil {
		m["dist"] = *r.Dist
	}
	return m
}
