package types

// ------------------------------
// Document Entities
// ------------------------------

// Document is a retrievable unit of text with its embedding. DocumentID is
// a caller-chosen logical name distinct from the server uuid. An absent
// embedding means "not yet embedded"; Dist is populated only when the
// document is returned as a collection-query hit.
type Document struct {
	UUID       string         `json:"uuid,omitempty"`
	CreatedAt  string         `json:"created_at,omitempty"`
	UpdatedAt  string         `json:"updated_at,omitempty"`
	DeletedAt  string         `json:"deleted_at,omitempty"`
	DocumentID string         `json:"document_id,omitempty"`
	Content    string         `json:"content,omitempty"`
	Metadata   map[string]any `json:"metadata"`
	IsEmbedded *bool          `json:"is_embedded,omitempty"`
	Embedding  []float32      `json:"embedding,omitempty"`
	Dist       *float64       `json:"dist,omitempty"`
}

// DocumentCollection is a named, schema-fixed set of documents sharing one
// embedding space. EmbeddingModelName, EmbeddingDimensions,
// DistanceFunction and IsNormalized are fixed at collection-creation time
// and immutable for the collection's lifetime; cross-document dimension
// consistency is the store's invariant, this model only carries the
// declared dimensions so the calling layer can enforce it.
type DocumentCollection struct {
	CreatedAt           string         `json:"created_at,omitempty"`
	UpdatedAt           string         `json:"updated_at,omitempty"`
	DeletedAt           string         `json:"deleted_at,omitempty"`
	Name                string         `json:"name"`
	Description         string         `json:"description,omitempty"`
	Metadata            map[string]any `json:"metadata"`
	EmbeddingModelName  string         `json:"embedding_model_name,omitempty"`
	EmbeddingDimensions int            `json:"embedding_dimensions,omitempty"`
	DistanceFunction    string         `json:"distance_function,omitempty"`
	IsNormalized        *bool          `json:"is_normalized,omitempty"`
}

// DocumentFromMap hydrates a Document from a decoded wire mapping. Every
// field is optional; metadata defaults to an empty mapping.
func DocumentFromMap(m map[string]any) (*Document, error) {
	const entity = "document"
	d := &Document{}
	var err error
	if d.UUID, err = optString(m, entity, "uuid"); err != nil {
		return nil, err
	}
	if d.CreatedAt, err = optString(m, entity, "created_at"); err != nil {
		return nil, err
	}
	if d.UpdatedAt, err = optString(m, entity, "updated_at"); err != nil {
		return nil, err
	}
	if d.DeletedAt, err = optString(m, entity, "deleted_at"); err != nil {
		return nil, err
	}
	if d.DocumentID, err = optString(m, entity, "document_id"); err != nil {
		return nil, err
	}
	if d.Content, err = optString(m, entity, "content"); err != nil {
		return nil, err
	}
	md, err := optMapping(m, entity, "metadata")
	if err != nil {
		return nil, err
	}
	d.Metadata = metadataOrEmpty(md)
	if d.IsEmbedded, err = optBool(m, entity, "is_embedded"); err != nil {
		return nil, err
	}
	if d.Embedding, err = optEmbedding(m, entity, "embedding"); err != nil {
		return nil, err
	}
	if d.Dist, err = optFloat(m, entity, "dist"); err != nil {
		return nil, err
	}
	return d, nil
}

// ToMap converts the document to its wire mapping. metadata is always
// emitted, empty when unset.
func (d *Document) ToMap() map[string]any {
	m := map[string]any{"metadata": metadataOrEmpty(d.Metadata)}
	putString(m, "uuid", d.UUID)
	putString(m, "created_at", d.CreatedAt)
	putString(m, "updated_at", d.UpdatedAt)
	putString(m, "deleted_at", d.DeletedAt)
	putString(m, "document_id", d.DocumentID)
	putString(m, "content", d.Content)
	if d.IsEmbedded != nil {
		m["is_embedded"] = *d.IsEmbedded
	}
	if d.Embedding != nil {
		m["embedding"] = embeddingToWire(d.Embedding)
	}
	if d.Dist != nil {
		m["dist"] = *d.Dist
	}
	return m
}

// DocumentCollectionFromMap hydrates a DocumentCollection from a decoded
// wire mapping. name is required; metadata defaults to an empty mapping.
func DocumentCollectionFromMap(m map[string]any) (*DocumentCollection, error) {
	const entity = "document_collection"
	c := &DocumentCollection{}
	var err error
	if c.CreatedAt, err = optString(m, entity, "created_at"); err != nil {
		return nil, err
	}
	if c.UpdatedAt, err = optString(m, entity, "updated_at"); err != nil {
		return nil, err
	}
	if c.DeletedAt, err = optString(m, entity, "deleted_at"); err != nil {
		return nil, err
	}
	if c.Name, err = reqString(m, entity, "name"); err != nil {
		return nil, err
	}
	if c.Description, err = optString(m, entity, "description"); err != nil {
		return nil, err
	}
	md, err := optMapping(m, entity, "metadata")
	if err != nil {
		return nil, err
	}
	c.Metadata = metadataOrEmpty(md)
	if c.EmbeddingModelName, err = optString(m, entity, "embedding_model_name"); err != nil {
		return nil, err
	}
	dims, err := optInt(m, entity, "embedding_dimensions")
	if err != nil {
		return nil, err
	}
	if dims != nil {
		c.EmbeddingDimensions = *dims
	}
	if c.DistanceFunction, err = optString(m, entity, "distance_function"); err != nil {
		return nil, err
	}
	if c.IsNormalized, err = optBool(m, entity, "is_normalized"); err != nil {
		return nil, err
	}
	return c, nil
}

// ToMap converts the collection to its wire mapping. name and metadata are
// always emitted.
func (c *DocumentCollection) ToMap() map[string]any {
	m := map[string]any{
		"name":     c.Name,
		"metadata": metadataOrEmpty(c.Metadata),
	}
	putString(m, "created_at", c.CreatedAt)
	putString(m, "updated_at", c.UpdatedAt)
	putString(m, "deleted_at", c.DeletedAt)
	putString(m, "description", c.Description)
	putString(m, "embedding_model_name", c.EmbeddingModelName)
	if c.EmbeddingDimensions != 0 {
		m["embedding_dimensions"] = c.EmbeddingDimensions
	}
	putString(m, "distance_function", c.DistanceFunction)
	if c.IsNormalized != nil {
		m["is_normalized"] = *c.IsNormalized
	}
	return m
}
