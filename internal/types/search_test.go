package types

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MrZoidberg/zep-go/internal/errors"
)

func TestMemorySearchPayloadFromMap(t *testing.T) {
	t.Parallel()
	p, err := MemorySearchPayloadFromMap(map[string]any{
		"text":     "what did we decide about pricing",
		"metadata": map[string]any{"where": map[string]any{"source": "slack"}},
	})
	require.NoError(t, err)
	require.Equal(t, "what did we decide about pricing", p.Text)
	require.Contains(t, p.Metadata, "where")
}

func TestMemorySearchPayloadFromMap_TextRequired(t *testing.T) {
	t.Parallel()
	_, err := MemorySearchPayloadFromMap(map[string]any{
		"metadata": map[string]any{},
	})
	require.ErrorIs(t, err, errors.ErrMissingField)
	require.Contains(t, err.Error(), "memory_search_payload")
	require.Contains(t, err.Error(), "text")
}

func TestMemorySearchResultFromMap_PartialProjection(t *testing.T) {
	t.Parallel()
	// Partial message projections from the service are legitimate; the
	// nested message stays a generic mapping and is never re-validated as
	// a full Message.
	r, err := MemorySearchResultFromMap(map[string]any{
		"message": map[string]any{"role": "user", "content": "hi"},
		"dist":    0.12,
	})
	require.NoError(t, err)
	require.Equal(t, map[string]any{"role": "user", "content": "hi"}, r.Message)
	require.NotNil(t, r.Dist)
	require.Equal(t, 0.12, *r.Dist)
	require.Empty(t, r.Summary)
	require.Nil(t, r.Metadata)
}

func TestMemorySearchResultFromMap_AllAbsent(t *testing.T) {
	t.Parallel()
	// An exact match may carry no computed distance at all.
	r, err := MemorySearchResultFromMap(map[string]any{})
	require.NoError(t, err)
	require.Nil(t, r.Message)
	require.Nil(t, r.Dist)
}

func TestMemorySearchResultFromMap_BadDist(t *testing.T) {
	t.Parallel()
	_, err := MemorySearchResultFromMap(map[string]any{"dist": "close"})
	require.ErrorIs(t, err, errors.ErrTypeMismatch)
	require.Contains(t, err.Error(), "dist")
}
