package types

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MrZoidberg/zep-go/internal/errors"
)

func TestSessionValidate(t *testing.T) {
	t.Parallel()
	require.NoError(t, (&Session{SessionID: "s1", Metadata: map[string]any{}}).Validate())

	err := (&Session{Metadata: map[string]any{}}).Validate()
	require.ErrorIs(t, err, errors.ErrMissingField)

	// server-assigned fields must be unset on outbound instances and are
	// never cleared silently
	err = (&Session{SessionID: "s1", UUID: "srv-1"}).Validate()
	require.ErrorIs(t, err, errors.ErrServerAssignedField)
	require.Contains(t, err.Error(), "uuid")

	err = (&Session{SessionID: "s1", CreatedAt: "2023-05-01T00:00:00Z"}).Validate()
	require.ErrorIs(t, err, errors.ErrServerAssignedField)
	require.Contains(t, err.Error(), "created_at")
}

func TestMessageValidate(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		msg  Message
		want error
	}{
		{"valid", Message{Role: "user", Content: "hi"}, nil},
		{"empty role", Message{Content: "hi"}, errors.ErrMissingField},
		{"empty content", Message{Role: "user"}, errors.ErrMissingField},
		{"server uuid set", Message{Role: "user", Content: "hi", UUID: "m-1"}, errors.ErrServerAssignedField},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.msg.Validate()
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestMemoryValidate_ChecksEachMessage(t *testing.T) {
	t.Parallel()
	mem := &Memory{Messages: []Message{
		{Role: "user", Content: "hi"},
		{Role: "assistant"},
	}}
	err := mem.Validate()
	require.ErrorIs(t, err, errors.ErrMissingField)
	require.Contains(t, err.Error(), "content")

	require.NoError(t, (&Memory{}).Validate())
}

func TestSummaryValidate(t *testing.T) {
	t.Parallel()
	s := Summary{
		UUID:              "sum-1",
		CreatedAt:         "2023-05-01T00:00:00Z",
		Content:           "digest",
		RecentMessageUUID: "m-1",
		TokenCount:        9,
	}
	require.NoError(t, s.Validate())

	s.RecentMessageUUID = ""
	err := s.Validate()
	require.ErrorIs(t, err, errors.ErrMissingField)
	require.Contains(t, err.Error(), "recent_message_uuid")
}

func TestMemorySearchPayloadValidate(t *testing.T) {
	t.Parallel()
	require.NoError(t, (&MemorySearchPayload{Text: "q"}).Validate())
	require.ErrorIs(t, (&MemorySearchPayload{}).Validate(), errors.ErrMissingField)
}

func TestDocumentValidate_ServerComputedFields(t *testing.T) {
	t.Parallel()
	require.NoError(t, (&Document{DocumentID: "doc-1", Content: "text"}).Validate())

	err := (&Document{Content: "text", Dist: floatp(0.1)}).Validate()
	require.ErrorIs(t, err, errors.ErrServerAssignedField)
	require.Contains(t, err.Error(), "dist")

	err = (&Document{Content: "text", IsEmbedded: boolp(false)}).Validate()
	require.ErrorIs(t, err, errors.ErrServerAssignedField)

	err = (&Document{Content: "text", UpdatedAt: "2023-05-01T00:00:00Z"}).Validate()
	require.ErrorIs(t, err, errors.ErrServerAssignedField)
}

func TestDocumentCollectionValidate(t *testing.T) {
	t.Parallel()
	require.NoError(t, (&DocumentCollection{Name: "kb", EmbeddingDimensions: 384}).Validate())

	require.ErrorIs(t, (&DocumentCollection{}).Validate(), errors.ErrMissingField)

	err := (&DocumentCollection{Name: "kb", EmbeddingDimensions: -1}).Validate()
	require.ErrorIs(t, err, errors.ErrTypeMismatch)

	err = (&DocumentCollection{Name: "kb", DeletedAt: "2023-05-01T00:00:00Z"}).Validate()
	require.ErrorIs(t, err, errors.ErrServerAssignedField)
}
