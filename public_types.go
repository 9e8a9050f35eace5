package zep

import "github.com/MrZoidberg/zep-go/internal/types"

// Public type aliases so SDK consumers can import only the zep package.
type (
	// Conversation entities
	Session = types.Session
	Message = types.Message
	Summary = types.Summary
	Memory  = types.Memory

	// Search entities
	MemorySearchPayload = types.MemorySearchPayload
	MemorySearchResult  = types.MemorySearchResult

	// Document entities
	Document           = types.Document
	DocumentCollection = types.DocumentCollection
)

// Errors re-exported in errors.go
