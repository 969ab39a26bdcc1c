// Package article provides use cases for managing article records.
// It implements the store-side contract for creating, updating, and querying
// articles: field validation, server-assigned identity and timestamps, and
// typed outcomes for the HTTP layer to map onto status codes.
package article

import "errors"

// Sentinel errors for article use case operations.
var (
	// ErrArticleNotFound indicates that the requested article was not found.
	// A syntactically invalid identifier is reported the same way; callers
	// never see a separate error class for malformed IDs.
	ErrArticleNotFound = errors.New("article not found")
)
