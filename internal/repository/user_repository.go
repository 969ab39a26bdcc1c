package repository

import "context"

// UserRepository covers the user table's lifecycle. Users have no API surface;
// the interface exists so setup harnesses can reset both tables together
// without leaving orphaned references.
type UserRepository interface {
	// ClearAll removes every user and resets identifier assignment,
	// cascading to dependent rows.
	ClearAll(ctx context.Context) error
}
