// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as Article and User, along with
// their validation rules and domain-specific errors.
package entity

import "time"

// Article represents a managed article record.
// ID and both timestamps are assigned by the server and never accepted from
// client input.
type Article struct {
	ID        int64
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
