package entity

import "time"

// User exists as a collaborator with its own independent storage.
// The API exposes no user routes; the entity is carried so the persistence
// layer can reset both tables together between test runs.
type User struct {
	ID        int64
	Name      string
	Email     string
	CreatedAt time.Time
}
