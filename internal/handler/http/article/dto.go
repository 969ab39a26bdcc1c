// Package article provides HTTP handlers for the articles resource:
// list, get by ID, create, and update.
//
// Status mapping is part of the published contract and deliberately unusual:
// validation failures surface as 500, not 4xx. Do not "correct" this;
// existing clients depend on the exact mapping.
package article

import (
	"time"

	"pressroom/internal/domain/entity"
)

// DTO is the JSON representation of an article. Every response renders the
// authoritative persisted record; request payloads are never echoed back.
type DTO struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Envelope wraps write responses with their outcome message.
type Envelope struct {
	Message string `json:"message"`
	Article DTO    `json:"article"`
}

func toDTO(a *entity.Article) DTO {
	return DTO{
		ID:        a.ID,
		Title:     a.Title,
		Content:   a.Content,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
