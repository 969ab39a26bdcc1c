// Package fixtures provides reusable test data for the articles API.
// Handler tests share these payload builders so request bodies stay
// consistent across test suites.
package fixtures

import (
	"encoding/json"
	"time"

	"pressroom/internal/domain/entity"
)

// ArticleSeed describes an article to pre-populate a store with.
type ArticleSeed struct {
	Title   string
	Content string
}

// DefaultSeeds returns a small, ordered set of articles for list tests.
func DefaultSeeds() []ArticleSeed {
	return []ArticleSeed{
		{Title: "First article", Content: "Content of the first article."},
		{Title: "Second article", Content: "Content of the second article."},
		{Title: "Third article", Content: "Content of the third article."},
	}
}

// NewArticle builds an entity with the given id and seed data, with
// deterministic timestamps.
func NewArticle(id int64, seed ArticleSeed) *entity.Article {
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC).Add(time.Duration(id) * time.Minute)
	return &entity.Article{
		ID:        id,
		Title:     seed.Title,
		Content:   seed.Content,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
}

// CreateBody returns a JSON request body for the create endpoint.
func CreateBody(title, content string) []byte {
	b, err := json.Marshal(map[string]string{
		"title":   title,
		"content": content,
	})
	if err != nil {
		panic(err)
	}
	return b
}

// UpdateBody returns a JSON request body for the update endpoint.
// Nil fields are omitted entirely, matching a client that sends only the
// fields it wants to change.
func UpdateBody(title, content *string) []byte {
	body := make(map[string]string, 2)
	if title != nil {
		body["title"] = *title
	}
	if content != nil {
		body["content"] = *content
	}
	b, err := json.Marshal(body)
	if err != nil {
		panic(err)
	}
	return b
}

// StrPtr returns a pointer to s, for building partial update bodies.
func StrPtr(s string) *string {
	return &s
}
