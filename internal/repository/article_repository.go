// Package repository declares the persistence-boundary interfaces consumed by
// the use case layer. Implementations live under internal/infra/adapter.
package repository

import (
	"context"

	"pressroom/internal/domain/entity"
)

type ArticleRepository interface {
	// List returns all articles in creation (insertion) order.
	List(ctx context.Context) ([]*entity.Article, error)
	// Get returns the article with the given ID.
	// Returns (nil, nil) if no such article exists.
	Get(ctx context.Context, id int64) (*entity.Article, error)
	// Create persists a new article and assigns its server-side ID.
	Create(ctx context.Context, article *entity.Article) error
	// Update persists changes to an existing article.
	Update(ctx context.Context, article *entity.Article) error
	// ClearAll removes every article and resets identifier assignment.
	// Administrative operation for test and setup harnesses only; request
	// handling must never call it.
	ClearAll(ctx context.Context) error
}
