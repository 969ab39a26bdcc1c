package article

import (
	"context"
	"fmt"
	"time"

	"pressroom/internal/domain/entity"
	"pressroom/internal/repository"
)

// CreateInput carries the caller-supplied fields for creating an article.
// It enumerates exactly the recognized keys; anything else in a request
// payload is discarded before it reaches this layer.
type CreateInput struct {
	Title   string
	Content string
}

// UpdateInput carries a partial update for an existing article.
// Nil fields leave the stored value untouched.
type UpdateInput struct {
	ID      int64
	Title   *string
	Content *string
}

// Service provides article management use cases.
// It owns field-level validation and server-assigned timestamps, and
// delegates persistence to the repository.
type Service struct {
	Repo repository.ArticleRepository
}

// List retrieves all articles in creation order.
// Returns an empty slice when no articles exist.
func (s *Service) List(ctx context.Context) ([]*entity.Article, error) {
	articles, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	if articles == nil {
		articles = []*entity.Article{}
	}
	return articles, nil
}

// Get retrieves a single article by its ID.
// Returns ErrArticleNotFound if the article does not exist; a non-positive
// ID is treated as not found rather than a distinct error.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Article, error) {
	if id <= 0 {
		return nil, ErrArticleNotFound
	}

	article, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

// Create validates the input and persists a new article.
// Title and content must be non-empty after disregarding surrounding
// whitespace. On success the returned article carries the server-assigned
// ID and timestamps. On failure nothing is persisted.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Article, error) {
	if err := entity.ValidateRequiredText("title", in.Title); err != nil {
		return nil, err
	}
	if err := entity.ValidateRequiredText("content", in.Content); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	art := &entity.Article{
		Title:     in.Title,
		Content:   in.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Repo.Create(ctx, art); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	return art, nil
}

// Update merges the supplied fields into an existing article.
// Returns ErrArticleNotFound if the article does not exist.
// A supplied-but-empty field is a validation failure; the merged record must
// still satisfy the non-empty invariants, and the stored record is left
// unchanged on any failure. On success UpdatedAt is refreshed and the full
// updated article is returned.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Article, error) {
	if in.ID <= 0 {
		return nil, ErrArticleNotFound
	}

	art, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}

	if in.Title != nil {
		if err := entity.ValidateRequiredText("title", *in.Title); err != nil {
			return nil, err
		}
		art.Title = *in.Title
	}
	if in.Content != nil {
		if err := entity.ValidateRequiredText("content", *in.Content); err != nil {
			return nil, err
		}
		art.Content = *in.Content
	}
	art.UpdatedAt = time.Now().UTC()

	if err := s.Repo.Update(ctx, art); err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	return art, nil
}

// ClearAll removes every article. Administrative hook for test and setup
// harnesses; no HTTP route reaches it.
func (s *Service) ClearAll(ctx context.Context) error {
	if err := s.Repo.ClearAll(ctx); err != nil {
		return fmt.Errorf("clear articles: %w", err)
	}
	return nil
}
