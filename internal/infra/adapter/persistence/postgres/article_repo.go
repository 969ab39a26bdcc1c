package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pressroom/internal/domain/entity"
	"pressroom/internal/repository"
)

type ArticleRepo struct {
	db DBTX
}

func NewArticleRepo(db DBTX) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

func (repo *ArticleRepo) List(ctx context.Context) ([]*entity.Article, error) {
	const query = `
SELECT id, title, content, created_at, updated_at
FROM articles
ORDER BY id`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, 64)
	for rows.Next() {
		var article entity.Article
		if err := rows.Scan(&article.ID, &article.Title, &article.Content,
			&article.CreatedAt, &article.UpdatedAt); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		articles = append(articles, &article)
	}
	return articles, rows.Err()
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	const query = `
SELECT id, title, content, created_at, updated_at
FROM articles
WHERE id = $1
LIMIT 1`
	var article entity.Article
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&article.ID, &article.Title, &article.Content,
			&article.CreatedAt, &article.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &article, nil
}

func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	const query = `
INSERT INTO articles (title, content, created_at, updated_at)
VALUES ($1, $2, $3, $4)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		article.Title, article.Content, article.CreatedAt, article.UpdatedAt).
		Scan(&article.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) Update(ctx context.Context, article *entity.Article) error {
	const query = `
UPDATE articles
SET title = $1, content = $2, updated_at = $3
WHERE id = $4`
	if _, err := repo.db.ExecContext(ctx, query,
		article.Title, article.Content, article.UpdatedAt, article.ID); err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	return nil
}

// ClearAll truncates the articles table and restarts identifier assignment.
// CASCADE keeps any dependent rows from dangling.
func (repo *ArticleRepo) ClearAll(ctx context.Context) error {
	if _, err := repo.db.ExecContext(ctx, `TRUNCATE articles RESTART IDENTITY CASCADE`); err != nil {
		return fmt.Errorf("ClearAll: %w", err)
	}
	return nil
}
