package article_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync"

	"pressroom/internal/domain/entity"
	"pressroom/internal/handler/http/article"
	artUC "pressroom/internal/usecase/article"
	"pressroom/tests/fixtures"
)

// stubRepo is an in-memory article repository for handler tests.
type stubRepo struct {
	mu       sync.Mutex
	articles map[int64]*entity.Article
	order    []int64
	nextID   int64

	listErr   error
	createErr error
	updateErr error
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		articles: make(map[int64]*entity.Article),
		nextID:   1,
	}
}

func (r *stubRepo) List(ctx context.Context) ([]*entity.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]*entity.Article, 0, len(r.order))
	for _, id := range r.order {
		cp := *r.articles[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *stubRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.articles[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *stubRepo) Create(ctx context.Context, a *entity.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	a.ID = r.nextID
	r.nextID++
	cp := *a
	r.articles[a.ID] = &cp
	r.order = append(r.order, a.ID)
	return nil
}

func (r *stubRepo) Update(ctx context.Context, a *entity.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return r.updateErr
	}
	cp := *a
	r.articles[a.ID] = &cp
	return nil
}

func (r *stubRepo) ClearAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.articles = make(map[int64]*entity.Article)
	r.order = nil
	r.nextID = 1
	return nil
}

// stored returns a copy of the persisted article, or nil.
func (r *stubRepo) stored(id int64) *entity.Article {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.articles[id]
	if !ok {
		return nil
	}
	cp := *a
	return &cp
}

// seed persists fixtures directly, bypassing validation.
func (r *stubRepo) seed(seeds ...fixtures.ArticleSeed) []*entity.Article {
	out := make([]*entity.Article, 0, len(seeds))
	for _, s := range seeds {
		a := fixtures.NewArticle(0, s)
		_ = r.Create(context.Background(), a)
		out = append(out, a)
	}
	return out
}

// newTestMux wires the article routes the same way cmd/api does.
func newTestMux(repo *stubRepo) *http.ServeMux {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mux := http.NewServeMux()
	article.Register(mux, artUC.Service{Repo: repo}, logger)
	return mux
}
