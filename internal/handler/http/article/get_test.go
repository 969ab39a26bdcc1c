package article_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"pressroom/internal/handler/http/article"
	"pressroom/tests/fixtures"
)

func TestGet_Success(t *testing.T) {
	repo := newStubRepo()
	seeded := repo.seed(fixtures.DefaultSeeds()...)
	mux := newTestMux(repo)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/articles/2", nil)
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rr.Code, rr.Body.String())
	}

	var got article.DTO
	if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	want := article.DTO{
		ID:        2,
		Title:     seeded[1].Title,
		Content:   seeded[1].Content,
		CreatedAt: seeded[1].CreatedAt,
		UpdatedAt: seeded[1].UpdatedAt,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("article mismatch (-want +got):\n%s", diff)
	}
}

func TestGet_NotFound(t *testing.T) {
	repo := newStubRepo()
	repo.seed(fixtures.DefaultSeeds()...)
	mux := newTestMux(repo)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/articles/76142896", nil)
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["error"] != "article not found" {
		t.Errorf("error = %q, want article not found", resp["error"])
	}
}

func TestGet_InvalidID(t *testing.T) {
	repo := newStubRepo()
	repo.seed(fixtures.DefaultSeeds()...)
	mux := newTestMux(repo)

	// A malformed identifier can never name a record, so it reads as 404.
	for _, path := range []string{"/articles/abc", "/articles/0", "/articles/-3", "/articles/1.5"} {
		t.Run(path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, path, nil)
			mux.ServeHTTP(rr, req)

			if rr.Code != http.StatusNotFound {
				t.Fatalf("status = %d, want 404", rr.Code)
			}
		})
	}
}
