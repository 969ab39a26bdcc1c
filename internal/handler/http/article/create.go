package article

import (
	"encoding/json"
	"net/http"

	"pressroom/internal/handler/http/respond"
	"pressroom/internal/observability/metrics"
	artUC "pressroom/internal/usecase/article"
)

type CreateHandler struct{ Svc artUC.Service }

// ServeHTTP creates a new article from the request body.
// Only title and content are read from the payload; any other key is
// silently discarded and never persisted or echoed. Validation is owned by
// the store layer, and per the contract its failures map to 500.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	art, err := h.Svc.Create(r.Context(), artUC.CreateInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	metrics.RecordArticleCreated()
	respond.JSON(w, http.StatusOK, Envelope{
		Message: "Created successfully",
		Article: toDTO(art),
	})
}
