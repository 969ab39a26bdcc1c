package article

import (
	"encoding/json"
	"errors"
	"net/http"

	"pressroom/internal/handler/http/pathutil"
	"pressroom/internal/handler/http/respond"
	"pressroom/internal/observability/metrics"
	artUC "pressroom/internal/usecase/article"
)

type UpdateHandler struct{ Svc artUC.Service }

// ServeHTTP applies a partial update to an existing article.
// An omitted field leaves the stored value untouched; a field present but
// empty fails validation (500) and leaves the record unchanged. Unknown IDs
// are 404.
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/articles/")
	if err != nil {
		respond.SafeError(w, http.StatusNotFound, artUC.ErrArticleNotFound)
		return
	}

	var req struct {
		Title   *string `json:"title"`
		Content *string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	art, err := h.Svc.Update(r.Context(), artUC.UpdateInput{
		ID:      id,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, artUC.ErrArticleNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	metrics.RecordArticleUpdated()
	respond.JSON(w, http.StatusOK, Envelope{
		Message: "Updated successfully",
		Article: toDTO(art),
	})
}
