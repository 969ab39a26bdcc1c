package article

import (
	"errors"
	"net/http"

	"pressroom/internal/handler/http/pathutil"
	"pressroom/internal/handler/http/respond"
	artUC "pressroom/internal/usecase/article"
)

type GetHandler struct{ Svc artUC.Service }

// ServeHTTP returns a single article by path ID.
// A malformed identifier can never name a stored record, so it is reported
// as 404 like any other unknown ID.
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/articles/")
	if err != nil {
		respond.SafeError(w, http.StatusNotFound, artUC.ErrArticleNotFound)
		return
	}

	art, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, artUC.ErrArticleNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(art))
}
