package article

import (
	"log/slog"
	"net/http"

	artUC "pressroom/internal/usecase/article"
)

// Register registers the article routes with the given mux.
// ID-bearing routes use prefix patterns; the handlers parse the identifier
// themselves so that malformed IDs fall through to 404.
func Register(mux *http.ServeMux, svc artUC.Service, logger *slog.Logger) {
	mux.Handle("GET    /articles", ListHandler{Svc: svc, Logger: logger})
	mux.Handle("GET    /articles/", GetHandler{svc})

	mux.Handle("POST   /articles", CreateHandler{svc})
	mux.Handle("PUT    /articles/", UpdateHandler{svc})
}
