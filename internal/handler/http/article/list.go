package article

import (
	"log/slog"
	"net/http"

	"pressroom/internal/handler/http/respond"
	"pressroom/internal/observability/logging"
	"pressroom/internal/observability/metrics"
	artUC "pressroom/internal/usecase/article"
)

type ListHandler struct {
	Svc    artUC.Service
	Logger *slog.Logger
}

// ServeHTTP returns every article as a JSON array in creation order.
// An empty store yields 200 with an empty array, never null.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)

	articles, err := h.Svc.List(ctx)
	if err != nil {
		logger.Error("failed to list articles", slog.String("error", err.Error()))
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]DTO, 0, len(articles))
	for _, a := range articles {
		dtos = append(dtos, toDTO(a))
	}

	metrics.UpdateArticlesTotal(len(dtos))
	respond.JSON(w, http.StatusOK, dtos)
}
