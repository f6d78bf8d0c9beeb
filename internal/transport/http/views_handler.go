package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "siacli/internal/errors"
	"siacli/pkg/contracts/domain"
)

// ViewsHandler serves the analytic view endpoints.
type ViewsHandler struct {
	service      ViewService
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewViewsHandler creates a views handler.
func NewViewsHandler(service ViewService, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *ViewsHandler {
	return &ViewsHandler{
		service:      service,
		logger:       logger.With(slog.String("component", "views_handler")),
		errorHandler: errorHandler,
	}
}

// Routes returns the view routes.
func (h *ViewsHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/", h.ListViews)
	r.Get("/{kind}", h.GetView)

	return r
}

// viewDescriptor describes one available view to API consumers.
type viewDescriptor struct {
	Kind    domain.ViewKind `json:"kind"`
	Limited bool            `json:"limited"`
}

// ListViews returns the catalog of supported views in presentation order.
func (h *ViewsHandler) ListViews(w http.ResponseWriter, r *http.Request) {
	kinds := domain.ViewKinds()
	views := make([]viewDescriptor, 0, len(kinds))
	for _, k := range kinds {
		views = append(views, viewDescriptor{Kind: k, Limited: k.Limited()})
	}

	min, max, def := h.service.Limits()
	render.JSON(w, r, map[string]interface{}{
		"views": views,
		"limit": map[string]int{
			"min":     min,
			"max":     max,
			"default": def,
		},
	})
}

// GetView computes and returns a single view. Rank-limited views accept
// an optional ?limit=N parameter, clamped into the accepted range.
func (h *ViewsHandler) GetView(w http.ResponseWriter, r *http.Request) {
	kind := domain.ViewKind(chi.URLParam(r, "kind"))
	if !kind.Valid() {
		h.errorHandler.HandleError(w, r, apierrors.ErrViewNotFound)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			h.errorHandler.HandleError(w, r, apierrors.ErrValidation("limit", "limit must be an integer"))
			return
		}
		limit = n
	}

	result, err := h.service.ComputeView(r.Context(), kind, limit)
	if err != nil {
		h.errorHandler.HandleError(w, r, serviceError(err))
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"kind": kind,
		"data": result,
	})
}
