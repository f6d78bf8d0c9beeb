package http

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "siacli/internal/errors"
	"siacli/internal/services"
)

// DatasetHandler serves dataset metadata and upload endpoints.
type DatasetHandler struct {
	service      ViewService
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
	maxBytes     int64
}

// NewDatasetHandler creates a dataset handler. maxBytes bounds the
// accepted upload size.
func NewDatasetHandler(service ViewService, maxBytes int64, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *DatasetHandler {
	return &DatasetHandler{
		service:      service,
		logger:       logger.With(slog.String("component", "dataset_handler")),
		errorHandler: errorHandler,
		maxBytes:     maxBytes,
	}
}

// Routes returns the dataset routes.
func (h *DatasetHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/", h.GetDataset)
	r.Post("/upload", h.Upload)

	return r
}

// GetDataset returns metadata about the active dataset.
func (h *DatasetHandler) GetDataset(w http.ResponseWriter, r *http.Request) {
	info, err := h.service.Info(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, serviceError(err))
		return
	}
	render.JSON(w, r, info)
}

// Upload accepts a dataset as a multipart "file" field or as a raw
// request body and makes it the active source. The response carries the
// assigned upload ID.
func (h *DatasetHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	name, data, err := h.readUpload(r)
	if err != nil {
		if errors.Is(err, services.ErrUploadTooLarge) {
			h.errorHandler.HandleError(w, r, serviceError(err))
			return
		}
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("file", err.Error()))
		return
	}

	result, err := h.service.Upload(r.Context(), name, data)
	if err != nil {
		h.errorHandler.HandleError(w, r, serviceError(err))
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, result)
}

// readUpload extracts the dataset bytes from a multipart form when one
// is present, otherwise from the raw body.
func (h *DatasetHandler) readUpload(r *http.Request) (string, []byte, error) {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		file, header, err := r.FormFile("file")
		if err != nil {
			return "", nil, uploadReadError(err)
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			return "", nil, uploadReadError(err)
		}
		return header.Filename, data, nil
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		return "", nil, uploadReadError(err)
	}
	return "upload.csv", data, nil
}

// uploadReadError translates a MaxBytesReader overflow into the service
// sentinel so the response names the size limit, not a generic read error.
func uploadReadError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return services.ErrUploadTooLarge
	}
	return err
}
