package http

import (
	"errors"

	"siacli/internal/analytics"
	"siacli/internal/dataprocessing"
	apierrors "siacli/internal/errors"
	"siacli/internal/services"
)

// serviceError maps service and pipeline sentinel errors onto API error
// values so the error handler can produce the right problem response.
func serviceError(err error) error {
	switch {
	case errors.Is(err, dataprocessing.ErrSourceNotFound):
		return apierrors.ErrDatasetNotFound
	case errors.Is(err, dataprocessing.ErrParseFailure):
		return apierrors.DatasetUnparseableError(err)
	case errors.Is(err, analytics.ErrColumnUnavailable):
		return apierrors.ErrColumnUnavailable
	case errors.Is(err, analytics.ErrInsufficientData):
		return apierrors.ErrInsufficientData
	case errors.Is(err, services.ErrUnknownView):
		return apierrors.ErrViewNotFound
	case errors.Is(err, services.ErrEmptyUpload):
		return apierrors.ErrValidation("file", "Uploaded dataset is empty")
	case errors.Is(err, services.ErrUploadTooLarge):
		return apierrors.ErrValidation("file", "Uploaded dataset exceeds the size limit")
	}
	return err
}
