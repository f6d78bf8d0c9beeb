package services

import "errors"

// View service errors
var (
	ErrUnknownView    = errors.New("unknown analytic view")
	ErrEmptyUpload    = errors.New("uploaded dataset is empty")
	ErrUploadTooLarge = errors.New("uploaded dataset exceeds the size limit")
)
