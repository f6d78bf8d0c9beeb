package http

import (
	"context"

	"siacli/internal/services"
	"siacli/pkg/contracts/domain"
)

// ViewService is the service surface the handlers depend on. Declared
// here so handlers can be tested against a stub.
type ViewService interface {
	ComputeView(ctx context.Context, kind domain.ViewKind, limit int) (interface{}, error)
	Info(ctx context.Context) (services.DatasetInfo, error)
	Upload(ctx context.Context, name string, data []byte) (services.UploadResult, error)
	Limits() (min, max, def int)
}
