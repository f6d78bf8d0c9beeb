package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siacli/internal/analytics"
	"siacli/internal/dataprocessing"
	apierrors "siacli/internal/errors"
	"siacli/internal/services"
	"siacli/pkg/contracts/domain"
)

// stubViewService implements ViewService for handler tests.
type stubViewService struct {
	computeFn  func(ctx context.Context, kind domain.ViewKind, limit int) (interface{}, error)
	infoFn     func(ctx context.Context) (services.DatasetInfo, error)
	uploadFn   func(ctx context.Context, name string, data []byte) (services.UploadResult, error)
	defaultTop int
}

func (s *stubViewService) ComputeView(ctx context.Context, kind domain.ViewKind, limit int) (interface{}, error) {
	return s.computeFn(ctx, kind, limit)
}

func (s *stubViewService) Info(ctx context.Context) (services.DatasetInfo, error) {
	return s.infoFn(ctx)
}

func (s *stubViewService) Upload(ctx context.Context, name string, data []byte) (services.UploadResult, error) {
	return s.uploadFn(ctx, name, data)
}

func (s *stubViewService) Limits() (min, max, def int) {
	def = s.defaultTop
	if def == 0 {
		def = services.DefaultTopN
	}
	return services.MinTopN, services.MaxTopN, def
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newViewsRouter(svc ViewService) http.Handler {
	logger := testLogger()
	return NewViewsHandler(svc, logger, apierrors.NewErrorHandler(logger, false)).Routes()
}

func TestListViews(t *testing.T) {
	router := newViewsRouter(&stubViewService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Views []struct {
			Kind    string `json:"kind"`
			Limited bool   `json:"limited"`
		} `json:"views"`
		Limit map[string]int `json:"limit"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Len(t, body.Views, 9)
	assert.Equal(t, "overview", body.Views[0].Kind)
	assert.Equal(t, 10, body.Limit["default"])
}

func TestListViewsConfiguredDefault(t *testing.T) {
	router := newViewsRouter(&stubViewService{defaultTop: 15})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Limit map[string]int `json:"limit"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 15, body.Limit["default"])
}

func TestGetView(t *testing.T) {
	t.Run("returns the computed view", func(t *testing.T) {
		var gotKind domain.ViewKind
		var gotLimit int
		router := newViewsRouter(&stubViewService{
			computeFn: func(_ context.Context, kind domain.ViewKind, limit int) (interface{}, error) {
				gotKind, gotLimit = kind, limit
				return domain.Ranking{GroupKey: "name"}, nil
			},
		})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/top_companies?limit=15", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, domain.ViewTopCompanies, gotKind)
		assert.Equal(t, 15, gotLimit)

		var body struct {
			Kind string          `json:"kind"`
			Data json.RawMessage `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "top_companies", body.Kind)
	})

	t.Run("unknown kind is 404", func(t *testing.T) {
		router := newViewsRouter(&stubViewService{})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bogus", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
	})

	t.Run("non-integer limit is 400", func(t *testing.T) {
		router := newViewsRouter(&stubViewService{})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/top_companies?limit=abc", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing column is 422", func(t *testing.T) {
		router := newViewsRouter(&stubViewService{
			computeFn: func(context.Context, domain.ViewKind, int) (interface{}, error) {
				return nil, analytics.ErrColumnUnavailable
			},
		})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status_distribution", nil))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "COLUMN_UNAVAILABLE")
	})

	t.Run("unresolvable dataset is 404", func(t *testing.T) {
		router := newViewsRouter(&stubViewService{
			computeFn: func(context.Context, domain.ViewKind, int) (interface{}, error) {
				return nil, dataprocessing.ErrSourceNotFound
			},
		})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/overview", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "DATASET_NOT_FOUND")
	})

	t.Run("insufficient data is 422", func(t *testing.T) {
		router := newViewsRouter(&stubViewService{
			computeFn: func(context.Context, domain.ViewKind, int) (interface{}, error) {
				return nil, analytics.ErrInsufficientData
			},
		})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rounds_vs_funding", nil))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "INSUFFICIENT_DATA")
	})
}
