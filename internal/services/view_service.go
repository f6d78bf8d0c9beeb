package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"siacli/internal/analytics"
	"siacli/internal/config"
	"siacli/internal/dataprocessing"
	"siacli/internal/infrastructure"
	"siacli/pkg/contracts/domain"
)

// Limit bounds for rank-limited views. Requests outside the range are
// clamped, not rejected.
const (
	MinTopN     = 5
	MaxTopN     = 30
	DefaultTopN = 10
)

// DatasetInfo describes the currently active dataset without its records.
type DatasetInfo struct {
	Source      string   `json:"source"`
	Columns     []string `json:"columns"`
	RecordCount int      `json:"record_count"`
}

// UploadResult is returned after a successful dataset upload.
type UploadResult struct {
	UploadID    string   `json:"upload_id"`
	Source      string   `json:"source"`
	Columns     []string `json:"columns"`
	RecordCount int      `json:"record_count"`
}

// ViewService resolves datasets and computes analytic views over them.
// The active source starts as the configured candidate paths and can be
// replaced by an upload at runtime.
type ViewService struct {
	loader      *dataprocessing.Loader
	logger      *slog.Logger
	metrics     *infrastructure.Metrics
	defaultTopN int

	mu     sync.RWMutex
	source dataprocessing.Source
}

// NewViewService creates a view service over the configured data sources.
func NewViewService(cfg *config.Config, loader *dataprocessing.Loader, metrics *infrastructure.Metrics, logger *slog.Logger) *ViewService {
	if logger == nil {
		logger = slog.Default()
	}
	topN := cfg.Data.DefaultTopN
	if topN < MinTopN || topN > MaxTopN {
		topN = DefaultTopN
	}
	return &ViewService{
		loader:      loader,
		logger:      logger.With(slog.String("component", "view_service")),
		metrics:     metrics,
		defaultTopN: topN,
		source:      dataprocessing.Source{Candidates: cfg.Data.CandidatePaths},
	}
}

// ActiveSource returns the source the service currently resolves against.
func (s *ViewService) ActiveSource() dataprocessing.Source {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.source
}

// Dataset loads the active dataset, serving the cached instance when the
// source identity was loaded before.
func (s *ViewService) Dataset(ctx context.Context) (*domain.Dataset, error) {
	src := s.ActiveSource()

	start := time.Now()
	_, cached := s.loader.Cached(src.Identity())

	ds, err := s.loader.Load(ctx, src)
	if err != nil {
		if s.metrics != nil {
			s.metrics.DatasetLoadsTotal.WithLabelValues("error").Inc()
		}
		return nil, err
	}

	if s.metrics != nil {
		if cached {
			s.metrics.DatasetLoadsTotal.WithLabelValues("hit").Inc()
		} else {
			s.metrics.DatasetLoadsTotal.WithLabelValues("parsed").Inc()
			s.metrics.DatasetLoadDuration.Observe(time.Since(start).Seconds())
		}
		s.metrics.DatasetRecords.Set(float64(ds.Len()))
	}

	return ds, nil
}

// Info returns metadata about the active dataset.
func (s *ViewService) Info(ctx context.Context) (DatasetInfo, error) {
	ds, err := s.Dataset(ctx)
	if err != nil {
		return DatasetInfo{}, err
	}
	return DatasetInfo{
		Source:      ds.Source,
		Columns:     ds.Columns,
		RecordCount: ds.Len(),
	}, nil
}

// Upload replaces the active source with an in-memory dataset. The bytes
// are parsed eagerly so a malformed upload is rejected before it becomes
// the active source.
func (s *ViewService) Upload(ctx context.Context, name string, data []byte) (UploadResult, error) {
	if len(data) == 0 {
		return UploadResult{}, ErrEmptyUpload
	}

	upload := &dataprocessing.Upload{
		ID:   uuid.New().String(),
		Name: name,
		Data: data,
	}
	src := dataprocessing.Source{Upload: upload}

	ds, err := s.loader.Load(ctx, src)
	if err != nil {
		return UploadResult{}, err
	}

	s.mu.Lock()
	s.source = src
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "dataset upload activated",
		slog.String("upload_id", upload.ID),
		slog.String("name", name),
		slog.Int("records", ds.Len()),
	)

	if s.metrics != nil {
		s.metrics.DatasetRecords.Set(float64(ds.Len()))
	}

	return UploadResult{
		UploadID:    upload.ID,
		Source:      ds.Source,
		Columns:     ds.Columns,
		RecordCount: ds.Len(),
	}, nil
}

// Limits reports the accepted range and the configured default for
// rank-limited views.
func (s *ViewService) Limits() (min, max, def int) {
	return MinTopN, MaxTopN, s.defaultTopN
}

// clampTopN normalizes a requested limit into the accepted range.
// Zero or negative means the configured default.
func (s *ViewService) clampTopN(n int) int {
	if n <= 0 {
		return s.defaultTopN
	}
	if n < MinTopN {
		return MinTopN
	}
	if n > MaxTopN {
		return MaxTopN
	}
	return n
}

// ComputeView loads the active dataset and computes the named view.
// limit only applies to rank-limited views and is clamped to the
// accepted range.
func (s *ViewService) ComputeView(ctx context.Context, kind domain.ViewKind, limit int) (interface{}, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownView, kind)
	}

	ds, err := s.Dataset(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	result, err := s.compute(ds, kind, s.clampTopN(limit))
	s.observeView(kind, start, err)

	if err != nil {
		s.logger.WarnContext(ctx, "view computation failed",
			slog.String("view", string(kind)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	return result, nil
}

// compute dispatches on the view kind. All views are pure functions of
// the dataset.
func (s *ViewService) compute(ds *domain.Dataset, kind domain.ViewKind, n int) (interface{}, error) {
	switch kind {
	case domain.ViewOverview:
		return analytics.Overview(ds), nil
	case domain.ViewTopCompanies:
		return analytics.TopByFundingSum(ds, analytics.GroupByName, n), nil
	case domain.ViewTopCountries:
		return analytics.TopByFundingSum(ds, analytics.GroupByCountry, n), nil
	case domain.ViewActiveMarkets:
		return analytics.TopByDistinctCount(ds, analytics.GroupByCategory, analytics.GroupByName, n), nil
	case domain.ViewFundingTrend:
		return analytics.FundingTrend(ds), nil
	case domain.ViewStatusDistribution:
		return analytics.StatusDistribution(ds)
	case domain.ViewRoundsVsFunding:
		return analytics.FundingVsRounds(ds)
	case domain.ViewCategoryBoxplot:
		return analytics.CategoryFundingDistribution(ds), nil
	case domain.ViewCorrelationMatrix:
		return analytics.CorrelationMatrix(ds), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownView, kind)
}

// observeView records the computation metrics for one view run.
func (s *ViewService) observeView(kind domain.ViewKind, start time.Time, err error) {
	if s.metrics == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	s.metrics.ViewComputationsTotal.WithLabelValues(string(kind), outcome).Inc()
	s.metrics.ViewComputationDuration.WithLabelValues(string(kind)).Observe(time.Since(start).Seconds())
}
