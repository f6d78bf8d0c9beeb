package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siacli/internal/analytics"
	"siacli/internal/config"
	"siacli/internal/dataprocessing"
	"siacli/internal/infrastructure"
	"siacli/pkg/contracts/domain"
)

const sampleCSV = `name,country,primary_category,status,funding_total_usd,funding_rounds,first_funding_year
Acme,USA,Software,operating,1000000,2,2010
Beta,GBR,Software,acquired,2000000,1,2011
Gamma,USA,Biotech,closed,N/A,3,2012
Delta,DEU,Software,operating,500000,1,2013
`

func newTestService(t *testing.T, csv string) *ViewService {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "investments.csv")
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

	cfg := &config.Config{}
	cfg.Data.CandidatePaths = []string{path}

	loader := dataprocessing.NewLoader(nil)
	return NewViewService(cfg, loader, infrastructure.NewMetrics(), nil)
}

func TestComputeViewDispatch(t *testing.T) {
	svc := newTestService(t, sampleCSV)
	ctx := context.Background()

	t.Run("overview", func(t *testing.T) {
		result, err := svc.ComputeView(ctx, domain.ViewOverview, 0)
		require.NoError(t, err)

		overview, ok := result.(domain.OverviewSummary)
		require.True(t, ok)
		assert.Equal(t, 4, overview.RecordCount)
		assert.Equal(t, 3500000.0, overview.TotalFunding)
	})

	t.Run("top companies ranked ascending", func(t *testing.T) {
		result, err := svc.ComputeView(ctx, domain.ViewTopCompanies, 0)
		require.NoError(t, err)

		ranking, ok := result.(domain.Ranking)
		require.True(t, ok)
		require.Len(t, ranking.Entries, 4)
		assert.Equal(t, "Gamma", ranking.Entries[0].Label)
		assert.Equal(t, "Beta", ranking.Entries[3].Label)
	})

	t.Run("status distribution", func(t *testing.T) {
		result, err := svc.ComputeView(ctx, domain.ViewStatusDistribution, 0)
		require.NoError(t, err)

		breakdown, ok := result.(domain.StatusBreakdown)
		require.True(t, ok)
		assert.Len(t, breakdown.Counts, 3)
	})

	t.Run("unknown view", func(t *testing.T) {
		_, err := svc.ComputeView(ctx, domain.ViewKind("bogus"), 0)
		assert.ErrorIs(t, err, ErrUnknownView)
	})
}

func TestComputeViewColumnUnavailable(t *testing.T) {
	svc := newTestService(t, "name,funding_total_usd\nAcme,100\n")

	_, err := svc.ComputeView(context.Background(), domain.ViewStatusDistribution, 0)
	assert.ErrorIs(t, err, analytics.ErrColumnUnavailable)
}

func TestClampTopN(t *testing.T) {
	svc := newTestService(t, sampleCSV)

	tests := []struct {
		in   int
		want int
	}{
		{0, DefaultTopN},
		{-3, DefaultTopN},
		{2, MinTopN},
		{5, 5},
		{17, 17},
		{30, 30},
		{100, MaxTopN},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, svc.clampTopN(tt.in))
	}
}

func TestConfiguredDefaultTopN(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "investments.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	cfg := &config.Config{}
	cfg.Data.CandidatePaths = []string{path}
	cfg.Data.DefaultTopN = 15

	svc := NewViewService(cfg, dataprocessing.NewLoader(nil), nil, nil)

	assert.Equal(t, 15, svc.clampTopN(0))

	_, _, def := svc.Limits()
	assert.Equal(t, 15, def)
}

func TestInfo(t *testing.T) {
	svc := newTestService(t, sampleCSV)

	info, err := svc.Info(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, info.RecordCount)
	assert.Contains(t, info.Columns, domain.ColumnStatus)
}

func TestUpload(t *testing.T) {
	svc := newTestService(t, sampleCSV)
	ctx := context.Background()

	t.Run("replaces the active source", func(t *testing.T) {
		result, err := svc.Upload(ctx, "new.csv", []byte("name,funding_total_usd\nZeta,42\n"))
		require.NoError(t, err)

		assert.NotEmpty(t, result.UploadID)
		assert.Equal(t, 1, result.RecordCount)

		info, err := svc.Info(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, info.RecordCount)
	})

	t.Run("rejects empty payload", func(t *testing.T) {
		_, err := svc.Upload(ctx, "empty.csv", nil)
		assert.ErrorIs(t, err, ErrEmptyUpload)
	})

	t.Run("rejects unparseable payload without switching source", func(t *testing.T) {
		before, err := svc.Info(ctx)
		require.NoError(t, err)

		_, err = svc.Upload(ctx, "bad.csv", []byte("alpha,beta\n1,2\n"))
		assert.ErrorIs(t, err, dataprocessing.ErrParseFailure)

		after, err := svc.Info(ctx)
		require.NoError(t, err)
		assert.Equal(t, before.Source, after.Source)
	})
}

func TestDatasetNotFound(t *testing.T) {
	cfg := &config.Config{}
	cfg.Data.CandidatePaths = []string{filepath.Join(t.TempDir(), "missing.csv")}

	svc := NewViewService(cfg, dataprocessing.NewLoader(nil), nil, nil)

	_, err := svc.Dataset(context.Background())
	assert.ErrorIs(t, err, dataprocessing.ErrSourceNotFound)
}
