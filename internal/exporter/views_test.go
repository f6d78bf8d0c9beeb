package exporter

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siacli/pkg/contracts/domain"
)

func TestTabulate(t *testing.T) {
	t.Run("ranking", func(t *testing.T) {
		headers, records, err := Tabulate(domain.ViewTopCompanies, domain.Ranking{
			GroupKey: "name",
			Entries: []domain.RankedEntry{
				{Label: "Acme", Value: 100},
				{Label: "Beta", Value: 250.5},
			},
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"name", "value"}, headers)
		require.Len(t, records, 2)
		assert.Equal(t, []string{"Acme", "100.00"}, records[0])
		assert.Equal(t, []string{"Beta", "250.50"}, records[1])
	})

	t.Run("overview", func(t *testing.T) {
		headers, records, err := Tabulate(domain.ViewOverview, domain.OverviewSummary{
			TotalFunding:   1000,
			UniqueStartups: 3,
			AvgFunding:     333.33,
			RecordCount:    3,
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"metric", "value"}, headers)
		assert.Equal(t, []string{"total_funding", "1000.00"}, records[0])
		assert.Equal(t, []string{"record_count", "3"}, records[3])
	})

	t.Run("correlation matrix with undefined cells", func(t *testing.T) {
		_, records, err := Tabulate(domain.ViewCorrelationMatrix, domain.CorrelationMatrix{
			Fields: []string{"a", "b"},
			Cells: [][]domain.CorrelationCell{
				{{Value: 1, Defined: true}, {Defined: false}},
				{{Defined: false}, {Value: 1, Defined: true}},
			},
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"a", "1.00", ""}, records[0])
		assert.Equal(t, []string{"b", "", "1.00"}, records[1])
	})

	t.Run("unsupported payload", func(t *testing.T) {
		_, _, err := Tabulate(domain.ViewOverview, struct{}{})
		assert.Error(t, err)
	})
}

func TestViewExporter(t *testing.T) {
	dir := t.TempDir()
	ex := NewViewExporter(dir)

	ranking := domain.Ranking{
		GroupKey: "country",
		Entries:  []domain.RankedEntry{{Label: "USA", Value: 42}},
	}

	require.NoError(t, ex.Export(domain.ViewTopCountries, ranking))

	content, err := os.ReadFile(filepath.Join(dir, "top_countries.csv"))
	require.NoError(t, err)

	// UTF-8 BOM for Excel
	assert.True(t, bytes.HasPrefix(content, []byte{0xEF, 0xBB, 0xBF}))
	assert.Contains(t, string(content), "USA,42.00")

	require.NoError(t, ex.ExportJSON(domain.ViewTopCountries, ranking))

	raw, err := os.ReadFile(filepath.Join(dir, "top_countries.json"))
	require.NoError(t, err)

	var payload struct {
		Kind string         `json:"kind"`
		Data domain.Ranking `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.Equal(t, "top_countries", payload.Kind)
	assert.Equal(t, ranking.Entries, payload.Data.Entries)
}

func TestCSVWriterAppend(t *testing.T) {
	dir := t.TempDir()
	w := NewCSVWriter(dir)

	require.NoError(t, w.WriteSimpleCSV("out.csv", []string{"a", "b"}, [][]string{{"1", "2"}}))
	require.NoError(t, w.WriteCSV("out.csv", WriteOptions{
		Records: [][]string{{"3", "4"}},
		Append:  true,
	}))

	content, err := os.ReadFile(filepath.Join(dir, "out.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "1,2")
	assert.Contains(t, string(content), "3,4")
}
