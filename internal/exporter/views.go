package exporter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"siacli/pkg/contracts/domain"
)

// ViewExporter flattens view results into CSV report files.
type ViewExporter struct {
	writer  *CSVWriter
	baseDir string
}

// NewViewExporter creates a view exporter writing under baseDir.
func NewViewExporter(baseDir string) *ViewExporter {
	return &ViewExporter{
		writer:  NewCSVWriter(baseDir),
		baseDir: baseDir,
	}
}

// Export writes one view result as a CSV file named after the view kind.
func (e *ViewExporter) Export(kind domain.ViewKind, result interface{}) error {
	headers, records, err := Tabulate(kind, result)
	if err != nil {
		return err
	}
	return e.writer.WriteSimpleCSV(string(kind)+".csv", headers, records)
}

// ExportJSON writes the raw view payload as an indented JSON file.
func (e *ViewExporter) ExportJSON(kind domain.ViewKind, result interface{}) error {
	data, err := json.MarshalIndent(map[string]interface{}{
		"kind": kind,
		"data": result,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal view %s: %w", kind, err)
	}

	path := filepath.Join(e.baseDir, string(kind)+".json")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Tabulate converts a view result into a CSV header row and records.
// The layouts mirror how each view is presented: rankings as label/value
// pairs, distributions as per-bucket rows, matrices as one row per field.
func Tabulate(kind domain.ViewKind, result interface{}) ([]string, [][]string, error) {
	switch v := result.(type) {
	case domain.OverviewSummary:
		return []string{"metric", "value"}, [][]string{
			{"total_funding", formatFloat(v.TotalFunding)},
			{"unique_startups", formatInt(v.UniqueStartups)},
			{"avg_funding", formatFloat(v.AvgFunding)},
			{"record_count", formatInt(v.RecordCount)},
		}, nil

	case domain.Ranking:
		records := make([][]string, 0, len(v.Entries))
		for _, e := range v.Entries {
			records = append(records, []string{e.Label, formatFloat(e.Value)})
		}
		return []string{v.GroupKey, "value"}, records, nil

	case domain.TrendSeries:
		records := make([][]string, 0, len(v.Points))
		for _, p := range v.Points {
			records = append(records, []string{formatInt(p.Year), formatFloat(p.Total)})
		}
		return []string{"year", "total_funding"}, records, nil

	case domain.StatusBreakdown:
		records := make([][]string, 0, len(v.Counts))
		for _, c := range v.Counts {
			records = append(records, []string{c.Status, formatInt(c.Count)})
		}
		return []string{"status", "count"}, records, nil

	case domain.CorrelationScatter:
		records := make([][]string, 0, len(v.Points)+1)
		records = append(records, []string{"coefficient", formatFloat(v.Coefficient), ""})
		for _, p := range v.Points {
			records = append(records, []string{"point", formatInt(p.FundingRounds), formatFloat(p.FundingTotalUSD)})
		}
		return []string{"row", "funding_rounds", "funding_total_usd"}, records, nil

	case domain.CategoryDistribution:
		records := make([][]string, 0, len(v.Categories))
		for _, c := range v.Categories {
			records = append(records, []string{
				c.Category,
				formatInt(c.Count),
				formatFloat(c.Quartiles.Min),
				formatFloat(c.Quartiles.Q1),
				formatFloat(c.Quartiles.Median),
				formatFloat(c.Quartiles.Q3),
				formatFloat(c.Quartiles.Max),
			})
		}
		return []string{"category", "count", "min", "q1", "median", "q3", "max"}, records, nil

	case domain.CorrelationMatrix:
		headers := append([]string{"field"}, v.Fields...)
		records := make([][]string, 0, len(v.Fields))
		for i, field := range v.Fields {
			row := []string{field}
			for j := range v.Fields {
				cell := v.Cells[i][j]
				if cell.Defined {
					row = append(row, formatFloat(cell.Value))
				} else {
					row = append(row, "")
				}
			}
			records = append(records, row)
		}
		return headers, records, nil
	}

	return nil, nil, fmt.Errorf("view %s has no tabular layout", kind)
}
