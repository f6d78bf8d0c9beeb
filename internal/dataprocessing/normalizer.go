package dataprocessing

import (
	"strconv"
	"strings"

	"siacli/pkg/contracts/domain"
)

// NumericKind selects the coercion target for a configured column.
type NumericKind int

const (
	// KindFloat coerces to float64, keeping fractional precision.
	KindFloat NumericKind = iota
	// KindInt coerces to int, truncating fractional input.
	KindInt
)

// CoercionTable maps a column name to its numeric target. Columns not
// listed here pass through as strings.
type CoercionTable map[string]NumericKind

// DefaultCoercions returns the coercion table for investment datasets.
func DefaultCoercions() CoercionTable {
	return CoercionTable{
		domain.ColumnFundingTotalUSD:  KindFloat,
		domain.ColumnFundingRounds:    KindInt,
		domain.ColumnFirstFundingYear: KindInt,
	}
}

// CoerceFloat parses s as a float64. Thousands separators and a leading
// currency sign are tolerated. Unparseable input yields 0.
func CoerceFloat(s string) float64 {
	v, err := strconv.ParseFloat(cleanNumeric(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// CoerceInt parses s as an int, truncating fractional input.
// Unparseable input yields 0.
func CoerceInt(s string) int {
	cleaned := cleanNumeric(s)
	if v, err := strconv.ParseInt(cleaned, 10, 64); err == nil {
		return int(v)
	}
	if v, err := strconv.ParseFloat(cleaned, 64); err == nil {
		return int(v)
	}
	return 0
}

// cleanNumeric strips the decorations spreadsheet exports put around
// numbers: surrounding whitespace, thousands separators, a currency sign.
func cleanNumeric(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimPrefix(s, "$")
	return s
}

// buildRecords converts raw rows into normalized investment records
// using the column mapping discovered from the header. Every configured
// numeric field present in the source is coerced with the zero-value
// fallback; fields absent from the source stay at their zero value and
// consumers must consult Dataset.HasColumn before reading them. Raw rows
// are not modified.
func buildRecords(rows [][]string, cols columnIndices, table CoercionTable) []domain.InvestmentRecord {
	records := make([]domain.InvestmentRecord, 0, len(rows))

	cell := func(row []string, idx int) string {
		if idx < 0 || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	// coerce applies the table's target kind for the column. Integer
	// targets truncate, float targets keep fractional precision.
	coerce := func(row []string, idx int, column string) float64 {
		if idx < 0 {
			return 0
		}
		switch table[column] {
		case KindInt:
			return float64(CoerceInt(cell(row, idx)))
		default:
			return CoerceFloat(cell(row, idx))
		}
	}

	for _, row := range rows {
		if isEmptyRow(row) {
			continue
		}
		records = append(records, domain.InvestmentRecord{
			Name:             cell(row, cols.name),
			Country:          cell(row, cols.country),
			PrimaryCategory:  cell(row, cols.category),
			Status:           cell(row, cols.status),
			FundingTotalUSD:  coerce(row, cols.funding, domain.ColumnFundingTotalUSD),
			FundingRounds:    int(coerce(row, cols.rounds, domain.ColumnFundingRounds)),
			FirstFundingYear: int(coerce(row, cols.year, domain.ColumnFirstFundingYear)),
		})
	}

	return records
}

// isEmptyRow reports whether every cell in the row is blank.
func isEmptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
