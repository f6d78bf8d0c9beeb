package dataprocessing

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"siacli/pkg/contracts/domain"
)

// columnIndices holds the positions of recognized columns in the source
// header. -1 marks a column the source does not declare.
type columnIndices struct {
	name     int
	country  int
	category int
	status   int
	funding  int
	rounds   int
	year     int
}

// ParseCSV reads delimited tabular text with a header row and produces a
// normalized Dataset. Unrecognized columns are ignored; malformed cells
// in recognized numeric columns coerce to zero. A structurally invalid
// source (no header, inconsistent framing) yields ErrParseFailure.
func ParseCSV(r io.Reader, source string) (*domain.Dataset, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: read source: %v", ErrParseFailure, err)
	}

	// Strip UTF-8 BOM so the first header cell matches by name.
	content = bytes.TrimPrefix(content, []byte{0xEF, 0xBB, 0xBF})

	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFailure, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: source has no header row", ErrParseFailure)
	}

	return buildDataset(source, rows[0], rows[1:])
}

// ParseWorkbook reads the same tabular layout from an Excel workbook.
// The first sheet containing a recognizable header row is used.
func ParseWorkbook(r io.Reader, source string) (*domain.Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: open workbook: %v", ErrParseFailure, err)
	}
	defer f.Close()

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil || len(rows) == 0 {
			continue
		}
		if cols := findColumnIndices(rows[0]); cols.anyRecognized() {
			return buildDataset(source, rows[0], rows[1:])
		}
	}

	return nil, fmt.Errorf("%w: no sheet with a recognizable header row", ErrParseFailure)
}

// buildDataset maps the header, normalizes the data rows, and assembles
// the immutable Dataset.
func buildDataset(source string, header []string, rows [][]string) (*domain.Dataset, error) {
	cols := findColumnIndices(header)
	if !cols.anyRecognized() {
		return nil, fmt.Errorf("%w: no recognized columns in header %v", ErrParseFailure, header)
	}

	records := buildRecords(rows, cols, DefaultCoercions())
	return domain.NewDataset(source, cols.columns(), records), nil
}

// findColumnIndices locates recognized columns in the header. Exact
// canonical names match first; a lowercase alias fallback absorbs the
// naming drift seen across dataset exports.
func findColumnIndices(header []string) columnIndices {
	cols := columnIndices{
		name:     -1,
		country:  -1,
		category: -1,
		status:   -1,
		funding:  -1,
		rounds:   -1,
		year:     -1,
	}

	for i, col := range header {
		clean := strings.TrimSpace(strings.TrimPrefix(col, "\ufeff"))

		switch clean {
		case domain.ColumnName:
			cols.name = i
			continue
		case domain.ColumnCountry:
			cols.country = i
			continue
		case domain.ColumnPrimaryCategory:
			cols.category = i
			continue
		case domain.ColumnStatus:
			cols.status = i
			continue
		case domain.ColumnFundingTotalUSD:
			cols.funding = i
			continue
		case domain.ColumnFundingRounds:
			cols.rounds = i
			continue
		case domain.ColumnFirstFundingYear:
			cols.year = i
			continue
		}

		switch strings.ToLower(clean) {
		case "name", "company", "company_name", "startup":
			if cols.name == -1 {
				cols.name = i
			}
		case "country", "country_code":
			if cols.country == -1 {
				cols.country = i
			}
		case "primary_category", "category", "market", "category_list":
			if cols.category == -1 {
				cols.category = i
			}
		case "status":
			if cols.status == -1 {
				cols.status = i
			}
		case "funding_total_usd", "funding_total", "total_funding_usd":
			if cols.funding == -1 {
				cols.funding = i
			}
		case "funding_rounds", "rounds":
			if cols.rounds == -1 {
				cols.rounds = i
			}
		case "first_funding_year", "first_funding_at_year":
			if cols.year == -1 {
				cols.year = i
			}
		}
	}

	return cols
}

// anyRecognized reports whether at least one recognized column was found.
func (c columnIndices) anyRecognized() bool {
	return c.name != -1 || c.country != -1 || c.category != -1 || c.status != -1 ||
		c.funding != -1 || c.rounds != -1 || c.year != -1
}

// columns returns the canonical names of the columns the source declared,
// in the domain's fixed order. This is the Dataset's structural column
// set; presence here is what view-level availability checks consult.
func (c columnIndices) columns() []string {
	var present []string
	for _, col := range []struct {
		name string
		idx  int
	}{
		{domain.ColumnName, c.name},
		{domain.ColumnCountry, c.country},
		{domain.ColumnPrimaryCategory, c.category},
		{domain.ColumnStatus, c.status},
		{domain.ColumnFundingTotalUSD, c.funding},
		{domain.ColumnFundingRounds, c.rounds},
		{domain.ColumnFirstFundingYear, c.year},
	} {
		if col.idx != -1 {
			present = append(present, col.name)
		}
	}
	return present
}
