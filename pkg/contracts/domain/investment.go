package domain

// Column names recognized in an investment dataset source.
// Columns beyond these are ignored by the loader.
const (
	ColumnName             = "name"
	ColumnCountry          = "country"
	ColumnPrimaryCategory  = "primary_category"
	ColumnStatus           = "status"
	ColumnFundingTotalUSD  = "funding_total_usd"
	ColumnFundingRounds    = "funding_rounds"
	ColumnFirstFundingYear = "first_funding_year"
)

// UnknownYear is the sentinel stored when a first funding year cannot be
// parsed. Trend views must exclude it.
const UnknownYear = 0

// InvestmentRecord represents one startup investment row. A company may
// appear in multiple records (one per funding round in some exports), so
// Name is not a unique key. Numeric fields are always populated after
// normalization; unparseable input is coerced to zero.
type InvestmentRecord struct {
	Name             string  `json:"name"`
	Country          string  `json:"country,omitempty"`
	PrimaryCategory  string  `json:"primary_category,omitempty"`
	Status           string  `json:"status,omitempty"`
	FundingTotalUSD  float64 `json:"funding_total_usd"`
	FundingRounds    int     `json:"funding_rounds"`
	FirstFundingYear int     `json:"first_funding_year"`
}

// Dataset is an ordered collection of investment records together with
// the set of columns that were structurally present in the source.
// A Dataset is immutable once built; views are computed from it without
// modifying it.
type Dataset struct {
	Source  string             `json:"source"`
	Columns []string           `json:"columns"`
	Records []InvestmentRecord `json:"records"`

	columnSet map[string]struct{}
}

// NewDataset builds a Dataset from parsed records and the source's
// declared column set.
func NewDataset(source string, columns []string, records []InvestmentRecord) *Dataset {
	set := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		set[c] = struct{}{}
	}
	return &Dataset{
		Source:    source,
		Columns:   columns,
		Records:   records,
		columnSet: set,
	}
}

// HasColumn reports whether the named column was present in the source.
// This is a structural check: a column whose values are all empty still
// counts as present.
func (d *Dataset) HasColumn(name string) bool {
	if d.columnSet == nil {
		// Rebuild lazily for datasets decoded from JSON.
		d.columnSet = make(map[string]struct{}, len(d.Columns))
		for _, c := range d.Columns {
			d.columnSet[c] = struct{}{}
		}
	}
	_, ok := d.columnSet[name]
	return ok
}

// Len returns the number of records in the dataset.
func (d *Dataset) Len() int {
	return len(d.Records)
}

// Empty reports whether the dataset holds no records.
func (d *Dataset) Empty() bool {
	return len(d.Records) == 0
}
