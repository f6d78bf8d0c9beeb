package domain

// ViewKind identifies a derived analytic view over an investment dataset.
type ViewKind string

const (
	ViewOverview           ViewKind = "overview"
	ViewTopCompanies       ViewKind = "top_companies"
	ViewTopCountries       ViewKind = "top_countries"
	ViewActiveMarkets      ViewKind = "active_markets"
	ViewFundingTrend       ViewKind = "funding_trend"
	ViewStatusDistribution ViewKind = "status_distribution"
	ViewRoundsVsFunding    ViewKind = "rounds_vs_funding"
	ViewCategoryBoxplot    ViewKind = "category_boxplot"
	ViewCorrelationMatrix  ViewKind = "correlation_matrix"
)

// ViewKinds lists every supported view in presentation order.
func ViewKinds() []ViewKind {
	return []ViewKind{
		ViewOverview,
		ViewTopCompanies,
		ViewTopCountries,
		ViewActiveMarkets,
		ViewFundingTrend,
		ViewStatusDistribution,
		ViewRoundsVsFunding,
		ViewCategoryBoxplot,
		ViewCorrelationMatrix,
	}
}

// Valid reports whether k names a supported view.
func (k ViewKind) Valid() bool {
	for _, v := range ViewKinds() {
		if v == k {
			return true
		}
	}
	return false
}

// Limited reports whether the view accepts a top-N limit parameter.
func (k ViewKind) Limited() bool {
	switch k {
	case ViewTopCompanies, ViewTopCountries, ViewActiveMarkets:
		return true
	}
	return false
}

// OverviewSummary holds the headline dataset metrics.
type OverviewSummary struct {
	TotalFunding   float64            `json:"total_funding"`
	UniqueStartups int                `json:"unique_startups"`
	AvgFunding     float64            `json:"avg_funding"`
	RecordCount    int                `json:"record_count"`
	Preview        []InvestmentRecord `json:"preview"`
}

// RankedEntry is a single (label, value) pair in a ranking view.
type RankedEntry struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Ranking is a rank-limited view result, ordered ascending by value so a
// horizontal bar presentation reads largest at the top.
type Ranking struct {
	GroupKey string        `json:"group_key"`
	Entries  []RankedEntry `json:"entries"`
}

// TrendPoint is one year's aggregated funding total.
type TrendPoint struct {
	Year  int     `json:"year"`
	Total float64 `json:"total"`
}

// TrendSeries is a time series of funding totals, ordered by year.
type TrendSeries struct {
	Points []TrendPoint `json:"points"`
}

// StatusCount is the record count for one status value. An empty status
// string is a category of its own.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// StatusBreakdown is the per-status record distribution.
type StatusBreakdown struct {
	Counts []StatusCount `json:"counts"`
}

// ScatterPoint is one (rounds, funding) observation.
type ScatterPoint struct {
	FundingRounds   int     `json:"funding_rounds"`
	FundingTotalUSD float64 `json:"funding_total_usd"`
}

// CorrelationScatter pairs a Pearson coefficient with the filtered
// observations it was computed from.
type CorrelationScatter struct {
	Coefficient float64        `json:"coefficient"`
	SampleSize  int            `json:"sample_size"`
	Points      []ScatterPoint `json:"points"`
}

// FundingQuartiles summarizes a category's funding distribution for
// boxplot rendering. Outliers fall outside 1.5×IQR of the quartiles.
type FundingQuartiles struct {
	Min      float64   `json:"min"`
	Q1       float64   `json:"q1"`
	Median   float64   `json:"median"`
	Q3       float64   `json:"q3"`
	Max      float64   `json:"max"`
	Outliers []float64 `json:"outliers,omitempty"`
}

// CategoryFunding holds the full funding value set for one category.
type CategoryFunding struct {
	Category  string           `json:"category"`
	Count     int              `json:"count"`
	Amounts   []float64        `json:"amounts"`
	Quartiles FundingQuartiles `json:"quartiles"`
}

// CategoryDistribution is the boxplot view result, restricted to the
// most frequent categories.
type CategoryDistribution struct {
	Categories []CategoryFunding `json:"categories"`
}

// CorrelationCell is one entry of a correlation matrix. Defined is false
// when either field has zero variance over the sample.
type CorrelationCell struct {
	Value   float64 `json:"value"`
	Defined bool    `json:"defined"`
}

// CorrelationMatrix is the pairwise Pearson correlation across a fixed
// set of numeric fields. Cells[i][j] correlates Fields[i] with Fields[j].
type CorrelationMatrix struct {
	Fields []string            `json:"fields"`
	Cells  [][]CorrelationCell `json:"cells"`
}
