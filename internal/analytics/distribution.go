package analytics

import (
	"sort"

	"siacli/pkg/contracts/domain"
)

// topCategoryCount fixes how many categories the funding distribution
// view covers.
const topCategoryCount = 10

// StatusDistribution counts records per distinct status value. The
// status column must be structurally present in the source; a dataset
// without it yields ErrColumnUnavailable rather than an empty breakdown,
// because "no status column" and "no status values" are different
// user-facing signals. When the column exists but rows are empty, the
// empty string is counted as its own category.
func StatusDistribution(ds *domain.Dataset) (domain.StatusBreakdown, error) {
	if !ds.HasColumn(domain.ColumnStatus) {
		return domain.StatusBreakdown{}, ErrColumnUnavailable
	}

	counts := make(map[string]int)
	var order []string
	for _, rec := range ds.Records {
		if _, ok := counts[rec.Status]; !ok {
			order = append(order, rec.Status)
		}
		counts[rec.Status]++
	}

	// Most frequent first; ties keep first-seen order.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	out := make([]domain.StatusCount, 0, len(order))
	for _, status := range order {
		out = append(out, domain.StatusCount{Status: status, Count: counts[status]})
	}

	return domain.StatusBreakdown{Counts: out}, nil
}

// CategoryFundingDistribution finds the most frequent primary categories
// by record count and returns, per category, the full set of funding
// values plus the quartile summary a boxplot needs. Categories tied at
// the cut keep first-seen order.
func CategoryFundingDistribution(ds *domain.Dataset) domain.CategoryDistribution {
	counts := make(map[string]int)
	amounts := make(map[string][]float64)
	var order []string

	for _, rec := range ds.Records {
		cat := rec.PrimaryCategory
		if _, ok := counts[cat]; !ok {
			order = append(order, cat)
		}
		counts[cat]++
		amounts[cat] = append(amounts[cat], rec.FundingTotalUSD)
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > topCategoryCount {
		order = order[:topCategoryCount]
	}

	categories := make([]domain.CategoryFunding, 0, len(order))
	for _, cat := range order {
		categories = append(categories, domain.CategoryFunding{
			Category:  cat,
			Count:     counts[cat],
			Amounts:   amounts[cat],
			Quartiles: quartiles(amounts[cat]),
		})
	}

	return domain.CategoryDistribution{Categories: categories}
}

// quartiles computes the five-number summary plus Tukey outliers
// (beyond 1.5×IQR from the quartiles) over a copy of the values.
func quartiles(values []float64) domain.FundingQuartiles {
	if len(values) == 0 {
		return domain.FundingQuartiles{}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	q := domain.FundingQuartiles{
		Min:    sorted[0],
		Q1:     percentile(sorted, 0.25),
		Median: percentile(sorted, 0.50),
		Q3:     percentile(sorted, 0.75),
		Max:    sorted[len(sorted)-1],
	}

	iqr := q.Q3 - q.Q1
	lo, hi := q.Q1-1.5*iqr, q.Q3+1.5*iqr
	for _, v := range sorted {
		if v < lo || v > hi {
			q.Outliers = append(q.Outliers, v)
		}
	}

	return q
}

// percentile returns the linearly interpolated p-quantile of a sorted
// sample.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := p * float64(len(sorted)-1)
	lower := int(pos)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[lower]
	}
	frac := pos - float64(lower)
	return sorted[lower]*(1-frac) + sorted[upper]*frac
}
