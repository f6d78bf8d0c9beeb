package analytics

import (
	"sort"

	"siacli/pkg/contracts/domain"
)

// GroupKey selects the grouping field for ranking views.
type GroupKey string

const (
	GroupByName     GroupKey = domain.ColumnName
	GroupByCountry  GroupKey = domain.ColumnCountry
	GroupByCategory GroupKey = domain.ColumnPrimaryCategory
)

// valueOf extracts the grouping value from a record. An empty value is a
// legitimate bucket of its own ("unknown"); records are never dropped
// from totals because the key is missing.
func (k GroupKey) valueOf(rec domain.InvestmentRecord) string {
	switch k {
	case GroupByCountry:
		return rec.Country
	case GroupByCategory:
		return rec.PrimaryCategory
	default:
		return rec.Name
	}
}

// group accumulates per-key state while preserving first-seen order,
// which is the tie-break for equal values.
type group struct {
	label string
	value float64
	seen  map[string]struct{}
}

// TopByFundingSum groups records by key, sums funding_total_usd per
// group, and returns the n largest groups ordered ascending by sum so a
// bar presentation reads largest at the top. Ties keep first-seen input
// order; n larger than the group count returns every group. Coerced
// zero-funding records participate in grouping and contribute 0.
func TopByFundingSum(ds *domain.Dataset, key GroupKey, n int) domain.Ranking {
	return topGroups(ds, key, n, func(g *group, rec domain.InvestmentRecord) {
		g.value += rec.FundingTotalUSD
	}, nil)
}

// TopByDistinctCount groups records by key and ranks groups by the
// number of distinct values of countKey within each group. Tie and
// clamp policy matches TopByFundingSum.
func TopByDistinctCount(ds *domain.Dataset, key, countKey GroupKey, n int) domain.Ranking {
	return topGroups(ds, key, n, nil, func(g *group, rec domain.InvestmentRecord) {
		if g.seen == nil {
			g.seen = make(map[string]struct{})
		}
		g.seen[countKey.valueOf(rec)] = struct{}{}
		g.value = float64(len(g.seen))
	})
}

// topGroups runs the shared group-accumulate-rank pipeline. Exactly one
// of sum or count is non-nil.
func topGroups(ds *domain.Dataset, key GroupKey, n int, sum, count func(*group, domain.InvestmentRecord)) domain.Ranking {
	byLabel := make(map[string]*group)
	var order []*group

	accumulate := sum
	if accumulate == nil {
		accumulate = count
	}

	for _, rec := range ds.Records {
		label := key.valueOf(rec)
		g, ok := byLabel[label]
		if !ok {
			g = &group{label: label}
			byLabel[label] = g
			order = append(order, g)
		}
		accumulate(g, rec)
	}

	// Stable sort keeps first-seen order for equal values.
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].value > order[j].value
	})

	if n > len(order) || n < 0 {
		n = len(order)
	}
	top := order[:n]

	// Ascending for display: smallest of the top-N first.
	entries := make([]domain.RankedEntry, 0, len(top))
	for i := len(top) - 1; i >= 0; i-- {
		entries = append(entries, domain.RankedEntry{Label: top[i].label, Value: top[i].value})
	}

	return domain.Ranking{GroupKey: string(key), Entries: entries}
}
