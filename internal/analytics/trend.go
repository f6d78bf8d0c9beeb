package analytics

import (
	"sort"

	"siacli/pkg/contracts/domain"
)

// trendYearFloor excludes pre-1981 years and, with it, the 0 sentinel
// recorded for unparseable first funding years.
const trendYearFloor = 1980

// FundingTrend sums funding_total_usd per first funding year, restricted
// to years after the floor, ordered ascending by year. An empty series
// after filtering is a valid result.
func FundingTrend(ds *domain.Dataset) domain.TrendSeries {
	totals := make(map[int]float64)
	for _, rec := range ds.Records {
		if rec.FirstFundingYear <= trendYearFloor {
			continue
		}
		totals[rec.FirstFundingYear] += rec.FundingTotalUSD
	}

	years := make([]int, 0, len(totals))
	for year := range totals {
		years = append(years, year)
	}
	sort.Ints(years)

	points := make([]domain.TrendPoint, 0, len(years))
	for _, year := range years {
		points = append(points, domain.TrendPoint{Year: year, Total: totals[year]})
	}

	return domain.TrendSeries{Points: points}
}
