package analytics

import (
	"siacli/pkg/contracts/domain"
)

// previewSize bounds the head-of-data sample in the overview.
const previewSize = 10

// Overview computes the headline metrics: total and mean funding, the
// number of distinct startup names, the record count, and a small
// preview of the records.
func Overview(ds *domain.Dataset) domain.OverviewSummary {
	var total float64
	names := make(map[string]struct{})
	for _, rec := range ds.Records {
		total += rec.FundingTotalUSD
		names[rec.Name] = struct{}{}
	}

	avg := 0.0
	if len(ds.Records) > 0 {
		avg = total / float64(len(ds.Records))
	}

	n := previewSize
	if n > len(ds.Records) {
		n = len(ds.Records)
	}
	preview := make([]domain.InvestmentRecord, n)
	copy(preview, ds.Records[:n])

	return domain.OverviewSummary{
		TotalFunding:   total,
		UniqueStartups: len(names),
		AvgFunding:     avg,
		RecordCount:    len(ds.Records),
		Preview:        preview,
	}
}
