package analytics

import (
	"math"

	"siacli/pkg/contracts/domain"
)

// matrixFields is the fixed field triple the correlation matrix covers.
var matrixFields = []string{
	domain.ColumnFundingTotalUSD,
	domain.ColumnFundingRounds,
	domain.ColumnFirstFundingYear,
}

// FundingVsRounds computes the Pearson correlation between funding
// rounds and funding totals over the records with both values positive,
// returning the filtered point set alongside the coefficient for
// scatter rendering. Fewer than two surviving points, or a zero-variance
// sample, yields ErrInsufficientData instead of a default coefficient.
func FundingVsRounds(ds *domain.Dataset) (domain.CorrelationScatter, error) {
	var (
		points []domain.ScatterPoint
		xs, ys []float64
	)

	for _, rec := range ds.Records {
		if rec.FundingRounds <= 0 || rec.FundingTotalUSD <= 0 {
			continue
		}
		points = append(points, domain.ScatterPoint{
			FundingRounds:   rec.FundingRounds,
			FundingTotalUSD: rec.FundingTotalUSD,
		})
		xs = append(xs, float64(rec.FundingRounds))
		ys = append(ys, rec.FundingTotalUSD)
	}

	r, ok := pearson(xs, ys)
	if !ok {
		return domain.CorrelationScatter{}, ErrInsufficientData
	}

	return domain.CorrelationScatter{
		Coefficient: r,
		SampleSize:  len(points),
		Points:      points,
	}, nil
}

// CorrelationMatrix computes pairwise Pearson correlation across the
// fixed numeric field triple over all records. Diagonal entries are
// exactly 1.0 for fields with non-zero variance. A pair involving a
// zero-variance field is marked undefined; it is never smuggled out as
// 0 or NaN.
func CorrelationMatrix(ds *domain.Dataset) domain.CorrelationMatrix {
	vectors := make([][]float64, len(matrixFields))
	for i, field := range matrixFields {
		vectors[i] = fieldVector(ds, field)
	}

	cells := make([][]domain.CorrelationCell, len(matrixFields))
	for i := range matrixFields {
		cells[i] = make([]domain.CorrelationCell, len(matrixFields))
		for j := range matrixFields {
			if i == j {
				// Self-correlation is exact when defined at all.
				if variance(vectors[i]) > 0 {
					cells[i][j] = domain.CorrelationCell{Value: 1.0, Defined: true}
				}
				continue
			}
			if r, ok := pearson(vectors[i], vectors[j]); ok {
				cells[i][j] = domain.CorrelationCell{Value: r, Defined: true}
			}
		}
	}

	return domain.CorrelationMatrix{Fields: matrixFields, Cells: cells}
}

// fieldVector extracts one numeric column across all records.
func fieldVector(ds *domain.Dataset, field string) []float64 {
	out := make([]float64, len(ds.Records))
	for i, rec := range ds.Records {
		switch field {
		case domain.ColumnFundingTotalUSD:
			out[i] = rec.FundingTotalUSD
		case domain.ColumnFundingRounds:
			out[i] = float64(rec.FundingRounds)
		case domain.ColumnFirstFundingYear:
			out[i] = float64(rec.FirstFundingYear)
		}
	}
	return out
}

// pearson computes the Pearson correlation coefficient of two paired
// samples. The second return value is false when the coefficient is
// undefined: mismatched or short samples, or zero variance on either
// side.
func pearson(xs, ys []float64) (float64, bool) {
	if len(xs) != len(ys) || len(xs) < 2 {
		return 0, false
	}

	n := float64(len(xs))
	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX, meanY := sumX/n, sumY/n

	var cov, varX, varY float64
	for i := range xs {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}

	if varX == 0 || varY == 0 {
		return 0, false
	}

	return cov / math.Sqrt(varX*varY), true
}

// variance returns the (uncorrected) sample variance.
func variance(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	n := float64(len(xs))
	var sum float64
	for _, x := range xs {
		sum += x
	}
	mean := sum / n
	var acc float64
	for _, x := range xs {
		d := x - mean
		acc += d * d
	}
	return acc / n
}
