package finance

import (
	"math"

	"github.com/futig/docgen-backend/internal/entity"
)

// OptimalRatios is the reference share of monthly spend per category.
var OptimalRatios = map[string]float64{
	"Development": 0.40,
	"Marketing":   0.25,
	"Operations":  0.20,
	"Legal":       0.05,
	"Equipment":   0.05,
	"Office":      0.05,
}

// Score starts at 100 and loses one point per percentage point of deviation
// from OptimalRatios, clamped to [0, 100].
func Score(b *entity.ExpenseBreakdown) entity.OptimizationScore {
	score := 100.0
	deviations := make(map[string]entity.CategoryDeviation, len(OptimalRatios))

	for category, optimal := range OptimalRatios {
		var actual float64
		if b.Total > 0 {
			actual = b.Totals[category] / b.Total
		}
		deviation := math.Abs(actual - optimal)
		deviations[category] = entity.CategoryDeviation{
			ActualRatio:  actual,
			OptimalRatio: optimal,
			Deviation:    deviation,
		}
		score -= deviation * 100
	}

	return entity.OptimizationScore{
		Score:         math.Max(0, math.Min(100, score)),
		Deviations:    deviations,
		TotalExpenses: b.Total,
	}
}
