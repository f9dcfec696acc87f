package forecast

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/valeriaulyamaeva/goal-forecast-engine/models"
)

// Множители трех сценариев относительно исторической нормы накоплений.
var (
	ConservativeMultiplier = decimal.NewFromFloat(0.75)
	RealisticMultiplier    = decimal.NewFromInt(1)
	OptimisticMultiplier   = decimal.NewFromFloat(1.2)
)

// Project строит три траектории накоплений на periods недель вперед. Все три
// линии начинаются с current в нулевом периоде и имеют одинаковую длину, так
// что виджет сравнивает их напрямую как полосу прогноза.
//
// При нулевой или отрицательной норме все три линии остаются плоскими на
// уровне current: экстраполяция «антинакоплений» сознательно не делается.
func Project(current, ratePerPeriod decimal.Decimal, periods int) models.ScenarioSeries {
	if periods < 0 {
		periods = 0
	}

	flat := ratePerPeriod.Sign() <= 0
	series := make(models.ScenarioSeries, 0, periods+1)
	for i := 0; i <= periods; i++ {
		point := models.ScenarioPoint{PeriodLabel: fmt.Sprintf("неделя %d", i)}
		if flat || i == 0 {
			point.Conservative = current
			point.Realistic = current
			point.Optimistic = current
		} else {
			step := ratePerPeriod.Mul(decimal.NewFromInt(int64(i)))
			point.Conservative = current.Add(step.Mul(ConservativeMultiplier))
			point.Realistic = current.Add(step.Mul(RealisticMultiplier))
			point.Optimistic = current.Add(step.Mul(OptimisticMultiplier))
		}
		series = append(series, point)
	}
	return series
}
