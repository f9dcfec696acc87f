package forecast

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/valeriaulyamaeva/goal-forecast-engine/models"
)

// EstimateRate считает среднюю недельную норму накоплений по окну истории:
// сумма транзакций типа "income" в окне, деленная на число периодов.
// Вариант «только доходы» применяется единообразно во всем движке.
// Ноль означает «недостаточно данных», а не отсутствие возможности копить.
func EstimateRate(records []models.TransactionRecord, windowPeriods int) decimal.Decimal {
	if windowPeriods < 1 {
		return decimal.Zero
	}

	total := decimal.Zero
	qualified := false
	for _, record := range records {
		if record.Type != models.TransactionIncome {
			continue
		}
		total = total.Add(record.Amount)
		qualified = true
	}
	if !qualified {
		return decimal.Zero
	}

	return total.Div(decimal.NewFromInt(int64(windowPeriods)))
}

// PooledRate — средняя скорость пополнения общей цели с момента создания:
// накопленная сумма, деленная на число прошедших недель (минимум одна).
// Скорость отдельных участников намеренно не выделяется.
func PooledRate(current decimal.Decimal, createdAt, now time.Time) decimal.Decimal {
	periods := int(now.Sub(createdAt) / PeriodDuration)
	if periods < 1 {
		periods = 1
	}
	return current.Div(decimal.NewFromInt(int64(periods)))
}
