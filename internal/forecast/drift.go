package forecast

import "github.com/shopspring/decimal"

// DefaultDriftThreshold — порог существенности изменения требуемого взноса.
// Подобран вручную; гистерезис нужен, чтобы ежедневные пересчеты с шумом в
// пару процентов не засыпали пользователей уведомлениями.
var DefaultDriftThreshold = decimal.NewFromFloat(0.10)

// Drift решает, достаточно ли новый требуемый взнос отличается от
// сохраненного, чтобы корректировать план. Сравнение строгое: относительное
// изменение ровно в порог корректировку не запускает. Нулевой сохраненный
// взнос считается устаревшим при любом положительном новом.
func Drift(oldAmount, newAmount, threshold decimal.Decimal) bool {
	if oldAmount.Sign() == 0 {
		return newAmount.Sign() > 0
	}
	relative := newAmount.Sub(oldAmount).Abs().Div(oldAmount.Abs())
	return relative.GreaterThan(threshold)
}

// AdjustmentReason — человекочитаемая причина корректировки для записи аудита.
func AdjustmentReason(oldAmount, newAmount decimal.Decimal) string {
	if newAmount.LessThan(oldAmount) {
		return "опережение плана"
	}
	return "отставание от плана"
}
