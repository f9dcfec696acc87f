package forecast

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PeriodDuration — длина одного расчетного периода. Весь движок считает
// взносы понедельно.
const PeriodDuration = 7 * 24 * time.Hour

// Калибровочные константы. Подобраны вручную, статистической модели за ними
// нет; замена на доверительный интервал по дисперсии истории — открытый вопрос.
const (
	// ConfidenceEmpirical — уверенность прогноза, когда есть эмпирическая
	// норма накоплений по истории транзакций.
	ConfidenceEmpirical = 0.85
	// ConfidenceDeadlineOnly — уверенность, когда истории нет и план
	// построен только от дедлайна.
	ConfidenceDeadlineOnly = 0.6
	// DefaultHorizonPeriods — горизонт планирования для целей без дедлайна:
	// 90 дней недельными периодами.
	DefaultHorizonPeriods = 13
)

// ErrInvalidGoalState — цель с отрицательной целевой или текущей суммой
// (или общая цель без участников). Такие цели пропускаются до исправления
// данных.
var ErrInvalidGoalState = errors.New("некорректное состояние цели")

// Prediction — результат пересчета плана по одной цели.
type Prediction struct {
	RequiredContribution decimal.Decimal
	PredictedDate        time.Time
	Confidence           float64
}

// Predict строит план по цели: требуемый недельный взнос, прогнозную дату
// достижения и уверенность. horizonPeriods задает горизонт для целей без
// дедлайна (обычно DefaultHorizonPeriods).
func Predict(target, current decimal.Decimal, deadline *time.Time, ratePerPeriod decimal.Decimal, now time.Time, horizonPeriods int) (Prediction, error) {
	if target.IsNegative() || current.IsNegative() {
		return Prediction{}, fmt.Errorf("%w: целевая или текущая сумма отрицательна", ErrInvalidGoalState)
	}

	remaining := target.Sub(current)
	if remaining.Sign() <= 0 {
		// Цель достигнута: нулевой взнос, дата — сейчас, уверенность полная.
		return Prediction{RequiredContribution: decimal.Zero, PredictedDate: now, Confidence: 1.0}, nil
	}

	if horizonPeriods < 1 {
		horizonPeriods = DefaultHorizonPeriods
	}
	periods := horizonPeriods
	if deadline != nil {
		periods = PeriodsUntil(now, *deadline)
	}

	required := remaining.Div(decimal.NewFromInt(int64(periods))).Ceil()

	prediction := Prediction{RequiredContribution: required}
	if ratePerPeriod.Sign() > 0 {
		toGo := remaining.Div(ratePerPeriod).Ceil().IntPart()
		prediction.PredictedDate = now.Add(time.Duration(toGo) * PeriodDuration)
		prediction.Confidence = ConfidenceEmpirical
	} else {
		// Эмпирической нормы нет: считаем, что план будет выполняться от
		// дедлайна, и помечаем прогноз как малоуверенный.
		prediction.PredictedDate = now.Add(time.Duration(periods) * PeriodDuration)
		prediction.Confidence = ConfidenceDeadlineOnly
	}
	return prediction, nil
}

// PeriodsUntil возвращает целое число недель до дедлайна, не меньше единицы:
// деление на ноль и отрицательные интервалы исключены.
func PeriodsUntil(now, deadline time.Time) int {
	if !deadline.After(now) {
		return 1
	}
	periods := int(deadline.Sub(now) / PeriodDuration)
	if periods < 1 {
		return 1
	}
	return periods
}

// PerMemberContribution делит общий требуемый взнос на число участников
// с округлением вверх.
func PerMemberContribution(total decimal.Decimal, memberCount int) decimal.Decimal {
	if memberCount < 1 {
		memberCount = 1
	}
	return total.Div(decimal.NewFromInt(int64(memberCount))).Ceil()
}
