package forecast_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/valeriaulyamaeva/goal-forecast-engine/internal/forecast"
)

func TestPredictWithEmpiricalRate(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	// Цель 10000, накоплено 4000, дедлайна нет, историческая норма 500 в неделю.
	prediction, err := forecast.Predict(
		decimal.NewFromInt(10000),
		decimal.NewFromInt(4000),
		nil,
		decimal.NewFromInt(500),
		now,
		forecast.DefaultHorizonPeriods,
	)
	if err != nil {
		t.Fatalf("неожиданная ошибка прогноза: %v", err)
	}

	if want := decimal.NewFromInt(462); !prediction.RequiredContribution.Equal(want) {
		t.Errorf("требуемый взнос: получили %s, хотели %s", prediction.RequiredContribution, want)
	}
	if want := now.Add(12 * forecast.PeriodDuration); !prediction.PredictedDate.Equal(want) {
		t.Errorf("прогнозная дата: получили %s, хотели %s", prediction.PredictedDate, want)
	}
	if prediction.Confidence != forecast.ConfidenceEmpirical {
		t.Errorf("уверенность: получили %v, хотели %v", prediction.Confidence, forecast.ConfidenceEmpirical)
	}
}

func TestPredictWithoutRateFallsBackToDeadline(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	deadline := now.Add(10 * forecast.PeriodDuration)

	prediction, err := forecast.Predict(
		decimal.NewFromInt(5000),
		decimal.Zero,
		&deadline,
		decimal.Zero,
		now,
		forecast.DefaultHorizonPeriods,
	)
	if err != nil {
		t.Fatalf("неожиданная ошибка прогноза: %v", err)
	}

	if want := decimal.NewFromInt(500); !prediction.RequiredContribution.Equal(want) {
		t.Errorf("требуемый взнос: получили %s, хотели %s", prediction.RequiredContribution, want)
	}
	if want := now.Add(10 * forecast.PeriodDuration); !prediction.PredictedDate.Equal(want) {
		t.Errorf("без эмпирической нормы дата должна идти от дедлайна: получили %s, хотели %s",
			prediction.PredictedDate, want)
	}
	if prediction.Confidence != forecast.ConfidenceDeadlineOnly {
		t.Errorf("уверенность: получили %v, хотели %v", prediction.Confidence, forecast.ConfidenceDeadlineOnly)
	}
}

func TestPredictCompletedGoal(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	prediction, err := forecast.Predict(
		decimal.NewFromInt(3000),
		decimal.NewFromInt(3500),
		nil,
		decimal.NewFromInt(100),
		now,
		forecast.DefaultHorizonPeriods,
	)
	if err != nil {
		t.Fatalf("неожиданная ошибка прогноза: %v", err)
	}

	if !prediction.RequiredContribution.IsZero() {
		t.Errorf("по достигнутой цели взнос должен быть нулевым, получили %s", prediction.RequiredContribution)
	}
	if !prediction.PredictedDate.Equal(now) {
		t.Errorf("по достигнутой цели дата должна быть текущей, получили %s", prediction.PredictedDate)
	}
	if prediction.Confidence != 1.0 {
		t.Errorf("по достигнутой цели уверенность должна быть 1.0, получили %v", prediction.Confidence)
	}
}

func TestPredictRejectsNegativeAmounts(t *testing.T) {
	now := time.Now()

	_, err := forecast.Predict(decimal.NewFromInt(-1), decimal.Zero, nil, decimal.Zero, now, 13)
	if !errors.Is(err, forecast.ErrInvalidGoalState) {
		t.Errorf("отрицательная целевая сумма должна отклоняться, получили %v", err)
	}

	_, err = forecast.Predict(decimal.NewFromInt(1000), decimal.NewFromInt(-5), nil, decimal.Zero, now, 13)
	if !errors.Is(err, forecast.ErrInvalidGoalState) {
		t.Errorf("отрицательная текущая сумма должна отклоняться, получили %v", err)
	}
}

func TestPeriodsUntilFloorsAtOne(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	if got := forecast.PeriodsUntil(now, now.AddDate(0, 0, -30)); got != 1 {
		t.Errorf("прошедший дедлайн: получили %d периодов, хотели 1", got)
	}
	if got := forecast.PeriodsUntil(now, now.Add(time.Hour)); got != 1 {
		t.Errorf("дедлайн меньше недели: получили %d периодов, хотели 1", got)
	}
	if got := forecast.PeriodsUntil(now, now.Add(10*forecast.PeriodDuration)); got != 10 {
		t.Errorf("дедлайн через 10 недель: получили %d периодов", got)
	}
}

func TestPerMemberContribution(t *testing.T) {
	got := forecast.PerMemberContribution(decimal.NewFromInt(923), 4)
	if want := decimal.NewFromInt(231); !got.Equal(want) {
		t.Errorf("взнос на участника: получили %s, хотели %s", got, want)
	}

	got = forecast.PerMemberContribution(decimal.NewFromInt(500), 1)
	if want := decimal.NewFromInt(500); !got.Equal(want) {
		t.Errorf("для одного участника: получили %s, хотели %s", got, want)
	}
}
