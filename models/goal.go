package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	GoalStatusActive   = "active"
	GoalStatusAchieved = "achieved"
)

type Goal struct {
	ID                   int             `json:"id" db:"id"`
	UserID               int             `json:"user_id" db:"user_id"`
	Name                 string          `json:"name" db:"name"`
	TargetAmount         decimal.Decimal `json:"target_amount" db:"target_amount"`
	CurrentAmount        decimal.Decimal `json:"current_amount" db:"current_amount"`
	Deadline             *time.Time      `json:"deadline,omitempty" db:"deadline"`
	CreatedAt            time.Time       `json:"created_at" db:"created_at"`
	Status               string          `json:"status" db:"status"`
	RequiredContribution decimal.Decimal `json:"required_contribution" db:"required_contribution"`
	PredictedDate        *time.Time      `json:"predicted_date,omitempty" db:"predicted_date"`
	Confidence           float64         `json:"confidence" db:"confidence"`
	PlanVersion          int             `json:"plan_version" db:"plan_version"`
}

// RemainingAmount возвращает, сколько осталось накопить до цели (не меньше нуля).
func (g *Goal) RemainingAmount() decimal.Decimal {
	remaining := g.TargetAmount.Sub(g.CurrentAmount)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// Completed сообщает, достигнута ли цель.
func (g *Goal) Completed() bool {
	return g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}
