package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// GroupGoal — общая цель семейного аккаунта: одна копилка на всех участников.
// RequiredContribution хранится в расчете на одного участника.
type GroupGoal struct {
	ID                   int             `json:"id" db:"id"`
	FamilyAccountID      int             `json:"family_account_id" db:"family_account_id"`
	Name                 string          `json:"name" db:"name"`
	TargetAmount         decimal.Decimal `json:"target_amount" db:"target_amount"`
	CurrentAmount        decimal.Decimal `json:"current_amount" db:"current_amount"`
	Deadline             *time.Time      `json:"deadline,omitempty" db:"deadline"`
	CreatedAt            time.Time       `json:"created_at" db:"created_at"`
	Status               string          `json:"status" db:"status"`
	MemberCount          int             `json:"member_count" db:"member_count"`
	RequiredContribution decimal.Decimal `json:"required_contribution" db:"required_contribution"`
	PredictedDate        *time.Time      `json:"predicted_date,omitempty" db:"predicted_date"`
	Confidence           float64         `json:"confidence" db:"confidence"`
	PlanVersion          int             `json:"plan_version" db:"plan_version"`
}

func (g *GroupGoal) RemainingAmount() decimal.Decimal {
	remaining := g.TargetAmount.Sub(g.CurrentAmount)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

func (g *GroupGoal) Completed() bool {
	return g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}

type GroupMember struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}
