package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlanAdjustment — запись аудита о корректировке плана. Создается один раз на
// принятую корректировку и больше не изменяется. Заполнено ровно одно из полей
// GoalID / GroupGoalID.
type PlanAdjustment struct {
	ID              int             `json:"id" db:"id"`
	GoalID          *int            `json:"goal_id,omitempty" db:"goal_id"`
	GroupGoalID     *int            `json:"group_goal_id,omitempty" db:"group_goal_id"`
	RunID           string          `json:"run_id" db:"run_id"`
	OldContribution decimal.Decimal `json:"old_contribution" db:"old_contribution"`
	NewContribution decimal.Decimal `json:"new_contribution" db:"new_contribution"`
	OldPredicted    *time.Time      `json:"old_predicted,omitempty" db:"old_predicted"`
	NewPredicted    time.Time       `json:"new_predicted" db:"new_predicted"`
	Reason          string          `json:"reason" db:"reason"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
}
