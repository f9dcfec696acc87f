package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/valeriaulyamaeva/goal-forecast-engine/models"
)

// insertAdjustment добавляет запись аудита в рамках транзакции записи плана.
// Журнал только пополняется, записи никогда не изменяются.
func insertAdjustment(ctx context.Context, tx pgx.Tx, adjustment *models.PlanAdjustment) error {
	query := `
		INSERT INTO plan_adjustments (goal_id, group_goal_id, run_id, old_contribution, new_contribution,
		                              old_predicted, new_predicted, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := tx.QueryRow(ctx, query,
		adjustment.GoalID,
		adjustment.GroupGoalID,
		adjustment.RunID,
		adjustment.OldContribution,
		adjustment.NewContribution,
		adjustment.OldPredicted,
		adjustment.NewPredicted,
		adjustment.Reason,
		adjustment.CreatedAt).Scan(&adjustment.ID)
	if err != nil {
		return fmt.Errorf("ошибка при добавлении записи аудита: %v", err)
	}
	return nil
}

// GetAdjustmentsByGoal извлекает журнал корректировок по цели, новые первыми
func GetAdjustmentsByGoal(ctx context.Context, pool *pgxpool.Pool, goalID int) ([]models.PlanAdjustment, error) {
	query := `
		SELECT id, goal_id, group_goal_id, run_id, old_contribution, new_contribution,
		       old_predicted, new_predicted, reason, created_at
		FROM plan_adjustments
		WHERE goal_id = $1
		ORDER BY created_at DESC`

	rows, err := pool.Query(ctx, query, goalID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении журнала корректировок: %v", err)
	}
	defer rows.Close()

	var adjustments []models.PlanAdjustment
	for rows.Next() {
		var adjustment models.PlanAdjustment
		if err := rows.Scan(&adjustment.ID, &adjustment.GoalID, &adjustment.GroupGoalID, &adjustment.RunID,
			&adjustment.OldContribution, &adjustment.NewContribution, &adjustment.OldPredicted,
			&adjustment.NewPredicted, &adjustment.Reason, &adjustment.CreatedAt); err != nil {
			return nil, err
		}
		adjustments = append(adjustments, adjustment)
	}

	return adjustments, rows.Err()
}
