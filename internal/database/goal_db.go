package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/valeriaulyamaeva/goal-forecast-engine/internal/engine"
	"github.com/valeriaulyamaeva/goal-forecast-engine/models"
)

// GetGoalByID извлекает цель по ID
func GetGoalByID(ctx context.Context, pool *pgxpool.Pool, goalID int) (*models.Goal, error) {
	query := `
		SELECT id, user_id, name, target_amount, current_amount, deadline, created_at, status,
		       required_contribution, predicted_date, confidence, plan_version
		FROM goals
		WHERE id = $1`

	goal := &models.Goal{}
	err := pool.QueryRow(ctx, query, goalID).Scan(
		&goal.ID,
		&goal.UserID,
		&goal.Name,
		&goal.TargetAmount,
		&goal.CurrentAmount,
		&goal.Deadline,
		&goal.CreatedAt,
		&goal.Status,
		&goal.RequiredContribution,
		&goal.PredictedDate,
		&goal.Confidence,
		&goal.PlanVersion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("цель с ID %d не найдена", goalID)
		}
		return nil, fmt.Errorf("ошибка при получении цели: %v", err)
	}
	return goal, nil
}

// GetActiveGoals извлекает все недостигнутые цели для планового прохода
func GetActiveGoals(ctx context.Context, pool *pgxpool.Pool) ([]models.Goal, error) {
	query := `
		SELECT id, user_id, name, target_amount, current_amount, deadline, created_at, status,
		       required_contribution, predicted_date, confidence, plan_version
		FROM goals
		WHERE status = 'active'`
	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении активных целей: %v", err)
	}
	defer rows.Close()

	var goals []models.Goal
	for rows.Next() {
		var goal models.Goal
		if err := rows.Scan(&goal.ID, &goal.UserID, &goal.Name, &goal.TargetAmount, &goal.CurrentAmount,
			&goal.Deadline, &goal.CreatedAt, &goal.Status, &goal.RequiredContribution,
			&goal.PredictedDate, &goal.Confidence, &goal.PlanVersion); err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}

	return goals, rows.Err()
}

// PersistGoalPlan записывает новый план цели и запись аудита одной транзакцией.
// Версия плана проверяется оптимистично: если её успел поднять параллельный
// пересчет, возвращается engine.ErrPlanConflict и ничего не записывается.
func PersistGoalPlan(ctx context.Context, pool *pgxpool.Pool, goal *models.Goal, adjustment *models.PlanAdjustment) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("ошибка открытия транзакции: %v", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE goals
		SET required_contribution = $1, predicted_date = $2, confidence = $3, plan_version = plan_version + 1
		WHERE id = $4 AND plan_version = $5`
	tag, err := tx.Exec(ctx, query,
		goal.RequiredContribution,
		goal.PredictedDate,
		goal.Confidence,
		goal.ID,
		goal.PlanVersion)
	if err != nil {
		return fmt.Errorf("ошибка обновления плана цели: %v", err)
	}
	if tag.RowsAffected() == 0 {
		return engine.ErrPlanConflict
	}

	if err := insertAdjustment(ctx, tx, adjustment); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("ошибка фиксации плана цели: %v", err)
	}
	goal.PlanVersion++
	return nil
}

// MarkGoalAchieved переводит цель в статус "achieved"
func MarkGoalAchieved(ctx context.Context, pool *pgxpool.Pool, goalID int) error {
	query := `
		UPDATE goals
		SET status = 'achieved'
		WHERE id = $1`
	_, err := pool.Exec(ctx, query, goalID)
	if err != nil {
		return fmt.Errorf("ошибка обновления статуса цели: %v", err)
	}
	return nil
}
