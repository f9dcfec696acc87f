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

// GetGroupGoalByID извлекает общую цель по ID вместе с числом участников
func GetGroupGoalByID(ctx context.Context, pool *pgxpool.Pool, groupGoalID int) (*models.GroupGoal, error) {
	query := `
		SELECT g.id, g.family_account_id, g.name, g.target_amount, g.current_amount, g.deadline,
		       g.created_at, g.status, g.required_contribution, g.predicted_date, g.confidence, g.plan_version,
		       (SELECT COUNT(*) FROM family_memberships f WHERE f.family_account_id = g.family_account_id)
		FROM group_goals g
		WHERE g.id = $1`

	goal := &models.GroupGoal{}
	err := pool.QueryRow(ctx, query, groupGoalID).Scan(
		&goal.ID,
		&goal.FamilyAccountID,
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
		&goal.MemberCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("общая цель с ID %d не найдена", groupGoalID)
		}
		return nil, fmt.Errorf("ошибка при получении общей цели: %v", err)
	}
	return goal, nil
}

// GetActiveGroupGoals извлекает все недостигнутые общие цели
func GetActiveGroupGoals(ctx context.Context, pool *pgxpool.Pool) ([]models.GroupGoal, error) {
	query := `
		SELECT g.id, g.family_account_id, g.name, g.target_amount, g.current_amount, g.deadline,
		       g.created_at, g.status, g.required_contribution, g.predicted_date, g.confidence, g.plan_version,
		       (SELECT COUNT(*) FROM family_memberships f WHERE f.family_account_id = g.family_account_id)
		FROM group_goals g
		WHERE g.status = 'active'`
	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении активных общих целей: %v", err)
	}
	defer rows.Close()

	var goals []models.GroupGoal
	for rows.Next() {
		var goal models.GroupGoal
		if err := rows.Scan(&goal.ID, &goal.FamilyAccountID, &goal.Name, &goal.TargetAmount, &goal.CurrentAmount,
			&goal.Deadline, &goal.CreatedAt, &goal.Status, &goal.RequiredContribution,
			&goal.PredictedDate, &goal.Confidence, &goal.PlanVersion, &goal.MemberCount); err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}

	return goals, rows.Err()
}

// GetGroupMembers получает всех участников семейного аккаунта общей цели
func GetGroupMembers(ctx context.Context, pool *pgxpool.Pool, groupGoalID int) ([]models.GroupMember, error) {
	query := `
		SELECT u.id, u.name, f.role
		FROM users u
		JOIN family_memberships f ON u.id = f.user_id
		JOIN group_goals g ON g.family_account_id = f.family_account_id
		WHERE g.id = $1`

	rows, err := pool.Query(ctx, query, groupGoalID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения участников общей цели: %v", err)
	}
	defer rows.Close()

	var members []models.GroupMember
	for rows.Next() {
		var member models.GroupMember
		if err := rows.Scan(&member.ID, &member.Name, &member.Role); err != nil {
			return nil, fmt.Errorf("ошибка при сканировании данных участника: %v", err)
		}
		members = append(members, member)
	}

	return members, rows.Err()
}

// PersistGroupGoalPlan записывает план общей цели и запись аудита одной
// транзакцией, с той же оптимистичной проверкой версии, что и у личных целей.
func PersistGroupGoalPlan(ctx context.Context, pool *pgxpool.Pool, goal *models.GroupGoal, adjustment *models.PlanAdjustment) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("ошибка открытия транзакции: %v", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE group_goals
		SET required_contribution = $1, predicted_date = $2, confidence = $3, plan_version = plan_version + 1
		WHERE id = $4 AND plan_version = $5`
	tag, err := tx.Exec(ctx, query,
		goal.RequiredContribution,
		goal.PredictedDate,
		goal.Confidence,
		goal.ID,
		goal.PlanVersion)
	if err != nil {
		return fmt.Errorf("ошибка обновления плана общей цели: %v", err)
	}
	if tag.RowsAffected() == 0 {
		return engine.ErrPlanConflict
	}

	if err := insertAdjustment(ctx, tx, adjustment); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("ошибка фиксации плана общей цели: %v", err)
	}
	goal.PlanVersion++
	return nil
}

// MarkGroupGoalAchieved переводит общую цель в статус "achieved"
func MarkGroupGoalAchieved(ctx context.Context, pool *pgxpool.Pool, groupGoalID int) error {
	query := `
		UPDATE group_goals
		SET status = 'achieved'
		WHERE id = $1`
	_, err := pool.Exec(ctx, query, groupGoalID)
	if err != nil {
		return fmt.Errorf("ошибка обновления статуса общей цели: %v", err)
	}
	return nil
}
