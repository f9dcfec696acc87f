package database

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/valeriaulyamaeva/goal-forecast-engine/models"
)

// Store связывает интерфейсы движка прогнозов с PostgreSQL.
type Store struct {
	Pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{Pool: pool}
}

func (s *Store) GetTransactions(ctx context.Context, userID int, since time.Time) ([]models.TransactionRecord, error) {
	return GetTransactionsSince(ctx, s.Pool, userID, since)
}

func (s *Store) GetActiveGoals(ctx context.Context) ([]models.Goal, error) {
	return GetActiveGoals(ctx, s.Pool)
}

func (s *Store) GetGoalByID(ctx context.Context, goalID int) (*models.Goal, error) {
	return GetGoalByID(ctx, s.Pool, goalID)
}

func (s *Store) PersistGoalPlan(ctx context.Context, goal *models.Goal, adjustment *models.PlanAdjustment) error {
	return PersistGoalPlan(ctx, s.Pool, goal, adjustment)
}

func (s *Store) MarkGoalAchieved(ctx context.Context, goalID int) error {
	return MarkGoalAchieved(ctx, s.Pool, goalID)
}

func (s *Store) GetActiveGroupGoals(ctx context.Context) ([]models.GroupGoal, error) {
	return GetActiveGroupGoals(ctx, s.Pool)
}

func (s *Store) GetGroupGoalByID(ctx context.Context, groupGoalID int) (*models.GroupGoal, error) {
	return GetGroupGoalByID(ctx, s.Pool, groupGoalID)
}

func (s *Store) GetGroupMembers(ctx context.Context, groupGoalID int) ([]models.GroupMember, error) {
	return GetGroupMembers(ctx, s.Pool, groupGoalID)
}

func (s *Store) PersistGroupGoalPlan(ctx context.Context, goal *models.GroupGoal, adjustment *models.PlanAdjustment) error {
	return PersistGroupGoalPlan(ctx, s.Pool, goal, adjustment)
}

func (s *Store) MarkGroupGoalAchieved(ctx context.Context, groupGoalID int) error {
	return MarkGroupGoalAchieved(ctx, s.Pool, groupGoalID)
}

// Notify записывает уведомление в таблицу, которую читает интерфейс приложения.
func (s *Store) Notify(ctx context.Context, userID int, message string, metadata map[string]string) error {
	return CreateNotification(ctx, s.Pool, &models.Notification{
		UserID:   userID,
		Message:  message,
		Metadata: metadata,
	})
}
