package engine

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/valeriaulyamaeva/goal-forecast-engine/internal/forecast"
	"github.com/valeriaulyamaeva/goal-forecast-engine/models"
)

// ErrPlanConflict возвращается хранилищем, когда версия плана цели изменилась
// между чтением и записью (гонка планового прохода с пересчетом по взносу).
// Цель будет пересчитана на следующем проходе.
var ErrPlanConflict = errors.New("конфликт версий плана цели")

// TransactionSource — доступ к истории транзакций пользователя (только чтение).
type TransactionSource interface {
	GetTransactions(ctx context.Context, userID int, since time.Time) ([]models.TransactionRecord, error)
}

// GoalStore — хранилище личных целей. PersistGoalPlan обязан записывать новый
// план и запись аудита атомарно и проверять PlanVersion цели, возвращая
// ErrPlanConflict при несовпадении.
type GoalStore interface {
	GetActiveGoals(ctx context.Context) ([]models.Goal, error)
	GetGoalByID(ctx context.Context, goalID int) (*models.Goal, error)
	PersistGoalPlan(ctx context.Context, goal *models.Goal, adjustment *models.PlanAdjustment) error
	MarkGoalAchieved(ctx context.Context, goalID int) error
}

// GroupGoalStore — хранилище общих целей семейных аккаунтов.
type GroupGoalStore interface {
	GetActiveGroupGoals(ctx context.Context) ([]models.GroupGoal, error)
	GetGroupGoalByID(ctx context.Context, groupGoalID int) (*models.GroupGoal, error)
	GetGroupMembers(ctx context.Context, groupGoalID int) ([]models.GroupMember, error)
	PersistGroupGoalPlan(ctx context.Context, goal *models.GroupGoal, adjustment *models.PlanAdjustment) error
	MarkGroupGoalAchieved(ctx context.Context, groupGoalID int) error
}

// Notifier отправляет уведомление получателю. Доставка — «выстрелил и забыл»:
// сбой логируется, но план не откатывается.
type Notifier interface {
	Notify(ctx context.Context, userID int, message string, metadata map[string]string) error
}

// Config — настройки движка. Нулевые поля заменяются значениями по умолчанию.
type Config struct {
	// WindowPeriods — окно истории для оценки нормы накоплений, в неделях.
	WindowPeriods int
	// HorizonPeriods — горизонт планирования для целей без дедлайна.
	HorizonPeriods int
	// DriftThreshold — порог существенности изменения требуемого взноса.
	DriftThreshold decimal.Decimal
	// Workers — число параллельных обработчиков планового прохода.
	Workers int
	// Clock подменяется в тестах.
	Clock func() time.Time
}

// DefaultConfig возвращает настройки, с которыми движок работает в проде.
func DefaultConfig() Config {
	return Config{
		WindowPeriods:  4,
		HorizonPeriods: forecast.DefaultHorizonPeriods,
		DriftThreshold: forecast.DefaultDriftThreshold,
		Workers:        4,
		Clock:          time.Now,
	}
}

// Engine — движок прогнозов и корректировки планов. Оба пути вызова
// (плановый проход и пересчет по взносу) проходят через одну и ту же
// оценку цели, поэтому при одинаковом состоянии дают одинаковый результат.
type Engine struct {
	cfg          Config
	transactions TransactionSource
	goals        GoalStore
	groups       GroupGoalStore
	notifier     Notifier
}

func New(cfg Config, transactions TransactionSource, goals GoalStore, groups GroupGoalStore, notifier Notifier) *Engine {
	defaults := DefaultConfig()
	if cfg.WindowPeriods < 1 {
		cfg.WindowPeriods = defaults.WindowPeriods
	}
	if cfg.HorizonPeriods < 1 {
		cfg.HorizonPeriods = defaults.HorizonPeriods
	}
	if cfg.DriftThreshold.Sign() <= 0 {
		cfg.DriftThreshold = defaults.DriftThreshold
	}
	if cfg.Workers < 1 {
		cfg.Workers = defaults.Workers
	}
	if cfg.Clock == nil {
		cfg.Clock = defaults.Clock
	}
	return &Engine{
		cfg:          cfg,
		transactions: transactions,
		goals:        goals,
		groups:       groups,
		notifier:     notifier,
	}
}
