package engine

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/valeriaulyamaeva/goal-forecast-engine/internal/forecast"
	"github.com/valeriaulyamaeva/goal-forecast-engine/models"
)

// RecalculateGoal пересчитывает план одной цели сразу после записи взноса.
// Возвращает true, если план был скорректирован.
func (e *Engine) RecalculateGoal(ctx context.Context, goalID int) (bool, error) {
	goal, err := e.goals.GetGoalByID(ctx, goalID)
	if err != nil {
		return false, fmt.Errorf("ошибка получения цели %d: %v", goalID, err)
	}
	return e.evaluateGoal(ctx, uuid.NewString(), goal)
}

// RecalculateGroupGoal пересчитывает план одной общей цели.
func (e *Engine) RecalculateGroupGoal(ctx context.Context, groupGoalID int) (bool, error) {
	goal, err := e.groups.GetGroupGoalByID(ctx, groupGoalID)
	if err != nil {
		return false, fmt.Errorf("ошибка получения общей цели %d: %v", groupGoalID, err)
	}
	return e.evaluateGroupGoal(ctx, uuid.NewString(), goal)
}

// ProjectGoal строит трехсценарную проекцию накоплений по цели для виджета.
// При periods < 1 используется горизонт планирования из настроек.
func (e *Engine) ProjectGoal(ctx context.Context, goalID, periods int) (models.ScenarioSeries, error) {
	goal, err := e.goals.GetGoalByID(ctx, goalID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения цели %d: %v", goalID, err)
	}
	if periods < 1 {
		periods = e.cfg.HorizonPeriods
	}
	rate, err := e.estimateGoalRate(ctx, goal.UserID)
	if err != nil {
		return nil, err
	}
	return forecast.Project(goal.CurrentAmount, rate, periods), nil
}

func (e *Engine) estimateGoalRate(ctx context.Context, userID int) (decimal.Decimal, error) {
	now := e.cfg.Clock()
	since := now.Add(-time.Duration(e.cfg.WindowPeriods) * forecast.PeriodDuration)
	records, err := e.transactions.GetTransactions(ctx, userID, since)
	if err != nil {
		return decimal.Zero, fmt.Errorf("ошибка чтения истории транзакций пользователя %d: %v", userID, err)
	}
	return forecast.EstimateRate(records, e.cfg.WindowPeriods), nil
}

// evaluateGoal — единый путь оценки личной цели: оценка нормы, прогноз,
// проверка дрейфа и, при существенном изменении, запись плана с аудитом и
// уведомление. Запись строго предшествует уведомлению.
func (e *Engine) evaluateGoal(ctx context.Context, runID string, goal *models.Goal) (bool, error) {
	// Битые данные отклоняются до любых вычислений; исправление — на стороне
	// источника данных, в этом проходе цель просто пропускается.
	if goal.TargetAmount.IsNegative() || goal.CurrentAmount.IsNegative() {
		return false, fmt.Errorf("цель %d: %w: целевая или текущая сумма отрицательна", goal.ID, forecast.ErrInvalidGoalState)
	}

	if goal.Completed() {
		// Достигнутая цель в пересчет не попадает; фиксируем статус, если
		// контур записи взносов его ещё не проставил.
		if goal.Status != models.GoalStatusAchieved {
			if err := e.goals.MarkGoalAchieved(ctx, goal.ID); err != nil {
				return false, fmt.Errorf("ошибка отметки цели %d достигнутой: %v", goal.ID, err)
			}
		}
		return false, nil
	}

	now := e.cfg.Clock()
	rate, err := e.estimateGoalRate(ctx, goal.UserID)
	if err != nil {
		return false, err
	}

	prediction, err := forecast.Predict(goal.TargetAmount, goal.CurrentAmount, goal.Deadline, rate, now, e.cfg.HorizonPeriods)
	if err != nil {
		return false, fmt.Errorf("цель %d: %w", goal.ID, err)
	}

	if !forecast.Drift(goal.RequiredContribution, prediction.RequiredContribution, e.cfg.DriftThreshold) {
		return false, nil
	}

	adjustment := &models.PlanAdjustment{
		GoalID:          &goal.ID,
		RunID:           runID,
		OldContribution: goal.RequiredContribution,
		NewContribution: prediction.RequiredContribution,
		OldPredicted:    goal.PredictedDate,
		NewPredicted:    prediction.PredictedDate,
		Reason:          forecast.AdjustmentReason(goal.RequiredContribution, prediction.RequiredContribution),
		CreatedAt:       now,
	}

	updated := *goal
	updated.RequiredContribution = prediction.RequiredContribution
	predicted := prediction.PredictedDate
	updated.PredictedDate = &predicted
	updated.Confidence = prediction.Confidence

	if err := e.goals.PersistGoalPlan(ctx, &updated, adjustment); err != nil {
		return false, fmt.Errorf("ошибка сохранения плана цели %d: %v", goal.ID, err)
	}

	message := fmt.Sprintf("План по цели «%s» обновлён: теперь нужно откладывать %s в неделю, прогнозная дата — %s (%s).",
		goal.Name, prediction.RequiredContribution.StringFixed(2), predicted.Format("02.01.2006"), adjustment.Reason)
	e.notify(ctx, goal.UserID, message, map[string]string{
		"run_id":  runID,
		"goal_id": strconv.Itoa(goal.ID),
	})
	return true, nil
}

// evaluateGroupGoal повторяет путь личной цели для общей: прогноз считается
// по общей копилке, требуемый взнос делится на участников, уведомления
// рассылаются каждому участнику с одинаковой суммой.
func (e *Engine) evaluateGroupGoal(ctx context.Context, runID string, goal *models.GroupGoal) (bool, error) {
	if goal.MemberCount < 1 {
		return false, fmt.Errorf("общая цель %d: %w: нет участников", goal.ID, forecast.ErrInvalidGoalState)
	}
	if goal.TargetAmount.IsNegative() || goal.CurrentAmount.IsNegative() {
		return false, fmt.Errorf("общая цель %d: %w: целевая или текущая сумма отрицательна", goal.ID, forecast.ErrInvalidGoalState)
	}

	if goal.Completed() {
		if goal.Status != models.GoalStatusAchieved {
			if err := e.groups.MarkGroupGoalAchieved(ctx, goal.ID); err != nil {
				return false, fmt.Errorf("ошибка отметки общей цели %d достигнутой: %v", goal.ID, err)
			}
		}
		return false, nil
	}

	now := e.cfg.Clock()
	rate := forecast.PooledRate(goal.CurrentAmount, goal.CreatedAt, now)

	prediction, err := forecast.Predict(goal.TargetAmount, goal.CurrentAmount, goal.Deadline, rate, now, e.cfg.HorizonPeriods)
	if err != nil {
		return false, fmt.Errorf("общая цель %d: %w", goal.ID, err)
	}
	perMember := forecast.PerMemberContribution(prediction.RequiredContribution, goal.MemberCount)

	if !forecast.Drift(goal.RequiredContribution, perMember, e.cfg.DriftThreshold) {
		return false, nil
	}

	adjustment := &models.PlanAdjustment{
		GroupGoalID:     &goal.ID,
		RunID:           runID,
		OldContribution: goal.RequiredContribution,
		NewContribution: perMember,
		OldPredicted:    goal.PredictedDate,
		NewPredicted:    prediction.PredictedDate,
		Reason:          forecast.AdjustmentReason(goal.RequiredContribution, perMember),
		CreatedAt:       now,
	}

	updated := *goal
	updated.RequiredContribution = perMember
	predicted := prediction.PredictedDate
	updated.PredictedDate = &predicted
	updated.Confidence = prediction.Confidence

	if err := e.groups.PersistGroupGoalPlan(ctx, &updated, adjustment); err != nil {
		return false, fmt.Errorf("ошибка сохранения плана общей цели %d: %v", goal.ID, err)
	}

	members, err := e.groups.GetGroupMembers(ctx, goal.ID)
	if err != nil {
		// План уже зафиксирован; без списка участников уведомления не
		// разослать, но откатывать нечего.
		log.Printf("ошибка получения участников общей цели %d: %v", goal.ID, err)
		return true, nil
	}

	message := fmt.Sprintf("План по общей цели «%s» обновлён: взнос каждого участника — %s в неделю, прогнозная дата — %s (%s).",
		goal.Name, perMember.StringFixed(2), predicted.Format("02.01.2006"), adjustment.Reason)
	metadata := map[string]string{
		"run_id":        runID,
		"group_goal_id": strconv.Itoa(goal.ID),
	}
	for _, member := range members {
		e.notify(ctx, member.ID, message, metadata)
	}
	return true, nil
}

func (e *Engine) notify(ctx context.Context, userID int, message string, metadata map[string]string) {
	if err := e.notifier.Notify(ctx, userID, message, metadata); err != nil {
		log.Printf("ошибка отправки уведомления пользователю %d: %v", userID, err)
	}
}
