package engine

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// PassSummary — итог одного планового прохода по всем активным целям.
type PassSummary struct {
	RunID      string    `json:"run_id"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Evaluated  int       `json:"evaluated"`
	Adjusted   int       `json:"adjusted"`
	Failed     int       `json:"failed"`
}

// RunScheduledPass обходит все активные цели и общие цели и пересчитывает их
// планы. Цели независимы друг от друга, поэтому обрабатываются пулом
// параллельных обработчиков. Ошибка по одной цели логируется и не прерывает
// проход; такая цель будет пересчитана на следующем запуске.
func (e *Engine) RunScheduledPass(ctx context.Context) (*PassSummary, error) {
	summary := &PassSummary{
		RunID:     uuid.NewString(),
		StartedAt: e.cfg.Clock(),
	}

	goals, err := e.goals.GetActiveGoals(ctx)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения активных целей: %v", err)
	}
	groupGoals, err := e.groups.GetActiveGroupGoals(ctx)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения активных общих целей: %v", err)
	}

	jobs := make(chan func(), e.cfg.Workers)
	var wg sync.WaitGroup
	var mu sync.Mutex

	record := func(adjusted bool, err error) {
		mu.Lock()
		defer mu.Unlock()
		summary.Evaluated++
		if err != nil {
			summary.Failed++
			return
		}
		if adjusted {
			summary.Adjusted++
		}
	}

	for i := 0; i < e.cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				job()
			}
		}()
	}

	for _, g := range goals {
		goal := g
		jobs <- func() {
			adjusted, err := e.evaluateGoal(ctx, summary.RunID, &goal)
			if err != nil {
				log.Printf("плановый проход %s: цель %d пропущена: %v", summary.RunID, goal.ID, err)
			}
			record(adjusted, err)
		}
	}
	for _, g := range groupGoals {
		goal := g
		jobs <- func() {
			adjusted, err := e.evaluateGroupGoal(ctx, summary.RunID, &goal)
			if err != nil {
				log.Printf("плановый проход %s: общая цель %d пропущена: %v", summary.RunID, goal.ID, err)
			}
			record(adjusted, err)
		}
	}
	close(jobs)
	wg.Wait()

	summary.FinishedAt = e.cfg.Clock()
	log.Printf("плановый проход %s завершён: оценено %d, скорректировано %d, с ошибками %d",
		summary.RunID, summary.Evaluated, summary.Adjusted, summary.Failed)
	return summary, nil
}
