package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/valeriaulyamaeva/goal-forecast-engine/internal/database"
	"github.com/valeriaulyamaeva/goal-forecast-engine/internal/engine"
)

// RecalculateGoalHandler пересчитывает план цели сразу после записи взноса
func RecalculateGoalHandler(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		id, err := strconv.Atoi(vars["id"])
		if err != nil {
			http.Error(w, "Некорректный ID цели", http.StatusBadRequest)
			return
		}

		adjusted, err := eng.RecalculateGoal(r.Context(), id)
		if err != nil {
			http.Error(w, "Не удалось пересчитать план цели", http.StatusInternalServerError)
			log.Printf("Ошибка пересчета плана цели %d: %v", id, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]bool{"adjusted": adjusted})
	}
}

// RecalculateGroupGoalHandler пересчитывает план общей цели
func RecalculateGroupGoalHandler(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		id, err := strconv.Atoi(vars["id"])
		if err != nil {
			http.Error(w, "Некорректный ID общей цели", http.StatusBadRequest)
			return
		}

		adjusted, err := eng.RecalculateGroupGoal(r.Context(), id)
		if err != nil {
			http.Error(w, "Не удалось пересчитать план общей цели", http.StatusInternalServerError)
			log.Printf("Ошибка пересчета плана общей цели %d: %v", id, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]bool{"adjusted": adjusted})
	}
}

// GoalProjectionHandler отдает трехсценарную проекцию накоплений для виджета
func GoalProjectionHandler(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		id, err := strconv.Atoi(vars["id"])
		if err != nil {
			http.Error(w, "Некорректный ID цели", http.StatusBadRequest)
			return
		}

		periods := 0
		if raw := r.URL.Query().Get("periods"); raw != "" {
			periods, err = strconv.Atoi(raw)
			if err != nil {
				http.Error(w, "Некорректное число периодов", http.StatusBadRequest)
				return
			}
		}

		series, err := eng.ProjectGoal(r.Context(), id, periods)
		if err != nil {
			http.Error(w, "Не удалось построить проекцию", http.StatusInternalServerError)
			log.Printf("Ошибка построения проекции по цели %d: %v", id, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(series)
	}
}

// RunPassHandler запускает плановый проход вручную и возвращает его итог
func RunPassHandler(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := eng.RunScheduledPass(r.Context())
		if err != nil {
			http.Error(w, "Не удалось выполнить плановый проход", http.StatusInternalServerError)
			log.Printf("Ошибка планового прохода: %v", err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(summary)
	}
}

// GoalAdjustmentsHandler отдает журнал корректировок плана по цели
func GoalAdjustmentsHandler(store *database.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		id, err := strconv.Atoi(vars["id"])
		if err != nil {
			http.Error(w, "Некорректный ID цели", http.StatusBadRequest)
			return
		}

		adjustments, err := database.GetAdjustmentsByGoal(r.Context(), store.Pool, id)
		if err != nil {
			http.Error(w, "Не удалось получить журнал корректировок", http.StatusInternalServerError)
			log.Printf("Ошибка получения журнала корректировок цели %d: %v", id, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(adjustments)
	}
}
