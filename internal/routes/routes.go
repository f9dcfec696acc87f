package routes

import (
	"github.com/gorilla/mux"

	"github.com/valeriaulyamaeva/goal-forecast-engine/internal/database"
	"github.com/valeriaulyamaeva/goal-forecast-engine/internal/engine"
	"github.com/valeriaulyamaeva/goal-forecast-engine/internal/handlers"
)

func SetupRouter(eng *engine.Engine, store *database.Store) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/api/goals/{id}/recalculate", handlers.RecalculateGoalHandler(eng)).Methods("POST")
	r.HandleFunc("/api/goals/{id}/projection", handlers.GoalProjectionHandler(eng)).Methods("GET")
	r.HandleFunc("/api/goals/{id}/adjustments", handlers.GoalAdjustmentsHandler(store)).Methods("GET")
	r.HandleFunc("/api/group-goals/{id}/recalculate", handlers.RecalculateGroupGoalHandler(eng)).Methods("POST")
	r.HandleFunc("/api/engine/run", handlers.RunPassHandler(eng)).Methods("POST")

	return r
}
