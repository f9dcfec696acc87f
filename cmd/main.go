package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/valeriaulyamaeva/goal-forecast-engine/internal/database"
	"github.com/valeriaulyamaeva/goal-forecast-engine/internal/engine"
	"github.com/valeriaulyamaeva/goal-forecast-engine/internal/routes"
)

// ScheduleForecastPass вешает плановый проход движка на cron. Расписание
// можно переопределить переменной ENGINE_CRON (по умолчанию раз в сутки).
func ScheduleForecastPass(eng *engine.Engine) {
	schedule := os.Getenv("ENGINE_CRON")
	if schedule == "" {
		schedule = "@daily"
	}

	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		if _, err := eng.RunScheduledPass(context.Background()); err != nil {
			log.Printf("Ошибка планового прохода: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("Ошибка настройки CRON-задачи планового прохода: %v", err)
	}
	c.Start()
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Fatalf("Ошибка загрузки .env файла: %v", err)
	}

	pool, err := database.ConnectDB()
	if err != nil {
		log.Fatalf("Ошибка подключения к БД: %v", err)
	}
	defer pool.Close()

	store := database.NewStore(pool)

	cfg := engine.DefaultConfig()
	if raw := os.Getenv("ENGINE_WORKERS"); raw != "" {
		workers, err := strconv.Atoi(raw)
		if err != nil {
			log.Fatalf("Некорректное значение ENGINE_WORKERS: %v", err)
		}
		cfg.Workers = workers
	}
	eng := engine.New(cfg, store, store, store, store)

	ScheduleForecastPass(eng)

	port := os.Getenv("ENGINE_PORT")
	if port == "" {
		port = "8081"
	}

	r := routes.SetupRouter(eng, store)
	log.Printf("Движок прогнозов запущен на порту %s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("Ошибка запуска HTTP-сервера: %v", err)
	}
}
