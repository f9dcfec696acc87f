package utils

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/valeriaulyamaeva/goal-forecast-engine/models"
)

func GenerateTestGoals(pool *pgxpool.Pool, numGoals int) {
	for i := 0; i < numGoals; i++ {
		deadline := time.Now().AddDate(0, rand.Intn(12)+1, 0)
		goal := &models.Goal{
			UserID:        rand.Intn(10) + 1,
			Name:          gofakeit.ProductName(),
			TargetAmount:  decimal.NewFromFloat(gofakeit.Price(1000, 50000)),
			CurrentAmount: decimal.NewFromFloat(gofakeit.Price(0, 1000)),
			Deadline:      &deadline,
			CreatedAt:     time.Now().AddDate(0, 0, -rand.Intn(90)),
			Status:        models.GoalStatusActive,
		}

		_, err := pool.Exec(context.Background(),
			`INSERT INTO goals (user_id, name, target_amount, current_amount, deadline, created_at, status)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			goal.UserID, goal.Name, goal.TargetAmount, goal.CurrentAmount, goal.Deadline, goal.CreatedAt, goal.Status)
		if err != nil {
			log.Fatalf("ошибка при добавлении цели: %v", err)
		}
	}
}

func GenerateTestTransactions(pool *pgxpool.Pool, numTransactions int) {
	for i := 0; i < numTransactions; i++ {
		record := &models.TransactionRecord{
			UserID: rand.Intn(10) + 1,
			Amount: decimal.NewFromFloat(gofakeit.Price(10, 2000)),
			Date:   time.Now().AddDate(0, 0, -rand.Intn(30)), // Случайная дата в прошлом 30 дней
			Type:   randomTransactionType(),
		}

		_, err := pool.Exec(context.Background(),
			`INSERT INTO transactions (user_id, amount, transaction_date, type) VALUES ($1, $2, $3, $4)`,
			record.UserID, record.Amount, record.Date, record.Type)
		if err != nil {
			log.Fatalf("ошибка при добавлении транзакции: %v", err)
		}
	}
}

func randomTransactionType() string {
	if rand.Intn(2) == 0 {
		return models.TransactionExpense
	}
	return models.TransactionIncome
}

func GenerateTestGroupGoals(pool *pgxpool.Pool, numGoals int) {
	for i := 0; i < numGoals; i++ {
		deadline := time.Now().AddDate(1, 0, 0)
		_, err := pool.Exec(context.Background(),
			`INSERT INTO group_goals (family_account_id, name, target_amount, current_amount, deadline, created_at, status)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			rand.Intn(3)+1,
			gofakeit.ProductName(),
			decimal.NewFromFloat(gofakeit.Price(10000, 100000)),
			decimal.NewFromFloat(gofakeit.Price(0, 5000)),
			deadline,
			time.Now().AddDate(0, -rand.Intn(6), 0),
			models.GoalStatusActive)
		if err != nil {
			log.Fatalf("ошибка при добавлении общей цели: %v", err)
		}
	}
}
