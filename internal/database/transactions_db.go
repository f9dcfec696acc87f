package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/valeriaulyamaeva/goal-forecast-engine/models"
)

// GetTransactionsSince извлекает окно истории транзакций пользователя для
// оценки нормы накоплений. Движок историю только читает.
func GetTransactionsSince(ctx context.Context, pool *pgxpool.Pool, userID int, since time.Time) ([]models.TransactionRecord, error) {
	query := `
		SELECT id, user_id, amount, transaction_date, type
		FROM transactions
		WHERE user_id = $1 AND transaction_date >= $2 AND type IN ('income', 'expense')
		ORDER BY transaction_date`

	rows, err := pool.Query(ctx, query, userID, since)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении транзакций: %v", err)
	}
	defer rows.Close()

	var records []models.TransactionRecord
	for rows.Next() {
		var record models.TransactionRecord
		if err := rows.Scan(&record.ID, &record.UserID, &record.Amount, &record.Date, &record.Type); err != nil {
			return nil, fmt.Errorf("ошибка при сканировании транзакции: %v", err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}
