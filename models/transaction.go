package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

// TransactionRecord — запись истории транзакций. Движок прогнозов её только
// читает; создание и корректировка остаются за транзакционным сервисом.
type TransactionRecord struct {
	ID     int             `json:"id" db:"id"`
	UserID int             `json:"user_id" db:"user_id"`
	Amount decimal.Decimal `json:"amount" db:"amount"`
	Date   time.Time       `json:"date" db:"transaction_date"`
	Type   string          `json:"type" db:"type"` // Возможные значения: "income", "expense"
}
