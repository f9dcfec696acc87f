package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/valeriaulyamaeva/goal-forecast-engine/models"
)

func CreateNotification(ctx context.Context, pool *pgxpool.Pool, notification *models.Notification) error {
	metadata, err := json.Marshal(notification.Metadata)
	if err != nil {
		return fmt.Errorf("ошибка сериализации метаданных уведомления: %v", err)
	}

	query := `
		INSERT INTO notifications (user_id, message, is_read, metadata)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err = pool.QueryRow(ctx, query,
		notification.UserID,
		notification.Message,
		notification.IsRead,
		metadata).Scan(&notification.ID)
	if err != nil {
		return fmt.Errorf("ошибка при добавлении уведомления: %v", err)
	}
	return nil
}
