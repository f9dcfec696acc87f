package models

import "time"

type Notification struct {
	ID        int               `json:"id" db:"id"`
	UserID    int               `json:"user_id" db:"user_id"`
	Message   string            `json:"message" db:"message"`
	IsRead    bool              `json:"is_read" db:"is_read"`
	Metadata  map[string]string `json:"metadata,omitempty" db:"metadata"`
	CreatedAt time.Time         `json:"created_at" db:"created_at"`
}
