package models

import "time"

// Notification - одностороннее сообщение пользователю, создается только
// как побочный эффект смены статуса бронирования или платежа.
// Никогда не изменяется после вставки.
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Message   string    `gorm:"not null" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
