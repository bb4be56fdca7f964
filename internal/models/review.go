package models

import "time"

// Review - отзыв клиента. Создается клиентом, удаляется только админом.
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Rating    int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Review    string    `gorm:"type:text;not null" json:"review"`
	CreatedAt time.Time `gorm:"column:date" json:"date"`
}
