package models

import "time"

// User - клиент фотостудии. Пароль хранится и сравнивается как есть:
// так устроена существующая база, хеширование сломало бы все старые записи.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"password"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Blocked   int       `gorm:"default:0" json:"blocked"` // 1 = blocked, 0 = active
	CreatedAt time.Time `json:"created_at"`
}

// Admin - учетная запись администратора, отдельная таблица.
type Admin struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"password"`
	Role      string    `gorm:"default:'admin'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
