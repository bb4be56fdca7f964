package models

import (
	"time"

	"gorm.io/datatypes"
)

// Booking - бронирование съемки/мероприятия.
//
// Слот (event_date, event_time) уникален: раньше это проверялось только
// SELECT-ом перед INSERT-ом, что гонялось под конкурентными запросами.
// Составной индекс закрывает гонку, а проверка перед вставкой оставлена,
// чтобы поведение без конкуренции не изменилось.
type Booking struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	UserID        uint           `gorm:"not null;index" json:"user_id"`
	Category      string         `json:"category"`
	Services      datatypes.JSON `json:"services"`
	TotalMembers  int            `gorm:"default:0" json:"total_members"`
	FoodItems     datatypes.JSON `json:"food_items"`
	EventDate     time.Time      `gorm:"type:date;not null;uniqueIndex:idx_booking_slot" json:"event_date"`
	EventTime     string         `gorm:"type:time;not null;uniqueIndex:idx_booking_slot" json:"event_time"`
	Location      string         `gorm:"not null" json:"location"`
	Total         float64        `gorm:"default:0" json:"total"`
	BookingStatus BookingStatus  `gorm:"type:varchar(20);default:'pending'" json:"booking_status"`
	PaymentStatus PaymentStatus  `gorm:"type:varchar(20);default:'pending'" json:"payment_status"`
	CreatedAt     time.Time      `json:"created_at"`

	// Relations
	User *User `gorm:"foreignKey:UserID" json:"-"`
}
