package repositories

import (
	"time"

	"photobook_backend/internal/models"

	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(notification *models.Notification) error
	// FindUserNotificationsSince возвращает уведомления пользователя,
	// созданные не раньше since, новые сверху.
	FindUserNotificationsSince(userID uint, since time.Time) ([]models.Notification, error)

	WithTx(tx *gorm.DB) NotificationRepository
}

type NotificationRepositoryImpl struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &NotificationRepositoryImpl{db: db}
}

func (r *NotificationRepositoryImpl) WithTx(tx *gorm.DB) NotificationRepository {
	return &NotificationRepositoryImpl{db: tx}
}

func (r *NotificationRepositoryImpl) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

func (r *NotificationRepositoryImpl) FindUserNotificationsSince(userID uint, since time.Time) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.Where("user_id = ? AND created_at >= ?", userID, since).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}
