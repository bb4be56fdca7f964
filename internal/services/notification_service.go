package services

import (
	"time"

	"photobook_backend/internal/models"
	"photobook_backend/internal/repositories"
	"photobook_backend/internal/timefmt"
)

type NotificationService interface {
	// GetUserWeeklyNotifications возвращает уведомления пользователя
	// за текущую неделю (с последнего понедельника 00:00), новые сверху.
	GetUserWeeklyNotifications(userID uint) ([]models.Notification, error)
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

func (s *notificationService) GetUserWeeklyNotifications(userID uint) ([]models.Notification, error) {
	startOfWeek := timefmt.StartOfWeek(time.Now())

	notifications, err := s.notificationRepo.FindUserNotificationsSince(userID, startOfWeek)
	if err != nil {
		return nil, err
	}
	if notifications == nil {
		// Фронт ждет [], а не null
		notifications = []models.Notification{}
	}
	return notifications, nil
}
