package services

import (
	"testing"
	"time"

	"photobook_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNotification_WeeklyWindow - Возвращаются только уведомления с
// последнего понедельника, новые сверху
func TestNotification_WeeklyWindow(t *testing.T) {
	t.Parallel()

	repo := newFakeNotificationRepo()
	svc := NewNotificationService(repo)

	// Свежее уведомление - попадает в окно
	require.NoError(t, repo.Create(&models.Notification{
		UserID:  1,
		Message: "recent",
	}))

	// Уведомление двухнедельной давности - за окном
	require.NoError(t, repo.Create(&models.Notification{
		UserID:    1,
		Message:   "stale",
		CreatedAt: time.Now().AddDate(0, 0, -14),
	}))

	// Чужое уведомление
	require.NoError(t, repo.Create(&models.Notification{
		UserID:  2,
		Message: "other user",
	}))

	notifications, err := svc.GetUserWeeklyNotifications(1)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "recent", notifications[0].Message)
}

// TestNotification_EmptyResultIsSlice - Фронт ждет [], а не null
func TestNotification_EmptyResultIsSlice(t *testing.T) {
	t.Parallel()

	svc := NewNotificationService(newFakeNotificationRepo())

	notifications, err := svc.GetUserWeeklyNotifications(42)
	require.NoError(t, err)
	assert.NotNil(t, notifications)
	assert.Empty(t, notifications)
}
