package handlers

import (
	"net/http"
	"testing"

	"photobook_backend/internal/models"
	"photobook_backend/internal/services/dto"
	"photobook_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupBookingRouter(svc *stubBookingService) *gin.Engine {
	router := newRouter()
	api := router.Group("/api")
	NewBookingHandler(newTestBase(), svc).RegisterRoutes(api)
	return router
}

func bookingPayload() map[string]interface{} {
	return map[string]interface{}{
		"email":         "arun@test.com",
		"category":      "Wedding",
		"services":      []string{"Photography"},
		"total_members": 100,
		"food_items":    []string{"Veg"},
		"date":          "2025-07-15",
		"time":          "2:30 PM",
		"location":      "Chennai",
		"total":         45000,
	}
}

// TestBookingHandler_Create - Успешное создание: {success, message, bookingId}
func TestBookingHandler_Create(t *testing.T) {
	t.Parallel()

	var got *dto.CreateBookingRequest
	svc := &stubBookingService{
		create: func(req *dto.CreateBookingRequest) (uint, error) {
			got = req
			return 7, nil
		},
	}
	router := setupBookingRouter(svc)

	w := sendJSON(t, router, http.MethodPost, "/api/bookings", bookingPayload())

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Booking created successfully", body["message"])
	assert.Equal(t, float64(7), body["bookingId"])

	require.NotNil(t, got)
	assert.Equal(t, "arun@test.com", got.Email)
	assert.Equal(t, "2:30 PM", got.Time)
}

// TestBookingHandler_Create_MissingFields - Валидация бьет до сервиса
func TestBookingHandler_Create_MissingFields(t *testing.T) {
	t.Parallel()

	called := false
	svc := &stubBookingService{
		create: func(req *dto.CreateBookingRequest) (uint, error) {
			called = true
			return 0, nil
		},
	}
	router := setupBookingRouter(svc)

	payload := bookingPayload()
	delete(payload, "date")
	delete(payload, "location")

	w := sendJSON(t, router, http.MethodPost, "/api/bookings", payload)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.False(t, called, "сервис не должен вызываться при невалидном теле")
}

// TestBookingHandler_Create_SlotConflict - Конфликт слота: 400 с
// фиксированным текстом
func TestBookingHandler_Create_SlotConflict(t *testing.T) {
	t.Parallel()

	svc := &stubBookingService{
		create: func(req *dto.CreateBookingRequest) (uint, error) {
			return 0, apperrors.ErrSlotTaken
		},
	}
	router := setupBookingRouter(svc)

	w := sendJSON(t, router, http.MethodPost, "/api/bookings", bookingPayload())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t,
		"Sorry, the event is already booked. Please contact the admin at 9344016076",
		body["message"])
}

// TestBookingHandler_GetUserBookings - Список по email из пути
func TestBookingHandler_GetUserBookings(t *testing.T) {
	t.Parallel()

	svc := &stubBookingService{
		userBookings: func(email string) ([]models.Booking, error) {
			assert.Equal(t, "arun@test.com", email)
			return []models.Booking{{ID: 1, UserID: 2}}, nil
		},
	}
	router := setupBookingRouter(svc)

	w := sendJSON(t, router, http.MethodGet, "/api/bookings/arun@test.com", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	bookings, ok := body["bookings"].([]interface{})
	require.True(t, ok)
	assert.Len(t, bookings, 1)
}

// TestBookingHandler_GetUserBookings_UnknownUser - 404 при незнакомом email
func TestBookingHandler_GetUserBookings_UnknownUser(t *testing.T) {
	t.Parallel()

	svc := &stubBookingService{
		userBookings: func(email string) ([]models.Booking, error) {
			return nil, apperrors.ErrUserNotFound
		},
	}
	router := setupBookingRouter(svc)

	w := sendJSON(t, router, http.MethodGet, "/api/bookings/ghost@test.com", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "User not found", body["message"])
}

// TestBookingHandler_UpdateStatus - Смена статуса отдает сообщение с
// галочкой и обновленное бронирование
func TestBookingHandler_UpdateStatus(t *testing.T) {
	t.Parallel()

	svc := &stubBookingService{
		updateStatus: func(req *dto.UpdateBookingStatusRequest) (*models.Booking, error) {
			assert.Equal(t, uint(3), req.BookingID)
			assert.Equal(t, "confirmed", req.BookingStatus)
			return &models.Booking{ID: 3, BookingStatus: models.BookingStatusConfirmed}, nil
		},
	}
	router := setupBookingRouter(svc)

	w := sendJSON(t, router, http.MethodPost, "/api/bookings/update", map[string]interface{}{
		"bookingId":      3,
		"booking_status": "confirmed",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Booking updated & notification saved ✅", body["message"])
	require.Contains(t, body, "booking")
}

// TestBookingHandler_UpdateStatus_InvalidStatus - Кастомное правило
// валидации режет неизвестный статус на входе
func TestBookingHandler_UpdateStatus_InvalidStatus(t *testing.T) {
	t.Parallel()

	called := false
	svc := &stubBookingService{
		updateStatus: func(req *dto.UpdateBookingStatusRequest) (*models.Booking, error) {
			called = true
			return nil, nil
		},
	}
	router := setupBookingRouter(svc)

	w := sendJSON(t, router, http.MethodPost, "/api/bookings/update", map[string]interface{}{
		"bookingId":      3,
		"booking_status": "shipped",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, called)
}

// TestBookingHandler_GetPending - Админский список отдается как есть
func TestBookingHandler_GetPending(t *testing.T) {
	t.Parallel()

	svc := &stubBookingService{
		pending: func() ([]dto.AdminBookingRow, error) {
			return []dto.AdminBookingRow{{
				ID:             1,
				UserName:       "Arun",
				UserID:         2,
				PhotoshootDate: "15-Jul-2025",
				Status:         models.BookingStatusPending,
				PaymentStatus:  models.PaymentStatusPending,
			}}, nil
		},
	}
	router := setupBookingRouter(svc)

	w := sendJSON(t, router, http.MethodGet, "/api/bookings", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"photoshootDate":"15-Jul-2025"`)
	assert.Contains(t, w.Body.String(), `"userName":"Arun"`)
}
