package dto

import "photobook_backend/internal/models"

type CreateBookingRequest struct {
	Email        string   `json:"email" validate:"required,email"`
	Category     string   `json:"category"`
	Services     []string `json:"services"`
	TotalMembers int      `json:"total_members" validate:"gte=0"`
	FoodItems    []string `json:"food_items"`
	Date         string   `json:"date" validate:"required"`
	Time         string   `json:"time" validate:"required"`
	Location     string   `json:"location" validate:"required"`
	Total        float64  `json:"total" validate:"gte=0"`
}

type CreateBookingResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	BookingID uint   `json:"bookingId"`
}

type UpdateBookingStatusRequest struct {
	BookingID     uint   `json:"bookingId" validate:"required"`
	BookingStatus string `json:"booking_status" validate:"required,is-booking-status"`
}

type UpdateBookingStatusResponse struct {
	Message string          `json:"message"`
	Booking *models.Booking `json:"booking"`
}

type UserBookingsResponse struct {
	Bookings []models.Booking `json:"bookings"`
}

// AdminBookingRow - строка админского списка pending-бронирований,
// дата отформатирована как 02-Jan-2006.
type AdminBookingRow struct {
	ID             uint                 `json:"id"`
	UserName       string               `json:"userName"`
	UserID         uint                 `json:"user_id"`
	PhotoshootDate string               `json:"photoshootDate"`
	Status         models.BookingStatus `json:"status"`
	PaymentStatus  models.PaymentStatus `json:"payment_status"`
}
