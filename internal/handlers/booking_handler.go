package handlers

import (
	"net/http"

	"photobook_backend/internal/services"
	"photobook_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	*BaseHandler
	bookingService services.BookingService
}

func NewBookingHandler(base *BaseHandler, bookingService services.BookingService) *BookingHandler {
	return &BookingHandler{
		BaseHandler:    base,
		bookingService: bookingService,
	}
}

func (h *BookingHandler) RegisterRoutes(r *gin.RouterGroup) {
	bookings := r.Group("/bookings")
	{
		bookings.POST("", h.CreateBooking)
		bookings.GET("", h.GetPendingBookings)
		bookings.GET("/:email", h.GetUserBookings)
		bookings.POST("/update", h.UpdateBookingStatus)
	}
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req dto.CreateBookingRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	bookingID, err := h.bookingService.CreateBooking(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CreateBookingResponse{
		Success:   true,
		Message:   "Booking created successfully",
		BookingID: bookingID,
	})
}

func (h *BookingHandler) GetUserBookings(c *gin.Context) {
	email := c.Param("email")

	bookings, err := h.bookingService.GetUserBookings(email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UserBookingsResponse{Bookings: bookings})
}

// GetPendingBookings - админский список бронирований, ждущих решения.
func (h *BookingHandler) GetPendingBookings(c *gin.Context) {
	rows, err := h.bookingService.GetPendingBookings()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	var req dto.UpdateBookingStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	booking, err := h.bookingService.UpdateBookingStatus(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UpdateBookingStatusResponse{
		Message: "Booking updated & notification saved ✅",
		Booking: booking,
	})
}
