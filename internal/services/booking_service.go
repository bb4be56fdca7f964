package services

import (
	"encoding/json"
	"time"

	"photobook_backend/internal/logger"
	"photobook_backend/internal/models"
	"photobook_backend/internal/repositories"
	"photobook_backend/internal/services/dto"
	"photobook_backend/internal/timefmt"
	"photobook_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Тексты уведомлений. Маппинг нарочно грубый: подтверждение получает
// свой текст, все остальные статусы (включая pending и rejected) -
// текст отмены. Так уведомляет и прежний бэкенд, фронт этого ждет.
const (
	bookingConfirmedMessage = "Your booking has been confirmed ✅"
	bookingCancelledMessage = "Sorry, your booking has been cancelled ❌"
)

const eventDateLayout = "2006-01-02"

type BookingService interface {
	// CreateBooking проверяет слот и создает бронирование в статусе
	// pending/pending. Возвращает id новой записи.
	CreateBooking(req *dto.CreateBookingRequest) (uint, error)
	GetUserBookings(email string) ([]models.Booking, error)
	GetPendingBookings() ([]dto.AdminBookingRow, error)
	// UpdateBookingStatus меняет статус и пишет уведомление владельцу
	// в одной транзакции.
	UpdateBookingStatus(req *dto.UpdateBookingStatusRequest) (*models.Booking, error)
}

type bookingService struct {
	tx               repositories.TxManager
	bookingRepo      repositories.BookingRepository
	userRepo         repositories.UserRepository
	notificationRepo repositories.NotificationRepository
}

func NewBookingService(
	tx repositories.TxManager,
	bookingRepo repositories.BookingRepository,
	userRepo repositories.UserRepository,
	notificationRepo repositories.NotificationRepository,
) BookingService {
	return &bookingService{
		tx:               tx,
		bookingRepo:      bookingRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
	}
}

func (s *bookingService) CreateBooking(req *dto.CreateBookingRequest) (uint, error) {
	formattedTime, err := timefmt.To24Hour(req.Time)
	if err != nil {
		return 0, apperrors.ValidationError("Invalid time format, expected H:MM AM/PM or HH:MM")
	}

	eventDate, err := time.Parse(eventDateLayout, req.Date)
	if err != nil {
		return 0, apperrors.ValidationError("Invalid date format, expected YYYY-MM-DD")
	}

	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return 0, apperrors.ErrUserNotFound
		}
		return 0, err
	}

	// Проверка слота перед вставкой. Под конкурентной записью она гонима,
	// поэтому уникальный индекс в Create страхует результат.
	taken, err := s.bookingRepo.ExistsAtSlot(eventDate, formattedTime)
	if err != nil {
		return 0, err
	}
	if taken {
		return 0, apperrors.ErrSlotTaken
	}

	booking := &models.Booking{
		UserID:        user.ID,
		Category:      req.Category,
		Services:      mustJSONList(req.Services),
		TotalMembers:  req.TotalMembers,
		FoodItems:     mustJSONList(req.FoodItems),
		EventDate:     eventDate,
		EventTime:     formattedTime,
		Location:      req.Location,
		Total:         req.Total,
		BookingStatus: models.BookingStatusPending,
		PaymentStatus: models.PaymentStatusPending,
	}

	if err := s.bookingRepo.Create(booking); err != nil {
		if apperrors.Is(err, repositories.ErrSlotTaken) {
			return 0, apperrors.ErrSlotTaken
		}
		return 0, err
	}

	logger.Info("booking created",
		"booking_id", booking.ID,
		"user_id", user.ID,
		"event_date", req.Date,
		"event_time", formattedTime,
	)

	return booking.ID, nil
}

func (s *bookingService) GetUserBookings(email string) ([]models.Booking, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	bookings, err := s.bookingRepo.FindByUserID(user.ID)
	if err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}

func (s *bookingService) GetPendingBookings() ([]dto.AdminBookingRow, error) {
	rows, err := s.bookingRepo.FindPendingWithUser()
	if err != nil {
		return nil, err
	}

	result := make([]dto.AdminBookingRow, 0, len(rows))
	for _, row := range rows {
		result = append(result, dto.AdminBookingRow{
			ID:             row.ID,
			UserName:       row.UserName,
			UserID:         row.UserID,
			PhotoshootDate: row.EventDate.Format("02-Jan-2006"),
			Status:         row.BookingStatus,
			PaymentStatus:  row.PaymentStatus,
		})
	}
	return result, nil
}

func (s *bookingService) UpdateBookingStatus(req *dto.UpdateBookingStatusRequest) (*models.Booking, error) {
	if !models.IsValidBookingStatus(req.BookingStatus) {
		return nil, apperrors.ErrInvalidBookingStatus
	}
	newStatus := models.BookingStatus(req.BookingStatus)

	var updated *models.Booking

	// Смена статуса и уведомление - одна атомарная единица: статус не может
	// сохраниться без своего уведомления.
	err := s.tx.Transaction(func(txdb *gorm.DB) error {
		bookingRepo := s.bookingRepo.WithTx(txdb)
		notificationRepo := s.notificationRepo.WithTx(txdb)

		if err := bookingRepo.UpdateStatus(req.BookingID, newStatus); err != nil {
			return err
		}

		booking, err := bookingRepo.FindByID(req.BookingID)
		if err != nil {
			return err
		}

		message := bookingCancelledMessage
		if newStatus == models.BookingStatusConfirmed {
			message = bookingConfirmedMessage
		}

		if err := notificationRepo.Create(&models.Notification{
			UserID:  booking.UserID,
			Message: message,
		}); err != nil {
			return err
		}

		updated = booking
		return nil
	})

	if err != nil {
		if apperrors.Is(err, repositories.ErrBookingNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, err
	}

	logger.Info("booking status updated",
		"booking_id", req.BookingID,
		"booking_status", newStatus,
	)

	return updated, nil
}

// mustJSONList сериализует список строк в JSON-массив.
// Отсутствующий список хранится как [], а не NULL.
func mustJSONList(items []string) datatypes.JSON {
	if items == nil {
		items = []string{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		// []string не может не сериализоваться
		panic(err)
	}
	return datatypes.JSON(data)
}
