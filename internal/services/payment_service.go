package services

import (
	"photobook_backend/internal/logger"
	"photobook_backend/internal/models"
	"photobook_backend/internal/repositories"
	"photobook_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const paymentReceivedMessage = "Your payment has been successfully received ✅"

type PaymentService interface {
	GetPendingPayments() ([]repositories.PendingPaymentRow, error)
	// MarkPaymentPaid безусловно ставит payment_status=paid и пишет
	// уведомление владельцу. Повторный вызов оставляет paid и добавляет
	// еще одно уведомление - дедупликации нет, это ожидаемое поведение.
	MarkPaymentPaid(bookingID uint) error
}

type paymentService struct {
	tx               repositories.TxManager
	bookingRepo      repositories.BookingRepository
	notificationRepo repositories.NotificationRepository
}

func NewPaymentService(
	tx repositories.TxManager,
	bookingRepo repositories.BookingRepository,
	notificationRepo repositories.NotificationRepository,
) PaymentService {
	return &paymentService{
		tx:               tx,
		bookingRepo:      bookingRepo,
		notificationRepo: notificationRepo,
	}
}

func (s *paymentService) GetPendingPayments() ([]repositories.PendingPaymentRow, error) {
	rows, err := s.bookingRepo.FindPendingPaymentsWithUser()
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []repositories.PendingPaymentRow{}
	}
	return rows, nil
}

func (s *paymentService) MarkPaymentPaid(bookingID uint) error {
	err := s.tx.Transaction(func(txdb *gorm.DB) error {
		bookingRepo := s.bookingRepo.WithTx(txdb)
		notificationRepo := s.notificationRepo.WithTx(txdb)

		if err := bookingRepo.MarkPaid(bookingID); err != nil {
			return err
		}

		// Проверки существования у этой операции нет по контракту:
		// неизвестный id всплывает отсюда как 500, а не 404.
		booking, err := bookingRepo.FindByID(bookingID)
		if err != nil {
			return apperrors.InternalError(err)
		}

		return notificationRepo.Create(&models.Notification{
			UserID:  booking.UserID,
			Message: paymentReceivedMessage,
		})
	})
	if err != nil {
		return err
	}

	logger.Info("payment marked as paid", "booking_id", bookingID)
	return nil
}
