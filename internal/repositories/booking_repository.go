package repositories

import (
	"errors"
	"time"

	"photobook_backend/internal/models"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrSlotTaken       = errors.New("slot already booked")
)

// mysqlDuplicateEntry - код ошибки MySQL для нарушения уникального индекса.
const mysqlDuplicateEntry = 1062

type BookingRepository interface {
	// Booking operations
	Create(booking *models.Booking) error
	FindByID(id uint) (*models.Booking, error)
	FindByUserID(userID uint) ([]models.Booking, error)
	ExistsAtSlot(eventDate time.Time, eventTime string) (bool, error)
	UpdateStatus(id uint, status models.BookingStatus) error
	MarkPaid(id uint) error

	// Admin listings (joined with users)
	FindPendingWithUser() ([]PendingBookingRow, error)
	FindPendingPaymentsWithUser() ([]PendingPaymentRow, error)

	// Dashboard aggregates
	GetOverview() (*BookingOverview, error)
	GetMonthlyBookings() ([]MonthlyBookingCount, error)
	SumTotalByPaymentStatus(status models.PaymentStatus) (float64, error)

	// WithTx возвращает репозиторий, привязанный к переданной транзакции.
	WithTx(tx *gorm.DB) BookingRepository
}

type BookingRepositoryImpl struct {
	db *gorm.DB
}

// PendingBookingRow - строка админского списка бронирований.
type PendingBookingRow struct {
	ID            uint                 `json:"id"`
	UserName      string               `json:"userName"`
	UserID        uint                 `json:"user_id"`
	EventDate     time.Time            `json:"-"`
	BookingStatus models.BookingStatus `json:"status"`
	PaymentStatus models.PaymentStatus `json:"payment_status"`
}

// PendingPaymentRow - строка списка неоплаченных бронирований.
type PendingPaymentRow struct {
	ID            uint                 `json:"id"`
	UserID        uint                 `json:"user_id"`
	Services      string               `json:"services"`
	Total         float64              `json:"total"`
	PaymentStatus models.PaymentStatus `json:"payment_status"`
	Name          string               `json:"name"`
	Email         string               `json:"email"`
	Phone         string               `json:"phone"`
}

// BookingOverview - агрегаты для дашборда.
type BookingOverview struct {
	TotalBookings     int64   `json:"totalBookings"`
	PendingBookings   int64   `json:"pendingBookings"`
	ConfirmedBookings int64   `json:"confirmedBookings"`
	CancelledBookings int64   `json:"cancelledBookings"`
	TotalPayments     float64 `json:"totalPayments"`
	PendingPayments   float64 `json:"pendingPayments"`
}

// MonthlyBookingCount - количество бронирований за месяц.
type MonthlyBookingCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &BookingRepositoryImpl{db: db}
}

func (r *BookingRepositoryImpl) WithTx(tx *gorm.DB) BookingRepository {
	return &BookingRepositoryImpl{db: tx}
}

// Booking operations

func (r *BookingRepositoryImpl) Create(booking *models.Booking) error {
	err := r.db.Create(booking).Error
	if err != nil {
		// Уникальный индекс на (event_date, event_time) - второй писатель,
		// проскочивший проверку слота, получает ту же доменную ошибку.
		if isDuplicateKey(err) {
			return ErrSlotTaken
		}
		return err
	}
	return nil
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}

func (r *BookingRepositoryImpl) FindByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepositoryImpl) FindByUserID(userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Where("user_id = ?", userID).Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepositoryImpl) ExistsAtSlot(eventDate time.Time, eventTime string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Booking{}).
		Where("event_date = ? AND event_time = ?", eventDate, eventTime).
		Count(&count).Error
	return count > 0, err
}

func (r *BookingRepositoryImpl) UpdateStatus(id uint, status models.BookingStatus) error {
	result := r.db.Model(&models.Booking{}).Where("id = ?", id).
		Update("booking_status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// MarkPaid безусловно переводит payment_status в paid.
// Проверки существования нет - так вел себя прежний бэкенд.
func (r *BookingRepositoryImpl) MarkPaid(id uint) error {
	return r.db.Model(&models.Booking{}).Where("id = ?", id).
		Update("payment_status", models.PaymentStatusPaid).Error
}

// Admin listings

func (r *BookingRepositoryImpl) FindPendingWithUser() ([]PendingBookingRow, error) {
	var rows []PendingBookingRow
	err := r.db.Model(&models.Booking{}).
		Select("bookings.id, users.name AS user_name, bookings.user_id, bookings.event_date, bookings.booking_status, bookings.payment_status").
		Joins("JOIN users ON users.id = bookings.user_id").
		Where("bookings.booking_status = ?", models.BookingStatusPending).
		Order("bookings.id DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *BookingRepositoryImpl) FindPendingPaymentsWithUser() ([]PendingPaymentRow, error) {
	var rows []PendingPaymentRow
	err := r.db.Model(&models.Booking{}).
		Select("bookings.id, bookings.user_id, bookings.services, bookings.total, bookings.payment_status, users.name, users.email, users.phone").
		Joins("JOIN users ON users.id = bookings.user_id").
		Where("bookings.payment_status = ?", models.PaymentStatusPending).
		Order("bookings.id DESC").
		Scan(&rows).Error
	return rows, err
}

// Dashboard aggregates

func (r *BookingRepositoryImpl) GetOverview() (*BookingOverview, error) {
	var overview BookingOverview

	if err := r.db.Model(&models.Booking{}).Count(&overview.TotalBookings).Error; err != nil {
		return nil, err
	}

	statusCounts := []struct {
		status models.BookingStatus
		dest   *int64
	}{
		{models.BookingStatusPending, &overview.PendingBookings},
		{models.BookingStatusConfirmed, &overview.ConfirmedBookings},
		{models.BookingStatusCancelled, &overview.CancelledBookings},
	}
	for _, sc := range statusCounts {
		if err := r.db.Model(&models.Booking{}).
			Where("booking_status = ?", sc.status).
			Count(sc.dest).Error; err != nil {
			return nil, err
		}
	}

	var err error
	overview.TotalPayments, err = r.SumTotalByPaymentStatus(models.PaymentStatusPaid)
	if err != nil {
		return nil, err
	}
	overview.PendingPayments, err = r.SumTotalByPaymentStatus(models.PaymentStatusPending)
	if err != nil {
		return nil, err
	}

	return &overview, nil
}

func (r *BookingRepositoryImpl) GetMonthlyBookings() ([]MonthlyBookingCount, error) {
	var rows []MonthlyBookingCount
	err := r.db.Raw(`
		SELECT DATE_FORMAT(event_date, '%b') AS month, COUNT(*) AS count
		FROM bookings
		WHERE event_date > DATE_SUB(CURDATE(), INTERVAL 12 MONTH)
		GROUP BY YEAR(event_date), MONTH(event_date)
		ORDER BY YEAR(event_date), MONTH(event_date)
	`).Scan(&rows).Error
	return rows, err
}

func (r *BookingRepositoryImpl) SumTotalByPaymentStatus(status models.PaymentStatus) (float64, error) {
	var amount float64
	err := r.db.Model(&models.Booking{}).
		Where("payment_status = ?", status).
		Select("IFNULL(SUM(total), 0)").
		Scan(&amount).Error
	return amount, err
}
