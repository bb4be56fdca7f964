package services

import (
	"database/sql"
	"strings"
	"time"

	"photobook_backend/internal/models"
	"photobook_backend/internal/repositories"

	"gorm.io/gorm"
)

// In-memory реализации репозиториев для тестов сервисного слоя.
// Контракты (sentinel-ошибки, поведение RowsAffected=0, уникальный слот)
// повторяют реальные реализации на GORM.

// --- TxManager ---

type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error {
	m.calls++
	return fc(nil)
}

// --- UserRepository ---

type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
	err    error // если задана, возвращается из всех методов
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User), nextID: 1}
}

func (r *fakeUserRepo) add(name, email, password, phone, address string) *models.User {
	u := &models.User{
		ID:       r.nextID,
		Name:     name,
		Email:    email,
		Password: password,
		Phone:    phone,
		Address:  address,
	}
	r.users[u.ID] = u
	r.nextID++
	return u
}

func (r *fakeUserRepo) FindByID(id uint) (*models.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByCredentials(email, password string) (*models.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Email == email && u.Password == password {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(user *models.User) error {
	if r.err != nil {
		return r.err
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) UpdatePassword(email, newPassword string) error {
	if r.err != nil {
		return r.err
	}
	for _, u := range r.users {
		if u.Email == email {
			u.Password = newPassword
			return nil
		}
	}
	return repositories.ErrUserNotFound
}

func (r *fakeUserRepo) UpdateProfile(email, name, phone, address string) error {
	if r.err != nil {
		return r.err
	}
	for _, u := range r.users {
		if u.Email == email {
			u.Name, u.Phone, u.Address = name, phone, address
			return nil
		}
	}
	return repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindAll(search string) ([]models.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	var result []models.User
	for _, u := range r.users {
		if search == "" ||
			strings.Contains(u.Name, search) ||
			strings.Contains(u.Email, search) ||
			strings.Contains(u.Phone, search) {
			result = append(result, *u)
		}
	}
	return result, nil
}

func (r *fakeUserRepo) UpdateUser(id uint, name, email, phone, address string) error {
	if r.err != nil {
		return r.err
	}
	if u, ok := r.users[id]; ok {
		u.Name, u.Email, u.Phone, u.Address = name, email, phone, address
	}
	return nil
}

func (r *fakeUserRepo) Delete(id uint) error {
	if r.err != nil {
		return r.err
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) SetBlocked(id uint, blocked int) error {
	if r.err != nil {
		return r.err
	}
	if u, ok := r.users[id]; ok {
		u.Blocked = blocked
	}
	return nil
}

// --- AdminRepository ---

type fakeAdminRepo struct {
	admins map[string]*models.Admin
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: make(map[string]*models.Admin)}
}

func (r *fakeAdminRepo) FindByEmail(email string) (*models.Admin, error) {
	a, ok := r.admins[email]
	if !ok {
		return nil, repositories.ErrAdminNotFound
	}
	return a, nil
}

func (r *fakeAdminRepo) Create(admin *models.Admin) error {
	admin.ID = uint(len(r.admins) + 1)
	r.admins[admin.Email] = admin
	return nil
}

// --- BookingRepository ---

type fakeBookingRepo struct {
	bookings map[uint]*models.Booking
	nextID   uint
	users    *fakeUserRepo // для джойнов в админских списках
	err      error
}

func newFakeBookingRepo(users *fakeUserRepo) *fakeBookingRepo {
	return &fakeBookingRepo{
		bookings: make(map[uint]*models.Booking),
		nextID:   1,
		users:    users,
	}
}

func (r *fakeBookingRepo) WithTx(tx *gorm.DB) repositories.BookingRepository { return r }

func (r *fakeBookingRepo) Create(booking *models.Booking) error {
	if r.err != nil {
		return r.err
	}
	// Уникальный индекс (event_date, event_time)
	for _, b := range r.bookings {
		if b.EventDate.Equal(booking.EventDate) && b.EventTime == booking.EventTime {
			return repositories.ErrSlotTaken
		}
	}
	booking.ID = r.nextID
	booking.CreatedAt = time.Now()
	r.nextID++
	r.bookings[booking.ID] = booking
	return nil
}

func (r *fakeBookingRepo) FindByID(id uint) (*models.Booking, error) {
	if r.err != nil {
		return nil, r.err
	}
	b, ok := r.bookings[id]
	if !ok {
		return nil, repositories.ErrBookingNotFound
	}
	return b, nil
}

func (r *fakeBookingRepo) FindByUserID(userID uint) ([]models.Booking, error) {
	if r.err != nil {
		return nil, r.err
	}
	var result []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			result = append(result, *b)
		}
	}
	return result, nil
}

func (r *fakeBookingRepo) ExistsAtSlot(eventDate time.Time, eventTime string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	for _, b := range r.bookings {
		if b.EventDate.Equal(eventDate) && b.EventTime == eventTime {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeBookingRepo) UpdateStatus(id uint, status models.BookingStatus) error {
	if r.err != nil {
		return r.err
	}
	b, ok := r.bookings[id]
	if !ok {
		return repositories.ErrBookingNotFound
	}
	b.BookingStatus = status
	return nil
}

func (r *fakeBookingRepo) MarkPaid(id uint) error {
	if r.err != nil {
		return r.err
	}
	// Безусловный UPDATE: несуществующий id - не ошибка, 0 строк
	if b, ok := r.bookings[id]; ok {
		b.PaymentStatus = models.PaymentStatusPaid
	}
	return nil
}

func (r *fakeBookingRepo) FindPendingWithUser() ([]repositories.PendingBookingRow, error) {
	if r.err != nil {
		return nil, r.err
	}
	var rows []repositories.PendingBookingRow
	for _, b := range r.bookings {
		if b.BookingStatus != models.BookingStatusPending {
			continue
		}
		userName := ""
		if u, ok := r.users.users[b.UserID]; ok {
			userName = u.Name
		}
		rows = append(rows, repositories.PendingBookingRow{
			ID:            b.ID,
			UserName:      userName,
			UserID:        b.UserID,
			EventDate:     b.EventDate,
			BookingStatus: b.BookingStatus,
			PaymentStatus: b.PaymentStatus,
		})
	}
	return rows, nil
}

func (r *fakeBookingRepo) FindPendingPaymentsWithUser() ([]repositories.PendingPaymentRow, error) {
	if r.err != nil {
		return nil, r.err
	}
	var rows []repositories.PendingPaymentRow
	for _, b := range r.bookings {
		if b.PaymentStatus != models.PaymentStatusPending {
			continue
		}
		row := repositories.PendingPaymentRow{
			ID:            b.ID,
			UserID:        b.UserID,
			Services:      string(b.Services),
			Total:         b.Total,
			PaymentStatus: b.PaymentStatus,
		}
		if u, ok := r.users.users[b.UserID]; ok {
			row.Name, row.Email, row.Phone = u.Name, u.Email, u.Phone
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (r *fakeBookingRepo) GetOverview() (*repositories.BookingOverview, error) {
	if r.err != nil {
		return nil, r.err
	}
	overview := &repositories.BookingOverview{}
	for _, b := range r.bookings {
		overview.TotalBookings++
		switch b.BookingStatus {
		case models.BookingStatusPending:
			overview.PendingBookings++
		case models.BookingStatusConfirmed:
			overview.ConfirmedBookings++
		case models.BookingStatusCancelled:
			overview.CancelledBookings++
		}
		switch b.PaymentStatus {
		case models.PaymentStatusPaid:
			overview.TotalPayments += b.Total
		case models.PaymentStatusPending:
			overview.PendingPayments += b.Total
		}
	}
	return overview, nil
}

func (r *fakeBookingRepo) GetMonthlyBookings() ([]repositories.MonthlyBookingCount, error) {
	if r.err != nil {
		return nil, r.err
	}
	counts := make(map[string]int64)
	for _, b := range r.bookings {
		counts[b.EventDate.Format("Jan")]++
	}
	var rows []repositories.MonthlyBookingCount
	for month, count := range counts {
		rows = append(rows, repositories.MonthlyBookingCount{Month: month, Count: count})
	}
	return rows, nil
}

func (r *fakeBookingRepo) SumTotalByPaymentStatus(status models.PaymentStatus) (float64, error) {
	if r.err != nil {
		return 0, r.err
	}
	var sum float64
	for _, b := range r.bookings {
		if b.PaymentStatus == status {
			sum += b.Total
		}
	}
	return sum, nil
}

// --- NotificationRepository ---

type fakeNotificationRepo struct {
	notifications []*models.Notification
	nextID        uint
	createErr     error
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{nextID: 1}
}

func (r *fakeNotificationRepo) WithTx(tx *gorm.DB) repositories.NotificationRepository { return r }

func (r *fakeNotificationRepo) Create(notification *models.Notification) error {
	if r.createErr != nil {
		return r.createErr
	}
	notification.ID = r.nextID
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now()
	}
	r.nextID++
	r.notifications = append(r.notifications, notification)
	return nil
}

func (r *fakeNotificationRepo) FindUserNotificationsSince(userID uint, since time.Time) ([]models.Notification, error) {
	var result []models.Notification
	// новые сверху
	for i := len(r.notifications) - 1; i >= 0; i-- {
		n := r.notifications[i]
		if n.UserID == userID && !n.CreatedAt.Before(since) {
			result = append(result, *n)
		}
	}
	return result, nil
}

// forUser возвращает все уведомления пользователя в порядке создания.
func (r *fakeNotificationRepo) forUser(userID uint) []*models.Notification {
	var result []*models.Notification
	for _, n := range r.notifications {
		if n.UserID == userID {
			result = append(result, n)
		}
	}
	return result
}

// --- ReviewRepository ---

type fakeReviewRepo struct {
	reviews map[uint]*models.Review
	nextID  uint
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[uint]*models.Review), nextID: 1}
}

func (r *fakeReviewRepo) Create(review *models.Review) error {
	review.ID = r.nextID
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now()
	}
	r.nextID++
	r.reviews[review.ID] = review
	return nil
}

func (r *fakeReviewRepo) FindAll() ([]models.Review, error) {
	var result []models.Review
	// id DESC
	for id := r.nextID; id >= 1; id-- {
		if rev, ok := r.reviews[id]; ok {
			result = append(result, *rev)
		}
	}
	return result, nil
}

func (r *fakeReviewRepo) Delete(id uint) error {
	if _, ok := r.reviews[id]; !ok {
		return repositories.ErrReviewNotFound
	}
	delete(r.reviews, id)
	return nil
}
