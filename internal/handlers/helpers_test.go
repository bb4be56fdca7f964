package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"photobook_backend/internal/models"
	"photobook_backend/internal/repositories"
	"photobook_backend/internal/services"
	"photobook_backend/internal/services/dto"
	"photobook_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestBase() *BaseHandler {
	return NewBaseHandler(validator.New())
}

// sendJSON выполняет запрос к роутеру и возвращает рекордер.
func sendJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ============================================================================
// Стабы сервисов: каждый метод делегирует в настраиваемую функцию
// ============================================================================

type stubAuthService struct {
	register        func(req *dto.RegisterRequest) (uint, error)
	login           func(req *dto.LoginRequest) (*models.User, error)
	adminLogin      func(req *dto.AdminLoginRequest) (*models.Admin, error)
	checkEmail      func(email string) (bool, error)
	updatePassword  func(email, newPassword string) error
	getAdminProfile func(email string) (*models.Admin, error)
}

func (s *stubAuthService) Register(req *dto.RegisterRequest) (uint, error) { return s.register(req) }
func (s *stubAuthService) Login(req *dto.LoginRequest) (*models.User, error) {
	return s.login(req)
}
func (s *stubAuthService) AdminLogin(req *dto.AdminLoginRequest) (*models.Admin, error) {
	return s.adminLogin(req)
}
func (s *stubAuthService) CheckEmail(email string) (bool, error) { return s.checkEmail(email) }
func (s *stubAuthService) UpdatePassword(email, newPassword string) error {
	return s.updatePassword(email, newPassword)
}
func (s *stubAuthService) GetAdminProfile(email string) (*models.Admin, error) {
	return s.getAdminProfile(email)
}

type stubBookingService struct {
	create       func(req *dto.CreateBookingRequest) (uint, error)
	userBookings func(email string) ([]models.Booking, error)
	pending      func() ([]dto.AdminBookingRow, error)
	updateStatus func(req *dto.UpdateBookingStatusRequest) (*models.Booking, error)
}

func (s *stubBookingService) CreateBooking(req *dto.CreateBookingRequest) (uint, error) {
	return s.create(req)
}
func (s *stubBookingService) GetUserBookings(email string) ([]models.Booking, error) {
	return s.userBookings(email)
}
func (s *stubBookingService) GetPendingBookings() ([]dto.AdminBookingRow, error) {
	return s.pending()
}
func (s *stubBookingService) UpdateBookingStatus(req *dto.UpdateBookingStatusRequest) (*models.Booking, error) {
	return s.updateStatus(req)
}

type stubPaymentService struct {
	pending  func() ([]repositories.PendingPaymentRow, error)
	markPaid func(bookingID uint) error
}

func (s *stubPaymentService) GetPendingPayments() ([]repositories.PendingPaymentRow, error) {
	return s.pending()
}
func (s *stubPaymentService) MarkPaymentPaid(bookingID uint) error { return s.markPaid(bookingID) }

type stubReviewService struct {
	create  func(req *dto.CreateReviewRequest) error
	findAll func() ([]dto.AdminReviewRow, error)
	delete  func(id uint) error
}

func (s *stubReviewService) CreateReview(req *dto.CreateReviewRequest) error { return s.create(req) }
func (s *stubReviewService) GetAllReviews() ([]dto.AdminReviewRow, error)    { return s.findAll() }
func (s *stubReviewService) DeleteReview(id uint) error                      { return s.delete(id) }

// Проверка на этапе компиляции, что стабы реализуют интерфейсы сервисов
var (
	_ services.AuthService    = (*stubAuthService)(nil)
	_ services.BookingService = (*stubBookingService)(nil)
	_ services.PaymentService = (*stubPaymentService)(nil)
	_ services.ReviewService  = (*stubReviewService)(nil)
)

// decodeBody разбирает JSON-ответ в map для гибких проверок полей.
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func newRouter() *gin.Engine {
	return gin.New()
}
