package services

import (
	"photobook_backend/internal/models"
	"photobook_backend/internal/repositories"
	"photobook_backend/internal/services/dto"
)

type DashboardService interface {
	GetOverview() (*repositories.BookingOverview, error)
	GetMonthlyBookings() ([]repositories.MonthlyBookingCount, error)
	GetPaymentsInsights() ([]dto.PaymentInsight, error)
}

type dashboardService struct {
	bookingRepo repositories.BookingRepository
}

func NewDashboardService(bookingRepo repositories.BookingRepository) DashboardService {
	return &dashboardService{bookingRepo: bookingRepo}
}

func (s *dashboardService) GetOverview() (*repositories.BookingOverview, error) {
	return s.bookingRepo.GetOverview()
}

func (s *dashboardService) GetMonthlyBookings() ([]repositories.MonthlyBookingCount, error) {
	rows, err := s.bookingRepo.GetMonthlyBookings()
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []repositories.MonthlyBookingCount{}
	}
	return rows, nil
}

func (s *dashboardService) GetPaymentsInsights() ([]dto.PaymentInsight, error) {
	paid, err := s.bookingRepo.SumTotalByPaymentStatus(models.PaymentStatusPaid)
	if err != nil {
		return nil, err
	}
	pending, err := s.bookingRepo.SumTotalByPaymentStatus(models.PaymentStatusPending)
	if err != nil {
		return nil, err
	}

	return []dto.PaymentInsight{
		{Label: "Total Paid", Amount: paid},
		{Label: "Pending", Amount: pending},
	}, nil
}
