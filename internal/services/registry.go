package services

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService         AuthService
	UserService         UserService
	BookingService      BookingService
	PaymentService      PaymentService
	NotificationService NotificationService
	ReviewService       ReviewService
	DashboardService    DashboardService
}
