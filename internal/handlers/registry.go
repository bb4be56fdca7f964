package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	UserHandler         *UserHandler
	BookingHandler      *BookingHandler
	PaymentHandler      *PaymentHandler
	NotificationHandler *NotificationHandler
	ReviewHandler       *ReviewHandler
	DashboardHandler    *DashboardHandler
}
