package app

import (
	"errors"
	"fmt"

	"photobook_backend/internal/config"
	"photobook_backend/internal/database"
	"photobook_backend/internal/handlers"
	"photobook_backend/internal/logger"
	"photobook_backend/internal/middleware"
	"photobook_backend/internal/models"
	"photobook_backend/internal/repositories"
	"photobook_backend/internal/routes"
	"photobook_backend/internal/services"
	"photobook_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(mysql.Open(cfg.Database.DSN), &gorm.Config{
		// TranslateError превращает ошибки драйвера (duplicate key и т.д.)
		// в ошибки GORM, на которые опираются репозитории.
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		// Без админа панель управления бесполезна - сервер не стартуем
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter собирает весь граф зависимостей и возвращает готовый *gin.Engine.
func SetupRouter(gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(gormDB)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(gormDB *gorm.DB) *services.ServiceContainer {
	// --- Инициализация репозиториев ---
	userRepo := repositories.NewUserRepository(gormDB)
	adminRepo := repositories.NewAdminRepository(gormDB)
	bookingRepo := repositories.NewBookingRepository(gormDB)
	notificationRepo := repositories.NewNotificationRepository(gormDB)
	reviewRepo := repositories.NewReviewRepository(gormDB)

	// --- Инициализация сервисов ---
	authService := services.NewAuthService(userRepo, adminRepo)
	userService := services.NewUserService(userRepo)
	bookingService := services.NewBookingService(gormDB, bookingRepo, userRepo, notificationRepo)
	paymentService := services.NewPaymentService(gormDB, bookingRepo, notificationRepo)
	notificationService := services.NewNotificationService(notificationRepo)
	reviewService := services.NewReviewService(reviewRepo)
	dashboardService := services.NewDashboardService(bookingRepo)

	return &services.ServiceContainer{
		AuthService:         authService,
		UserService:         userService,
		BookingService:      bookingService,
		PaymentService:      paymentService,
		NotificationService: notificationService,
		ReviewService:       reviewService,
		DashboardService:    dashboardService,
	}
}

func initializeHandlers(services *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(baseHandler, services.AuthService),
		UserHandler:         handlers.NewUserHandler(baseHandler, services.UserService),
		BookingHandler:      handlers.NewBookingHandler(baseHandler, services.BookingService),
		PaymentHandler:      handlers.NewPaymentHandler(baseHandler, services.PaymentService),
		NotificationHandler: handlers.NewNotificationHandler(baseHandler, services.NotificationService),
		ReviewHandler:       handlers.NewReviewHandler(baseHandler, services.ReviewService),
		DashboardHandler:    handlers.NewDashboardHandler(baseHandler, services.DashboardService),
	}
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set in .env. Skipping admin seeding.")
		return nil
	}

	var admin models.Admin
	result := db.Where("email = ?", adminEmail).First(&admin)

	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}

	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found with specified email. Creating first admin...", "email", adminEmail)

	adminName := cfg.FirstAdminName
	if adminName == "" {
		adminName = "Administrator"
	}

	newAdmin := &models.Admin{
		Name:     adminName,
		Email:    adminEmail,
		Password: adminPassword,
		Role:     "admin",
	}

	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user in database: %w", err)
	}

	logger.Info("✅ Successfully created first admin user", "email", adminEmail)
	return nil
}
