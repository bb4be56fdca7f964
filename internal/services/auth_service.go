package services

import (
	"photobook_backend/internal/logger"
	"photobook_backend/internal/models"
	"photobook_backend/internal/repositories"
	"photobook_backend/internal/services/dto"
	"photobook_backend/pkg/apperrors"
)

// AuthService - регистрация и вход. Токенов и сессий нет: фронт после
// логина просто запоминает userId. Пароли сравниваются с хранимым
// значением как есть - контракт существующей базы.
type AuthService interface {
	Register(req *dto.RegisterRequest) (uint, error)
	Login(req *dto.LoginRequest) (*models.User, error)
	AdminLogin(req *dto.AdminLoginRequest) (*models.Admin, error)
	CheckEmail(email string) (bool, error)
	UpdatePassword(email, newPassword string) error
	GetAdminProfile(email string) (*models.Admin, error)
}

type authService struct {
	userRepo  repositories.UserRepository
	adminRepo repositories.AdminRepository
}

func NewAuthService(userRepo repositories.UserRepository, adminRepo repositories.AdminRepository) AuthService {
	return &authService{
		userRepo:  userRepo,
		adminRepo: adminRepo,
	}
}

func (s *authService) Register(req *dto.RegisterRequest) (uint, error) {
	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Address:  req.Address,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return 0, apperrors.ErrEmailAlreadyRegistered
		}
		return 0, err
	}

	logger.Info("user registered", "user_id", user.ID, "email", user.Email)
	return user.ID, nil
}

func (s *authService) Login(req *dto.LoginRequest) (*models.User, error) {
	user, err := s.userRepo.FindByCredentials(req.Email, req.Password)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) AdminLogin(req *dto.AdminLoginRequest) (*models.Admin, error) {
	admin, err := s.adminRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAdminNotFound) {
			return nil, apperrors.ErrInvalidAdminCredentials
		}
		return nil, err
	}

	if admin.Password != req.Password {
		return nil, apperrors.ErrInvalidAdminCredentials
	}

	return admin, nil
}

func (s *authService) CheckEmail(email string) (bool, error) {
	_, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *authService) UpdatePassword(email, newPassword string) error {
	err := s.userRepo.UpdatePassword(email, newPassword)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err, "auth", "Email not found")
		}
		return err
	}

	logger.Info("password updated", "email", email)
	return nil
}

func (s *authService) GetAdminProfile(email string) (*models.Admin, error) {
	admin, err := s.adminRepo.FindByEmail(email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAdminNotFound) {
			return nil, apperrors.ErrNotFound(err, "admin", "Admin not found")
		}
		return nil, err
	}
	return admin, nil
}
