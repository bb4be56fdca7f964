package services

import (
	"photobook_backend/internal/logger"
	"photobook_backend/internal/models"
	"photobook_backend/internal/repositories"
	"photobook_backend/internal/services/dto"
	"photobook_backend/pkg/apperrors"
)

type UserService interface {
	// Profile operations
	GetProfile(email string) (*dto.ProfileInfo, error)
	UpdateProfile(email string, req *dto.UpdateProfileRequest) error

	// Admin operations
	ListUsers(search string) ([]models.User, error)
	UpdateUser(id uint, req *dto.AdminUpdateUserRequest) error
	DeleteUser(id uint) error
	SetUserBlocked(id uint, blocked int) error
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// Profile operations

func (s *userService) GetProfile(email string) (*dto.ProfileInfo, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	// Пароль наружу не отдаем
	return &dto.ProfileInfo{
		Name:    user.Name,
		Email:   user.Email,
		Phone:   user.Phone,
		Address: user.Address,
	}, nil
}

func (s *userService) UpdateProfile(email string, req *dto.UpdateProfileRequest) error {
	err := s.userRepo.UpdateProfile(email, req.Name, req.Phone, req.Address)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return err
	}
	return nil
}

// Admin operations

func (s *userService) ListUsers(search string) ([]models.User, error) {
	users, err := s.userRepo.FindAll(search)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

func (s *userService) UpdateUser(id uint, req *dto.AdminUpdateUserRequest) error {
	return s.userRepo.UpdateUser(id, req.Name, req.Email, req.Phone, req.Address)
}

func (s *userService) DeleteUser(id uint) error {
	if err := s.userRepo.Delete(id); err != nil {
		return err
	}
	logger.Info("user deleted", "user_id", id)
	return nil
}

func (s *userService) SetUserBlocked(id uint, blocked int) error {
	if err := s.userRepo.SetBlocked(id, blocked); err != nil {
		return err
	}
	logger.Info("user block flag updated", "user_id", id, "blocked", blocked)
	return nil
}
