package repositories

import (
	"errors"

	"photobook_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	// User operations
	FindByID(id uint) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	// FindByCredentials ищет пользователя по паре email+password.
	// Пароль сравнивается как есть - контракт существующей базы.
	FindByCredentials(email, password string) (*models.User, error)
	Create(user *models.User) error
	UpdatePassword(email, newPassword string) error
	UpdateProfile(email, name, phone, address string) error

	// Admin operations
	FindAll(search string) ([]models.User, error)
	UpdateUser(id uint, name, email, phone, address string) error
	Delete(id uint) error
	SetBlocked(id uint, blocked int) error
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

// User operations

func (r *UserRepositoryImpl) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByCredentials(email, password string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ? AND password = ?", email, password).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Create(user *models.User) error {
	// Check if user already exists
	var existing models.User
	if err := r.db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return ErrUserAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return r.db.Create(user).Error
}

func (r *UserRepositoryImpl) UpdatePassword(email, newPassword string) error {
	result := r.db.Model(&models.User{}).Where("email = ?", email).
		Update("password", newPassword)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) UpdateProfile(email, name, phone, address string) error {
	result := r.db.Model(&models.User{}).Where("email = ?", email).Updates(map[string]interface{}{
		"name":    name,
		"phone":   phone,
		"address": address,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// Admin operations

func (r *UserRepositoryImpl) FindAll(search string) ([]models.User, error) {
	var users []models.User
	query := r.db.Model(&models.User{})

	if search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR email LIKE ? OR phone LIKE ?", like, like, like)
	}

	err := query.Order("id DESC").Find(&users).Error
	return users, err
}

func (r *UserRepositoryImpl) UpdateUser(id uint, name, email, phone, address string) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":    name,
		"email":   email,
		"phone":   phone,
		"address": address,
	}).Error
}

func (r *UserRepositoryImpl) Delete(id uint) error {
	return r.db.Where("id = ?", id).Delete(&models.User{}).Error
}

func (r *UserRepositoryImpl) SetBlocked(id uint, blocked int) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).
		Update("blocked", blocked).Error
}
