package repositories

import (
	"errors"

	"lintar_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already exists")
	ErrPhoneTaken   = errors.New("phone already registered")
)

type UserRepository interface {
	Create(db *gorm.DB, user *models.User) error
	FindByID(db *gorm.DB, id uint) (*models.User, error)
	FindByEmail(db *gorm.DB, email string) (*models.User, error)
	FindClients(db *gorm.DB) ([]models.User, error)
	CountClients(db *gorm.DB) (int64, error)
}

type UserRepositoryImpl struct{}

func NewUserRepository() UserRepository {
	return &UserRepositoryImpl{}
}

// Create вставляет пользователя после явных проверок уникальности.
// Коллизия email/phone - мягкая ошибка, вторая строка не создается.
func (r *UserRepositoryImpl) Create(db *gorm.DB, user *models.User) error {
	var existing models.User
	if err := db.Select("id").Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if err := db.Select("id").Where("phone = ?", user.Phone).First(&existing).Error; err == nil {
		return ErrPhoneTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return db.Create(user).Error
}

func (r *UserRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	err := db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindClients(db *gorm.DB) ([]models.User, error) {
	var users []models.User
	err := db.Where("role = ?", models.UserRoleClient).
		Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *UserRepositoryImpl) CountClients(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.User{}).
		Where("role = ?", models.UserRoleClient).Count(&count).Error
	return count, err
}
