package stores

import (
	"library-api/internal/models"

	"gorm.io/gorm"
)

// UserStore abstracts user persistence.
type UserStore interface {
	// FindByUsername returns a user if it exists, or ErrNotFound.
	FindByUsername(username string) (*models.User, error)
	// CreateUser persists a new user.
	CreateUser(u *models.User) error
	GetByID(id uint) (*models.User, error)
	List() ([]models.User, error)
	Update(u *models.User) error
	Delete(id uint) error
}

var ErrNotFound = gorm.ErrRecordNotFound

// GormUserStore implements UserStore using GORM.
type GormUserStore struct{ DB *gorm.DB }

func (s *GormUserStore) FindByUsername(username string) (*models.User, error) {
	var u models.User
	if err := s.DB.Preload("Role").Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *GormUserStore) CreateUser(u *models.User) error {
	return s.DB.Create(u).Error
}

func (s *GormUserStore) GetByID(id uint) (*models.User, error) {
	var u models.User
	if err := s.DB.Preload("Role").First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *GormUserStore) List() ([]models.User, error) {
	var users []models.User
	if err := s.DB.Preload("Role").Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *GormUserStore) Update(u *models.User) error {
	return s.DB.Save(u).Error
}

// Delete removes the user; their loans go with them via the FK cascade.
func (s *GormUserStore) Delete(id uint) error {
	res := s.DB.Delete(&models.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
