package stores

import (
	"library-api/internal/models"

	"gorm.io/gorm"
)

// RoleStore is read-mostly: roles are created by seeding, never over HTTP.
type RoleStore interface {
	List() ([]models.Role, error)
	GetByID(id uint) (*models.Role, error)
	FindByName(name string) (*models.Role, error)
}

// GormRoleStore implements RoleStore using GORM.
type GormRoleStore struct{ DB *gorm.DB }

func (s *GormRoleStore) List() ([]models.Role, error) {
	var roles []models.Role
	if err := s.DB.Order("id").Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

func (s *GormRoleStore) GetByID(id uint) (*models.Role, error) {
	var r models.Role
	if err := s.DB.First(&r, id).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *GormRoleStore) FindByName(name string) (*models.Role, error) {
	var r models.Role
	if err := s.DB.Where("name = ?", name).First(&r).Error; err != nil {
		return nil, err
	}
	return &r, nil
}
