package stores

import (
	"errors"
	"strings"

	"library-api/internal/models"

	"gorm.io/gorm"
)

// CategoryStore abstracts category persistence.
type CategoryStore interface {
	List() ([]models.Category, error)
	GetByID(id uint) (*models.Category, error)
	Create(c *models.Category) error
	Update(c *models.Category) error
	Delete(id uint) error
	GetOrCreateByName(name string) (*models.Category, error)
}

// GormCategoryStore implements CategoryStore using GORM.
type GormCategoryStore struct{ DB *gorm.DB }

func (s *GormCategoryStore) List() ([]models.Category, error) {
	var cats []models.Category
	if err := s.DB.Order("name").Find(&cats).Error; err != nil {
		return nil, err
	}
	return cats, nil
}

func (s *GormCategoryStore) GetByID(id uint) (*models.Category, error) {
	var c models.Category
	if err := s.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *GormCategoryStore) Create(c *models.Category) error {
	return s.DB.Create(c).Error
}

func (s *GormCategoryStore) Update(c *models.Category) error {
	return s.DB.Save(c).Error
}

// Delete removes the category and, via the FK cascade, its books.
func (s *GormCategoryStore) Delete(id uint) error {
	res := s.DB.Delete(&models.Category{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormCategoryStore) GetOrCreateByName(name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	var c models.Category
	err := s.DB.Where("name = ?", name).First(&c).Error
	if err == nil {
		return &c, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	c = models.Category{Name: name}
	if err := s.DB.Create(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}
