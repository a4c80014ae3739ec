package stores

import (
	"errors"

	"library-api/internal/models"

	"gorm.io/gorm"
)

// BookStore abstracts book persistence.
type BookStore interface {
	List() ([]models.Book, error)
	GetByID(id uint) (*models.Book, error)
	Create(b *models.Book) error
	Update(b *models.Book) error
	Delete(id uint) error
	// GetOrCreateByTitle makes bulk import idempotent: an existing title
	// is returned untouched, created reports which case happened.
	GetOrCreateByTitle(b *models.Book) (created bool, err error)
}

// GormBookStore implements BookStore using GORM.
type GormBookStore struct{ DB *gorm.DB }

func (s *GormBookStore) List() ([]models.Book, error) {
	var books []models.Book
	if err := s.DB.Preload("Category").Order("id").Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

func (s *GormBookStore) GetByID(id uint) (*models.Book, error) {
	var b models.Book
	if err := s.DB.Preload("Category").First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *GormBookStore) Create(b *models.Book) error {
	return s.DB.Create(b).Error
}

func (s *GormBookStore) Update(b *models.Book) error {
	return s.DB.Save(b).Error
}

func (s *GormBookStore) Delete(id uint) error {
	res := s.DB.Delete(&models.Book{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormBookStore) GetOrCreateByTitle(b *models.Book) (bool, error) {
	var existing models.Book
	err := s.DB.Where("title = ?", b.Title).First(&existing).Error
	if err == nil {
		*b = existing
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	if err := s.DB.Create(b).Error; err != nil {
		return false, err
	}
	return true, nil
}
