package mocks

import (
	"library-api/internal/models"

	"github.com/stretchr/testify/mock"
)

type BookStore struct{ mock.Mock }

func (m *BookStore) List() ([]models.Book, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Book), args.Error(1)
}

func (m *BookStore) GetByID(id uint) (*models.Book, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Book), args.Error(1)
}

func (m *BookStore) Create(b *models.Book) error { return m.Called(b).Error(0) }
func (m *BookStore) Update(b *models.Book) error { return m.Called(b).Error(0) }
func (m *BookStore) Delete(id uint) error        { return m.Called(id).Error(0) }

func (m *BookStore) GetOrCreateByTitle(b *models.Book) (bool, error) {
	args := m.Called(b)
	return args.Bool(0), args.Error(1)
}
