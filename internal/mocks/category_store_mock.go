package mocks

import (
	"library-api/internal/models"

	"github.com/stretchr/testify/mock"
)

type CategoryStore struct{ mock.Mock }

func (m *CategoryStore) List() ([]models.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *CategoryStore) GetByID(id uint) (*models.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *CategoryStore) Create(c *models.Category) error { return m.Called(c).Error(0) }
func (m *CategoryStore) Update(c *models.Category) error { return m.Called(c).Error(0) }
func (m *CategoryStore) Delete(id uint) error            { return m.Called(id).Error(0) }

func (m *CategoryStore) GetOrCreateByName(name string) (*models.Category, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}
