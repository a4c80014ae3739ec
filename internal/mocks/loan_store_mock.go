package mocks

import (
	"time"

	"library-api/internal/models"

	"github.com/stretchr/testify/mock"
)

type LoanStore struct{ mock.Mock }

func (m *LoanStore) Borrow(bookID, userID uint, quantity int, customDue *time.Time, now time.Time) ([]models.Loan, error) {
	args := m.Called(bookID, userID, quantity, customDue, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Loan), args.Error(1)
}

func (m *LoanStore) Return(loanID uint, now time.Time) (*models.Loan, error) {
	args := m.Called(loanID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Loan), args.Error(1)
}

func (m *LoanStore) ListByUser(userID uint) ([]models.Loan, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Loan), args.Error(1)
}

func (m *LoanStore) ListActive() ([]models.Loan, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Loan), args.Error(1)
}
