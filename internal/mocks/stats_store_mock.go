package mocks

import (
	"time"

	"library-api/internal/stores"

	"github.com/stretchr/testify/mock"
)

type StatsStore struct{ mock.Mock }

func (m *StatsStore) Dashboard(now time.Time) (*stores.DashboardStats, error) {
	args := m.Called(now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stores.DashboardStats), args.Error(1)
}
