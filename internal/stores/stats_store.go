package stores

import (
	"time"

	"library-api/internal/models"

	"gorm.io/gorm"
)

// DashboardStats is the read-only snapshot served by /api/dashboard.
// Everything is recomputed per call, there is no cache to invalidate.
type DashboardStats struct {
	TotalBooks      int64           `json:"total_books"`
	TotalUsers      int64           `json:"total_users"`
	ActiveLoans     int64           `json:"active_loans"`
	LateLoans       int64           `json:"late_loans"`
	PopularBooks    []BookCount     `json:"popular_books"`
	BooksByCategory []CategoryCount `json:"books_by_category"`
	TopReaders      []ReaderCount   `json:"top_readers"`
	LoansByRole     []RoleCount     `json:"loans_by_role"`
}

type BookCount struct {
	Title      string `gorm:"column:title" json:"title"`
	TotalLoans int64  `gorm:"column:total_loans" json:"total_loans"`
}

type CategoryCount struct {
	Category  string `gorm:"column:category" json:"category"`
	BookCount int64  `gorm:"column:book_count" json:"count"`
}

type ReaderCount struct {
	Username   string `gorm:"column:username" json:"username"`
	TotalLoans int64  `gorm:"column:total_loans" json:"total_loans"`
}

type RoleCount struct {
	Role      string `gorm:"column:role" json:"role"`
	LoanCount int64  `gorm:"column:loan_count" json:"count"`
}

// StatsStore computes dashboard aggregates.
type StatsStore interface {
	Dashboard(now time.Time) (*DashboardStats, error)
}

// GormStatsStore implements StatsStore with grouped-count queries. Each
// grouped list orders by count descending then name ascending, so ties
// come out in a stable order.
type GormStatsStore struct{ DB *gorm.DB }

func (s *GormStatsStore) Dashboard(now time.Time) (*DashboardStats, error) {
	var stats DashboardStats

	if err := s.DB.Model(&models.Book{}).Count(&stats.TotalBooks).Error; err != nil {
		return nil, err
	}

	// Superusers are plumbing accounts, not readers.
	if err := s.DB.Model(&models.User{}).
		Where("is_superuser = ?", false).
		Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}

	if err := s.DB.Model(&models.Loan{}).
		Where("status = ?", models.LoanActive).
		Count(&stats.ActiveLoans).Error; err != nil {
		return nil, err
	}

	if err := s.DB.Model(&models.Loan{}).
		Where("status = ? AND due_at < ?", models.LoanActive, now).
		Count(&stats.LateLoans).Error; err != nil {
		return nil, err
	}

	if err := s.DB.Model(&models.Loan{}).
		Select("books.title AS title, COUNT(loans.id) AS total_loans").
		Joins("JOIN books ON books.id = loans.book_id").
		Group("books.title").
		Order("total_loans DESC, title ASC").
		Limit(5).
		Scan(&stats.PopularBooks).Error; err != nil {
		return nil, err
	}

	if err := s.DB.Model(&models.Book{}).
		Select("categories.name AS category, COUNT(books.id) AS book_count").
		Joins("JOIN categories ON categories.id = books.category_id").
		Group("categories.name").
		Order("book_count DESC, category ASC").
		Scan(&stats.BooksByCategory).Error; err != nil {
		return nil, err
	}

	if err := s.DB.Model(&models.Loan{}).
		Select("users.username AS username, COUNT(loans.id) AS total_loans").
		Joins("JOIN users ON users.id = loans.user_id").
		Group("users.username").
		Order("total_loans DESC, username ASC").
		Limit(5).
		Scan(&stats.TopReaders).Error; err != nil {
		return nil, err
	}

	if err := s.DB.Model(&models.Loan{}).
		Select("COALESCE(roles.name, 'None') AS role, COUNT(loans.id) AS loan_count").
		Joins("JOIN users ON users.id = loans.user_id").
		Joins("LEFT JOIN roles ON roles.id = users.role_id").
		Group("COALESCE(roles.name, 'None')").
		Order("loan_count DESC, role ASC").
		Scan(&stats.LoansByRole).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
