package stores

import (
	"errors"
	"fmt"
	"time"

	"library-api/internal/models"

	"gorm.io/gorm"
)

var (
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrLoanAlreadyReturned = errors.New("loan already returned")
	ErrBorrowerNotFound    = errors.New("borrower not found")
)

const defaultLoanPeriod = 14 * 24 * time.Hour

// LoanStore carries the loan lifecycle rules.
type LoanStore interface {
	// Borrow creates quantity Active loans for the user/book pair and
	// decrements the book's stock, all in one transaction. customDue is
	// only honored for borrowers with the Teacher role; everyone else
	// gets now + 14 days.
	Borrow(bookID, userID uint, quantity int, customDue *time.Time, now time.Time) ([]models.Loan, error)
	// Return closes an Active loan, restocks one copy and makes the book
	// Available again. Closing a closed loan is ErrLoanAlreadyReturned.
	Return(loanID uint, now time.Time) (*models.Loan, error)
	ListByUser(userID uint) ([]models.Loan, error)
	ListActive() ([]models.Loan, error)
}

// GormLoanStore implements LoanStore using GORM.
type GormLoanStore struct{ DB *gorm.DB }

func (s *GormLoanStore) Borrow(bookID, userID uint, quantity int, customDue *time.Time, now time.Time) ([]models.Loan, error) {
	var created []models.Loan

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var book models.Book
		if err := tx.First(&book, bookID).Error; err != nil {
			return err
		}

		var borrower models.User
		if err := tx.Preload("Role").First(&borrower, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBorrowerNotFound
			}
			return err
		}

		// Guarded decrement instead of a plain read-modify-write: the
		// WHERE clause makes the stock check and the decrement a single
		// statement, so two concurrent borrows cannot both take the
		// last copy.
		res := tx.Model(&models.Book{}).
			Where("id = ? AND stock >= ?", bookID, quantity).
			Update("stock", gorm.Expr("stock - ?", quantity))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: only %d left", ErrInsufficientStock, book.Stock)
		}

		if err := tx.Model(&models.Book{}).
			Where("id = ? AND stock = 0", bookID).
			Update("status", models.BookUnavailable).Error; err != nil {
			return err
		}

		due := now.Add(defaultLoanPeriod)
		if customDue != nil && borrower.Role != nil && borrower.Role.Name == models.RoleTeacher {
			due = *customDue
		}

		// One row per copy, matching how returns close a single copy.
		for i := 0; i < quantity; i++ {
			loan := models.Loan{
				BookID:   bookID,
				UserID:   userID,
				LoanedAt: now,
				DueAt:    due,
				Status:   models.LoanActive,
			}
			if err := tx.Create(&loan).Error; err != nil {
				return err
			}
			created = append(created, loan)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *GormLoanStore) Return(loanID uint, now time.Time) (*models.Loan, error) {
	var loan models.Loan

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&loan, loanID).Error; err != nil {
			return err
		}

		// Status guard in the WHERE clause: a concurrent double return
		// loses the race and reports the conflict.
		res := tx.Model(&models.Loan{}).
			Where("id = ? AND status = ?", loanID, models.LoanActive).
			Updates(map[string]interface{}{
				"status":      models.LoanReturned,
				"returned_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrLoanAlreadyReturned
		}

		if err := tx.Model(&models.Book{}).
			Where("id = ?", loan.BookID).
			Updates(map[string]interface{}{
				"stock":  gorm.Expr("stock + 1"),
				"status": models.BookAvailable,
			}).Error; err != nil {
			return err
		}

		loan.Status = models.LoanReturned
		loan.ReturnedAt = &now
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &loan, nil
}

func (s *GormLoanStore) ListByUser(userID uint) ([]models.Loan, error) {
	var loans []models.Loan
	err := s.DB.Preload("Book").Preload("User").
		Where("user_id = ?", userID).
		Order("loaned_at DESC").
		Find(&loans).Error
	return loans, err
}

func (s *GormLoanStore) ListActive() ([]models.Loan, error) {
	var loans []models.Loan
	err := s.DB.Preload("Book").Preload("User").
		Where("status = ?", models.LoanActive).
		Order("loaned_at ASC").
		Find(&loans).Error
	return loans, err
}
