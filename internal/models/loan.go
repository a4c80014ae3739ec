package models

import "time"

const (
	LoanActive   = "Active"
	LoanReturned = "Returned"
)

// Loan is one borrowed copy: borrowing a quantity of N creates N rows.
// DueAt is fixed at borrow time; ReturnedAt stays nil until the loan is
// closed. A loan is late when it is Active and DueAt has passed.
type Loan struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	BookID     uint       `gorm:"not null;index" json:"book"`
	Book       Book       `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE" json:"-"`
	UserID     uint       `gorm:"not null;index" json:"user"`
	User       User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	LoanedAt   time.Time  `gorm:"not null" json:"loan_date"`
	DueAt      time.Time  `gorm:"not null" json:"due_at"`
	ReturnedAt *time.Time `json:"returned_at,omitempty"`
	Status     string     `gorm:"not null;default:'Active'" json:"status"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// IsLate reports whether an active loan has passed its due date.
func (l *Loan) IsLate(now time.Time) bool {
	return l.Status == LoanActive && l.DueAt.Before(now)
}
