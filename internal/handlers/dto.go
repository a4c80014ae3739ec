package handlers

import (
	"time"

	"library-api/internal/models"
)

// LoanResponse mirrors the wire shape the frontend grew up with:
// return_date carries the due date while the loan is active and the
// actual return timestamp once it is closed. The unambiguous due_at /
// returned_at pair is served alongside.
type LoanResponse struct {
	ID         uint       `json:"id"`
	BookID     uint       `json:"book"`
	UserID     uint       `json:"user"`
	LoanDate   time.Time  `json:"loan_date"`
	ReturnDate time.Time  `json:"return_date"`
	DueAt      time.Time  `json:"due_at"`
	ReturnedAt *time.Time `json:"returned_at,omitempty"`
	Status     string     `json:"status"`
	BookTitle  string     `json:"book_title"`
	BookCover  string     `json:"book_cover"`
	Username   string     `json:"username"`
}

func newLoanResponse(l models.Loan) LoanResponse {
	returnDate := l.DueAt
	if l.ReturnedAt != nil {
		returnDate = *l.ReturnedAt
	}
	return LoanResponse{
		ID:         l.ID,
		BookID:     l.BookID,
		UserID:     l.UserID,
		LoanDate:   l.LoanedAt,
		ReturnDate: returnDate,
		DueAt:      l.DueAt,
		ReturnedAt: l.ReturnedAt,
		Status:     l.Status,
		BookTitle:  l.Book.Title,
		BookCover:  l.Book.Cover,
		Username:   l.User.Username,
	}
}

func newLoanResponses(loans []models.Loan) []LoanResponse {
	out := make([]LoanResponse, 0, len(loans))
	for _, l := range loans {
		out = append(out, newLoanResponse(l))
	}
	return out
}

// BookResponse adds the denormalized category name for list views.
type BookResponse struct {
	models.Book
	CategoryName string `json:"category_name"`
}

func newBookResponse(b models.Book) BookResponse {
	return BookResponse{Book: b, CategoryName: b.Category.Name}
}

func newBookResponses(books []models.Book) []BookResponse {
	out := make([]BookResponse, 0, len(books))
	for _, b := range books {
		out = append(out, newBookResponse(b))
	}
	return out
}
