package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"library-api/internal/stores"
)

type BorrowRequest struct {
	UserID   uint   `json:"user_id" binding:"required"`
	Quantity int    `json:"quantity"`
	// ReturnDate is a YYYY-MM-DD date. Only honored when the borrower
	// holds the Teacher role.
	ReturnDate string `json:"return_date"`
}

type LoanHandler struct {
	Loans stores.LoanStore
}

func NewLoanHandler(loans stores.LoanStore) *LoanHandler {
	return &LoanHandler{Loans: loans}
}

// Borrow takes quantity copies of a book out for a user.
func (h *LoanHandler) Borrow(c *gin.Context) {
	bookID, ok := parseID(c)
	if !ok {
		return
	}

	var req BorrowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be at least 1"})
		return
	}

	var customDue *time.Time
	if req.ReturnDate != "" {
		due, err := time.Parse("2006-01-02", req.ReturnDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "return_date must be YYYY-MM-DD"})
			return
		}
		customDue = &due
	}

	loans, err := h.Loans.Borrow(bookID, req.UserID, quantity, customDue, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, stores.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "book not found"})
		default:
			// Insufficient stock, unknown borrower and the rest are all
			// caller-correctable; surface the underlying message.
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("%d book(s) borrowed successfully", len(loans)),
		"loans":   newLoanResponses(loans),
	})
}

// Return closes a loan.
func (h *LoanHandler) Return(c *gin.Context) {
	loanID, ok := parseID(c)
	if !ok {
		return
	}

	loan, err := h.Loans.Return(loanID, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, stores.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "loan not found"})
		case errors.Is(err, stores.ErrLoanAlreadyReturned):
			c.JSON(http.StatusConflict, gin.H{"error": "this loan is already closed"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to return book"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "book returned successfully",
		"loan":    newLoanResponse(*loan),
	})
}

// MyLoans lists one user's loans, newest first.
func (h *LoanHandler) MyLoans(c *gin.Context) {
	raw := c.Query("user_id")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing user_id"})
		return
	}
	userID, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user_id"})
		return
	}

	loans, err := h.Loans.ListByUser(uint(userID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list loans"})
		return
	}
	c.JSON(http.StatusOK, newLoanResponses(loans))
}

// ActiveLoans lists every open loan, oldest first.
func (h *LoanHandler) ActiveLoans(c *gin.Context) {
	loans, err := h.Loans.ListActive()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list loans"})
		return
	}
	c.JSON(http.StatusOK, newLoanResponses(loans))
}
