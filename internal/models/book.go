package models

import "time"

const (
	BookAvailable   = "Available"
	BookUnavailable = "Unavailable"
)

// Access levels. Advisory only: the tag is stored and served so the
// frontend can filter, but borrowing is not blocked server-side.
const (
	AccessAll     = "All"
	AccessTeacher = "Teacher"
)

// Book is a title with a copy count. Status mirrors Stock: it flips to
// Unavailable when the last copy goes out and back to Available on a
// return. Only the borrow/return/import paths keep the two in sync.
type Book struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	Title       string   `gorm:"not null" json:"title"`
	Author      string   `gorm:"not null" json:"author"`
	CategoryID  uint     `gorm:"not null" json:"category_id"`
	Category    Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
	Cover       string   `json:"cover"`
	Description string   `json:"description"`
	ISBN        string   `gorm:"column:isbn" json:"isbn"`
	Editor      string   `json:"editor"`
	PageCount   int      `json:"page_count"`
	Stock       int      `gorm:"not null;default:1" json:"stock"`
	AccessLevel string   `gorm:"not null;default:'All'" json:"access_level"`
	Status      string   `gorm:"not null;default:'Available'" json:"status"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// StatusForStock derives the redundant status label from a stock count.
func StatusForStock(stock int) string {
	if stock > 0 {
		return BookAvailable
	}
	return BookUnavailable
}
