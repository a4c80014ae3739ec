package models

import "time"

// Role names seeded at install time. The Teacher role unlocks the
// custom due-date option when borrowing.
const (
	RoleLibrarian = "Librarian"
	RoleTeacher   = "Teacher"
	RoleStudent   = "Student"
)

type Role struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
