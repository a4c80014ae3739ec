package models

import "time"

// User represents the users table in database. The password is only ever
// stored hashed; the hash never leaves the server (json:"-").
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	RoleID       *uint  `json:"-"`
	Role         *Role  `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	IsSuperuser  bool   `gorm:"not null;default:false" json:"is_superuser"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// RoleName returns the role's name, or "None" for users without a role.
func (u *User) RoleName() string {
	if u.Role == nil {
		return "None"
	}
	return u.Role.Name
}
