package stores

import (
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"library-api/internal/models"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Category{},
		&models.Book{},
		&models.Loan{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedRole(t *testing.T, db *gorm.DB, name string) *models.Role {
	t.Helper()
	r := &models.Role{Name: name}
	if err := db.Create(r).Error; err != nil {
		t.Fatalf("create role %s: %v", name, err)
	}
	return r
}

func seedUser(t *testing.T, db *gorm.DB, username string, role *models.Role) *models.User {
	t.Helper()
	u := &models.User{
		Username:     username,
		Email:        username + "@library.local",
		PasswordHash: "x",
	}
	if role != nil {
		u.RoleID = &role.ID
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return u
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()
	c := &models.Category{Name: name}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("create category %s: %v", name, err)
	}
	return c
}

func seedBook(t *testing.T, db *gorm.DB, title string, category *models.Category, stock int) *models.Book {
	t.Helper()
	b := &models.Book{
		Title:       title,
		Author:      "Author",
		CategoryID:  category.ID,
		Stock:       stock,
		AccessLevel: models.AccessAll,
		Status:      models.StatusForStock(stock),
	}
	if err := db.Create(b).Error; err != nil {
		t.Fatalf("create book %s: %v", title, err)
	}
	return b
}
