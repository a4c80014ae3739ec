package seed

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"gorm.io/gorm"

	"library-api/internal/importer"
	"library-api/internal/models"
	"library-api/internal/stores"
	"library-api/internal/user"
)

// Run wipes the library data and rebuilds a demo set: the three roles,
// a librarian admin, two teachers, four students, the books from
// csvPath (if it exists), and loans in three bands so the dashboard has
// returned history, on-time loans and late loans to show.
func Run(db *gorm.DB, hasher user.PasswordHasher, csvPath string) error {
	now := time.Now()

	// Order matters: loans reference books and users.
	if err := db.Where("1 = 1").Delete(&models.Loan{}).Error; err != nil {
		return err
	}
	if err := db.Where("1 = 1").Delete(&models.Book{}).Error; err != nil {
		return err
	}
	if err := db.Where("1 = 1").Delete(&models.Category{}).Error; err != nil {
		return err
	}
	if err := db.Where("is_superuser = ?", false).Delete(&models.User{}).Error; err != nil {
		return err
	}
	if err := db.Where("1 = 1").Delete(&models.Role{}).Error; err != nil {
		return err
	}

	log.Println("Creating roles and users...")
	roles := map[string]*models.Role{}
	for _, name := range []string{models.RoleLibrarian, models.RoleTeacher, models.RoleStudent} {
		r := &models.Role{Name: name}
		if err := db.Create(r).Error; err != nil {
			return err
		}
		roles[name] = r
	}

	createUser := func(username, password, roleName string) (*models.User, error) {
		hashed, err := hasher.Hash([]byte(password))
		if err != nil {
			return nil, err
		}
		role := roles[roleName]
		u := &models.User{
			Username:     username,
			Email:        fmt.Sprintf("%s@library.local", slugify(username)),
			PasswordHash: string(hashed),
			RoleID:       &role.ID,
		}
		return u, db.Create(u).Error
	}

	if _, err := createUser("admin", "admin", models.RoleLibrarian); err != nil {
		return err
	}

	var readers []*models.User
	for _, name := range []string{"Professeur Tournesol", "Stephen Hawkins"} {
		u, err := createUser(name, "pwd123", models.RoleTeacher)
		if err != nil {
			return err
		}
		readers = append(readers, u)
	}
	for _, name := range []string{"Tom", "Marine", "Ambre", "Luc"} {
		u, err := createUser(name, "pwd123", models.RoleStudent)
		if err != nil {
			return err
		}
		readers = append(readers, u)
	}

	if _, err := os.Stat(csvPath); err == nil {
		log.Printf("Importing books from %s...", csvPath)
		imp := importer.New(&stores.GormCategoryStore{DB: db}, &stores.GormBookStore{DB: db})
		res, err := imp.ImportFile(csvPath)
		if err != nil {
			return err
		}
		log.Printf("Imported %d books from %d rows.", res.BooksCreated, res.RowsRead)
	} else {
		log.Printf("No book file at %s, skipping import.", csvPath)
	}

	var books []models.Book
	if err := db.Find(&books).Error; err != nil {
		return err
	}
	if len(books) == 0 {
		log.Println("No books to generate loans for.")
		return nil
	}

	log.Println("Generating loans...")
	pick := func() (*models.Book, *models.User) {
		return &books[rand.Intn(len(books))], readers[rand.Intn(len(readers))]
	}

	// Returned history: borrowed two months ago, back after one.
	for i := 0; i < 10; i++ {
		book, reader := pick()
		returned := now.AddDate(0, 0, -30)
		loan := models.Loan{
			BookID:     book.ID,
			UserID:     reader.ID,
			LoanedAt:   now.AddDate(0, 0, -60),
			DueAt:      now.AddDate(0, 0, -46),
			ReturnedAt: &returned,
			Status:     models.LoanReturned,
		}
		if err := db.Create(&loan).Error; err != nil {
			return err
		}
	}

	activeLoan := func(loanedAt, dueAt time.Time) error {
		book, reader := pick()
		loan := models.Loan{
			BookID:   book.ID,
			UserID:   reader.ID,
			LoanedAt: loanedAt,
			DueAt:    dueAt,
			Status:   models.LoanActive,
		}
		if err := db.Create(&loan).Error; err != nil {
			return err
		}
		if book.Stock > 0 {
			book.Stock--
			book.Status = models.StatusForStock(book.Stock)
			if err := db.Save(book).Error; err != nil {
				return err
			}
		}
		return nil
	}

	// On time: borrowed yesterday, due in two weeks.
	for i := 0; i < 5; i++ {
		if err := activeLoan(now.AddDate(0, 0, -1), now.AddDate(0, 0, 14)); err != nil {
			return err
		}
	}
	// Late: due five days ago.
	for i := 0; i < 4; i++ {
		if err := activeLoan(now.AddDate(0, 0, -20), now.AddDate(0, 0, -5)); err != nil {
			return err
		}
	}

	log.Println("Seed complete.")
	return nil
}

func slugify(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		case r == ' ' || r == '-' || r == '_':
			out = append(out, '.')
		}
	}
	return string(out)
}
