package stores

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-api/internal/models"
)

func TestDashboardCounts(t *testing.T) {
	db := testDB(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	teacherRole := seedRole(t, db, models.RoleTeacher)
	studentRole := seedRole(t, db, models.RoleStudent)
	teacher := seedUser(t, db, "tournesol", teacherRole)
	student := seedUser(t, db, "tom", studentRole)

	admin := seedUser(t, db, "root", nil)
	admin.IsSuperuser = true
	require.NoError(t, db.Save(admin).Error)

	fiction := seedCategory(t, db, "Fiction")
	science := seedCategory(t, db, "Science")
	dune := seedBook(t, db, "Dune", fiction, 5)
	_ = seedBook(t, db, "The Hobbit", fiction, 5)
	cosmos := seedBook(t, db, "Cosmos", science, 5)

	loanStore := &GormLoanStore{DB: db}

	// One late loan (due yesterday), one on time (due tomorrow), one
	// returned two weeks ago.
	lateDue := now.Add(-24 * time.Hour)
	_, err := loanStore.Borrow(dune.ID, teacher.ID, 1, &lateDue, now.AddDate(0, 0, -15))
	require.NoError(t, err)

	okDue := now.Add(24 * time.Hour)
	_, err = loanStore.Borrow(cosmos.ID, teacher.ID, 1, &okDue, now.AddDate(0, 0, -13))
	require.NoError(t, err)

	history, err := loanStore.Borrow(dune.ID, student.ID, 1, nil, now.AddDate(0, 0, -30))
	require.NoError(t, err)
	_, err = loanStore.Return(history[0].ID, now.AddDate(0, 0, -16))
	require.NoError(t, err)

	stats, err := (&GormStatsStore{DB: db}).Dashboard(now)
	require.NoError(t, err)

	assert.EqualValues(t, 3, stats.TotalBooks)
	assert.EqualValues(t, 2, stats.TotalUsers, "superusers are not counted")
	assert.EqualValues(t, 2, stats.ActiveLoans)
	assert.EqualValues(t, 1, stats.LateLoans)

	// Dune has two historical loans, Cosmos one; The Hobbit never moved.
	require.Len(t, stats.PopularBooks, 2)
	assert.Equal(t, "Dune", stats.PopularBooks[0].Title)
	assert.EqualValues(t, 2, stats.PopularBooks[0].TotalLoans)
	assert.Equal(t, "Cosmos", stats.PopularBooks[1].Title)

	require.Len(t, stats.BooksByCategory, 2)
	assert.Equal(t, "Fiction", stats.BooksByCategory[0].Category)
	assert.EqualValues(t, 2, stats.BooksByCategory[0].BookCount)
	assert.Equal(t, "Science", stats.BooksByCategory[1].Category)

	require.Len(t, stats.TopReaders, 2)
	assert.Equal(t, "tournesol", stats.TopReaders[0].Username)
	assert.EqualValues(t, 2, stats.TopReaders[0].TotalLoans)

	require.Len(t, stats.LoansByRole, 2)
	assert.Equal(t, models.RoleTeacher, stats.LoansByRole[0].Role)
	assert.EqualValues(t, 2, stats.LoansByRole[0].LoanCount)
	assert.Equal(t, models.RoleStudent, stats.LoansByRole[1].Role)
	assert.EqualValues(t, 1, stats.LoansByRole[1].LoanCount)
}

func TestDashboardLateBoundary(t *testing.T) {
	db := testDB(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	teacherRole := seedRole(t, db, models.RoleTeacher)
	teacher := seedUser(t, db, "tournesol", teacherRole)
	book := seedBook(t, db, "Dune", seedCategory(t, db, "SF"), 5)
	loanStore := &GormLoanStore{DB: db}

	minusDay := now.AddDate(0, 0, -1)
	plusDay := now.AddDate(0, 0, 1)
	_, err := loanStore.Borrow(book.ID, teacher.ID, 1, &minusDay, now.AddDate(0, 0, -10))
	require.NoError(t, err)
	_, err = loanStore.Borrow(book.ID, teacher.ID, 1, &plusDay, now.AddDate(0, 0, -10))
	require.NoError(t, err)

	stats, err := (&GormStatsStore{DB: db}).Dashboard(now)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.ActiveLoans)
	assert.EqualValues(t, 1, stats.LateLoans, "only the loan due yesterday is late")
}

func TestDashboardTieBreakIsAlphabetical(t *testing.T) {
	db := testDB(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	student := seedUser(t, db, "tom", seedRole(t, db, models.RoleStudent))
	cat := seedCategory(t, db, "SF")
	zebra := seedBook(t, db, "Zebra", cat, 5)
	alpha := seedBook(t, db, "Alpha", cat, 5)
	loanStore := &GormLoanStore{DB: db}

	_, err := loanStore.Borrow(zebra.ID, student.ID, 1, nil, now)
	require.NoError(t, err)
	_, err = loanStore.Borrow(alpha.ID, student.ID, 1, nil, now)
	require.NoError(t, err)

	stats, err := (&GormStatsStore{DB: db}).Dashboard(now)
	require.NoError(t, err)
	require.Len(t, stats.PopularBooks, 2)
	assert.Equal(t, "Alpha", stats.PopularBooks[0].Title)
	assert.Equal(t, "Zebra", stats.PopularBooks[1].Title)
}

func TestDashboardEmptyDatabase(t *testing.T) {
	db := testDB(t)

	stats, err := (&GormStatsStore{DB: db}).Dashboard(time.Now())
	require.NoError(t, err)
	assert.EqualValues(t, 0, stats.TotalBooks)
	assert.EqualValues(t, 0, stats.ActiveLoans)
	assert.EqualValues(t, 0, stats.LateLoans)
	assert.Empty(t, stats.PopularBooks)
	assert.Empty(t, stats.LoansByRole)
}
