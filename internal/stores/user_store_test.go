package stores

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-api/internal/models"
)

func TestFindByUsernamePreloadsRole(t *testing.T) {
	db := testDB(t)
	role := seedRole(t, db, models.RoleTeacher)
	seedUser(t, db, "tournesol", role)
	store := &GormUserStore{DB: db}

	u, err := store.FindByUsername("tournesol")
	require.NoError(t, err)
	require.NotNil(t, u.Role)
	assert.Equal(t, models.RoleTeacher, u.Role.Name)
	assert.Equal(t, models.RoleTeacher, u.RoleName())
}

func TestFindByUsernameMissing(t *testing.T) {
	db := testDB(t)
	store := &GormUserStore{DB: db}

	_, err := store.FindByUsername("ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRoleNameWithoutRole(t *testing.T) {
	db := testDB(t)
	seedUser(t, db, "admin", nil)
	store := &GormUserStore{DB: db}

	u, err := store.FindByUsername("admin")
	require.NoError(t, err)
	assert.Nil(t, u.Role)
	assert.Equal(t, "None", u.RoleName())
}

func TestDeleteUser(t *testing.T) {
	db := testDB(t)
	u := seedUser(t, db, "tom", seedRole(t, db, models.RoleStudent))
	store := &GormUserStore{DB: db}

	require.NoError(t, store.Delete(u.ID))
	_, err := store.GetByID(u.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, store.Delete(u.ID), ErrNotFound)
}
