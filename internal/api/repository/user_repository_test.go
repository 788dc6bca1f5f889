package repository

import (
	"testing"

	"mediarate/internal/api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserCreate_DuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	require.NoError(t, repo.Create(&models.User{Username: "alice", PasswordHash: "h1"}))

	err := repo.Create(&models.User{Username: "alice", PasswordHash: "h2"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUserFindByUsername(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	seedUser(t, db, "alice")

	user, err := repo.FindByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = repo.FindByUsername("nobody")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserUpdateProfile(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	user := seedUser(t, db, "alice")

	email := "alice@example.com"
	genre := "scifi"
	require.NoError(t, repo.UpdateProfile(user.ID, &email, &genre))

	updated, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.Email)
	assert.Equal(t, "alice@example.com", *updated.Email)
	require.NotNil(t, updated.FavoriteGenre)
	assert.Equal(t, "scifi", *updated.FavoriteGenre)
}

func TestUserUpdateProfile_UnknownUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	err := repo.UpdateProfile(999, nil, nil)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
