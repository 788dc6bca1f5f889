package repository

import (
	"fmt"
	"testing"

	"mediarate/internal/api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens a fresh in-memory database with the full schema. Shared
// by the repository tests in this package.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.MediaEntry{},
		&models.Rating{},
		&models.RatingLike{},
		&models.Comment{},
		&models.Favorite{},
	)
	require.NoError(t, err)

	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, PasswordHash: "irrelevant"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedMedia(t *testing.T, db *gorm.DB, userID int64, title string) *models.MediaEntry {
	t.Helper()
	entry := &models.MediaEntry{Title: title, UserID: userID}
	require.NoError(t, db.Create(entry).Error)
	return entry
}

func strPtr(s string) *string { return &s }

func TestSetRating_CreatesRow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRatingRepository(db)
	user := seedUser(t, db, "alice")
	media := seedMedia(t, db, user.ID, "Dune")

	id, err := repo.SetRating(user.ID, media.ID, 5, strPtr("great"))
	require.NoError(t, err)
	assert.NotZero(t, id)

	rating, err := repo.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, 5, rating.Rating)
	require.NotNil(t, rating.Comment)
	assert.Equal(t, "great", *rating.Comment)
}

func TestSetRating_UpsertKeepsSingleRow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRatingRepository(db)
	user := seedUser(t, db, "alice")
	media := seedMedia(t, db, user.ID, "Dune")

	first, err := repo.SetRating(user.ID, media.ID, 5, strPtr("great"))
	require.NoError(t, err)

	second, err := repo.SetRating(user.ID, media.ID, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	var count int64
	require.NoError(t, db.Model(&models.Rating{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	rating, err := repo.GetByID(first)
	require.NoError(t, err)
	assert.Equal(t, 3, rating.Rating)
	// A nil comment on the second call keeps the stored one.
	require.NotNil(t, rating.Comment)
	assert.Equal(t, "great", *rating.Comment)
}

func TestSetRating_NewCommentReplacesOld(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRatingRepository(db)
	user := seedUser(t, db, "alice")
	media := seedMedia(t, db, user.ID, "Dune")

	id, err := repo.SetRating(user.ID, media.ID, 4, strPtr("fine"))
	require.NoError(t, err)

	_, err = repo.SetRating(user.ID, media.ID, 4, strPtr("actually great"))
	require.NoError(t, err)

	rating, err := repo.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, rating.Comment)
	assert.Equal(t, "actually great", *rating.Comment)
}

func TestSetRating_SeparateUsersSeparateRows(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRatingRepository(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	media := seedMedia(t, db, alice.ID, "Dune")

	aliceID, err := repo.SetRating(alice.ID, media.ID, 5, nil)
	require.NoError(t, err)
	bobID, err := repo.SetRating(bob.ID, media.ID, 2, nil)
	require.NoError(t, err)
	assert.NotEqual(t, aliceID, bobID)

	avg, err := repo.AverageRating(media.ID)
	require.NoError(t, err)
	assert.InDelta(t, 3.5, avg, 0.0001)

	count, err := repo.CountRatings(media.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestToggleLike_Symmetry(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRatingRepository(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	media := seedMedia(t, db, alice.ID, "Dune")

	ratingID, err := repo.SetRating(alice.ID, media.ID, 5, nil)
	require.NoError(t, err)

	require.NoError(t, repo.ToggleLike(ratingID, bob.ID))
	rating, err := repo.GetByID(ratingID)
	require.NoError(t, err)
	assert.Equal(t, 1, rating.Likes)

	require.NoError(t, repo.ToggleLike(ratingID, bob.ID))
	rating, err = repo.GetByID(ratingID)
	require.NoError(t, err)
	assert.Equal(t, 0, rating.Likes)

	var likeCount int64
	require.NoError(t, db.Model(&models.RatingLike{}).Count(&likeCount).Error)
	assert.Equal(t, int64(0), likeCount)
}

func TestToggleLike_IndependentUsers(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRatingRepository(db)
	alice := seedUser(t, db, "alice")
	media := seedMedia(t, db, alice.ID, "Dune")

	ratingID, err := repo.SetRating(alice.ID, media.ID, 5, nil)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		fan := seedUser(t, db, fmt.Sprintf("fan%d", i))
		require.NoError(t, repo.ToggleLike(ratingID, fan.ID))
	}

	rating, err := repo.GetByID(ratingID)
	require.NoError(t, err)
	assert.Equal(t, 3, rating.Likes)
}

func TestConfirm_OneWay(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRatingRepository(db)
	alice := seedUser(t, db, "alice")
	media := seedMedia(t, db, alice.ID, "Dune")

	ratingID, err := repo.SetRating(alice.ID, media.ID, 5, nil)
	require.NoError(t, err)

	require.NoError(t, repo.Confirm(ratingID))
	rating, err := repo.GetByID(ratingID)
	require.NoError(t, err)
	assert.True(t, rating.Confirmed)
}

func TestConfirm_UnknownRating(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRatingRepository(db)

	err := repo.Confirm(12345)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateByID_OverwritesComment(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRatingRepository(db)
	alice := seedUser(t, db, "alice")
	media := seedMedia(t, db, alice.ID, "Dune")

	ratingID, err := repo.SetRating(alice.ID, media.ID, 4, strPtr("fine"))
	require.NoError(t, err)

	// The direct edit path clears the comment when nil is supplied.
	require.NoError(t, repo.UpdateByID(ratingID, 2, nil))
	rating, err := repo.GetByID(ratingID)
	require.NoError(t, err)
	assert.Equal(t, 2, rating.Rating)
	assert.Nil(t, rating.Comment)
}
