package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFavoriteRepository(db)
	user := seedUser(t, db, "alice")
	media := seedMedia(t, db, user.ID, "Dune")

	created, err := repo.Mark(user.ID, media.ID)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.Mark(user.ID, media.ID)
	require.NoError(t, err)
	assert.False(t, created)

	isFav, err := repo.IsFavorite(user.ID, media.ID)
	require.NoError(t, err)
	assert.True(t, isFav)
}

func TestUnmark_ExactlyOnce(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFavoriteRepository(db)
	user := seedUser(t, db, "alice")
	media := seedMedia(t, db, user.ID, "Dune")

	_, err := repo.Mark(user.ID, media.ID)
	require.NoError(t, err)

	removed, err := repo.Unmark(user.ID, media.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Unmark(user.ID, media.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	isFav, err := repo.IsFavorite(user.ID, media.ID)
	require.NoError(t, err)
	assert.False(t, isFav)
}

func TestListMedia(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFavoriteRepository(db)
	user := seedUser(t, db, "alice")
	dune := seedMedia(t, db, user.ID, "Dune")
	blade := seedMedia(t, db, user.ID, "Blade Runner")
	seedMedia(t, db, user.ID, "Not Marked")

	_, err := repo.Mark(user.ID, dune.ID)
	require.NoError(t, err)
	_, err = repo.Mark(user.ID, blade.ID)
	require.NoError(t, err)

	entries, err := repo.ListMedia(user.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	titles := []string{entries[0].Title, entries[1].Title}
	assert.ElementsMatch(t, []string{"Dune", "Blade Runner"}, titles)
}

func TestListMedia_EmptyForOtherUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFavoriteRepository(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	media := seedMedia(t, db, alice.ID, "Dune")

	_, err := repo.Mark(alice.ID, media.ID)
	require.NoError(t, err)

	entries, err := repo.ListMedia(bob.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
