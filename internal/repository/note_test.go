package repository

import (
	"context"
	"errors"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noteFixture struct {
	repo  NoteRepository
	users UserRepository
	alice *models.User
	bob   *models.User
}

func newNoteFixture(t *testing.T) *noteFixture {
	t.Helper()
	db := newTestDB(t)

	f := &noteFixture{
		repo:  NewNoteRepository(db),
		users: NewUserRepository(db),
		alice: newTestUser("alice", "alice@x.com"),
		bob:   newTestUser("bob", "bob@x.com"),
	}
	ctx := context.Background()
	require.NoError(t, f.users.Create(ctx, f.alice))
	require.NoError(t, f.users.Create(ctx, f.bob))
	return f
}

func (f *noteFixture) newNote(t *testing.T, author *models.User, content string) *models.Note {
	t.Helper()
	note := &models.Note{Content: content, UserID: author.ID}
	require.NoError(t, f.repo.Create(context.Background(), note))
	return note
}

func TestNoteCreateAndGetByID(t *testing.T) {
	f := newNoteFixture(t)
	ctx := context.Background()

	note := f.newNote(t, f.alice, "hello")

	got, err := f.repo.GetByID(ctx, note.ID, f.alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello", got.Content)
	assert.Equal(t, f.alice.ID, got.UserID)
	assert.Equal(t, "alice", got.User.Username)
	assert.Zero(t, got.FavoriteCount)
	assert.False(t, got.Favorited)
}

func TestNoteGetByIDNotFound(t *testing.T) {
	f := newNoteFixture(t)

	_, err := f.repo.GetByID(context.Background(), 999, 0)
	require.Error(t, err)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestNoteUpdateContent(t *testing.T) {
	f := newNoteFixture(t)
	ctx := context.Background()

	note := f.newNote(t, f.alice, "hello")

	updated, err := f.repo.UpdateContent(ctx, note.ID, "hi", f.alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "hi", updated.Content)
	assert.Equal(t, f.alice.ID, updated.UserID)
}

func TestNoteDelete(t *testing.T) {
	f := newNoteFixture(t)
	ctx := context.Background()

	note := f.newNote(t, f.alice, "ephemeral")
	require.NoError(t, f.repo.Delete(ctx, note.ID))

	_, err := f.repo.GetByID(ctx, note.ID, 0)
	require.Error(t, err)
}

func TestNoteList(t *testing.T) {
	f := newNoteFixture(t)
	ctx := context.Background()

	f.newNote(t, f.alice, "first")
	f.newNote(t, f.bob, "second")
	f.newNote(t, f.alice, "third")

	all, err := f.repo.List(ctx, 10, 0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	page, err := f.repo.List(ctx, 2, 0, 0)
	require.NoError(t, err)
	assert.Len(t, page, 2)

	aliceNotes, err := f.repo.GetByUserID(ctx, f.alice.ID, 10, 0, 0)
	require.NoError(t, err)
	assert.Len(t, aliceNotes, 2)
	for _, n := range aliceNotes {
		assert.Equal(t, f.alice.ID, n.UserID)
	}
}

func TestNoteFavoriteAndUnfavorite(t *testing.T) {
	f := newNoteFixture(t)
	ctx := context.Background()

	note := f.newNote(t, f.alice, "popular")

	require.NoError(t, f.repo.Favorite(ctx, f.bob.ID, note.ID))

	favorited, err := f.repo.IsFavorited(ctx, f.bob.ID, note.ID)
	require.NoError(t, err)
	assert.True(t, favorited)

	got, err := f.repo.GetByID(ctx, note.ID, f.bob.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.FavoriteCount)
	assert.True(t, got.Favorited)
	require.Len(t, got.FavoritedBy, 1)
	assert.Equal(t, f.bob.ID, got.FavoritedBy[0].ID)

	require.NoError(t, f.repo.Unfavorite(ctx, f.bob.ID, note.ID))

	got, err = f.repo.GetByID(ctx, note.ID, f.bob.ID)
	require.NoError(t, err)
	assert.Zero(t, got.FavoriteCount)
	assert.False(t, got.Favorited)
	assert.Empty(t, got.FavoritedBy)
}

func TestNoteFavoriteIsIdempotent(t *testing.T) {
	f := newNoteFixture(t)
	ctx := context.Background()

	note := f.newNote(t, f.alice, "popular")

	// Repeated adds must not create duplicate favorites
	for i := 0; i < 3; i++ {
		require.NoError(t, f.repo.Favorite(ctx, f.bob.ID, note.ID))
	}

	got, err := f.repo.GetByID(ctx, note.ID, f.bob.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.FavoriteCount)
	require.Len(t, got.FavoritedBy, 1)

	// Removing an absent favorite is also a no-op
	require.NoError(t, f.repo.Unfavorite(ctx, f.bob.ID, note.ID))
	require.NoError(t, f.repo.Unfavorite(ctx, f.bob.ID, note.ID))

	got, err = f.repo.GetByID(ctx, note.ID, f.bob.ID)
	require.NoError(t, err)
	assert.Zero(t, got.FavoriteCount)
}

func TestNoteFavoriteCountPerUser(t *testing.T) {
	f := newNoteFixture(t)
	ctx := context.Background()

	note := f.newNote(t, f.alice, "popular")

	require.NoError(t, f.repo.Favorite(ctx, f.alice.ID, note.ID))
	require.NoError(t, f.repo.Favorite(ctx, f.bob.ID, note.ID))

	got, err := f.repo.GetByID(ctx, note.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, got.FavoriteCount)
	assert.False(t, got.Favorited, "anonymous reader never sees favorited=true")
	assert.Len(t, got.FavoritedBy, 2)
}

func TestNoteDeletedNotesAreExcluded(t *testing.T) {
	f := newNoteFixture(t)
	ctx := context.Background()

	keep := f.newNote(t, f.alice, "keep")
	drop := f.newNote(t, f.alice, "drop")
	require.NoError(t, f.repo.Delete(ctx, drop.ID))

	all, err := f.repo.List(ctx, 10, 0, 0)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, keep.ID, all[0].ID)

	err = f.repo.Delete(ctx, drop.ID)
	assert.NoError(t, err, "deleting an already-deleted note is not an error")

	var count int64
	require.NoError(t, f.repo.(*noteRepository).db.Model(&models.Note{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
