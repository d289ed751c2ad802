package service

import (
	"context"
	"errors"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noteRepoStub is a stub for repository.NoteRepository.
type noteRepoStub struct {
	createFn        func(context.Context, *models.Note) error
	getByIDFn       func(context.Context, uint, uint) (*models.Note, error)
	listFn          func(context.Context, int, int, uint) ([]*models.Note, error)
	getByUserIDFn   func(context.Context, uint, int, int, uint) ([]*models.Note, error)
	updateContentFn func(context.Context, uint, string, uint) (*models.Note, error)
	deleteFn        func(context.Context, uint) error
	isFavoritedFn   func(context.Context, uint, uint) (bool, error)
	favoriteFn      func(context.Context, uint, uint) error
	unfavoriteFn    func(context.Context, uint, uint) error
}

func (s *noteRepoStub) Create(ctx context.Context, note *models.Note) error {
	return s.createFn(ctx, note)
}
func (s *noteRepoStub) GetByID(ctx context.Context, id, currentUserID uint) (*models.Note, error) {
	return s.getByIDFn(ctx, id, currentUserID)
}
func (s *noteRepoStub) List(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Note, error) {
	return s.listFn(ctx, limit, offset, currentUserID)
}
func (s *noteRepoStub) GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Note, error) {
	return s.getByUserIDFn(ctx, userID, limit, offset, currentUserID)
}
func (s *noteRepoStub) UpdateContent(ctx context.Context, id uint, content string, currentUserID uint) (*models.Note, error) {
	return s.updateContentFn(ctx, id, content, currentUserID)
}
func (s *noteRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *noteRepoStub) IsFavorited(ctx context.Context, userID, noteID uint) (bool, error) {
	return s.isFavoritedFn(ctx, userID, noteID)
}
func (s *noteRepoStub) Favorite(ctx context.Context, userID, noteID uint) error {
	return s.favoriteFn(ctx, userID, noteID)
}
func (s *noteRepoStub) Unfavorite(ctx context.Context, userID, noteID uint) error {
	return s.unfavoriteFn(ctx, userID, noteID)
}

// singleNoteRepo serves one fixed note and fails every other call.
func singleNoteRepo(t *testing.T, note *models.Note) *noteRepoStub {
	t.Helper()
	fail := func(method string) {
		t.Helper()
		t.Fatalf("unexpected call to %s", method)
	}
	return &noteRepoStub{
		createFn: func(_ context.Context, _ *models.Note) error { fail("Create"); return nil },
		getByIDFn: func(_ context.Context, id, _ uint) (*models.Note, error) {
			if id != note.ID {
				return nil, models.NewNotFoundError("Note", id)
			}
			copied := *note
			return &copied, nil
		},
		listFn: func(_ context.Context, _, _ int, _ uint) ([]*models.Note, error) {
			fail("List")
			return nil, nil
		},
		getByUserIDFn: func(_ context.Context, _ uint, _, _ int, _ uint) ([]*models.Note, error) {
			fail("GetByUserID")
			return nil, nil
		},
		updateContentFn: func(_ context.Context, _ uint, _ string, _ uint) (*models.Note, error) {
			fail("UpdateContent")
			return nil, nil
		},
		deleteFn:      func(_ context.Context, _ uint) error { fail("Delete"); return nil },
		isFavoritedFn: func(_ context.Context, _, _ uint) (bool, error) { fail("IsFavorited"); return false, nil },
		favoriteFn:    func(_ context.Context, _, _ uint) error { fail("Favorite"); return nil },
		unfavoriteFn:  func(_ context.Context, _, _ uint) error { fail("Unfavorite"); return nil },
	}
}

func TestNewNote(t *testing.T) {
	aliceNote := &models.Note{ID: 1, Content: "hello", UserID: 10}
	repo := singleNoteRepo(t, aliceNote)
	repo.createFn = func(_ context.Context, n *models.Note) error {
		assert.Equal(t, "hello", n.Content)
		assert.Equal(t, uint(10), n.UserID)
		n.ID = 1
		return nil
	}
	svc := NewNoteService(repo)

	note, err := svc.NewNote(context.Background(), 10, "hello")
	require.NoError(t, err)
	assert.Equal(t, uint(1), note.ID)
	assert.Equal(t, uint(10), note.UserID)
}

func TestNewNoteRequiresIdentity(t *testing.T) {
	svc := NewNoteService(singleNoteRepo(t, &models.Note{ID: 1}))

	_, err := svc.NewNote(context.Background(), 0, "hello")
	assertErrorCode(t, err, "UNAUTHENTICATED")
}

func TestNewNoteRequiresContent(t *testing.T) {
	svc := NewNoteService(singleNoteRepo(t, &models.Note{ID: 1}))

	_, err := svc.NewNote(context.Background(), 10, "")
	assertErrorCode(t, err, "VALIDATION_ERROR")
}

func TestUpdateNote(t *testing.T) {
	aliceNote := &models.Note{ID: 1, Content: "old", UserID: 10}
	repo := singleNoteRepo(t, aliceNote)
	repo.updateContentFn = func(_ context.Context, id uint, content string, _ uint) (*models.Note, error) {
		assert.Equal(t, uint(1), id)
		return &models.Note{ID: id, Content: content, UserID: 10}, nil
	}
	svc := NewNoteService(repo)

	note, err := svc.UpdateNote(context.Background(), 10, 1, "new")
	require.NoError(t, err)
	assert.Equal(t, "new", note.Content)
}

func TestUpdateNoteGuards(t *testing.T) {
	aliceNote := &models.Note{ID: 1, Content: "old", UserID: 10}

	tests := []struct {
		name     string
		identity uint
		noteID   uint
		content  string
		wantCode string
	}{
		{"anonymous", 0, 1, "new", "UNAUTHENTICATED"},
		{"empty content", 10, 1, "", "VALIDATION_ERROR"},
		{"missing note", 10, 999, "new", "NOT_FOUND"},
		{"not the author", 20, 1, "new", "FORBIDDEN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewNoteService(singleNoteRepo(t, aliceNote))
			_, err := svc.UpdateNote(context.Background(), tt.identity, tt.noteID, tt.content)
			assertErrorCode(t, err, tt.wantCode)
		})
	}
}

func TestDeleteNote(t *testing.T) {
	aliceNote := &models.Note{ID: 1, Content: "hello", UserID: 10}
	repo := singleNoteRepo(t, aliceNote)
	var deleted uint
	repo.deleteFn = func(_ context.Context, id uint) error {
		deleted = id
		return nil
	}
	svc := NewNoteService(repo)

	ok, err := svc.DeleteNote(context.Background(), 10, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint(1), deleted)
}

func TestDeleteNoteGuards(t *testing.T) {
	aliceNote := &models.Note{ID: 1, Content: "hello", UserID: 10}

	tests := []struct {
		name     string
		identity uint
		noteID   uint
		wantCode string
	}{
		{"anonymous", 0, 1, "UNAUTHENTICATED"},
		{"missing note", 10, 999, "NOT_FOUND"},
		{"not the author", 20, 1, "FORBIDDEN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewNoteService(singleNoteRepo(t, aliceNote))
			ok, err := svc.DeleteNote(context.Background(), tt.identity, tt.noteID)
			assert.False(t, ok)
			assertErrorCode(t, err, tt.wantCode)
		})
	}
}

func TestDeleteNoteStoreFailureReportsFalse(t *testing.T) {
	aliceNote := &models.Note{ID: 1, Content: "hello", UserID: 10}
	repo := singleNoteRepo(t, aliceNote)
	repo.deleteFn = func(_ context.Context, _ uint) error {
		return errors.New("connection reset")
	}
	svc := NewNoteService(repo)

	// A failure in the delete itself is reported as false, not as an error
	ok, err := svc.DeleteNote(context.Background(), 10, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

// favoriteStateRepo tracks the favorite set in memory so toggling can be
// exercised end to end.
type favoriteStateRepo struct {
	*noteRepoStub
	note      *models.Note
	favorites map[uint]bool
}

func newFavoriteStateRepo(t *testing.T, note *models.Note) *favoriteStateRepo {
	t.Helper()
	r := &favoriteStateRepo{
		noteRepoStub: singleNoteRepo(t, note),
		note:         note,
		favorites:    map[uint]bool{},
	}
	r.getByIDFn = func(_ context.Context, id, currentUserID uint) (*models.Note, error) {
		if id != note.ID {
			return nil, models.NewNotFoundError("Note", id)
		}
		copied := *note
		copied.FavoriteCount = len(r.favorites)
		copied.Favorited = r.favorites[currentUserID]
		return &copied, nil
	}
	r.isFavoritedFn = func(_ context.Context, userID, _ uint) (bool, error) {
		return r.favorites[userID], nil
	}
	r.favoriteFn = func(_ context.Context, userID, _ uint) error {
		r.favorites[userID] = true
		return nil
	}
	r.unfavoriteFn = func(_ context.Context, userID, _ uint) error {
		delete(r.favorites, userID)
		return nil
	}
	return r
}

func TestToggleFavorite(t *testing.T) {
	repo := newFavoriteStateRepo(t, &models.Note{ID: 1, Content: "popular", UserID: 10})
	svc := NewNoteService(repo)
	ctx := context.Background()

	note, err := svc.ToggleFavorite(ctx, 20, 1)
	require.NoError(t, err)
	assert.True(t, note.Favorited)
	assert.Equal(t, 1, note.FavoriteCount)

	// Toggling again returns the note to its original state
	note, err = svc.ToggleFavorite(ctx, 20, 1)
	require.NoError(t, err)
	assert.False(t, note.Favorited)
	assert.Zero(t, note.FavoriteCount)
}

func TestToggleFavoriteTwoUsers(t *testing.T) {
	repo := newFavoriteStateRepo(t, &models.Note{ID: 1, Content: "popular", UserID: 10})
	svc := NewNoteService(repo)
	ctx := context.Background()

	_, err := svc.ToggleFavorite(ctx, 20, 1)
	require.NoError(t, err)

	note, err := svc.ToggleFavorite(ctx, 30, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, note.FavoriteCount)
	assert.True(t, note.Favorited)

	// One user removing their favorite leaves the other's intact
	note, err = svc.ToggleFavorite(ctx, 20, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, note.FavoriteCount)
	assert.False(t, note.Favorited)
}

func TestToggleFavoriteGuards(t *testing.T) {
	repo := newFavoriteStateRepo(t, &models.Note{ID: 1, Content: "popular", UserID: 10})
	svc := NewNoteService(repo)

	_, err := svc.ToggleFavorite(context.Background(), 0, 1)
	assertErrorCode(t, err, "UNAUTHENTICATED")

	_, err = svc.ToggleFavorite(context.Background(), 20, 999)
	assertErrorCode(t, err, "NOT_FOUND")
}
