package repository

import (
	"context"
	"errors"

	"inkwell/internal/cache"
	"inkwell/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NoteRepository defines persistence operations for notes and favorites.
type NoteRepository interface {
	Create(ctx context.Context, note *models.Note) error
	GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Note, error)
	List(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Note, error)
	GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Note, error)
	UpdateContent(ctx context.Context, id uint, content string, currentUserID uint) (*models.Note, error)
	Delete(ctx context.Context, id uint) error
	IsFavorited(ctx context.Context, userID, noteID uint) (bool, error)
	// Favorite adds userID to the note's favorite set if absent; Unfavorite
	// removes it if present. Both are single atomic statements, so concurrent
	// toggles cannot leave the favorite count out of sync with the set.
	Favorite(ctx context.Context, userID, noteID uint) error
	Unfavorite(ctx context.Context, userID, noteID uint) error
}

type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository returns a new NoteRepository implementation.
func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepository{db: db}
}

// applyNoteDetails selects notes with the favorite count and the current
// user's favorited flag computed from the favorites table.
func (r *noteRepository) applyNoteDetails(db *gorm.DB, currentUserID uint) *gorm.DB {
	return db.Model(&models.Note{}).
		Select(`notes.*,
			(SELECT COUNT(*) FROM favorites WHERE favorites.note_id = notes.id) AS favorite_count,
			(SELECT COUNT(*) > 0 FROM favorites WHERE favorites.note_id = notes.id AND favorites.user_id = ?) AS favorited`,
			currentUserID)
}

func (r *noteRepository) Create(ctx context.Context, note *models.Note) error {
	if err := r.db.WithContext(ctx).Create(note).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *noteRepository) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Note, error) {
	var note models.Note

	fetch := func() error {
		if err := r.applyNoteDetails(r.db.WithContext(ctx), currentUserID).
			Preload("User").
			Preload("FavoritedBy").
			First(&note, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Note", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	}

	var err error
	if currentUserID == 0 {
		// Anonymous reads share a cache entry; the favorited flag is always
		// false for them, so caching is safe.
		err = cache.Aside(ctx, cache.NoteKey(id), &note, cache.NoteTTL, fetch)
	} else {
		err = fetch()
	}

	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *noteRepository) List(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Note, error) {
	var notes []*models.Note
	if err := r.applyNoteDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&notes).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return notes, nil
}

func (r *noteRepository) GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Note, error) {
	var notes []*models.Note
	if err := r.applyNoteDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&notes).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return notes, nil
}

func (r *noteRepository) UpdateContent(ctx context.Context, id uint, content string, currentUserID uint) (*models.Note, error) {
	if err := r.db.WithContext(ctx).
		Model(&models.Note{}).
		Where("id = ?", id).
		Update("content", content).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	cache.InvalidateNote(ctx, id)
	return r.GetByID(ctx, id, currentUserID)
}

func (r *noteRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Note{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateNote(ctx, id)
	return nil
}

func (r *noteRepository) IsFavorited(ctx context.Context, userID, noteID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Favorite{}).
		Where("user_id = ? AND note_id = ?", userID, noteID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *noteRepository) Favorite(ctx context.Context, userID, noteID uint) error {
	// Add-if-absent: the composite primary key plus ON CONFLICT DO NOTHING
	// makes duplicate favorites impossible even under concurrent requests.
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.Favorite{UserID: userID, NoteID: noteID}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateNote(ctx, noteID)
	return nil
}

func (r *noteRepository) Unfavorite(ctx context.Context, userID, noteID uint) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND note_id = ?", userID, noteID).
		Delete(&models.Favorite{}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateNote(ctx, noteID)
	return nil
}
