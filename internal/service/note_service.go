package service

import (
	"context"

	"inkwell/internal/models"
	"inkwell/internal/repository"
)

// NoteService guards and executes note mutations. The identity argument is
// the authenticated user id from the request context, or 0 when anonymous.
type NoteService struct {
	notes repository.NoteRepository
}

func NewNoteService(notes repository.NoteRepository) *NoteService {
	return &NoteService{notes: notes}
}

// NewNote creates a note owned by the caller.
func (s *NoteService) NewNote(ctx context.Context, identity uint, content string) (*models.Note, error) {
	if identity == 0 {
		return nil, models.NewAuthenticationError("You must be signed in to create a note")
	}
	if content == "" {
		return nil, models.NewValidationError("Content is required")
	}

	note := &models.Note{
		Content: content,
		UserID:  identity,
	}
	if err := s.notes.Create(ctx, note); err != nil {
		return nil, err
	}

	return s.notes.GetByID(ctx, note.ID, identity)
}

// UpdateNote replaces a note's content. Only the author may update it; a
// missing note is reported as not found, never written to.
func (s *NoteService) UpdateNote(ctx context.Context, identity uint, id uint, content string) (*models.Note, error) {
	if identity == 0 {
		return nil, models.NewAuthenticationError("You must be signed in to update a note")
	}
	if content == "" {
		return nil, models.NewValidationError("Content is required")
	}

	note, err := s.notes.GetByID(ctx, id, identity)
	if err != nil {
		return nil, err
	}
	if note.UserID != identity {
		return nil, models.NewForbiddenError("You don't have permission to update this note")
	}

	return s.notes.UpdateContent(ctx, id, content, identity)
}

// DeleteNote removes a note. Precondition failures surface as typed errors;
// a store failure during the delete itself is converted to false.
func (s *NoteService) DeleteNote(ctx context.Context, identity uint, id uint) (bool, error) {
	if identity == 0 {
		return false, models.NewAuthenticationError("You must be signed in to delete a note")
	}

	note, err := s.notes.GetByID(ctx, id, identity)
	if err != nil {
		return false, err
	}
	if note.UserID != identity {
		return false, models.NewForbiddenError("You don't have permission to delete this note")
	}

	if err := s.notes.Delete(ctx, id); err != nil {
		return false, nil
	}
	return true, nil
}

// ToggleFavorite adds the caller to the note's favorite set if absent, or
// removes them if present. Any signed-in user may toggle any note.
func (s *NoteService) ToggleFavorite(ctx context.Context, identity uint, id uint) (*models.Note, error) {
	if identity == 0 {
		return nil, models.NewAuthenticationError("You must be signed in to favorite a note")
	}

	if _, err := s.notes.GetByID(ctx, id, identity); err != nil {
		return nil, err
	}

	favorited, err := s.notes.IsFavorited(ctx, identity, id)
	if err != nil {
		return nil, err
	}

	if favorited {
		if err := s.notes.Unfavorite(ctx, identity, id); err != nil {
			return nil, err
		}
	} else {
		if err := s.notes.Favorite(ctx, identity, id); err != nil {
			return nil, err
		}
	}

	return s.notes.GetByID(ctx, id, identity)
}
