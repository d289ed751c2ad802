package server

import (
	"inkwell/internal/middleware"
	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetNotes handles GET /api/notes
func (s *Server) GetNotes(c *fiber.Ctx) error {
	limit, offset := parsePagination(c)

	notes, err := s.noteRepo.List(c.UserContext(), limit, offset, middleware.CurrentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(notes)
}

// GetNote handles GET /api/notes/:id
func (s *Server) GetNote(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	note, err := s.noteRepo.GetByID(c.UserContext(), id, middleware.CurrentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(note)
}

// CreateNote handles POST /api/notes
func (s *Server) CreateNote(c *fiber.Ctx) error {
	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	note, err := s.noteService.NewNote(c.UserContext(), middleware.CurrentUserID(c), req.Content)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(note)
}

// UpdateNote handles PUT /api/notes/:id
func (s *Server) UpdateNote(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	note, err := s.noteService.UpdateNote(c.UserContext(), middleware.CurrentUserID(c), id, req.Content)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(note)
}

// DeleteNote handles DELETE /api/notes/:id
func (s *Server) DeleteNote(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	deleted, err := s.noteService.DeleteNote(c.UserContext(), middleware.CurrentUserID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"deleted": deleted,
	})
}

// ToggleFavorite handles POST /api/notes/:id/favorite
func (s *Server) ToggleFavorite(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	note, err := s.noteService.ToggleFavorite(c.UserContext(), middleware.CurrentUserID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(note)
}
