package server

import (
	"inkwell/internal/middleware"
	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetMe handles GET /api/users/me
func (s *Server) GetMe(c *fiber.Ctx) error {
	identity := middleware.CurrentUserID(c)
	if identity == 0 {
		return respondError(c, models.NewAuthenticationError("You must be signed in"))
	}

	user, err := s.userRepo.GetByID(c.UserContext(), identity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// GetUser handles GET /api/users/:id
func (s *Server) GetUser(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	user, err := s.userRepo.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// GetUserNotes handles GET /api/users/:id/notes
func (s *Server) GetUserNotes(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}
	limit, offset := parsePagination(c)

	notes, err := s.noteRepo.GetByUserID(c.UserContext(), id, limit, offset, middleware.CurrentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(notes)
}
