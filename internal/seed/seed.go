// Package seed populates the database with development data.
package seed

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"

	"inkwell/internal/auth"
	"inkwell/internal/gravatar"
	"inkwell/internal/models"
	"inkwell/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
)

// DefaultPassword is the password every seeded account signs in with.
const DefaultPassword = "password123"

// Run creates userCount fake users, each with up to notesPerUser notes, and
// sprinkles favorites between them. It is intended for development databases.
func Run(ctx context.Context, users repository.UserRepository, notes repository.NoteRepository, userCount, notesPerUser int) error {
	hasher := auth.NewPasswordHasher(0)
	hashed, err := hasher.Hash(DefaultPassword)
	if err != nil {
		return err
	}

	var created []*models.User
	for i := 0; i < userCount; i++ {
		email := strings.ToLower(gofakeit.Email())
		user := &models.User{
			Username: fmt.Sprintf("%s%d", strings.ToLower(gofakeit.Username()), i),
			Email:    email,
			Avatar:   gravatar.URL(email),
			Password: hashed,
		}
		if err := users.Create(ctx, user); err != nil {
			return err
		}
		created = append(created, user)
	}

	var allNotes []*models.Note
	for _, user := range created {
		for i := 0; i < rand.Intn(notesPerUser)+1; i++ {
			note := &models.Note{
				Content: gofakeit.Paragraph(1, 3, 12, " "),
				UserID:  user.ID,
			}
			if err := notes.Create(ctx, note); err != nil {
				return err
			}
			allNotes = append(allNotes, note)
		}
	}

	for _, note := range allNotes {
		for _, user := range created {
			if rand.Intn(4) == 0 {
				if err := notes.Favorite(ctx, user.ID, note.ID); err != nil {
					return err
				}
			}
		}
	}

	log.Printf("Seeded %d users and %d notes", len(created), len(allNotes))
	return nil
}
