// Command main seeds the development database with fake users and notes.
package main

import (
	"context"
	"flag"
	"log"

	"inkwell/internal/config"
	"inkwell/internal/database"
	"inkwell/internal/repository"
	"inkwell/internal/seed"
)

func main() {
	users := flag.Int("users", 10, "number of users to create")
	notes := flag.Int("notes", 5, "max notes per user")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ctx := context.Background()
	if err := seed.Run(ctx,
		repository.NewUserRepository(db),
		repository.NewNoteRepository(db),
		*users, *notes,
	); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
