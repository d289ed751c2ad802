package models

import (
	"time"

	"gorm.io/gorm"
)

// Note represents a note in the Inkwell application.
// UserID is the author and is immutable after creation.
type Note struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Content string `gorm:"type:text;not null" json:"content"`
	UserID  uint   `gorm:"not null;index" json:"user_id"`
	User    User   `gorm:"foreignKey:UserID" json:"user"`
	// FavoriteCount is not persisted; computed at query time from the favorites table
	FavoriteCount int `gorm:"->" json:"favorite_count"`
	// Favorited indicates whether the current requesting user favorited this note (computed)
	Favorited bool `gorm:"->" json:"favorited"`
	// FavoritedBy is the set of users who favorited this note; loaded on single-note reads
	FavoritedBy []User         `gorm:"many2many:favorites;joinForeignKey:NoteID;joinReferences:UserID" json:"favorited_by,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// Favorite is a single user's favorite mark on a note. The composite primary
// key guarantees a user appears at most once per note.
type Favorite struct {
	UserID    uint      `gorm:"primaryKey" json:"user_id"`
	NoteID    uint      `gorm:"primaryKey" json:"note_id"`
	CreatedAt time.Time `json:"created_at"`
}
