package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix = "user:%d"
	NoteKeyPrefix = "note:%d"
)

const (
	UserTTL = 5 * time.Minute
	NoteTTL = 10 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func NoteKey(noteID uint) string {
	return fmt.Sprintf(NoteKeyPrefix, noteID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateNote(ctx context.Context, noteID uint) {
	Invalidate(ctx, NoteKey(noteID))
}
