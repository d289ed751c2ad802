// Package gravatar derives avatar URLs from email addresses.
package gravatar

import (
	"crypto/md5"
	"fmt"
)

// URL returns the Gravatar URL for the given email address. The email should
// already be normalized (lowercase, trimmed) by the caller.
func URL(email string) string {
	hash := md5.Sum([]byte(email))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?d=identicon", hash)
}
