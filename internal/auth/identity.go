package auth

import "strings"

// ResolveIdentity derives the optional authenticated identity for a request
// from the raw Authorization header value. An absent header yields no
// identity; a present but invalid token also yields no identity, so the
// caller cannot distinguish the two. Verification failure is never an error.
func (s *TokenService) ResolveIdentity(header string) (uint, bool) {
	token := strings.TrimSpace(header)
	if token == "" {
		return 0, false
	}

	// Accept both a bare token and the conventional "Bearer <token>" form.
	if rest, ok := strings.CutPrefix(token, "Bearer "); ok {
		token = strings.TrimSpace(rest)
	}

	return s.Verify(token)
}
