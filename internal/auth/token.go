package auth

import (
	"fmt"
	"strconv"

	"inkwell/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and verifies signed session tokens carrying a user id.
// Tokens are HMAC-signed with a process-wide secret and carry no expiry.
type TokenService struct {
	secret string
}

// NewTokenService returns a TokenService signing with the given secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: secret}
}

// Issue signs a token asserting the given user id.
func (s *TokenService) Issue(userID uint) (string, error) {
	if s.secret == "" {
		return "", models.NewConfigError("JWT secret not configured")
	}

	claims := jwt.MapClaims{
		"id": strconv.FormatUint(uint64(userID), 10),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", models.NewInternalError(err)
	}
	return signed, nil
}

// Verify checks the signature of tokenString and extracts the user id.
// It fails closed: any decoding or signature error yields (0, false).
func (s *TokenService) Verify(tokenString string) (uint, bool) {
	if s.secret == "" {
		return 0, false
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return 0, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}

	idClaim, ok := claims["id"]
	if !ok {
		return 0, false
	}
	idStr, ok := idClaim.(string)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}

	return uint(id), true
}
