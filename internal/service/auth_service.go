// Package service implements the mutation authorization layer: each mutation
// is a linear guard pipeline that checks identity and ownership before
// delegating to the repositories.
package service

import (
	"context"
	"strings"

	"inkwell/internal/auth"
	"inkwell/internal/gravatar"
	"inkwell/internal/models"
	"inkwell/internal/repository"
)

// AuthService handles account creation and credential verification.
type AuthService struct {
	users  repository.UserRepository
	hasher *auth.PasswordHasher
	tokens *auth.TokenService
}

type SignUpInput struct {
	Username string
	Email    string
	Password string
}

type SignInInput struct {
	Username string
	Email    string
	Password string
}

func NewAuthService(users repository.UserRepository, hasher *auth.PasswordHasher, tokens *auth.TokenService) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens}
}

// normalizeEmail lowercases and trims an email address so lookups and the
// unique constraint are case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignUp creates a new account and returns a signed session token for it.
func (s *AuthService) SignUp(ctx context.Context, in SignUpInput) (string, error) {
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return "", models.NewValidationError("Username, email, and password are required")
	}

	email := normalizeEmail(in.Email)

	hashed, err := s.hasher.Hash(in.Password)
	if err != nil {
		return "", err
	}

	user := &models.User{
		Username: in.Username,
		Email:    email,
		Avatar:   gravatar.URL(email),
		Password: hashed,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return "", err
	}

	return s.tokens.Issue(user.ID)
}

// SignIn verifies credentials by email or username and returns a session
// token. The failure message never distinguishes an unknown account from a
// wrong password.
func (s *AuthService) SignIn(ctx context.Context, in SignInInput) (string, error) {
	email := in.Email
	if email != "" {
		email = normalizeEmail(email)
	}

	user, err := s.users.GetByEmailOrUsername(ctx, email, in.Username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", models.NewAuthenticationError("Error signing in")
	}

	if !s.hasher.Verify(in.Password, user.Password) {
		return "", models.NewAuthenticationError("Error signing in")
	}

	return s.tokens.Issue(user.ID)
}
