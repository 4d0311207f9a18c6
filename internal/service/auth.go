package service

import (
	"context"
	"errors"

	"github.com/Deondre2002/Market/internal/hash"
	"github.com/Deondre2002/Market/internal/logging"
	"github.com/Deondre2002/Market/internal/models"
	"github.com/Deondre2002/Market/internal/repo"
	"github.com/Deondre2002/Market/internal/token"
)

// AuthService owns registration and login. Both hand back a signed
// token for the user; only the one-way password hash ever reaches
// the database.
type AuthService struct {
	Repo   *repo.GormRepo
	Tokens *token.Issuer
}

func (s *AuthService) Register(ctx context.Context, username, password string) (string, *models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		l.Error("register_error", "reason", "cannot hash the password", "error", err)
		return "", nil, err
	}

	user := &models.User{
		Username:     username,
		PasswordHash: pwHash,
	}
	if err := s.Repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			l.Warn("register_error", "status", 409, "reason", "username already taken")
			return "", nil, err
		}
		l.Error("register_error", "status", 500, "error", err)
		return "", nil, err
	}

	tok, err := s.Tokens.Issue(user.ID, user.Username)
	if err != nil {
		l.Error("register_error", "reason", "cannot sign token", "error", err)
		return "", nil, err
	}

	return tok, user, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	user, err := s.Repo.Authenticate(ctx, username, password)
	if err != nil {
		if errors.Is(err, repo.ErrInvalidCredentials) {
			l.Warn("login_failed", "status", 400, "reason", "invalid credentials")
			return "", nil, err
		}
		l.Error("login_failed", "status", 500, "error", err)
		return "", nil, err
	}

	tok, err := s.Tokens.Issue(user.ID, user.Username)
	if err != nil {
		l.Error("login_failed", "reason", "cannot sign token", "error", err)
		return "", nil, err
	}

	return tok, user, nil
}

func (s *AuthService) GetUser(ctx context.Context, username string) (*models.User, error) {
	return s.Repo.GetUserByUsername(ctx, username)
}
