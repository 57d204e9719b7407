package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/courtneystore/catalog-api/internal/events"
	"github.com/courtneystore/catalog-api/internal/hash"
	"github.com/courtneystore/catalog-api/internal/logging"
	"github.com/courtneystore/catalog-api/internal/models"
	"github.com/courtneystore/catalog-api/internal/repo"
	"github.com/courtneystore/catalog-api/internal/tokens"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthService struct {
	Repo   *repo.GormRepo
	Secret []byte
	Events *events.Producer
}

func (s *AuthService) publish(ctx context.Context, event map[string]any) {
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := s.Events.PublishEvent(pubCtx, "user_events", fmt.Sprint(event["userID"]), event); err != nil {
		logging.FromContext(ctx).Error("kafka publish failed", "error", err)
	}
}

// Register hashes the password and stores the user. No duplicate check
// happens here; the store's unique index is the only guard, and its
// violation surfaces as a plain store error.
func (s *AuthService) Register(ctx context.Context, username, password string) error {
	pwHash, err := hash.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Username:     username,
		PasswordHash: pwHash,
	}
	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		return err
	}

	s.publish(ctx, map[string]any{
		"type":     "user_registered",
		"userID":   user.ID,
		"username": user.Username,
	})

	return nil
}

// Login verifies the credentials and returns a signed session token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.Repo.FindByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	if !hash.CheckPassword(user.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}

	token, err := tokens.Issue(user.ID, s.Secret)
	if err != nil {
		return "", err
	}

	s.publish(ctx, map[string]any{
		"type":     "user_logged_in",
		"userID":   user.ID,
		"username": user.Username,
	})

	return token, nil
}
