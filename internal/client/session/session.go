// Package session tracks which directory account is logged in for the
// current tab session.
//
// The marker is just the account email in the ephemeral store. It is
// resolved against the directory on every read, so a marker whose account
// has gone reads as "nobody logged in".
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/hmarket/internal/client/models"
	"github.com/dmitrijs2005/hmarket/internal/client/storage"
	"github.com/dmitrijs2005/hmarket/internal/logging"
)

// ErrInvalidCredentials covers both an unknown email and a wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Users is the part of the directory a session needs.
type Users interface {
	FindByEmail(ctx context.Context, email string) (models.User, bool)
}

type Session struct {
	users Users
	store storage.Store
	log   logging.Logger
}

func New(users Users, store storage.Store, log logging.Logger) *Session {
	return &Session{users: users, store: store, log: log.With("component", "session")}
}

// Login checks the password exactly and records the account's stored email
// as the marker.
func (s *Session) Login(ctx context.Context, email, password string) (models.User, error) {
	user, ok := s.users.FindByEmail(ctx, email)
	if !ok || user.Password != password {
		return models.User{}, ErrInvalidCredentials
	}

	if err := s.store.Set(ctx, storage.KeySessionEmail, []byte(user.Email)); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", storage.ErrSaveFailed, err)
	}

	s.log.Info(ctx, "logged in", "email", user.Email)
	return user, nil
}

// Logout removes the marker. Logging out twice is not an error.
func (s *Session) Logout(ctx context.Context) error {
	if err := s.store.Delete(ctx, storage.KeySessionEmail); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// CurrentUser resolves the marker. It reports false when there is no
// marker, the marker cannot be read, or its account no longer exists.
func (s *Session) CurrentUser(ctx context.Context) (models.User, bool) {
	raw, err := s.store.Get(ctx, storage.KeySessionEmail)
	if err != nil {
		s.log.Warn(ctx, "read session failed", "error", err)
		return models.User{}, false
	}
	if len(raw) == 0 {
		return models.User{}, false
	}

	user, ok := s.users.FindByEmail(ctx, string(raw))
	if !ok {
		s.log.Debug(ctx, "dangling session marker", "email", string(raw))
	}
	return user, ok
}
