// Package directory keeps the ordered list of marketplace accounts in the
// durable store under the "users" key, as one JSON array.
//
// The directory is a dumb store: Create appends without checking for an
// existing email. Callers that need unique emails look the address up with
// FindByEmail first.
package directory

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/hmarket/internal/client/models"
	"github.com/dmitrijs2005/hmarket/internal/client/storage"
	"github.com/dmitrijs2005/hmarket/internal/common"
	"github.com/dmitrijs2005/hmarket/internal/logging"
)

// ErrSaveFailed wraps every failure to persist the directory.
var ErrSaveFailed = storage.ErrSaveFailed

type Directory struct {
	store storage.Store
	log   logging.Logger
}

func New(store storage.Store, log logging.Logger) *Directory {
	return &Directory{store: store, log: log.With("component", "directory")}
}

// ListUsers returns the persisted users in insertion order. A missing,
// unreadable or malformed value yields an empty list; the cause is only
// logged.
func (d *Directory) ListUsers(ctx context.Context) []models.User {
	raw, err := d.store.Get(ctx, storage.KeyUsers)
	if err != nil {
		d.log.Warn(ctx, "read users failed", "error", err)
		return []models.User{}
	}
	return d.decode(ctx, raw)
}

// FindByEmail returns the first user whose email matches, ignoring case.
func (d *Directory) FindByEmail(ctx context.Context, email string) (models.User, bool) {
	for _, u := range d.ListUsers(ctx) {
		if common.SameEmail(u.Email, email) {
			return u, true
		}
	}
	return models.User{}, false
}

// Create appends user and persists the whole list.
func (d *Directory) Create(ctx context.Context, user models.User) error {
	err := storage.Update(ctx, d.store, storage.KeyUsers, func(current []byte) ([]byte, error) {
		users := append(d.decode(ctx, current), user)
		return json.Marshal(users)
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}

	d.log.Debug(ctx, "user created", "email", user.Email, "role", user.Role)
	return nil
}

func (d *Directory) decode(ctx context.Context, raw []byte) []models.User {
	if raw == nil {
		return []models.User{}
	}

	var users []models.User
	if err := json.Unmarshal(raw, &users); err != nil {
		d.log.Warn(ctx, "malformed users value, treating as empty", "error", err)
		return []models.User{}
	}
	if users == nil {
		return []models.User{}
	}
	return users
}
