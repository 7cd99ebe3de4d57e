package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/hmarket/internal/client/models"
	"github.com/dmitrijs2005/hmarket/internal/client/storage"
	"github.com/dmitrijs2005/hmarket/internal/logging"
)

// ThemeService reads and flips the persisted theme preference.
type ThemeService interface {
	Current(ctx context.Context) models.Theme
	Toggle(ctx context.Context) (models.Theme, error)
}

type themeService struct {
	store storage.Store
	log   logging.Logger
}

func NewThemeService(store storage.Store, log logging.Logger) ThemeService {
	return &themeService{store: store, log: log.With("component", "theme")}
}

// Current falls back to light when the preference is missing or unreadable.
func (t *themeService) Current(ctx context.Context) models.Theme {
	raw, err := t.store.Get(ctx, storage.KeyTheme)
	if err != nil {
		t.log.Warn(ctx, "read theme failed", "error", err)
		return models.ThemeLight
	}
	return models.ParseTheme(string(raw))
}

func (t *themeService) Toggle(ctx context.Context) (models.Theme, error) {
	next := t.Current(ctx).Toggle()
	if err := t.store.Set(ctx, storage.KeyTheme, []byte(next)); err != nil {
		t.log.Error(ctx, "save theme failed", "error", err)
		return t.Current(ctx), fmt.Errorf("%w: %w", storage.ErrSaveFailed, err)
	}
	return next, nil
}
