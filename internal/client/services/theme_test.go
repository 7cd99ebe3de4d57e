package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/hmarket/internal/client/models"
	"github.com/dmitrijs2005/hmarket/internal/client/storage"
	"github.com/dmitrijs2005/hmarket/internal/client/storage/memory"
	"github.com/dmitrijs2005/hmarket/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type readOnlyStore struct {
	storage.Store
}

func (readOnlyStore) Set(context.Context, string, []byte) error {
	return errors.New("read-only")
}

func TestTheme_DefaultsToLight(t *testing.T) {
	svc := NewThemeService(memory.New(), logging.Nop())
	assert.Equal(t, models.ThemeLight, svc.Current(context.Background()))
}

func TestTheme_UnknownValueIsLight(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	require.NoError(t, s.Set(ctx, storage.KeyTheme, []byte("solarized")))

	assert.Equal(t, models.ThemeLight, NewThemeService(s, logging.Nop()).Current(ctx))
}

func TestTheme_TogglePersists(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	svc := NewThemeService(s, logging.Nop())

	got, err := svc.Toggle(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ThemeDark, got)

	raw, err := s.Get(ctx, storage.KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, "dark", string(raw))

	assert.Equal(t, models.ThemeDark, NewThemeService(s, logging.Nop()).Current(ctx))

	got, err = svc.Toggle(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ThemeLight, got)
}

func TestTheme_ToggleSaveFailure(t *testing.T) {
	svc := NewThemeService(readOnlyStore{Store: memory.New()}, logging.Nop())

	got, err := svc.Toggle(context.Background())
	require.ErrorIs(t, err, storage.ErrSaveFailed)
	assert.Equal(t, models.ThemeLight, got)
}
