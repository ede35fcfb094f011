package settings_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/SscSPs/currency_converter_app/internal/adapters/settings"
	"github.com/SscSPs/currency_converter_app/internal/apperrors"
	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSettingsRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "settings.json")
	repo := settings.NewFileSettingsRepository(path)

	_, err := repo.GetLocale(ctx)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, repo.SetLocale(ctx, domain.LocaleEN))

	// A fresh instance reads what the first one wrote.
	locale, err := settings.NewFileSettingsRepository(path).GetLocale(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.LocaleEN, locale)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files are left behind")
}

func TestFileSettingsRepository_MissingKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o600))

	_, err := settings.NewFileSettingsRepository(path).GetLocale(context.Background())

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestFileSettingsRepository_CorruptFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o600))
	repo := settings.NewFileSettingsRepository(path)

	_, err := repo.GetLocale(ctx)
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)

	// Writing replaces the unreadable document.
	require.NoError(t, repo.SetLocale(ctx, domain.LocalePL))
	locale, err := repo.GetLocale(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.LocalePL, locale)
}

func TestMemorySettingsRepository(t *testing.T) {
	ctx := context.Background()
	repo := settings.NewMemorySettingsRepository()

	_, err := repo.GetLocale(ctx)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, repo.SetLocale(ctx, domain.LocalePL))
	locale, err := repo.GetLocale(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.LocalePL, locale)
}
