package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/currency_converter_app/internal/apperrors"
	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_converter_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const localeSettingKey = "locale"

// querier is the subset of *pgxpool.Pool used by the repository.
type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PgxSettingsRepository implements the repositories.SettingsRepositoryFacade interface using pgxpool.
type PgxSettingsRepository struct {
	db querier
}

// NewSettingsRepository creates a new PgxSettingsRepository. db is usually a *pgxpool.Pool.
func NewSettingsRepository(db querier) *PgxSettingsRepository {
	return &PgxSettingsRepository{db: db}
}

// GetLocale retrieves the stored locale.
func (r *PgxSettingsRepository) GetLocale(ctx context.Context) (domain.Locale, error) {
	query := `SELECT setting_value FROM user_settings WHERE setting_key = $1`

	var value string
	err := r.db.QueryRow(ctx, query, localeSettingKey).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", fmt.Errorf("error finding locale setting: %w", err)
	}
	return domain.Locale(value), nil
}

// SetLocale upserts the locale.
func (r *PgxSettingsRepository) SetLocale(ctx context.Context, locale domain.Locale) error {
	query := `
		INSERT INTO user_settings (setting_key, setting_value, last_updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (setting_key) DO UPDATE
		SET setting_value = EXCLUDED.setting_value, last_updated_at = EXCLUDED.last_updated_at
	`
	if _, err := r.db.Exec(ctx, query, localeSettingKey, string(locale)); err != nil {
		return fmt.Errorf("error saving locale setting: %w", err)
	}
	return nil
}

var _ portsrepo.SettingsRepositoryFacade = (*PgxSettingsRepository)(nil)
