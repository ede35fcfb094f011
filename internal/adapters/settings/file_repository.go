package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/SscSPs/currency_converter_app/internal/apperrors"
	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_converter_app/internal/core/ports/repositories"
)

// FileSettingsRepository stores preferences in a small JSON document on local disk.
type FileSettingsRepository struct {
	path string
	mu   sync.Mutex
}

type settingsDocument struct {
	Locale string `json:"locale,omitempty"`
}

// NewFileSettingsRepository creates a repository backed by the file at path.
// The file and its directory are created on first write.
func NewFileSettingsRepository(path string) *FileSettingsRepository {
	return &FileSettingsRepository{path: path}
}

// GetLocale returns the stored locale or apperrors.ErrNotFound when the file or key is absent.
func (r *FileSettingsRepository) GetLocale(ctx context.Context) (domain.Locale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.read()
	if err != nil {
		return "", err
	}
	if doc.Locale == "" {
		return "", apperrors.ErrNotFound
	}
	return domain.Locale(doc.Locale), nil
}

// SetLocale writes the locale, keeping any other keys in the document.
func (r *FileSettingsRepository) SetLocale(ctx context.Context, locale domain.Locale) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.read()
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		// An unreadable file is overwritten rather than blocking the preference.
		doc = settingsDocument{}
	}
	doc.Locale = string(locale)
	return r.write(doc)
}

func (r *FileSettingsRepository) read() (settingsDocument, error) {
	var doc settingsDocument
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return doc, apperrors.ErrNotFound
		}
		return doc, fmt.Errorf("error reading settings file: %w", err)
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return settingsDocument{}, fmt.Errorf("error decoding settings file: %w", err)
	}
	return doc, nil
}

func (r *FileSettingsRepository) write(doc settingsDocument) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("error creating settings directory: %w", err)
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding settings: %w", err)
	}

	// Write then rename so a crash never leaves a truncated file behind.
	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".settings-*.json")
	if err != nil {
		return fmt.Errorf("error creating temporary settings file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing settings file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("error closing settings file: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("error replacing settings file: %w", err)
	}
	return nil
}

// MemorySettingsRepository keeps preferences for the lifetime of the process.
// It backs the CLI when no storage is configured.
type MemorySettingsRepository struct {
	mu     sync.Mutex
	locale domain.Locale
}

// NewMemorySettingsRepository creates an empty in-memory repository.
func NewMemorySettingsRepository() *MemorySettingsRepository {
	return &MemorySettingsRepository{}
}

func (r *MemorySettingsRepository) GetLocale(ctx context.Context) (domain.Locale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.locale == "" {
		return "", apperrors.ErrNotFound
	}
	return r.locale, nil
}

func (r *MemorySettingsRepository) SetLocale(ctx context.Context, locale domain.Locale) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.locale = locale
	return nil
}

var (
	_ portsrepo.SettingsRepositoryFacade = (*FileSettingsRepository)(nil)
	_ portsrepo.SettingsRepositoryFacade = (*MemorySettingsRepository)(nil)
)
