// Package toolconfig loads optional tool settings from a TOML file under
// the .git directory.
package toolconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/runoshun/git-review/internal/domain"
)

// SettingsFileName is the settings file below .git/review/.
const SettingsFileName = "config.toml"

// Loader loads settings from .git/review/config.toml.
type Loader struct {
	path string
}

// NewLoader creates a new Loader for the given .git directory.
func NewLoader(gitDir string) *Loader {
	return &Loader{path: filepath.Join(gitDir, "review", SettingsFileName)}
}

// Ensure Loader implements domain.SettingsLoader.
var _ domain.SettingsLoader = (*Loader)(nil)

// Load returns the settings. A missing file yields the defaults; a
// malformed file is an error.
func (l *Loader) Load() (*domain.Settings, error) {
	settings := domain.NewDefaultSettings()

	data, err := os.ReadFile(l.path)
	if errors.Is(err, os.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read settings file: %w", err)
	}
	if err := toml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parse %s: %w", l.path, err)
	}

	// An explicit empty or nonsensical value falls back to the default.
	if settings.TrailerKey == "" {
		settings.TrailerKey = domain.DefaultTrailerKey
	}
	if settings.DraftTag == "" {
		settings.DraftTag = domain.DefaultDraftTag
	}
	if settings.TagLength <= 0 {
		settings.TagLength = domain.DefaultTagLength
	}
	if settings.APIBaseURL == "" {
		settings.APIBaseURL = domain.DefaultAPIBaseURL
	}
	return settings, nil
}
