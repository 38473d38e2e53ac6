package usecase

import (
	"context"

	"github.com/runoshun/git-review/internal/domain"
)

// ShowConfigInput contains the input for the ShowConfig use case.
type ShowConfigInput struct{}

// ShowConfigOutput contains the resolved configuration.
type ShowConfigOutput struct {
	Config   *domain.Config
	Settings *domain.Settings
}

// ShowConfig resolves and returns the effective configuration.
type ShowConfig struct {
	config   domain.ConfigSource
	settings *domain.Settings
}

// NewShowConfig creates a new ShowConfig use case.
func NewShowConfig(config domain.ConfigSource, settings *domain.Settings) *ShowConfig {
	return &ShowConfig{
		config:   config,
		settings: settings,
	}
}

// Execute loads the configuration. The required working branch is
// validated so the command fails the same way every other command would.
func (uc *ShowConfig) Execute(_ context.Context, _ ShowConfigInput) (*ShowConfigOutput, error) {
	cfg, err := uc.config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &ShowConfigOutput{Config: cfg, Settings: uc.settings}, nil
}
