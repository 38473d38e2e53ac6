// Package app provides the dependency injection container for the
// application.
package app

import (
	"io"
	"log/slog"
	"os"

	"github.com/runoshun/git-review/internal/domain"
	"github.com/runoshun/git-review/internal/infra/git"
	"github.com/runoshun/git-review/internal/infra/gitconfig"
	"github.com/runoshun/git-review/internal/infra/github"
	"github.com/runoshun/git-review/internal/infra/toolconfig"
	"github.com/runoshun/git-review/internal/usecase"
)

// Container provides dependency injection for the application. It holds
// all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Git    domain.Git
	Forge  domain.Forge
	Config domain.ConfigSource
	Tags   domain.TagGenerator

	// Pointer fields
	Settings *domain.Settings
	Logger   *slog.Logger
}

// New creates a new Container by detecting the git repository from the
// given directory.
func New(dir string) (*Container, error) {
	gitClient, err := git.NewClient(dir)
	if err != nil {
		return nil, err
	}

	settings, err := toolconfig.NewLoader(gitClient.GitDir()).Load()
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(settings.Log.Level),
	}))

	return &Container{
		Git:      gitClient,
		Forge:    github.NewClient(settings.APIBaseURL),
		Config:   gitconfig.NewSource(gitClient.RepoRoot()),
		Tags:     domain.RandomTagGenerator{Length: settings.TagLength},
		Settings: settings,
		Logger:   logger,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for
// testing.
func NewWithDeps(g domain.Git, forge domain.Forge, config domain.ConfigSource, tags domain.TagGenerator, settings *domain.Settings, logger *slog.Logger) *Container {
	if settings == nil {
		settings = domain.NewDefaultSettings()
	}
	return &Container{
		Git:      g,
		Forge:    forge,
		Config:   config,
		Tags:     tags,
		Settings: settings,
		Logger:   logger,
	}
}

func parseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// UseCase factory methods

// NewCommitUseCase returns a new NewCommit use case.
func (c *Container) NewCommitUseCase() *usecase.NewCommit {
	return usecase.NewNewCommit(c.Git, c.Forge, c.Config, c.Tags, c.Settings.Codec())
}

// NewCommitsFromFileUseCase returns a new NewCommitsFromFile use case.
func (c *Container) NewCommitsFromFileUseCase() *usecase.NewCommitsFromFile {
	return usecase.NewNewCommitsFromFile(c.Git, c.Config, c.Tags, c.Settings.Codec())
}

// ListStackUseCase returns a new ListStack use case.
func (c *Container) ListStackUseCase() *usecase.ListStack {
	return usecase.NewListStack(c.Git, c.Config, c.Settings.Codec())
}

// ReconcilePullsUseCase returns a new ReconcilePulls use case.
func (c *Container) ReconcilePullsUseCase() *usecase.ReconcilePulls {
	return usecase.NewReconcilePulls(c.Git, c.Forge, c.Config)
}

// ExportStackUseCase returns a new ExportStack use case reporting progress
// to out.
func (c *Container) ExportStackUseCase(out io.Writer) *usecase.ExportStack {
	return usecase.NewExportStack(
		c.Git,
		c.Forge,
		c.Config,
		c.ListStackUseCase(),
		c.ReconcilePullsUseCase(),
		c.Settings.Codec(),
		c.Settings.Export.LatestOnly,
		c.Logger,
		out,
	)
}

// SyncStackUseCase returns a new SyncStack use case.
func (c *Container) SyncStackUseCase() *usecase.SyncStack {
	return usecase.NewSyncStack(c.Git, c.Config)
}

// RebaseStackUseCase returns a new RebaseStack use case.
func (c *Container) RebaseStackUseCase() *usecase.RebaseStack {
	return usecase.NewRebaseStack(c.Git, c.Config)
}

// PushStackUseCase returns a new PushStack use case.
func (c *Container) PushStackUseCase() *usecase.PushStack {
	return usecase.NewPushStack(c.Git, c.Config)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.Config, c.Settings)
}
