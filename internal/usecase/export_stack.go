package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/runoshun/git-review/internal/domain"
)

// ExportStackInput contains the parameters for exporting the stack.
type ExportStackInput struct{}

// ExportStackOutput summarizes the export run.
type ExportStackOutput struct {
	Exported int // Entries pushed to their review branches
	Skipped  int // Entries skipped (draft or no review branch)
	Created  int // Pull requests created
}

// ExportStack is the use case for exporting each eligible stack entry to
// its own remote review branch, paired with a pull request against the
// integration branch.
type ExportStack struct {
	git        domain.Git
	forge      domain.Forge
	config     domain.ConfigSource
	lister     *ListStack
	reconciler *ReconcilePulls
	logger     *slog.Logger
	out        io.Writer
	codec      domain.Codec
	latestOnly bool
}

// NewExportStack creates a new ExportStack use case. Progress is reported
// to out as each entry is processed. When latestOnly is set, only the
// newest stack entry is exported.
func NewExportStack(
	git domain.Git,
	forge domain.Forge,
	config domain.ConfigSource,
	lister *ListStack,
	reconciler *ReconcilePulls,
	codec domain.Codec,
	latestOnly bool,
	logger *slog.Logger,
	out io.Writer,
) *ExportStack {
	return &ExportStack{
		git:        git,
		forge:      forge,
		config:     config,
		lister:     lister,
		reconciler: reconciler,
		codec:      codec,
		latestOnly: latestOnly,
		logger:     logger,
		out:        out,
	}
}

// Execute exports the stack, oldest entry first. An ineligible entry is
// reported and skipped without stopping the run; a failed external call
// aborts the remaining entries. There is no rollback across the steps of
// one entry: a throwaway local branch left behind by a failed push is
// removed by the best-effort delete of the next run.
func (uc *ExportStack) Execute(ctx context.Context, _ ExportStackInput) (*ExportStackOutput, error) {
	cfg, err := uc.config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.ValidateForge(); err != nil {
		return nil, err
	}
	if err := ensureCleanState(uc.git, cfg); err != nil {
		return nil, err
	}

	listed, err := uc.lister.Execute(ctx, ListStackInput{})
	if err != nil {
		return nil, err
	}
	reconciled, err := uc.reconciler.Execute(ctx, ReconcilePullsInput{Entries: listed.Entries})
	if err != nil {
		return nil, err
	}

	entries := reconciled.Entries
	if uc.latestOnly && len(entries) > 0 {
		entries = entries[len(entries)-1:]
	}

	out := &ExportStackOutput{}
	for _, entry := range entries {
		if !entry.HasBranch() {
			fmt.Fprintf(uc.out, "%s: %q\n\tskipping, commit has no review branch\n", entry.Commit, entry.Subject)
			out.Skipped++
			continue
		}
		if uc.codec.IsDraft(entry.Subject) {
			fmt.Fprintf(uc.out, "%s: %q\n\tskipping, commit is work in progress\n", entry.Commit, entry.Subject)
			out.Skipped++
			continue
		}

		fmt.Fprintf(uc.out, "%s: %q\n\texporting...\n", entry.Commit, entry.Subject)
		created, err := uc.exportEntry(ctx, cfg, reconciled.Repo, entry)
		if err != nil {
			return nil, err
		}
		out.Exported++
		if created {
			out.Created++
		}
	}
	return out, nil
}

// exportEntry performs the branch-rewrite sequence for one entry. The step
// ordering is load-bearing: the branch must exist before the push, the
// checkout back to the working branch must happen before the branch is
// deleted, and git refuses to delete the checked-out branch.
func (uc *ExportStack) exportEntry(ctx context.Context, cfg *domain.Config, repo domain.RepoRef, entry *domain.Entry) (created bool, err error) {
	// A stale local branch from an earlier failed run may exist.
	// Best effort: the branch usually does not exist.
	_ = uc.git.DeleteBranch(entry.Branch)

	if err := uc.git.CheckoutNew(entry.Branch, entry.Commit); err != nil {
		return false, err
	}
	if err := uc.git.Push(cfg.Remote, entry.Branch); err != nil {
		return false, err
	}
	if err := uc.git.Checkout(cfg.WorkBranch); err != nil {
		return false, err
	}
	if err := uc.git.DeleteBranch(entry.Branch); err != nil {
		return false, err
	}
	uc.debug("exported review branch", "commit", entry.Commit, "branch", entry.Branch)

	if entry.PullRequest != "" {
		return false, nil
	}
	fmt.Fprintf(uc.out, "\tcreating pull request...\n")
	spec := domain.PullSpec{
		Title: entry.Subject,
		Body:  pullBody(entry.Ticket),
		Head:  entry.Branch,
		Base:  cfg.MainBranch,
	}
	pull, err := uc.forge.CreatePull(ctx, cfg.Credentials(), repo, spec)
	if err != nil {
		return false, fmt.Errorf("create pull request for %s: %w", entry.Branch, err)
	}
	uc.debug("created pull request", "branch", entry.Branch, "url", pull.URL)
	return true, nil
}

// pullBody builds the pull request body, referencing the ticket if the
// commit carries one.
func pullBody(ticket string) string {
	if ticket == "" {
		return ""
	}
	return "Closes #" + ticket
}

func (uc *ExportStack) debug(msg string, args ...any) {
	if uc.logger != nil {
		uc.logger.Debug(msg, args...)
	}
}
