package domain

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// CommitDraft is one stacked commit to create from a drafts file.
type CommitDraft struct {
	Ticket  string `yaml:"ticket"`
	Message string `yaml:"message"`
}

// draftsFile is the on-disk shape of a drafts file:
//
//	commits:
//	  - ticket: T-1
//	    message: fix the frobnicator
//	  - ticket: T-2
//	    message: add tests
type draftsFile struct {
	Commits []CommitDraft `yaml:"commits"`
}

// ParseCommitDrafts parses a YAML drafts file into commit drafts, in file
// order (oldest stack entry first).
func ParseCommitDrafts(content []byte) ([]CommitDraft, error) {
	var file draftsFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("parse drafts file: %w", err)
	}
	if len(file.Commits) == 0 {
		return nil, ErrNoDrafts
	}
	for i, d := range file.Commits {
		if d.Ticket == "" {
			return nil, fmt.Errorf("commit %d: %w", i+1, ErrEmptyTicket)
		}
		if d.Message == "" {
			return nil, fmt.Errorf("commit %d: %w", i+1, ErrEmptyMessage)
		}
	}
	return file.Commits, nil
}
