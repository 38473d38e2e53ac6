package domain

import (
	"fmt"
	"math/rand"
	"strings"
)

// Codec encodes and decodes the review-branch identifier embedded as a
// trailer line in commit messages. The derived branch name is computed
// without any knowledge of remote state.
type Codec struct {
	TrailerKey string // e.g. "PR_BRANCH"
	DraftTag   string // e.g. "wip"
	TagLength  int    // Length of the random tag suffix
}

// Encode builds a commit message for a new stacked commit and returns it
// together with the derived review-branch name.
//
// The message consists of a draft-tag-prefixed subject line, a blank line,
// and the trailer line:
//
//	wip: TICKET: message
//
//	PR_BRANCH=TICKET-a1b2c3d4
func (c Codec) Encode(ticket, message, tag string) (body, branch string) {
	branch = ticket + "-" + tag
	body = fmt.Sprintf("%s: %s: %s\n\n%s=%s\n", c.DraftTag, ticket, message, c.TrailerKey, branch)
	return body, branch
}

// Decode scans a commit message for the trailer line and returns the
// embedded review-branch name, or "" if the commit carries none. Only an
// exact key prefix match at the start of a line counts; any other text in
// the message is ignored.
func (c Codec) Decode(message string) string {
	prefix := c.TrailerKey + "="
	for _, line := range strings.Split(message, "\n") {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimPrefix(line, prefix)
		}
	}
	return ""
}

// Ticket derives the ticket identifier from a review-branch name by
// stripping the fixed-length random tag suffix. Returns "" if the branch
// does not follow the derived shape.
func (c Codec) Ticket(branch string) string {
	// branch = <ticket>-<tag>, tag is TagLength lowercase alphanumerics
	cut := len(branch) - c.TagLength - 1
	if cut <= 0 || branch[cut] != '-' {
		return ""
	}
	for _, r := range branch[cut+1:] {
		if !strings.ContainsRune(tagAlphabet, r) {
			return ""
		}
	}
	return branch[:cut]
}

// IsDraft reports whether a commit subject is marked as work in progress.
// The check is case-insensitive.
func (c Codec) IsDraft(subject string) bool {
	return strings.HasPrefix(strings.ToLower(subject), strings.ToLower(c.DraftTag))
}

// TagGenerator produces the random suffix that makes derived branch names
// collision resistant.
type TagGenerator interface {
	// NewTag returns a fresh random tag.
	NewTag() string
}

// tagAlphabet is the tag value space: lowercase alphanumerics.
const tagAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// RandomTagGenerator implements TagGenerator with uniform draws from the
// tag alphabet.
type RandomTagGenerator struct {
	Length int
}

// NewTag returns a random lowercase-alphanumeric string of the configured
// fixed length.
func (g RandomTagGenerator) NewTag() string {
	n := g.Length
	if n <= 0 {
		n = DefaultTagLength
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = tagAlphabet[rand.Intn(len(tagAlphabet))]
	}
	return string(b)
}
