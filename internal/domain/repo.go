package domain

import (
	"fmt"
	"regexp"
)

// RepoRef identifies a repository on the hosting platform.
type RepoRef struct {
	Owner string
	Name  string
}

// Fetch URL shapes we understand. Anything else is a loud failure: the
// correlation label depends on the owner being right.
var (
	sshURLPattern   = regexp.MustCompile(`^(?:ssh://)?git@[^:/]+[:/]([^/]+)/(.+?)(?:\.git)?$`)
	httpsURLPattern = regexp.MustCompile(`^https?://[^/]+/([^/]+)/(.+?)(?:\.git)?/?$`)
)

// ParseRepoRef extracts the owner/repository pair from a remote fetch URL.
func ParseRepoRef(fetchURL string) (RepoRef, error) {
	for _, p := range []*regexp.Regexp{sshURLPattern, httpsURLPattern} {
		if m := p.FindStringSubmatch(fetchURL); m != nil {
			return RepoRef{Owner: m[1], Name: m[2]}, nil
		}
	}
	return RepoRef{}, fmt.Errorf("%w: %q", ErrBadRemoteURL, fetchURL)
}

// Path returns "owner/name" as used in API paths.
func (r RepoRef) Path() string {
	return r.Owner + "/" + r.Name
}

// Label returns the "owner:branch" label the platform uses for a pull
// request head.
func (r RepoRef) Label(branch string) string {
	return r.Owner + ":" + branch
}
