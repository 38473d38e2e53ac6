// Package domain contains core business entities and interfaces.
package domain

// Default values for optional configuration keys.
const (
	DefaultMainBranch = "main"
	DefaultRemote     = "origin"
)

// ConfigSection is the section of the local repository configuration that
// holds the tool's keys.
const ConfigSection = "review"

// Config is loaded once per invocation from the local repository
// configuration. All mutating commands abort before any side effect if a
// required field is empty.
// Fields are ordered to minimize memory padding.
type Config struct {
	WorkBranch string // review.branch (required)
	MainBranch string // review.main (defaults to "main")
	Remote     string // review.origin (defaults to "origin")
	User       string // review.user (required for platform calls)
	APIToken   string // review.api-token (required for platform calls)
}

// Validate checks the fields every command needs.
func (c *Config) Validate() error {
	if c.WorkBranch == "" {
		return ErrNoWorkBranch
	}
	return nil
}

// ValidateForge checks the fields required for hosting-platform calls.
func (c *Config) ValidateForge() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.User == "" {
		return ErrNoUser
	}
	if c.APIToken == "" {
		return ErrNoAPIToken
	}
	return nil
}

// Credentials returns the basic-auth credentials for the hosting platform.
func (c *Config) Credentials() Credentials {
	return Credentials{User: c.User, Token: c.APIToken}
}
