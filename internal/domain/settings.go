package domain

// Default tool settings.
const (
	DefaultTrailerKey = "PR_BRANCH"
	DefaultDraftTag   = "wip"
	DefaultTagLength  = 8
	DefaultAPIBaseURL = "https://api.github.com"
)

// Settings are optional tool-level settings loaded from
// .git/review/config.toml. Every field has a working default so the file
// does not need to exist.
type Settings struct {
	TrailerKey string         `toml:"trailer_key"` // Commit message trailer key
	DraftTag   string         `toml:"draft_tag"`   // Subject prefix marking a commit as not exportable
	TagLength  int            `toml:"tag_length"`  // Length of the random branch tag
	APIBaseURL string         `toml:"api_url"`     // Hosting platform API base URL
	Export     ExportSettings `toml:"export"`      // [export] settings
	Log        LogSettings    `toml:"log"`         // [log] settings
}

// ExportSettings holds export behavior from the [export] section.
type ExportSettings struct {
	LatestOnly bool `toml:"latest_only"` // Export only the newest stack entry
}

// LogSettings holds logging settings from the [log] section.
type LogSettings struct {
	Level string `toml:"level"` // Log level: debug, info, warn, error
}

// NewDefaultSettings returns the settings used when no file is present.
func NewDefaultSettings() *Settings {
	return &Settings{
		TrailerKey: DefaultTrailerKey,
		DraftTag:   DefaultDraftTag,
		TagLength:  DefaultTagLength,
		APIBaseURL: DefaultAPIBaseURL,
		Log:        LogSettings{Level: "info"},
	}
}

// Codec returns the metadata codec configured by these settings.
func (s *Settings) Codec() Codec {
	return Codec{
		TrailerKey: s.TrailerKey,
		DraftTag:   s.DraftTag,
		TagLength:  s.TagLength,
	}
}
