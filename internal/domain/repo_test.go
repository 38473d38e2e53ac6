package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRepoRef(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    RepoRef
		wantErr bool
	}{
		{
			name: "ssh scp-like",
			url:  "git@github.com:acme/widgets.git",
			want: RepoRef{Owner: "acme", Name: "widgets"},
		},
		{
			name: "ssh scp-like without .git",
			url:  "git@github.com:acme/widgets",
			want: RepoRef{Owner: "acme", Name: "widgets"},
		},
		{
			name: "ssh url scheme",
			url:  "ssh://git@github.com/acme/widgets.git",
			want: RepoRef{Owner: "acme", Name: "widgets"},
		},
		{
			name: "https",
			url:  "https://github.com/acme/widgets.git",
			want: RepoRef{Owner: "acme", Name: "widgets"},
		},
		{
			name: "https without .git",
			url:  "https://github.com/acme/widgets",
			want: RepoRef{Owner: "acme", Name: "widgets"},
		},
		{
			name:    "unparsable",
			url:     "/local/path/to/repo",
			wantErr: true,
		},
		{
			name:    "empty",
			url:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRepoRef(tt.url)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrBadRemoteURL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRepoRef_PathAndLabel(t *testing.T) {
	repo := RepoRef{Owner: "acme", Name: "widgets"}
	assert.Equal(t, "acme/widgets", repo.Path())
	assert.Equal(t, "acme:T-1-a1b2c3d4", repo.Label("T-1-a1b2c3d4"))
}
