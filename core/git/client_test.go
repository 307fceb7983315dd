package git

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCLIClient_GitNotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	c := NewCLIClient()

	err := c.Clone(context.Background(), "https://github.com/user/repo.git", "main", "repo-clone")
	assert.ErrorIs(t, err, ErrGitNotFound)
}

func TestCloneArgs(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		branch string
		dir    string
		want   []string
	}{
		{
			name:   "DefaultBranch",
			url:    "https://github.com/user/repo.git",
			branch: "main",
			dir:    "repo-clone",
			want:   []string{"clone", "-b", "main", "https://github.com/user/repo.git", "repo-clone"},
		},
		{
			name:   "FeatureBranch",
			url:    "git@github.com:user/repo.git",
			branch: "dev",
			dir:    "/tmp/work",
			want:   []string{"clone", "-b", "dev", "git@github.com:user/repo.git", "/tmp/work"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cloneArgs(tt.url, tt.branch, tt.dir))
		})
	}
}
