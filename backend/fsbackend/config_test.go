package fsbackend_test

import (
	"path/filepath"
	"testing"

	"github.com/minigit/minigit/backend/fsbackend"
	"github.com/minigit/minigit/gitconfig"
	"github.com/minigit/minigit/internal/gitpath"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWritesDefaultConfig(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	root := filepath.Join("/repo", gitpath.DotGitPath)
	b := fsbackend.New(fs, root)
	require.NoError(t, b.Init())

	data, err := afero.ReadFile(fs, filepath.Join(root, gitpath.ConfigPath))
	require.NoError(t, err)

	cfg, err := gitconfig.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.RepositoryFormatVersion)
	assert.False(t, cfg.FileMode)
	assert.False(t, cfg.Bare)
}
