package fsbackend_test

import (
	"path/filepath"
	"testing"

	"github.com/minigit/minigit/backend/fsbackend"
	"github.com/minigit/minigit/internal/gitpath"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBackend(t *testing.T) (*fsbackend.Backend, string) {
	t.Helper()
	fs := afero.NewMemMapFs()
	root := filepath.Join("/repo", gitpath.DotGitPath)
	return fsbackend.New(fs, root), root
}

func TestInitCreatesLayout(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	root := filepath.Join("/repo", gitpath.DotGitPath)
	b := fsbackend.New(fs, root)
	require.NoError(t, b.Init())

	for _, p := range []string{
		gitpath.ObjectsPath,
		gitpath.RefsHeadsPath,
		gitpath.RefsTagsPath,
		gitpath.DescriptionPath,
		gitpath.ConfigPath,
	} {
		exists, err := afero.Exists(fs, filepath.Join(root, p))
		require.NoError(t, err)
		assert.True(t, exists, "expected %s to exist", p)
	}
}

func TestInitIsIdempotent(t *testing.T) {
	t.Parallel()

	b, _ := newTestBackend(t)
	require.NoError(t, b.Init())
	require.NoError(t, b.Init())
}
