package pathutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/minigit/minigit/internal/pathutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkingTreeFromPath(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o750))
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	found, err := pathutil.WorkingTreeFromPath(nested)
	require.NoError(t, err)
	assert.Equal(t, root, found)
}

func TestWorkingTreeFromPathNotFound(t *testing.T) {
	root := t.TempDir()
	_, err := pathutil.WorkingTreeFromPath(root)
	assert.ErrorIs(t, err, pathutil.ErrNoRepo)
}
