package minigit_test

import (
	"testing"

	minigit "github.com/minigit/minigit"
	"github.com/minigit/minigit/ginternals"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitRepositoryLayout(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	repo, err := minigit.InitRepository(fs, "/repo")
	require.NoError(t, err)
	require.NotNil(t, repo)

	head, err := afero.ReadFile(fs, "/repo/.git/HEAD")
	require.NoError(t, err)
	assert.Equal(t, "ref: refs/heads/master\n", string(head))

	for _, dir := range []string{"/repo/.git/objects", "/repo/.git/refs/heads", "/repo/.git/refs/tags", "/repo/.git/branches"} {
		ok, err := afero.DirExists(fs, dir)
		require.NoError(t, err)
		assert.True(t, ok, dir)
	}

	branch, err := repo.CurrentBranch()
	require.NoError(t, err)
	assert.Equal(t, "master", branch)
}

func TestInitRepositoryRejectsNonEmptyDir(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/repo/already-here.txt", []byte("x"), 0o644))

	_, err := minigit.InitRepository(fs, "/repo")
	assert.ErrorIs(t, err, minigit.ErrAlreadyInitialized)
}

func TestOpenRepositoryNotFound(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	_, err := minigit.OpenRepository(fs, "/nowhere")
	assert.ErrorIs(t, err, minigit.ErrNotARepository)
}

// TestCommitAndCheckoutLifecycle exercises S4/S5/S6 end to end: commit on
// master, branch off, commit again, and check each state is recovered by
// checkout.
func TestCommitAndCheckoutLifecycle(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	repo, err := minigit.InitRepository(fs, "/repo")
	require.NoError(t, err)

	require.NoError(t, afero.WriteFile(fs, "/repo/f.txt", []byte("x"), 0o644))
	firstHash, err := repo.Commit("initial")
	require.NoError(t, err)
	assert.False(t, firstHash.IsZero())

	headHex, err := repo.ResolveName(ginternals.Head)
	require.NoError(t, err)
	assert.Equal(t, firstHash.String(), headHex)

	masterTip, err := afero.ReadFile(fs, "/repo/.git/refs/heads/master")
	require.NoError(t, err)
	assert.Equal(t, firstHash.String()+"\n", string(masterTip))

	require.NoError(t, afero.WriteFile(fs, "/repo/f.txt", []byte("y"), 0o644))
	secondHash, err := repo.Commit("second")
	require.NoError(t, err)
	assert.NotEqual(t, firstHash, secondHash)

	require.NoError(t, repo.Checkout(firstHash.String()))
	content, err := afero.ReadFile(fs, "/repo/f.txt")
	require.NoError(t, err)
	assert.Equal(t, "x", string(content))

	gotHash, err := repo.ResolveName(ginternals.Head)
	require.NoError(t, err)
	assert.Equal(t, firstHash.String(), gotHash)

	require.NoError(t, repo.Checkout(secondHash.String()))
	content, err = afero.ReadFile(fs, "/repo/f.txt")
	require.NoError(t, err)
	assert.Equal(t, "y", string(content))

	// S6: branch isolation.
	require.NoError(t, repo.Checkout(secondHash.String()))
	require.NoError(t, repo.CreateBranch("test", secondHash))
	require.NoError(t, repo.Checkout("test"))

	require.NoError(t, afero.WriteFile(fs, "/repo/f.txt", []byte("on-test"), 0o644))
	_, err = repo.Commit("branch commit")
	require.NoError(t, err)

	// master's tip is still the second commit, not the test branch's.
	require.NoError(t, repo.Checkout("master"))
	content, err = afero.ReadFile(fs, "/repo/f.txt")
	require.NoError(t, err)
	assert.Equal(t, "y", string(content))

	branch, err := repo.CurrentBranch()
	require.NoError(t, err)
	assert.Equal(t, "master", branch)
}

func TestCommitNothingToCommit(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	repo, err := minigit.InitRepository(fs, "/repo")
	require.NoError(t, err)

	id, err := repo.Commit("empty")
	require.NoError(t, err)
	assert.True(t, id.IsZero())
}
