package minigit_test

import (
	"testing"

	minigit "github.com/minigit/minigit"
	"github.com/minigit/minigit/ginternals"
	"github.com/minigit/minigit/ginternals/object"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepoWithOneCommit(t *testing.T) (*minigit.Repository, ginternals.Oid) {
	t.Helper()
	fs := afero.NewMemMapFs()
	repo, err := minigit.InitRepository(fs, "/repo")
	require.NoError(t, err)
	require.NoError(t, afero.WriteFile(fs, "/repo/f.txt", []byte("x"), 0o644))
	id, err := repo.Commit("initial")
	require.NoError(t, err)
	return repo, id
}

func TestResolveHEADAndFullHex(t *testing.T) {
	t.Parallel()

	repo, id := setupRepoWithOneCommit(t)

	got, err := repo.Resolve(ginternals.Head)
	require.NoError(t, err)
	assert.Equal(t, id, got)

	got, err = repo.Resolve(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestResolveAbbreviatedHex(t *testing.T) {
	t.Parallel()

	repo, id := setupRepoWithOneCommit(t)

	got, err := repo.Resolve(id.String()[:8])
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestResolveBranchName(t *testing.T) {
	t.Parallel()

	repo, id := setupRepoWithOneCommit(t)

	got, err := repo.Resolve("master")
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestResolveNotFound(t *testing.T) {
	t.Parallel()

	repo, _ := setupRepoWithOneCommit(t)

	_, err := repo.Resolve("nonexistent-branch")
	assert.ErrorIs(t, err, minigit.ErrNameNotFound)
}

func TestResolveEmptyName(t *testing.T) {
	t.Parallel()

	repo, _ := setupRepoWithOneCommit(t)

	_, err := repo.Resolve("")
	assert.ErrorIs(t, err, minigit.ErrNameNotFound)
}

func TestResolveToKindFollowsCommitToTree(t *testing.T) {
	t.Parallel()

	repo, id := setupRepoWithOneCommit(t)

	treeID, err := repo.ResolveToKind(id.String(), object.TypeTree)
	require.NoError(t, err)
	assert.NotEqual(t, id, treeID)

	o, err := repo.ListTree(treeID, false)
	require.NoError(t, err)
	require.Len(t, o, 1)
	assert.Equal(t, "f.txt", o[0].Path)
}

func TestResolveToKindWrongKind(t *testing.T) {
	t.Parallel()

	repo, id := setupRepoWithOneCommit(t)

	treeID, err := repo.ResolveToKind(id.String(), object.TypeTree)
	require.NoError(t, err)

	entries, err := repo.ListTree(treeID, false)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	_, err = repo.ResolveToKind(entries[0].ID.String(), object.TypeCommit)
	assert.ErrorIs(t, err, minigit.ErrWrongKind)
}
