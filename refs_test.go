package minigit_test

import (
	"testing"

	minigit "github.com/minigit/minigit"
	"github.com/minigit/minigit/ginternals"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBranchAndList(t *testing.T) {
	t.Parallel()

	repo, id := setupRepoWithOneCommit(t)

	require.NoError(t, repo.CreateBranch("feature", id))

	branches, err := repo.ListBranches()
	require.NoError(t, err)
	assert.Contains(t, branches, "master")
	assert.Contains(t, branches, "feature")
}

func TestCreateBranchTwiceFails(t *testing.T) {
	t.Parallel()

	repo, id := setupRepoWithOneCommit(t)

	require.NoError(t, repo.CreateBranch("feature", id))
	err := repo.CreateBranch("feature", id)
	assert.Error(t, err)
}

func TestCreateLightweightAndAnnotatedTags(t *testing.T) {
	t.Parallel()

	repo, id := setupRepoWithOneCommit(t)

	require.NoError(t, repo.CreateLightweightTag("v1", id))

	tagID, err := repo.CreateAnnotatedTag("v2", id, "release v2")
	require.NoError(t, err)
	assert.False(t, tagID.IsZero())

	tags, err := repo.ListTags()
	require.NoError(t, err)
	assert.Contains(t, tags, "v1")
	assert.Contains(t, tags, "v2")

	resolvedLightweight, err := repo.Resolve("v1")
	require.NoError(t, err)
	assert.Equal(t, id, resolvedLightweight)

	// An annotated tag resolves, via its object, to the tag itself, not
	// the commit it points at.
	resolvedAnnotated, err := repo.Resolve("v2")
	require.NoError(t, err)
	assert.Equal(t, tagID, resolvedAnnotated)
}

func TestWalkRefsVisitsHeadAndBranches(t *testing.T) {
	t.Parallel()

	repo, id := setupRepoWithOneCommit(t)
	require.NoError(t, repo.CreateBranch("feature", id))

	var names []string
	err := repo.WalkRefs(func(ref *ginternals.Reference) error {
		names = append(names, ref.Name())
		return nil
	})
	require.NoError(t, err)
	assert.Contains(t, names, ginternals.Head)
	assert.Contains(t, names, "refs/heads/master")
	assert.Contains(t, names, "refs/heads/feature")
}

func TestResolveAmbiguousBranchAndTagSameName(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	repo, err := minigit.InitRepository(fs, "/repo")
	require.NoError(t, err)

	require.NoError(t, afero.WriteFile(fs, "/repo/f.txt", []byte("x"), 0o644))
	id, err := repo.Commit("initial")
	require.NoError(t, err)

	require.NoError(t, repo.CreateBranch("dup", id))
	require.NoError(t, repo.CreateLightweightTag("dup", id))

	_, err = repo.Resolve("dup")
	assert.ErrorIs(t, err, minigit.ErrNameAmbiguous)
}
