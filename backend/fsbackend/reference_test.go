package fsbackend_test

import (
	"testing"

	"github.com/minigit/minigit/backend"
	"github.com/minigit/minigit/ginternals"
	"github.com/minigit/minigit/ginternals/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAndReadReference(t *testing.T) {
	t.Parallel()

	b, _ := newTestBackend(t)
	require.NoError(t, b.Init())

	commit := object.New(object.TypeCommit, []byte("tree 4b825dc642cb6eb9a060e54bf8d69288fbee4904\n"))
	ref := ginternals.NewReference(ginternals.LocalBranchFullName("master"), commit.ID())
	require.NoError(t, b.WriteReference(ref))

	got, err := b.Reference(ref.Name())
	require.NoError(t, err)
	assert.Equal(t, ref.Target(), got.Target())
}

func TestWriteReferenceSafeFailsOnExisting(t *testing.T) {
	t.Parallel()

	b, _ := newTestBackend(t)
	require.NoError(t, b.Init())

	ref := ginternals.NewReference(ginternals.LocalBranchFullName("master"), ginternals.NullOid)
	require.NoError(t, b.WriteReferenceSafe(ref))

	err := b.WriteReferenceSafe(ref)
	assert.ErrorIs(t, err, ginternals.ErrRefExists)
}

func TestSymbolicReferenceResolution(t *testing.T) {
	t.Parallel()

	b, _ := newTestBackend(t)
	require.NoError(t, b.Init())

	target := ginternals.NewReference(ginternals.LocalBranchFullName("master"), ginternals.NullOid)
	require.NoError(t, b.WriteReference(target))

	head := ginternals.NewSymbolicReference(ginternals.Head, target.Name())
	require.NoError(t, b.WriteReference(head))

	resolved, err := b.Reference(ginternals.Head)
	require.NoError(t, err)
	assert.Equal(t, ginternals.SymbolicReference, resolved.Type())
	assert.Equal(t, target.Target(), resolved.Target())
}

func TestReferenceNotFound(t *testing.T) {
	t.Parallel()

	b, _ := newTestBackend(t)
	require.NoError(t, b.Init())

	_, err := b.Reference(ginternals.LocalBranchFullName("nope"))
	assert.ErrorIs(t, err, ginternals.ErrRefNotFound)
}

func TestWalkReferences(t *testing.T) {
	t.Parallel()

	b, _ := newTestBackend(t)
	require.NoError(t, b.Init())

	ref1 := ginternals.NewReference(ginternals.LocalBranchFullName("master"), ginternals.NullOid)
	ref2 := ginternals.NewReference(ginternals.LocalTagFullName("v1"), ginternals.NullOid)
	require.NoError(t, b.WriteReference(ref1))
	require.NoError(t, b.WriteReference(ref2))

	var names []string
	err := b.WalkReferences(func(ref *ginternals.Reference) error {
		names = append(names, ref.Name())
		return nil
	})
	require.NoError(t, err)
	assert.Contains(t, names, ref1.Name())
	assert.Contains(t, names, ref2.Name())
}

func TestWalkReferencesStop(t *testing.T) {
	t.Parallel()

	b, _ := newTestBackend(t)
	require.NoError(t, b.Init())

	ref1 := ginternals.NewReference(ginternals.LocalBranchFullName("master"), ginternals.NullOid)
	ref2 := ginternals.NewReference(ginternals.LocalTagFullName("v1"), ginternals.NullOid)
	require.NoError(t, b.WriteReference(ref1))
	require.NoError(t, b.WriteReference(ref2))

	count := 0
	err := b.WalkReferences(func(ref *ginternals.Reference) error {
		count++
		return backend.WalkStop
	})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
