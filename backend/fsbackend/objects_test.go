package fsbackend_test

import (
	"testing"

	"github.com/minigit/minigit/ginternals"
	"github.com/minigit/minigit/ginternals/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAndReadObject(t *testing.T) {
	t.Parallel()

	b, _ := newTestBackend(t)
	require.NoError(t, b.Init())

	o := object.New(object.TypeBlob, []byte("hello"))
	id, err := b.WriteObject(o)
	require.NoError(t, err)
	assert.Equal(t, o.ID(), id)

	got, err := b.Object(id)
	require.NoError(t, err)
	assert.Equal(t, o.Type(), got.Type())
	assert.Equal(t, o.Bytes(), got.Bytes())
}

func TestWriteObjectIsIdempotent(t *testing.T) {
	t.Parallel()

	b, _ := newTestBackend(t)
	require.NoError(t, b.Init())

	o := object.New(object.TypeBlob, []byte("content"))
	id1, err := b.WriteObject(o)
	require.NoError(t, err)
	id2, err := b.WriteObject(o)
	require.NoError(t, err)
	assert.Equal(t, id1, id2)
}

func TestHasObject(t *testing.T) {
	t.Parallel()

	b, _ := newTestBackend(t)
	require.NoError(t, b.Init())

	o := object.New(object.TypeBlob, []byte("content"))
	has, err := b.HasObject(o.ID())
	require.NoError(t, err)
	assert.False(t, has)

	_, err = b.WriteObject(o)
	require.NoError(t, err)

	has, err = b.HasObject(o.ID())
	require.NoError(t, err)
	assert.True(t, has)
}

func TestObjectNotFound(t *testing.T) {
	t.Parallel()

	b, _ := newTestBackend(t)
	require.NoError(t, b.Init())

	_, err := b.Object(ginternals.NullOid)
	assert.ErrorIs(t, err, ginternals.ErrObjectNotFound)
}

func TestWalkObjectIDs(t *testing.T) {
	t.Parallel()

	b, _ := newTestBackend(t)
	require.NoError(t, b.Init())

	blob := object.New(object.TypeBlob, []byte("a"))
	tree := object.New(object.TypeTree, []byte("b"))
	id1, err := b.WriteObject(blob)
	require.NoError(t, err)
	id2, err := b.WriteObject(tree)
	require.NoError(t, err)

	seen := map[ginternals.Oid]bool{}
	err = b.WalkObjectIDs(func(oid ginternals.Oid) error {
		seen[oid] = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, seen[id1])
	assert.True(t, seen[id2])
}
