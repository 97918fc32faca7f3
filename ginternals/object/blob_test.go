package object_test

import (
	"testing"

	"github.com/minigit/minigit/ginternals/object"
	"github.com/stretchr/testify/assert"
)

func TestNewBlob(t *testing.T) {
	t.Parallel()

	b := object.NewBlob([]byte("hello"))
	assert.Equal(t, "b6fc4c620b67d95f953a5c1c1230aaab5db5a1b0", b.ID().String())
	assert.Equal(t, []byte("hello"), b.Bytes())
	assert.Equal(t, 5, b.Size())
}

func TestBlobFromObject(t *testing.T) {
	t.Parallel()

	o := object.New(object.TypeBlob, []byte("content"))
	b := object.NewBlobFromObject(o)
	assert.Equal(t, o.ID(), b.ID())
	assert.Equal(t, []byte("content"), b.Bytes())
}
