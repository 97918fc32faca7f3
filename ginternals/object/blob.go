package object

import "github.com/minigit/minigit/ginternals"

// Blob is the content of a single file, stored verbatim with no
// interpretation of its bytes.
type Blob struct {
	obj *Object
}

// NewBlob wraps raw file content into a Blob, ready to be persisted
func NewBlob(content []byte) *Blob {
	return &Blob{obj: New(TypeBlob, content)}
}

// NewBlobFromObject casts an already-typed Object into a Blob
func NewBlobFromObject(o *Object) *Blob {
	return &Blob{obj: o}
}

// ID returns the blob's Oid
func (b *Blob) ID() ginternals.Oid {
	return b.obj.ID()
}

// Bytes returns the blob's raw content
func (b *Blob) Bytes() []byte {
	return b.obj.Bytes()
}

// Size returns the size, in bytes, of the blob's content
func (b *Blob) Size() int {
	return b.obj.Size()
}

// ToObject returns the underlying Object
func (b *Blob) ToObject() *Object {
	return b.obj
}
