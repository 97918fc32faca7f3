// Package object contains the git object model: blobs, trees, commits,
// and tags, sharing a uniform {type, size\0payload} frame.
package object

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/minigit/minigit/ginternals"
)

var (
	// ErrObjectUnknown is returned when an object header names something
	// other than blob/tree/commit/tag
	ErrObjectUnknown = errors.New("invalid object type")
	// ErrObjectInvalid is returned when an object contains unexpected
	// data, or the wrong object is handed to a typed accessor
	ErrObjectInvalid = errors.New("invalid object")
	// ErrTreeInvalid is returned when a tree payload can't be parsed
	ErrTreeInvalid = errors.New("invalid tree")
	// ErrCommitInvalid is returned when a commit payload can't be parsed
	ErrCommitInvalid = errors.New("invalid commit")
	// ErrTagInvalid is returned when a tag payload can't be parsed
	ErrTagInvalid = errors.New("invalid tag")
)

// Type is the kind of a git object
type Type int8

// The object kinds this core supports
const (
	TypeCommit Type = 1
	TypeTree   Type = 2
	TypeBlob   Type = 3
	TypeTag    Type = 4
)

// String returns the lowercase ASCII token used in an object's header
func (t Type) String() string {
	switch t {
	case TypeCommit:
		return "commit"
	case TypeTree:
		return "tree"
	case TypeBlob:
		return "blob"
	case TypeTag:
		return "tag"
	default:
		panic(fmt.Sprintf("unknown object type %d", t))
	}
}

// IsValid returns whether t is one of the supported object kinds
func (t Type) IsValid() bool {
	switch t {
	case TypeCommit, TypeTree, TypeBlob, TypeTag:
		return true
	default:
		return false
	}
}

// NewTypeFromString parses the header token of an object into a Type
func NewTypeFromString(t string) (Type, error) {
	switch t {
	case "commit":
		return TypeCommit, nil
	case "tree":
		return TypeTree, nil
	case "blob":
		return TypeBlob, nil
	case "tag":
		return TypeTag, nil
	default:
		return 0, ErrObjectUnknown
	}
}

// Object is a git object: a uniform frame around a typed payload.
// https://git-scm.com/book/en/v2/Git-Internals-Git-Objects
type Object struct {
	id      ginternals.Oid
	typ     Type
	content []byte

	idOnce sync.Once
}

// New creates an in-memory object of the given type. The object isn't
// persisted; use a Backend to write it.
func New(typ Type, content []byte) *Object {
	o := &Object{typ: typ, content: content}
	o.id = ginternals.NewOidFromContent(o.frame())
	return o
}

// NewWithID wraps already-framed content read back from storage, whose
// Oid is already known, avoiding recomputing the hash.
func NewWithID(id ginternals.Oid, typ Type, content []byte) *Object {
	o := &Object{id: id, typ: typ, content: content}
	o.idOnce.Do(func() {})
	return o
}

// ID returns the Oid of the object: the hash of its framed bytes
func (o *Object) ID() ginternals.Oid {
	o.idOnce.Do(func() {
		if o.id.IsZero() {
			o.id = ginternals.NewOidFromContent(o.frame())
		}
	})
	return o.id
}

// Type returns the object's kind
func (o *Object) Type() Type {
	return o.typ
}

// Size returns the size, in bytes, of the object's payload
func (o *Object) Size() int {
	return len(o.content)
}

// Bytes returns the object's raw payload (not the frame)
func (o *Object) Bytes() []byte {
	return o.content
}

// frame returns "<type> <size>\0<payload>", the bytes that get hashed
// and stored.
func (o *Object) frame() []byte {
	w := new(bytes.Buffer)
	w.WriteString(o.typ.String())
	w.WriteByte(' ')
	w.WriteString(strconv.Itoa(len(o.content)))
	w.WriteByte(0)
	w.Write(o.content)
	return w.Bytes()
}

// Frame returns the uncompressed "<type> <size>\0<payload>" bytes that
// are deflated and written to the odb.
func (o *Object) Frame() []byte {
	return o.frame()
}

// ParseFrame splits a frame read back from the odb into its type and
// payload, validating that the declared size matches the actual payload.
func ParseFrame(id ginternals.Oid, frame []byte) (*Object, error) {
	sp := bytes.IndexByte(frame, ' ')
	if sp < 0 {
		return nil, fmt.Errorf("could not find object type: %w", ErrObjectInvalid)
	}
	typ, err := NewTypeFromString(string(frame[:sp]))
	if err != nil {
		return nil, fmt.Errorf("unsupported type %q: %w", frame[:sp], err)
	}

	nul := bytes.IndexByte(frame[sp+1:], 0)
	if nul < 0 {
		return nil, fmt.Errorf("could not find object size: %w", ErrObjectInvalid)
	}
	nul += sp + 1

	size, err := strconv.Atoi(string(frame[sp+1 : nul]))
	if err != nil {
		return nil, fmt.Errorf("invalid size %q: %w", frame[sp+1:nul], ErrObjectInvalid)
	}

	payload := frame[nul+1:]
	if len(payload) != size {
		return nil, fmt.Errorf("object declares size %d but has %d bytes: %w", size, len(payload), ErrObjectInvalid)
	}

	return NewWithID(id, typ, payload), nil
}

// AsBlob returns the object as a Blob
func (o *Object) AsBlob() *Blob {
	return NewBlobFromObject(o)
}

// AsTree parses the object's payload as a Tree
func (o *Object) AsTree() (*Tree, error) {
	return NewTreeFromObject(o)
}

// AsCommit parses the object's payload as a Commit
func (o *Object) AsCommit() (*Commit, error) {
	return NewCommitFromObject(o)
}

// AsTag parses the object's payload as a Tag
func (o *Object) AsTag() (*Tag, error) {
	return NewTagFromObject(o)
}
