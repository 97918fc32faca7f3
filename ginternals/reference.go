package ginternals

import (
	"bytes"
	"errors"
	"strings"

	"golang.org/x/xerrors"
)

var (
	// ErrRefNotFound is returned when trying to act on a reference that
	// doesn't exist
	ErrRefNotFound = errors.New("reference not found")
	// ErrRefExists is returned when trying to create a reference that
	// already exists
	ErrRefExists = errors.New("reference already exists")
	// ErrRefNameInvalid is returned when the name of a reference is
	// not valid
	ErrRefNameInvalid = errors.New("reference name is not valid")
	// ErrRefInvalid is returned when a reference's content couldn't be
	// parsed, or a resolution chain doesn't terminate
	ErrRefInvalid = errors.New("reference is not valid")
	// ErrUnknownRefType is returned when a Reference carries a type other
	// than OidReference or SymbolicReference
	ErrUnknownRefType = errors.New("unknown reference type")
)

// maxRefDepth bounds the length of an indirection chain a resolution will
// follow before giving up; this is the loop-termination guard spec
// invariant I6 asks callers to provide.
const maxRefDepth = 10

// ReferenceType is the kind of target a Reference points at
type ReferenceType int8

const (
	// OidReference targets an object directly, by its Oid
	OidReference ReferenceType = 1
	// SymbolicReference targets another reference, by name
	SymbolicReference ReferenceType = 2
)

// Reference represents a git reference: either a direct pointer to an
// Oid, or a symbolic pointer to another reference's name.
// https://git-scm.com/book/en/v2/Git-Internals-Git-References
type Reference struct {
	name   string
	target string
	id     Oid
	typ    ReferenceType
}

// RefContent returns the raw, unparsed content of the reference with the
// given name. It lets ResolveReference walk a chain of references
// without depending on a specific storage backend.
type RefContent func(name string) ([]byte, error)

// NewReference returns a new Reference that targets an object directly
func NewReference(name string, target Oid) *Reference {
	return &Reference{typ: OidReference, name: name, id: target}
}

// NewSymbolicReference returns a new Reference that targets another
// reference by name (ex. HEAD targeting refs/heads/master)
func NewSymbolicReference(name, target string) *Reference {
	return &Reference{typ: SymbolicReference, name: name, target: target}
}

// Name returns the full name of the reference, ex. "refs/heads/master"
func (ref *Reference) Name() string {
	return ref.name
}

// Target returns the Oid targeted by the reference. For a symbolic
// reference this is the Oid at the end of the resolution chain.
func (ref *Reference) Target() Oid {
	return ref.id
}

// Type returns whether the reference is direct or symbolic
func (ref *Reference) Type() ReferenceType {
	return ref.typ
}

// SymbolicTarget returns the name of the reference this one points at.
// Only meaningful when Type() == SymbolicReference.
func (ref *Reference) SymbolicTarget() string {
	return ref.target
}

// ResolveReference dereferences name, following any chain of symbolic
// references, until it reaches a direct Oid reference.
func ResolveReference(name string, finder RefContent) (*Reference, error) {
	return resolveRef(name, finder, 0)
}

// ResolveReferenceShallow reads the raw content of name without
// following a symbolic target. It's how callers inspect whether HEAD is
// detached without paying for the full resolution.
func ResolveReferenceShallow(name string, finder RefContent) (*Reference, error) {
	if !IsRefNameValid(name) {
		return nil, xerrors.Errorf(`ref %q: %w`, name, ErrRefNameInvalid)
	}

	data, err := finder(name)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimRight(data, "\n")

	if bytes.HasPrefix(data, []byte("ref: ")) {
		return &Reference{
			typ:    SymbolicReference,
			name:   name,
			target: string(data[len("ref: "):]),
		}, nil
	}

	oid, err := NewOidFromChars(data)
	if err != nil {
		return nil, xerrors.Errorf("ref %q has malformed content: %w", name, ErrRefInvalid)
	}
	return &Reference{typ: OidReference, name: name, id: oid}, nil
}

func resolveRef(name string, finder RefContent, depth int) (*Reference, error) {
	if depth > maxRefDepth {
		return nil, xerrors.Errorf("ref %q: %w", name, ErrRefInvalid)
	}

	if !IsRefNameValid(name) {
		return nil, xerrors.Errorf("ref %q: %w", name, ErrRefNameInvalid)
	}

	data, err := finder(name)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimRight(data, "\n")

	if bytes.HasPrefix(data, []byte("ref: ")) {
		target := string(data[len("ref: "):])
		resolved, err := resolveRef(target, finder, depth+1)
		if err != nil {
			return nil, err
		}
		return &Reference{
			typ:    SymbolicReference,
			name:   name,
			id:     resolved.id,
			target: target,
		}, nil
	}

	oid, err := NewOidFromChars(data)
	if err != nil {
		return nil, xerrors.Errorf("ref %q has malformed content: %w", name, ErrRefInvalid)
	}
	return &Reference{typ: OidReference, name: name, id: oid}, nil
}

// IsRefNameValid returns whether name is a valid reference name.
// https://git-scm.com/docs/git-check-ref-format
func IsRefNameValid(name string) bool {
	if name == "" || name == "/" || name[len(name)-1] == '/' || name[len(name)-1] == '.' {
		return false
	}

	for i, c := range name {
		if c < 32 || c == 127 {
			return false
		}
		switch c {
		case '*', '?', '!', '^', ' ', '[', '\\', ':':
			return false
		}
		if i < len(name)-1 && (name[i:i+2] == "@{" || name[i:i+2] == "..") {
			return false
		}
	}

	for _, s := range strings.Split(name, "/") {
		if s == "" || s[0] == '.' || s[len(s)-1] == '.' || strings.HasSuffix(s, ".lock") {
			return false
		}
	}

	return true
}
