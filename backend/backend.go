// Package backend contains the interface used to store and retrieve
// objects and references, and implementations of it.
package backend

import (
	"errors"

	"github.com/minigit/minigit/ginternals"
	"github.com/minigit/minigit/ginternals/object"
)

// Backend stores and retrieves objects and references for a repository
type Backend interface {
	// Close frees the resources held by the backend
	Close() error

	// Init creates the directory layout and default config of a new
	// repository. Calling it on an already-initialized repository
	// succeeds and resets the description and config to their defaults.
	Init() error

	// Reference returns a stored reference from its name, following any
	// chain of symbolic references to the Oid it ultimately resolves to.
	// ginternals.ErrRefNotFound is returned if it doesn't exist.
	Reference(name string) (*ginternals.Reference, error)
	// ReferenceShallow returns the reference stored at name without
	// following a symbolic target, so it works even when that target
	// doesn't exist yet (e.g. HEAD before the first commit).
	ReferenceShallow(name string) (*ginternals.Reference, error)
	// WriteReference writes the given reference, overwriting any
	// existing reference of the same name.
	WriteReference(ref *ginternals.Reference) error
	// WriteReferenceSafe writes the given reference, failing with
	// ErrRefExists if a reference of that name already exists.
	WriteReferenceSafe(ref *ginternals.Reference) error
	// WalkReferences runs f on every stored reference
	WalkReferences(f RefWalkFunc) error

	// Object returns the object with the given Oid
	Object(oid ginternals.Oid) (*object.Object, error)
	// HasObject returns whether an object exists in the odb
	HasObject(oid ginternals.Oid) (bool, error)
	// WriteObject persists an object, returning its Oid
	WriteObject(o *object.Object) (ginternals.Oid, error)
	// WalkObjectIDs runs f on the Oid of every stored object
	WalkObjectIDs(f OidWalkFunc) error
}

// RefWalkFunc is applied to each reference found by WalkReferences
type RefWalkFunc = func(ref *ginternals.Reference) error

// OidWalkFunc is applied to each Oid found by WalkObjectIDs
type OidWalkFunc = func(oid ginternals.Oid) error

// WalkStop is a sentinel a RefWalkFunc/OidWalkFunc can return to stop a
// walk early without it being treated as a failure
var WalkStop = errors.New("stop walking")

// Config keys read and written under the "core" section of .git/config
const (
	CfgCore              = "core"
	CfgCoreFormatVersion = "repositoryformatversion"
	CfgCoreFileMode      = "filemode"
	CfgCoreBare          = "bare"
)
