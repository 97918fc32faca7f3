// Package ginternals contains the plumbing shared by the object store,
// the reference store, and the name resolver: object identifiers,
// reference resolution, and the relative paths used under .git/.
package ginternals

import "github.com/minigit/minigit/githash"

// hash is the algorithm used to address objects in this core. Only SHA-1
// is supported; see githash.Hash for why this isn't a constant.
var hash = githash.SHA1()

// Oid is a git object ID, addressed with this core's hash algorithm
type Oid = githash.Oid

// NullOid is the zero-value Oid
var NullOid = hash.Null()

// NewOidFromHex parses a 40-char lowercase hex string into an Oid
func NewOidFromHex(s string) (Oid, error) {
	return hash.FromHex(s)
}

// NewOidFromChars parses a hex-encoded Oid stored as a byte slice (as
// found in a commit's "tree"/"parent" lines) into an Oid
func NewOidFromChars(b []byte) (Oid, error) {
	return hash.FromHex(string(b))
}

// NewOidFromBytes casts a 20-byte binary-encoded Oid (as found in a tree
// entry) into an Oid
func NewOidFromBytes(b []byte) (Oid, error) {
	return hash.FromBytes(b)
}

// NewOidFromContent returns the Oid of the given content. Used to compute
// the address of a freshly framed object.
func NewOidFromContent(data []byte) Oid {
	return hash.Sum(data)
}

// OidSize returns the size, in bytes, of the binary form of an Oid
func OidSize() int {
	return hash.Size()
}
