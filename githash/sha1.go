package githash

import (
	"crypto/sha1"
	"encoding/hex"
)

// sha1Size is the length, in bytes, of a SHA-1 oid
const sha1Size = 20

// sha1NullOid is the zero-valued SHA-1 oid
var sha1NullOid = sha1Oid{}

// sha1Hash implements Hash using SHA-1
type sha1Hash struct{}

// SHA1 returns a Hash implementation backed by SHA-1, the only digest
// this core supports
func SHA1() Hash {
	return sha1Hash{}
}

// Name returns the name of the hash
func (sha1Hash) Name() string { return "sha1" }

// Size returns the size, in bytes, of a SHA-1 oid
func (sha1Hash) Size() int { return sha1Size }

// Sum returns the Oid of the given content
func (sha1Hash) Sum(data []byte) Oid {
	var o sha1Oid = sha1.Sum(data)
	return o
}

// FromHex parses a 40-char hex string into an Oid
func (h sha1Hash) FromHex(s string) (Oid, error) {
	if len(s) != sha1Size*2 {
		return sha1NullOid, ErrInvalidOid
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return sha1NullOid, ErrInvalidOid
	}
	return h.FromBytes(b)
}

// FromBytes casts a 20-byte slice into an Oid
func (sha1Hash) FromBytes(b []byte) (Oid, error) {
	if len(b) != sha1Size {
		return sha1NullOid, ErrInvalidOid
	}
	var o sha1Oid
	copy(o[:], b)
	return o, nil
}

// Null returns the zero-valued SHA-1 Oid
func (sha1Hash) Null() Oid { return sha1NullOid }

// sha1Oid is the binary, 20-byte representation of a SHA-1 oid
type sha1Oid [sha1Size]byte

// Bytes returns the raw, binary form of the oid
func (o sha1Oid) Bytes() []byte {
	return o[:]
}

// String returns the lowercase hex form of the oid
func (o sha1Oid) String() string {
	return hex.EncodeToString(o[:])
}

// IsZero returns whether this is the null oid
func (o sha1Oid) IsZero() bool {
	return o == sha1NullOid
}
