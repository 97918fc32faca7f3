// Package index parses the binary staging-area file at .git/index.
//
// This core only reads the index; nothing writes one, so the parser is
// the entirety of the package. Layout and field widths follow the
// format documented at https://git-scm.com/docs/index-format (version
// 2, no extensions).
package index

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"

	"github.com/minigit/minigit/ginternals"
	"github.com/minigit/minigit/internal/readutil"
	"golang.org/x/xerrors"
)

// signature is the 4-byte magic every index file starts with
const signature = "DIRC"

// fixedEntrySize is the size, in bytes, of an entry's fields up to and
// including the 2-byte flags, before its NUL-terminated path
const fixedEntrySize = 8 + 8 + 4 + 4 + 4 + 4 + 4 + 4 + 20 + 2

// ErrBadSignature is returned when the index doesn't start with "DIRC"
var ErrBadSignature = errors.New("index has an invalid signature")

// ErrIndexInvalid is returned when the index is truncated or malformed
var ErrIndexInvalid = errors.New("index is malformed")

// Entry is one staged file, as recorded in .git/index
type Entry struct {
	CTimeSeconds uint32
	CTimeNanos   uint32
	MTimeSeconds uint32
	MTimeNanos   uint32
	Dev          uint32
	Ino          uint32
	Mode         uint32
	UID          uint32
	GID          uint32
	Size         uint32
	Hash         ginternals.Oid
	Flags        uint16
	Path         string
}

// Index is the parsed contents of .git/index: a version and an ordered
// list of staged entries, in on-disk order.
type Index struct {
	Version uint32
	Entries []Entry
}

// Parse reads the binary index format from r.
//
// The trailing 20-byte SHA-1 checksum of the file is consumed but not
// verified; this core treats the index as a read-only, trusted input.
func Parse(r io.Reader) (*Index, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, xerrors.Errorf("could not read index: %w", err)
	}

	if len(data) < 12 {
		return nil, xerrors.Errorf("index shorter than its header: %w", ErrIndexInvalid)
	}
	if string(data[:4]) != signature {
		return nil, xerrors.Errorf("got signature %q: %w", data[:4], ErrBadSignature)
	}

	version := binary.BigEndian.Uint32(data[4:8])
	count := binary.BigEndian.Uint32(data[8:12])

	idx := &Index{Version: version, Entries: make([]Entry, 0, count)}

	cursor := 12
	for i := uint32(0); i < count; i++ {
		e, consumed, err := parseEntry(data[cursor:])
		if err != nil {
			return nil, xerrors.Errorf("entry %d: %w", i, err)
		}
		idx.Entries = append(idx.Entries, e)
		cursor += consumed
	}

	return idx, nil
}

// parseEntry decodes one entry starting at the beginning of data,
// returning it and the number of bytes consumed, including padding.
func parseEntry(data []byte) (Entry, int, error) {
	if len(data) < fixedEntrySize {
		return Entry{}, 0, xerrors.Errorf("truncated fixed fields: %w", ErrIndexInvalid)
	}

	r := bytes.NewReader(data[:fixedEntrySize])
	e := Entry{}
	fields := []*uint32{
		&e.CTimeSeconds, &e.CTimeNanos,
		&e.MTimeSeconds, &e.MTimeNanos,
		&e.Dev, &e.Ino, &e.Mode, &e.UID, &e.GID, &e.Size,
	}
	for _, f := range fields {
		if err := binary.Read(r, binary.BigEndian, f); err != nil {
			return Entry{}, 0, xerrors.Errorf("could not read fixed field: %w", err)
		}
	}

	hashBytes := make([]byte, ginternals.OidSize())
	if _, err := io.ReadFull(r, hashBytes); err != nil {
		return Entry{}, 0, xerrors.Errorf("could not read hash: %w", err)
	}
	hash, err := ginternals.NewOidFromBytes(hashBytes)
	if err != nil {
		return Entry{}, 0, xerrors.Errorf("invalid entry hash: %w", err)
	}
	e.Hash = hash

	if err := binary.Read(r, binary.BigEndian, &e.Flags); err != nil {
		return Entry{}, 0, xerrors.Errorf("could not read flags: %w", err)
	}

	rest := data[fixedEntrySize:]
	path := readutil.ReadTo(rest, 0)
	if path == nil {
		return Entry{}, 0, xerrors.Errorf("path is not NUL-terminated: %w", ErrIndexInvalid)
	}
	e.Path = string(path)

	entryLen := fixedEntrySize + len(path) + 1 // +1 for the NUL
	paddedLen := ((entryLen + 7) / 8) * 8

	return e, paddedLen, nil
}
