package object

import (
	"bytes"
	"fmt"

	"github.com/minigit/minigit/ginternals"
	"github.com/minigit/minigit/internal/readutil"
)

// Mode is the file mode an entry carries in its parent tree
type Mode string

// The modes a tree entry can have. Git-link (submodule) entries parse
// correctly but nothing in this core ever produces or resolves one.
const (
	ModeFile       Mode = "100644"
	ModeExecutable Mode = "100755"
	ModeSymLink    Mode = "120000"
	ModeDirectory  Mode = "040000"
	ModeGitLink    Mode = "160000"
)

// IsValid returns whether m is one of the known tree entry modes
func (m Mode) IsValid() bool {
	switch m {
	case ModeFile, ModeExecutable, ModeSymLink, ModeDirectory, ModeGitLink:
		return true
	default:
		return false
	}
}

// Entry is a single line of a Tree: a name paired with the mode and Oid
// of the blob or tree it points to.
type Entry struct {
	Mode Mode
	Name string
	ID   ginternals.Oid
}

// Tree is a directory snapshot: an ordered list of named entries, each
// pointing at a blob (file) or another tree (subdirectory).
//
// Entries are kept in the order they were added. Real git stores them
// sorted by name, but nothing in this core relies on that ordering, so
// callers shouldn't either.
type Tree struct {
	obj     *Object
	entries []Entry
}

// NewTree builds a Tree from a list of entries and encodes it into an
// Object, ready to be persisted.
func NewTree(entries []Entry) *Tree {
	t := &Tree{entries: entries}
	t.obj = New(TypeTree, t.encode())
	return t
}

// NewTreeFromObject parses an Object's payload as a Tree
func NewTreeFromObject(o *Object) (*Tree, error) {
	if o.Type() != TypeTree {
		return nil, fmt.Errorf("object is a %s, not a tree: %w", o.Type(), ErrObjectInvalid)
	}

	data := o.Bytes()
	var entries []Entry
	for len(data) > 0 {
		sp := bytes.IndexByte(data, ' ')
		if sp < 0 {
			return nil, fmt.Errorf("could not find mode: %w", ErrTreeInvalid)
		}
		mode := Mode(data[:sp])
		data = data[sp+1:]

		name := readutil.ReadTo(data, 0)
		if name == nil {
			return nil, fmt.Errorf("could not find name: %w", ErrTreeInvalid)
		}
		data = data[len(name)+1:]

		oidSize := ginternals.OidSize()
		if len(data) < oidSize {
			return nil, fmt.Errorf("truncated entry oid: %w", ErrTreeInvalid)
		}
		id, err := ginternals.NewOidFromBytes(data[:oidSize])
		if err != nil {
			return nil, fmt.Errorf("invalid entry oid: %w", err)
		}
		data = data[oidSize:]

		entries = append(entries, Entry{Mode: mode, Name: string(name), ID: id})
	}

	return &Tree{obj: o, entries: entries}, nil
}

// Entries returns the tree's entries, in storage order
func (t *Tree) Entries() []Entry {
	return t.entries
}

// ID returns the tree's Oid
func (t *Tree) ID() ginternals.Oid {
	return t.obj.ID()
}

// ToObject returns the underlying Object
func (t *Tree) ToObject() *Object {
	return t.obj
}

// encode serializes the entries as "<mode> <name>\0<20-byte-oid>" lines
func (t *Tree) encode() []byte {
	w := new(bytes.Buffer)
	for _, e := range t.entries {
		w.WriteString(string(e.Mode))
		w.WriteByte(' ')
		w.WriteString(e.Name)
		w.WriteByte(0)
		w.Write(e.ID.Bytes())
	}
	return w.Bytes()
}

// ModeFromFileInfo maps a working-tree file's kind to a tree entry mode;
// used by the snapshotter when building a tree from disk.
func ModeFromFileInfo(isDir, isSymlink, isExec bool) Mode {
	switch {
	case isDir:
		return ModeDirectory
	case isSymlink:
		return ModeSymLink
	case isExec:
		return ModeExecutable
	default:
		return ModeFile
	}
}
