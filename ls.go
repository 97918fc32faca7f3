package minigit

import (
	"os"
	"path"
	"path/filepath"

	"github.com/minigit/minigit/ginternals"
	"github.com/minigit/minigit/ginternals/object"
	"github.com/minigit/minigit/index"
	"github.com/minigit/minigit/internal/errutil"
	"github.com/minigit/minigit/internal/gitpath"
	"golang.org/x/xerrors"
)

// TreeEntry is one line of a tree listing: its full slash-separated
// path relative to the tree root, its mode, and the Oid it points at.
type TreeEntry struct {
	Path string
	Mode object.Mode
	ID   ginternals.Oid
}

// ListTree lists the entries of the tree at id. With recursive set it
// walks subtrees too: each directory entry is listed, followed by its
// contents under their full paths.
func (r *Repository) ListTree(id ginternals.Oid, recursive bool) ([]TreeEntry, error) {
	tree, err := r.readTree(id)
	if err != nil {
		return nil, err
	}
	return r.listTreeEntries(tree, "", recursive)
}

func (r *Repository) listTreeEntries(tree *object.Tree, prefix string, recursive bool) ([]TreeEntry, error) {
	var out []TreeEntry
	for _, e := range tree.Entries() {
		p := path.Join(prefix, e.Name)
		out = append(out, TreeEntry{Path: p, Mode: e.Mode, ID: e.ID})

		if recursive && e.Mode == object.ModeDirectory {
			sub, err := r.readTree(e.ID)
			if err != nil {
				return nil, err
			}
			children, err := r.listTreeEntries(sub, p, recursive)
			if err != nil {
				return nil, err
			}
			out = append(out, children...)
		}
	}
	return out, nil
}

// ListIndexEntries parses .git/index and returns its entries. It
// returns an empty slice, not an error, when the index doesn't exist
// yet (nothing has been staged with an external tool).
func (r *Repository) ListIndexEntries() (entries []index.Entry, err error) {
	p := filepath.Join(r.root, gitpath.DotGitPath, gitpath.IndexPath)
	f, err := r.wt.Open(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, xerrors.Errorf("could not open %s: %w", p, err)
	}
	defer errutil.Close(f, &err)

	idx, err := index.Parse(f)
	if err != nil {
		return nil, xerrors.Errorf("could not parse %s: %w", p, err)
	}
	return idx.Entries, nil
}
