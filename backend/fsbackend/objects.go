package fsbackend

import (
	"compress/zlib"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/minigit/minigit/backend"
	"github.com/minigit/minigit/ginternals"
	"github.com/minigit/minigit/ginternals/object"
	"github.com/minigit/minigit/internal/errutil"
	"github.com/minigit/minigit/internal/gitpath"
	"github.com/minigit/minigit/internal/readutil"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

// looseObjectPath returns the path of an object:
// .git/objects/first_2_chars_of_sha/remaining_chars_of_sha
func (b *Backend) looseObjectPath(sha string) string {
	return filepath.Join(b.root, gitpath.ObjectsPath, sha[:2], sha[2:])
}

// Object returns the object with the given Oid
func (b *Backend) Object(oid ginternals.Oid) (o *object.Object, err error) {
	strOid := oid.String()
	p := b.looseObjectPath(strOid)
	f, err := b.fs.Open(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, xerrors.Errorf("object %s: %w", strOid, ginternals.ErrObjectNotFound)
		}
		return nil, xerrors.Errorf("could not open object %s at %s: %w", strOid, p, err)
	}
	defer errutil.Close(f, &err)

	zr, err := zlib.NewReader(f)
	if err != nil {
		return nil, xerrors.Errorf("could not decompress object %s at %s: %w", strOid, p, err)
	}
	defer errutil.Close(zr, &err)

	buff, err := io.ReadAll(zr)
	if err != nil {
		return nil, xerrors.Errorf("could not read object %s at %s: %w", strOid, p, err)
	}

	offset := 0
	typ := readutil.ReadTo(buff, ' ')
	if typ == nil {
		return nil, xerrors.Errorf("could not find type for object %s at %s: %w", strOid, p, object.ErrObjectInvalid)
	}
	oType, err := object.NewTypeFromString(string(typ))
	if err != nil {
		return nil, xerrors.Errorf("unsupported type %q for object %s at %s: %w", typ, strOid, p, err)
	}
	offset += len(typ) + 1 // +1 for the space

	size := readutil.ReadTo(buff[offset:], 0)
	if size == nil {
		return nil, xerrors.Errorf("could not find size for object %s at %s: %w", strOid, p, object.ErrObjectInvalid)
	}
	oSize, err := strconv.Atoi(string(size))
	if err != nil {
		return nil, xerrors.Errorf("invalid size %s for object %s at %s: %w", size, strOid, p, err)
	}
	offset += len(size) + 1 // +1 for the NUL

	content := buff[offset:]
	if len(content) != oSize {
		return nil, xerrors.Errorf("object %s declares size %d but has %d: %w", strOid, oSize, len(content), object.ErrObjectInvalid)
	}

	return object.NewWithID(oid, oType, content), nil
}

// HasObject returns whether an object exists in the odb
func (b *Backend) HasObject(oid ginternals.Oid) (bool, error) {
	_, err := b.Object(oid)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, ginternals.ErrObjectNotFound) {
		return false, nil
	}
	return false, xerrors.Errorf("could not check for object: %w", err)
}

// WriteObject compresses and persists an object, returning its Oid.
// Writing an object that already exists is a no-op.
func (b *Backend) WriteObject(o *object.Object) (ginternals.Oid, error) {
	found, err := b.HasObject(o.ID())
	if err != nil {
		return ginternals.NullOid, xerrors.Errorf("could not check if object %s already exists: %w", o.ID(), err)
	}
	if found {
		return o.ID(), nil
	}

	sha := o.ID().String()
	p := b.looseObjectPath(sha)
	if err := b.fs.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return ginternals.NullOid, xerrors.Errorf("could not create destination directory for %s: %w", sha, err)
	}

	f, err := b.fs.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o444)
	if err != nil {
		return ginternals.NullOid, xerrors.Errorf("could not create object file %s: %w", p, err)
	}
	defer errutil.Close(f, &err)

	zw := zlib.NewWriter(f)
	defer errutil.Close(zw, &err)
	if _, err := zw.Write(o.Frame()); err != nil {
		return ginternals.NullOid, xerrors.Errorf("could not compress object %s: %w", sha, err)
	}

	return o.ID(), nil
}

// isLooseObjectDir reports whether name is a valid fan-out directory
// name (00-ff)
func isLooseObjectDir(name string) bool {
	if len(name) != 2 {
		return false
	}
	n, err := strconv.ParseInt(name, 16, 64)
	return err == nil && n >= 0x00 && n <= 0xff
}

// WalkObjectIDs runs f on the Oid of every loose object in the odb.
// Returning backend.WalkStop from f stops the walk early without error.
func (b *Backend) WalkObjectIDs(f backend.OidWalkFunc) error {
	root := filepath.Join(b.root, gitpath.ObjectsPath)
	err := afero.Walk(b.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if path == root {
			return nil
		}
		if info.IsDir() {
			if !isLooseObjectDir(info.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		prefix := filepath.Base(filepath.Dir(path))
		if !isLooseObjectDir(prefix) {
			return nil
		}

		sha := prefix + info.Name()
		oid, err := ginternals.NewOidFromHex(sha)
		if err != nil {
			return xerrors.Errorf("could not parse oid from %s: %w", sha, err)
		}
		return f(oid)
	})
	if errors.Is(err, backend.WalkStop) {
		return nil
	}
	return err
}
