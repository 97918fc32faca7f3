package minigit

import (
	"errors"
	"regexp"
	"strings"

	"github.com/minigit/minigit/ginternals"
	"github.com/minigit/minigit/ginternals/object"
	"golang.org/x/xerrors"
)

var (
	// ErrNameNotFound is returned when a name resolves to zero candidates
	ErrNameNotFound = errors.New("could not resolve name")
	// ErrNameAmbiguous is returned when a name resolves to more than one
	// candidate
	ErrNameAmbiguous = errors.New("name is ambiguous")
	// ErrWrongKind is returned when type-follow exhausts an object's
	// chain (tag -> object, commit -> tree) without reaching the
	// requested kind
	ErrWrongKind = errors.New("object is not of the requested kind")
)

// hexName matches a full or abbreviated hex hash: 4 to 40 hex digits
var hexName = regexp.MustCompile(`^[0-9A-Fa-f]{4,40}$`)

// maxTypeFollowDepth bounds how many tag/commit hops ResolveToKind will
// walk before giving up.
const maxTypeFollowDepth = 10

// Resolve turns a human-friendly name into the Oid it refers to: HEAD,
// a full or abbreviated hex hash, or a branch/tag short name.
func (r *Repository) Resolve(name string) (ginternals.Oid, error) {
	switch {
	case name == "":
		return ginternals.NullOid, xerrors.Errorf("empty name: %w", ErrNameNotFound)
	case name == ginternals.Head:
		id, err := r.headHash()
		if err != nil {
			return ginternals.NullOid, xerrors.Errorf("HEAD: %w", err)
		}
		return id, nil
	case hexName.MatchString(name):
		return r.resolveHex(name)
	default:
		return r.resolveSymbolic(name)
	}
}

// resolveHex resolves a full or abbreviated hex hash
func (r *Repository) resolveHex(name string) (ginternals.Oid, error) {
	if len(name) == ginternals.OidSize()*2 {
		oid, err := ginternals.NewOidFromHex(strings.ToLower(name))
		if err != nil {
			return ginternals.NullOid, xerrors.Errorf("%q: %w", name, ErrNameNotFound)
		}
		return oid, nil
	}

	prefix := strings.ToLower(name)
	var matches []ginternals.Oid
	err := r.dotGit.WalkObjectIDs(func(oid ginternals.Oid) error {
		if strings.HasPrefix(oid.String(), prefix) {
			matches = append(matches, oid)
		}
		return nil
	})
	if err != nil {
		return ginternals.NullOid, xerrors.Errorf("could not enumerate objects: %w", err)
	}

	switch len(matches) {
	case 0:
		return ginternals.NullOid, xerrors.Errorf("%q: %w", name, ErrNameNotFound)
	case 1:
		return matches[0], nil
	default:
		return ginternals.NullOid, xerrors.Errorf("%q matches %d objects: %w", name, len(matches), ErrNameAmbiguous)
	}
}

// resolveSymbolic searches refs/heads then refs/tags for a reference
// whose basename equals name.
func (r *Repository) resolveSymbolic(name string) (ginternals.Oid, error) {
	var matches []ginternals.Oid
	for _, full := range []string{ginternals.LocalBranchFullName(name), ginternals.LocalTagFullName(name)} {
		ref, err := r.dotGit.Reference(full)
		if err != nil {
			if errors.Is(err, ginternals.ErrRefNotFound) {
				continue
			}
			return ginternals.NullOid, xerrors.Errorf("could not read %s: %w", full, err)
		}
		matches = append(matches, ref.Target())
	}

	switch len(matches) {
	case 0:
		return ginternals.NullOid, xerrors.Errorf("%q: %w", name, ErrNameNotFound)
	case 1:
		return matches[0], nil
	default:
		return ginternals.NullOid, xerrors.Errorf("%q matches %d refs: %w", name, len(matches), ErrNameAmbiguous)
	}
}

// ResolveToKind resolves name, then follows tag -> object and
// commit -> tree links until the loaded object's kind matches want, or
// fails with ErrWrongKind.
func (r *Repository) ResolveToKind(name string, want object.Type) (ginternals.Oid, error) {
	id, err := r.Resolve(name)
	if err != nil {
		return ginternals.NullOid, err
	}

	for i := 0; i < maxTypeFollowDepth; i++ {
		o, err := r.dotGit.Object(id)
		if err != nil {
			return ginternals.NullOid, xerrors.Errorf("could not read %s: %w", id, err)
		}
		if o.Type() == want {
			return id, nil
		}

		switch o.Type() {
		case object.TypeTag:
			tag, err := o.AsTag()
			if err != nil {
				return ginternals.NullOid, err
			}
			id = tag.Target()
		case object.TypeCommit:
			c, err := o.AsCommit()
			if err != nil {
				return ginternals.NullOid, err
			}
			id = c.TreeID()
		default:
			return ginternals.NullOid, xerrors.Errorf("%s is a %s, not a %s: %w", id, o.Type(), want, ErrWrongKind)
		}
	}

	return ginternals.NullOid, xerrors.Errorf("type-follow chain too long for %q: %w", name, ErrWrongKind)
}
