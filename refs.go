package minigit

import (
	"github.com/minigit/minigit/ginternals"
	"github.com/minigit/minigit/ginternals/object"
	"golang.org/x/xerrors"
)

// ResolveName resolves name the same way Resolve does, returning its
// hex form directly; a thin wrapper for callers that only want the SHA
// (e.g. a rev-parse-style CLI command).
func (r *Repository) ResolveName(name string) (string, error) {
	id, err := r.Resolve(name)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// CreateBranch writes refs/heads/name pointing at target.
func (r *Repository) CreateBranch(name string, target ginternals.Oid) error {
	ref := ginternals.NewReference(ginternals.LocalBranchFullName(name), target)
	if err := r.dotGit.WriteReferenceSafe(ref); err != nil {
		return xerrors.Errorf("could not create branch %q: %w", name, err)
	}
	return nil
}

// CreateLightweightTag writes refs/tags/name pointing directly at
// target, with no tag object (as opposed to an annotated tag, which
// wraps target in an object.Tag first).
func (r *Repository) CreateLightweightTag(name string, target ginternals.Oid) error {
	ref := ginternals.NewReference(ginternals.LocalTagFullName(name), target)
	if err := r.dotGit.WriteReferenceSafe(ref); err != nil {
		return xerrors.Errorf("could not create tag %q: %w", name, err)
	}
	return nil
}

// CreateAnnotatedTag builds a tag object pointing at target, persists
// it, and writes refs/tags/name to it, returning the tag object's Oid.
func (r *Repository) CreateAnnotatedTag(name string, target ginternals.Oid, message string) (ginternals.Oid, error) {
	targetObj, err := r.dotGit.Object(target)
	if err != nil {
		return ginternals.NullOid, xerrors.Errorf("could not read tag target %s: %w", target, err)
	}

	tag := object.NewTag(&object.TagParams{
		Target:  targetObj,
		Name:    name,
		Tagger:  object.NewSignature(placeholderName, placeholderEmail),
		Message: message,
	})

	id, err := r.dotGit.WriteObject(tag.ToObject())
	if err != nil {
		return ginternals.NullOid, xerrors.Errorf("could not write tag object: %w", err)
	}

	ref := ginternals.NewReference(ginternals.LocalTagFullName(name), id)
	if err := r.dotGit.WriteReferenceSafe(ref); err != nil {
		return ginternals.NullOid, xerrors.Errorf("could not create tag %q: %w", name, err)
	}
	return id, nil
}

// ListBranches returns the names of every local branch.
func (r *Repository) ListBranches() ([]string, error) {
	var names []string
	err := r.dotGit.WalkReferences(func(ref *ginternals.Reference) error {
		if ginternals.IsLocalBranch(ref.Name()) {
			names = append(names, ginternals.LocalBranchShortName(ref.Name()))
		}
		return nil
	})
	if err != nil {
		return nil, xerrors.Errorf("could not list branches: %w", err)
	}
	return names, nil
}

// ListTags returns the names of every tag, lightweight or annotated.
func (r *Repository) ListTags() ([]string, error) {
	var names []string
	err := r.dotGit.WalkReferences(func(ref *ginternals.Reference) error {
		if ginternals.IsLocalTag(ref.Name()) {
			names = append(names, ginternals.LocalTagShortName(ref.Name()))
		}
		return nil
	})
	if err != nil {
		return nil, xerrors.Errorf("could not list tags: %w", err)
	}
	return names, nil
}

// WalkRefs runs f on every stored reference, including HEAD; a thin
// pass-through to the backend for callers that want raw Reference
// values (e.g. a show-ref-style CLI command) instead of short names.
func (r *Repository) WalkRefs(f func(ref *ginternals.Reference) error) error {
	return r.dotGit.WalkReferences(f)
}
