package ginternals

import (
	"path"
	"strings"
)

// Well-known reference names
const (
	// Head is the reference to the current branch, or to a commit if
	// the repository is in a detached state
	Head = "HEAD"
	// Master is the default branch name used by init
	Master = "master"
)

// refsDirName, refsTagsRelPath and refsHeadsRelPath are kept in unix
// format since references are always stored this way; the backend
// is responsible for converting to the host path separator.
const (
	refsDirName      = "refs"
	refsTagsRelPath  = refsDirName + "/tags"
	refsHeadsRelPath = refsDirName + "/heads"
)

// LocalTagFullName returns the full name of a tag
// ex. for "my-tag" returns "refs/tags/my-tag"
func LocalTagFullName(shortName string) string {
	return path.Join(refsTagsRelPath, shortName)
}

// LocalTagShortName returns the short name of a tag
// ex. for "refs/tags/my-tag" returns "my-tag"
func LocalTagShortName(fullName string) string {
	return strings.TrimPrefix(fullName, refsTagsRelPath+"/")
}

// LocalBranchFullName returns the full name of a branch
// ex. for "main" returns "refs/heads/main"
func LocalBranchFullName(shortName string) string {
	return path.Join(refsHeadsRelPath, shortName)
}

// LocalBranchShortName returns the short name of a branch
// ex. for "refs/heads/main" returns "main"
func LocalBranchShortName(fullName string) string {
	return strings.TrimPrefix(fullName, refsHeadsRelPath+"/")
}

// IsLocalBranch returns whether the given full reference name points
// inside refs/heads
func IsLocalBranch(fullName string) bool {
	return strings.HasPrefix(fullName, refsHeadsRelPath+"/")
}

// IsLocalTag returns whether the given full reference name points
// inside refs/tags
func IsLocalTag(fullName string) bool {
	return strings.HasPrefix(fullName, refsTagsRelPath+"/")
}
