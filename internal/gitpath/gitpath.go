// Package gitpath contains constants for the files and directories
// found inside a .git directory.
package gitpath

import "path/filepath"

// .git/ files and directories, relative to the .git root
const (
	DotGitPath      = ".git"
	ConfigPath      = "config"
	DescriptionPath = "description"
	HEADPath        = "HEAD"
	BranchesPath    = "branches"
	IndexPath       = "index"
	ObjectsPath     = "objects"
	RefsPath        = "refs"
)

// RefsTagsPath and RefsHeadsPath are built with filepath.Join so they use
// the host path separator; reference *names* stay unix-style (see
// ginternals.LocalTagFullName et al.), only on-disk paths are host-native.
var (
	RefsTagsPath  = filepath.Join(RefsPath, "tags")
	RefsHeadsPath = filepath.Join(RefsPath, "heads")
)
