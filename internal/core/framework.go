package core

import (
	"strings"

	"bundle-layout/internal/policies"
	"bundle-layout/internal/shared"
	"bundle-layout/internal/types"
)

const (
	frameworkVersionsDir = "Versions"
	frameworkCurrentLink = "Current"
)

// FrameworkBinaryOf reports whether a binary entry sits directly inside a
// <Name>.framework/Versions/<version>/ directory.
func FrameworkBinaryOf(entry types.ResourceEntry) (types.FrameworkBinary, bool) {
	if entry.Kind != types.ResourceKindBinary {
		return types.FrameworkBinary{}, false
	}
	dest, err := NormalizeDest(entry.Dest)
	if err != nil {
		return types.FrameworkBinary{}, false
	}
	parts := strings.Split(dest, "/")
	for i, part := range parts {
		if !policies.IsFrameworkDir(part) {
			continue
		}
		if len(parts) != i+4 || parts[i+1] != frameworkVersionsDir {
			return types.FrameworkBinary{}, false
		}
		return types.FrameworkBinary{
			FrameworkPath: strings.Join(parts[:i+1], "/"),
			Version:       parts[i+2],
			Entry:         entry,
		}, true
	}
	return types.FrameworkBinary{}, false
}

// InfoPlistDest is the destination of the Info.plist that accompanies a
// framework binary.
func InfoPlistDest(binary types.FrameworkBinary) string {
	return shared.JoinLogical(binary.FrameworkPath, frameworkVersionsDir, binary.Version, "Resources", "Info.plist")
}

// currentVersionFor returns the version Versions/Current should point at,
// or "" when the framework has no version directories or already carries
// a Current entry.
func currentVersionFor(framework *types.DirectoryNode) string {
	versions, ok := framework.Dirs[frameworkVersionsDir]
	if !ok {
		return ""
	}
	if _, exists := versions.Dirs[frameworkCurrentLink]; exists {
		return ""
	}
	if _, exists := versions.Files[frameworkCurrentLink]; exists {
		return ""
	}
	names := make([]string, 0, len(versions.Dirs))
	for name := range versions.Dirs {
		names = append(names, name)
	}
	return CurrentVersion(names)
}
