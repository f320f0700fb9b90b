// Package shared provides small path helpers used by the layout planner
// and the filesystem adapters.
package shared

import (
	"path"
	"strings"
)

// JoinLogical joins slash-separated path elements, ignoring empty ones.
// An all-empty input yields the empty string (the bundle content root).
func JoinLogical(elems ...string) string {
	var parts []string
	for _, elem := range elems {
		if elem != "" {
			parts = append(parts, elem)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return path.Join(parts...)
}

// Depth returns the number of components of a slash-separated relative path.
func Depth(rel string) int {
	if rel == "" {
		return 0
	}
	return strings.Count(rel, "/") + 1
}

// RelativeLinkTarget computes the target of a symlink placed at linkPath
// inside one bundle root that points at targetPath inside the root named
// targetRoot. Both paths are relative to their roots, so the link climbs
// out of its own root first.
func RelativeLinkTarget(linkPath string, targetRoot string, targetPath string) string {
	return strings.Repeat("../", Depth(linkPath)) + JoinLogical(targetRoot, targetPath)
}
