package core

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"bundle-layout/internal/shared"
	"bundle-layout/internal/types"
)

// TreeBuilder groups manifest entries into a directory tree keyed by
// destination path segments.
type TreeBuilder struct{}

func NewTreeBuilder() TreeBuilder {
	return TreeBuilder{}
}

func (b TreeBuilder) Build(ctx context.Context, entries []types.ResourceEntry) (*types.DirectoryNode, error) {
	root := types.NewDirectoryNode("", "")
	for _, entry := range entries {
		if err := validateEntry(entry); err != nil {
			return nil, err
		}
		dest, err := NormalizeDest(entry.Dest)
		if err != nil {
			return nil, err
		}
		entry.Dest = dest
		if err := insertEntry(root, entry); err != nil {
			return nil, err
		}
	}
	log.Ctx(ctx).Debug().Int("entries", len(entries)).Msg("destination tree built")
	return root, nil
}

// NormalizeDest cleans a slash-separated destination path and rejects
// anything that would escape or alias the bundle content root.
func NormalizeDest(dest string) (string, error) {
	raw := strings.TrimSpace(dest)
	if raw == "" {
		return "", invalidDest(dest, "destination path is empty")
	}
	if strings.HasPrefix(raw, "/") {
		return "", invalidDest(dest, "destination path must be relative")
	}
	for _, part := range strings.Split(raw, "/") {
		if part == ".." {
			return "", invalidDest(dest, "destination path must not contain '..'")
		}
	}
	cleaned := path.Clean(raw)
	if cleaned == "." {
		return "", invalidDest(dest, "destination path names the bundle root")
	}
	return cleaned, nil
}

func invalidDest(dest string, reason string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("%s: %q", reason, dest))
}

func validateEntry(entry types.ResourceEntry) error {
	switch entry.Kind {
	case types.ResourceKindData, types.ResourceKindBinary:
		if strings.TrimSpace(entry.Source) == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("source is required for %s entry %q", entry.Kind, entry.Dest))
		}
	case types.ResourceKindSymlink:
		if entry.Source == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("link target is required for symlink entry %q", entry.Dest))
		}
		switch entry.Category {
		case "", types.ResourceKindData, types.ResourceKindBinary:
		default:
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("invalid symlink category %q for %q", entry.Category, entry.Dest))
		}
	default:
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid resource kind %q for %q", entry.Kind, entry.Dest))
	}
	return nil
}

func insertEntry(root *types.DirectoryNode, entry types.ResourceEntry) error {
	parts := strings.Split(entry.Dest, "/")
	node := root
	for _, name := range parts[:len(parts)-1] {
		if _, clash := node.Files[name]; clash {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("%q is used both as a file and as a directory", shared.JoinLogical(node.Path, name)))
		}
		child, ok := node.Dirs[name]
		if !ok {
			child = types.NewDirectoryNode(name, shared.JoinLogical(node.Path, name))
			node.Dirs[name] = child
		}
		node = child
	}

	leaf := parts[len(parts)-1]
	if _, clash := node.Dirs[leaf]; clash {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("%q is used both as a file and as a directory", entry.Dest))
	}
	if existing, ok := node.Files[leaf]; ok {
		if sameEntry(existing, entry) {
			return nil
		}
		return errbuilder.New().
			WithCode(errbuilder.CodeAlreadyExists).
			WithMsg(fmt.Sprintf("conflicting entries for destination %q", entry.Dest))
	}
	node.Files[leaf] = entry
	return nil
}

func sameEntry(a types.ResourceEntry, b types.ResourceEntry) bool {
	return a.Kind == b.Kind && a.Source == b.Source && a.EffectiveKind() == b.EffectiveKind()
}
