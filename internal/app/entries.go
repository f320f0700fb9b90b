package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"bundle-layout/internal/core"
	"bundle-layout/internal/types"
)

func (s Service) loadEntries(ctx context.Context, req SourceRequest) ([]types.ResourceEntry, error) {
	var entries []types.ResourceEntry
	if manifestPath := strings.TrimSpace(req.ManifestPath); manifestPath != "" {
		manifest, err := s.Manifest.LoadManifest(manifestPath)
		if err != nil {
			return nil, err
		}
		entries = append(entries, manifest.Entries...)
	}
	for _, group := range []struct {
		raw  []string
		kind types.ResourceKind
	}{
		{raw: req.AddData, kind: types.ResourceKindData},
		{raw: req.AddBinary, kind: types.ResourceKindBinary},
	} {
		for _, raw := range group.raw {
			spec, err := core.ParseCollectSpec(raw, group.kind)
			if err != nil {
				return nil, err
			}
			collected, err := s.Collector.Collect(spec)
			if err != nil {
				return nil, err
			}
			entries = append(entries, collected...)
		}
	}
	if len(entries) == 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("no resources given: provide --manifest, --add-data or --add-binary")
	}
	entries, err := s.addFrameworkInfo(ctx, entries)
	if err != nil {
		return nil, err
	}
	log.Ctx(ctx).Debug().Int("entries", len(entries)).Msg("resource entries loaded")
	return entries, nil
}

// addFrameworkInfo collects the Info.plist next to every framework binary
// unless the entries already place one.
func (s Service) addFrameworkInfo(ctx context.Context, entries []types.ResourceEntry) ([]types.ResourceEntry, error) {
	placed := make(map[string]bool, len(entries))
	for _, entry := range entries {
		if dest, err := core.NormalizeDest(entry.Dest); err == nil {
			placed[dest] = true
		}
	}
	var extra []types.ResourceEntry
	for _, entry := range entries {
		binary, ok := core.FrameworkBinaryOf(entry)
		if !ok {
			continue
		}
		dest := core.InfoPlistDest(binary)
		if placed[dest] {
			continue
		}
		source := filepath.Join(filepath.Dir(entry.Source), "Resources", "Info.plist")
		info, found, err := s.Framework.ReadInfo(source)
		if err != nil {
			return nil, err
		}
		if !found {
			continue
		}
		placed[dest] = true
		extra = append(extra, types.ResourceEntry{Source: source, Dest: dest, Kind: types.ResourceKindData})
		log.Ctx(ctx).Debug().
			Str("framework", binary.FrameworkPath).
			Str("identifier", info.Identifier).
			Str("dest", dest).
			Msg("collected framework Info.plist")
	}
	return append(entries, extra...), nil
}

// resolveTree builds and classifies the destination tree.
func resolveTree(ctx context.Context, entries []types.ResourceEntry) (*types.DirectoryNode, types.ClassificationSummary, error) {
	root, err := core.NewTreeBuilder().Build(ctx, entries)
	if err != nil {
		return nil, types.ClassificationSummary{}, err
	}
	summary, err := core.NewClassifier().Classify(ctx, root)
	if err != nil {
		return nil, types.ClassificationSummary{}, err
	}
	return root, summary, nil
}
