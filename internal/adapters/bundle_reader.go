package adapters

import (
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/afero"

	"bundle-layout/internal/ports"
	"bundle-layout/internal/types"
)

type BundleReaderAdapter struct {
	fs afero.Fs
}

func NewBundleReaderAdapter() BundleReaderAdapter {
	return BundleReaderAdapter{fs: afero.NewOsFs()}
}

// ReadBundle lists both bundle roots without following symlinks. Entries
// come back per root in walk order.
func (a BundleReaderAdapter) ReadBundle(bundle string) ([]types.BundleEntry, error) {
	var entries []types.BundleEntry
	for _, root := range bundleRoots {
		base := filepath.Join(bundle, contentsDir, string(root))
		if _, err := a.fs.Stat(base); err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("bundle root not found: " + base).
				WithCause(err)
		}
		err := afero.Walk(a.fs, base, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if path == base {
				return nil
			}
			rel, err := filepath.Rel(base, path)
			if err != nil {
				return err
			}
			entry := types.BundleEntry{Root: root, Path: filepath.ToSlash(rel)}
			switch {
			case info.Mode()&os.ModeSymlink != 0:
				entry.Type = types.BundleEntrySymlink
				reader, ok := a.fs.(afero.LinkReader)
				if !ok {
					return afero.ErrNoReadlink
				}
				target, err := reader.ReadlinkIfPossible(path)
				if err != nil {
					return err
				}
				entry.Target = target
			case info.IsDir():
				entry.Type = types.BundleEntryDir
			default:
				entry.Type = types.BundleEntryFile
			}
			entries = append(entries, entry)
			return nil
		})
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to read bundle root " + base).
				WithCause(err)
		}
	}
	return entries, nil
}

var _ ports.BundleReaderPort = BundleReaderAdapter{}
