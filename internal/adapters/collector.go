package adapters

import (
	"errors"
	"os"
	"path/filepath"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/afero"

	"bundle-layout/internal/ports"
	"bundle-layout/internal/shared"
	"bundle-layout/internal/types"
)

// CollectorAdapter expands --add-data / --add-binary specs by scanning the
// source filesystem. Symlinks are collected as links and never followed.
type CollectorAdapter struct {
	fs afero.Fs
}

func NewCollectorAdapter() CollectorAdapter {
	return CollectorAdapter{fs: afero.NewOsFs()}
}

func (a CollectorAdapter) Collect(spec types.CollectSpec) ([]types.ResourceEntry, error) {
	matches, err := afero.Glob(a.fs, spec.Source)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid collect pattern " + spec.Source).
			WithCause(err)
	}
	if len(matches) == 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("no files matched " + spec.Source)
	}
	sort.Strings(matches)

	var entries []types.ResourceEntry
	for _, match := range matches {
		source, err := filepath.Abs(match)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to resolve " + match).
				WithCause(err)
		}
		info, err := a.lstat(source)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("collected source not found: " + source).
				WithCause(err)
		}
		if !info.IsDir() {
			entry, err := a.entryFor(source, info, shared.JoinLogical(spec.Dest, filepath.Base(source)), spec.Kind)
			if err != nil {
				return nil, err
			}
			entries = append(entries, entry)
			continue
		}
		walked, err := a.walk(source, spec)
		if err != nil {
			return nil, err
		}
		entries = append(entries, walked...)
	}
	return entries, nil
}

func (a CollectorAdapter) walk(dir string, spec types.CollectSpec) ([]types.ResourceEntry, error) {
	var entries []types.ResourceEntry
	err := afero.Walk(a.fs, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		entry, err := a.entryFor(path, info, shared.JoinLogical(spec.Dest, filepath.ToSlash(rel)), spec.Kind)
		if err != nil {
			return err
		}
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		var built *errbuilder.ErrBuilder
		if errors.As(err, &built) {
			return nil, err
		}
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to scan " + dir).
			WithCause(err)
	}
	return entries, nil
}

func (a CollectorAdapter) entryFor(path string, info os.FileInfo, dest string, kind types.ResourceKind) (types.ResourceEntry, error) {
	if info.Mode()&os.ModeSymlink == 0 {
		return types.ResourceEntry{Source: path, Dest: dest, Kind: kind}, nil
	}
	target, err := a.readlink(path)
	if err != nil {
		return types.ResourceEntry{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read symlink " + path).
			WithCause(err)
	}
	return types.ResourceEntry{Source: target, Dest: dest, Kind: types.ResourceKindSymlink, Category: kind}, nil
}

func (a CollectorAdapter) lstat(path string) (os.FileInfo, error) {
	if lstater, ok := a.fs.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(path)
		return info, err
	}
	return a.fs.Stat(path)
}

func (a CollectorAdapter) readlink(path string) (string, error) {
	reader, ok := a.fs.(afero.LinkReader)
	if !ok {
		return "", afero.ErrNoReadlink
	}
	return reader.ReadlinkIfPossible(path)
}

var _ ports.CollectorPort = CollectorAdapter{}
