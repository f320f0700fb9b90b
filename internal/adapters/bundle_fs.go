package adapters

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"bundle-layout/internal/ports"
	"bundle-layout/internal/types"
)

const contentsDir = "Contents"

var bundleRoots = []types.Root{types.RootResources, types.RootFrameworks}

// BundleFSAdapter executes layout operations on the local filesystem.
// Operations run strictly in order; a failure aborts the build and leaves
// whatever was already written in place.
type BundleFSAdapter struct {
	fs afero.Fs
}

func NewBundleFSAdapter() BundleFSAdapter {
	return BundleFSAdapter{fs: afero.NewOsFs()}
}

func (a BundleFSAdapter) Prepare(bundle string, clean bool) error {
	contents := filepath.Join(bundle, contentsDir)
	if err := a.fs.MkdirAll(contents, 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create " + contents).
			WithCause(err)
	}
	for _, root := range bundleRoots {
		path := filepath.Join(contents, string(root))
		exists, err := a.exists(path)
		if err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to inspect " + path).
				WithCause(err)
		}
		if !exists {
			continue
		}
		if !clean {
			return errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg("bundle is not empty: " + path + " exists (use --clean to replace it)")
		}
		if err := a.fs.RemoveAll(path); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to remove " + path).
				WithCause(err)
		}
		log.Info().Str("path", path).Msg("removed existing bundle root")
	}
	return nil
}

func (a BundleFSAdapter) Apply(ctx context.Context, bundle string, ops []types.Operation) error {
	contents := filepath.Join(bundle, contentsDir)
	for _, op := range ops {
		if err := ctx.Err(); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("bundle build cancelled").
				WithCause(err)
		}
		path := filepath.Join(contents, filepath.FromSlash(op.RelPath()))
		var err error
		switch op.Type {
		case types.OperationMkdir:
			err = a.fs.Mkdir(path, 0755)
		case types.OperationCopy:
			err = a.copyFile(op.Target, path)
		case types.OperationSymlink:
			err = a.symlink(op.Target, path)
		default:
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("unknown operation type " + string(op.Type))
		}
		if err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to " + string(op.Type) + " " + op.RelPath()).
				WithCause(err)
		}
	}
	log.Ctx(ctx).Debug().Int("operations", len(ops)).Str("bundle", bundle).Msg("bundle written")
	return nil
}

func (a BundleFSAdapter) copyFile(source string, dest string) error {
	in, err := a.fs.Open(source)
	if err != nil {
		return err
	}
	defer in.Close()
	info, err := in.Stat()
	if err != nil {
		return err
	}
	out, err := a.fs.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

func (a BundleFSAdapter) symlink(target string, path string) error {
	linker, ok := a.fs.(afero.Linker)
	if !ok {
		return afero.ErrNoSymlink
	}
	return linker.SymlinkIfPossible(target, path)
}

func (a BundleFSAdapter) exists(path string) (bool, error) {
	if lstater, ok := a.fs.(afero.Lstater); ok {
		_, _, err := lstater.LstatIfPossible(path)
		if os.IsNotExist(err) {
			return false, nil
		}
		return err == nil, err
	}
	return afero.Exists(a.fs, path)
}

var _ ports.BundleWriterPort = BundleFSAdapter{}
