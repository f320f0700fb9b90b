package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"howett.net/plist"

	"bundle-layout/internal/types"
)

func writeSource(t *testing.T, path string, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func testService() Service {
	service := NewService()
	service.NewBuildID = func() string { return "build-1" }
	return service
}

func TestValidateApp(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, filepath.Join(dir, "build", "data_file.txt"), "Test file")
	writeSource(t, filepath.Join(dir, "build", "binary.dylib"), "binary")
	manifestPath := filepath.Join(dir, "manifest.yaml")
	writeSource(t, manifestPath, `
entries:
  - {source: build/data_file.txt, dest: mixed_dir/data_file.txt, kind: data}
  - {source: build/binary.dylib, dest: mixed_dir/binary.dylib, kind: binary}
  - {source: build/data_file.txt, dest: data_dir/data_file.txt, kind: data}
`)

	result, err := testService().Validate(t.Context(), ValidateRequest{
		SourceRequest: SourceRequest{ManifestPath: manifestPath},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Entries)
	if diff := cmp.Diff(types.ClassificationSummary{DataOnly: 1, Mixed: 1}, result.Summary); diff != "" {
		t.Fatalf("unexpected summary (-want +got):\n%s", diff)
	}
}

func TestValidateRequiresSources(t *testing.T) {
	_, err := testService().Validate(t.Context(), ValidateRequest{})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestValidateRejectsBadCollectSpec(t *testing.T) {
	_, err := testService().Validate(t.Context(), ValidateRequest{
		SourceRequest: SourceRequest{AddData: []string{"data_file.txt:"}},
	})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestPlanWritesOutput(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "data_file.txt")
	writeSource(t, src, "Test file")
	output := filepath.Join(dir, "out", "plan.txt")

	result, err := testService().Plan(t.Context(), PlanRequest{
		SourceRequest: SourceRequest{AddData: []string{src + ":."}},
		OutputPath:    output,
		Format:        types.OutputFormatText,
	})
	require.NoError(t, err)
	assert.Equal(t, "__dot__", result.Plan.DotReplacement)
	assert.Equal(t, 1, result.Plan.Count(types.OperationCopy))

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(content), "SYMLINK Frameworks/data_file.txt -> ../Resources/data_file.txt [leaf]")
}

func TestPlanRejectsBadDotReplacement(t *testing.T) {
	_, err := testService().Plan(t.Context(), PlanRequest{DotReplacement: "_._"})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestBuildApp(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, filepath.Join(dir, "src", "data_file.txt"), "Test file")
	writeSource(t, filepath.Join(dir, "src", "binary.dylib"), "binary")
	bundle := filepath.Join(dir, "dist", "App.app")
	req := BuildRequest{
		SourceRequest: SourceRequest{
			AddData:   []string{filepath.Join(dir, "src", "data_file.txt") + ":."},
			AddBinary: []string{filepath.Join(dir, "src", "binary.dylib") + ":."},
		},
		BundlePath: bundle,
	}

	result, err := testService().Build(t.Context(), req)
	require.NoError(t, err)
	want := BuildResult{BuildID: "build-1", BundlePath: bundle, Mkdirs: 2, Copies: 2, Symlinks: 2}
	if diff := cmp.Diff(want, result); diff != "" {
		t.Fatalf("unexpected build result (-want +got):\n%s", diff)
	}
	target, err := os.Readlink(filepath.Join(bundle, "Contents", "Resources", "binary.dylib"))
	require.NoError(t, err)
	assert.Equal(t, "../Frameworks/binary.dylib", target)

	_, err = testService().Build(t.Context(), req)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))

	req.Clean = true
	_, err = testService().Build(t.Context(), req)
	require.NoError(t, err)
}

func TestBuildRequiresBundlePath(t *testing.T) {
	_, err := testService().Build(t.Context(), BuildRequest{})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestPlanCollectsFrameworkInfoPlist(t *testing.T) {
	dir := t.TempDir()
	framework := filepath.Join(dir, "Dummy.framework", "Versions", "A")
	writeSource(t, filepath.Join(framework, "Dummy"), "binary")
	info, err := plist.Marshal(types.FrameworkInfo{Executable: "Dummy", Identifier: "org.example.Dummy", PackageType: "FMWK"}, plist.XMLFormat)
	require.NoError(t, err)
	writeSource(t, filepath.Join(framework, "Resources", "Info.plist"), string(info))

	result, err := testService().Plan(t.Context(), PlanRequest{
		SourceRequest: SourceRequest{
			AddBinary: []string{filepath.Join(framework, "Dummy") + ":Dummy.framework/Versions/A"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Entries)

	var current, plistCopy bool
	for _, op := range result.Plan.Operations {
		switch op.RelPath() {
		case "Frameworks/Dummy.framework/Versions/Current":
			current = op.Target == "A"
		case "Frameworks/Dummy.framework/Versions/A/Resources/Info.plist":
			plistCopy = op.Type == types.OperationCopy
		}
	}
	assert.True(t, current, "missing Versions/Current -> A")
	assert.True(t, plistCopy, "missing Info.plist copy")
}

func TestInspectApp(t *testing.T) {
	bundle := t.TempDir()
	writeSource(t, filepath.Join(bundle, "Contents", "Resources", "data_file.txt"), "Test file")
	require.NoError(t, os.MkdirAll(filepath.Join(bundle, "Contents", "Frameworks"), 0755))
	require.NoError(t, os.Symlink("../Resources/data_file.txt", filepath.Join(bundle, "Contents", "Frameworks", "data_file.txt")))

	result, err := testService().Inspect(InspectRequest{BundlePath: bundle})
	require.NoError(t, err)
	want := []types.BundleEntry{
		{Root: types.RootResources, Path: "data_file.txt", Type: types.BundleEntryFile},
		{Root: types.RootFrameworks, Path: "data_file.txt", Type: types.BundleEntrySymlink, Target: "../Resources/data_file.txt"},
	}
	if diff := cmp.Diff(want, result.Entries); diff != "" {
		t.Fatalf("unexpected entries (-want +got):\n%s", diff)
	}
}
