package adapters

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"bundle-layout/internal/types"
)

func samplePlan() types.LayoutPlan {
	return types.LayoutPlan{
		DotReplacement: "__dot__",
		Decisions: []types.PlacementDecision{
			{Path: "data_file.txt", Owner: types.RootResources, Link: types.LinkLevelLeaf},
		},
		Operations: []types.Operation{
			{Type: types.OperationMkdir, Root: types.RootResources},
			{Type: types.OperationMkdir, Root: types.RootFrameworks},
			{Type: types.OperationCopy, Root: types.RootResources, Path: "data_file.txt", Target: "/src/data_file.txt"},
			{Type: types.OperationSymlink, Root: types.RootFrameworks, Path: "data_file.txt", Target: "../Resources/data_file.txt", Link: types.LinkLevelLeaf},
		},
	}
}

func TestReportFileAdapter_PlanText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReportFileAdapter().RenderPlan(&buf, samplePlan(), types.OutputFormatText))

	want := "dot replacement: __dot__\n" +
		"operations: 4 (2 mkdir, 1 copy, 1 symlink)\n" +
		"MKDIR   Resources\n" +
		"MKDIR   Frameworks\n" +
		"COPY    Resources/data_file.txt -> /src/data_file.txt\n" +
		"SYMLINK Frameworks/data_file.txt -> ../Resources/data_file.txt [leaf]\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("unexpected plan text (-want +got):\n%s", diff)
	}
}

func TestReportFileAdapter_WritePlanYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "plan.yaml")
	require.NoError(t, NewReportFileAdapter().WritePlan(path, samplePlan(), types.OutputFormatYAML))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded types.LayoutPlan
	require.NoError(t, yaml.Unmarshal(content, &decoded))
	if diff := cmp.Diff(samplePlan(), decoded); diff != "" {
		t.Fatalf("unexpected plan (-want +got):\n%s", diff)
	}
}

func TestReportFileAdapter_BundleText(t *testing.T) {
	entries := []types.BundleEntry{
		{Root: types.RootResources, Path: "data_dir", Type: types.BundleEntryDir},
		{Root: types.RootResources, Path: "data_dir/data_file.txt", Type: types.BundleEntryFile},
		{Root: types.RootFrameworks, Path: "data_dir", Type: types.BundleEntrySymlink, Target: "../Resources/data_dir"},
	}
	var buf bytes.Buffer
	require.NoError(t, NewReportFileAdapter().RenderBundle(&buf, entries, types.OutputFormatText))

	want := "Resources: 1 dirs, 1 files, 0 symlinks\n" +
		"  dir     data_dir\n" +
		"  file    data_dir/data_file.txt\n" +
		"Frameworks: 0 dirs, 0 files, 1 symlinks\n" +
		"  symlink data_dir -> ../Resources/data_dir\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("unexpected bundle text (-want +got):\n%s", diff)
	}
}

func TestReportFileAdapter_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := NewReportFileAdapter().RenderPlan(&buf, samplePlan(), types.OutputFormat("json"))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
