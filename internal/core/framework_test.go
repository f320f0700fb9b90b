package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bundle-layout/internal/types"
)

func TestFrameworkBinaryOf(t *testing.T) {
	fw, ok := FrameworkBinaryOf(binary("mixed_dir/Dummy.framework/Versions/A/Dummy"))
	require.True(t, ok)
	assert.Equal(t, "mixed_dir/Dummy.framework", fw.FrameworkPath)
	assert.Equal(t, "A", fw.Version)
	if diff := cmp.Diff("mixed_dir/Dummy.framework/Versions/A/Resources/Info.plist", InfoPlistDest(fw)); diff != "" {
		t.Fatalf("unexpected Info.plist dest (-want +got):\n%s", diff)
	}
}

func TestFrameworkBinaryOfRejectsOtherLayouts(t *testing.T) {
	for _, entry := range []types.ResourceEntry{
		data("Dummy.framework/Versions/A/Dummy"),
		binary("Dummy.framework/Dummy"),
		binary("Dummy.framework/Versions/A/Libraries/libx.dylib"),
		binary("lib/binary.dylib"),
	} {
		_, ok := FrameworkBinaryOf(entry)
		assert.False(t, ok, entry.Dest)
	}
}

func TestCurrentVersionForSkipsExplicitCurrent(t *testing.T) {
	root, _ := classifiedTree(t, []types.ResourceEntry{
		binary("Dummy.framework/Versions/A/Dummy"),
		symlink("Dummy.framework/Versions/Current", "A", types.ResourceKindBinary),
	})
	assert.Empty(t, currentVersionFor(root.Dirs["Dummy.framework"]))

	root, _ = classifiedTree(t, []types.ResourceEntry{
		binary("Other.framework/Versions/B/Other"),
	})
	assert.Equal(t, "B", currentVersionFor(root.Dirs["Other.framework"]))
}
