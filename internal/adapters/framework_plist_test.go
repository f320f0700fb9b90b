package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"howett.net/plist"

	"bundle-layout/internal/types"
)

func TestFrameworkPlistAdapter_ReadInfo(t *testing.T) {
	want := types.FrameworkInfo{
		Executable:  "Dummy",
		Identifier:  "org.example.Dummy",
		PackageType: "FMWK",
		Version:     "1.0",
	}
	content, err := plist.Marshal(want, plist.XMLFormat)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "Info.plist")
	require.NoError(t, os.WriteFile(path, content, 0644))

	info, found, err := NewFrameworkPlistAdapter().ReadInfo(path)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, want, info)
}

func TestFrameworkPlistAdapter_Missing(t *testing.T) {
	_, found, err := NewFrameworkPlistAdapter().ReadInfo(filepath.Join(t.TempDir(), "Info.plist"))
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFrameworkPlistAdapter_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Info.plist")
	require.NoError(t, os.WriteFile(path, []byte("<plist><dict><key>"), 0644))

	_, _, err := NewFrameworkPlistAdapter().ReadInfo(path)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
