package policies

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamingPolicySanitizesDottedNames(t *testing.T) {
	policy, err := NewNamingPolicy("")
	require.NoError(t, err)

	tests := []struct {
		name string
		want string
	}{
		{"mixed.dir", "mixed__dot__dir"},
		{".binary_subdir", "__dot__binary_subdir"},
		{"mixed_subdir.", "mixed_subdir__dot__"},
		{"a.b.c", "a__dot__b__dot__c"},
		{"plain_dir", "plain_dir"},
		{"Dummy.framework", "Dummy.framework"},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, policy.Sanitize(tt.name)); diff != "" {
			t.Fatalf("unexpected sanitized name for %s (-want +got):\n%s", tt.name, diff)
		}
	}
}

func TestNamingPolicyRejectsDottedReplacement(t *testing.T) {
	_, err := NewNamingPolicy("_.")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid dot replacement")

	_, err = NewNamingPolicy("a/b")
	require.Error(t, err)
}

func TestNamingPolicyCustomReplacement(t *testing.T) {
	policy, err := NewNamingPolicy("_DOT_")
	require.NoError(t, err)
	assert.Equal(t, "_DOT_", policy.Replacement())
	assert.Equal(t, "lib_DOT_dir", policy.Sanitize("lib.dir"))
}

func TestIsFrameworkDir(t *testing.T) {
	assert.True(t, IsFrameworkDir("Dummy.framework"))
	assert.False(t, IsFrameworkDir(".framework"))
	assert.False(t, IsFrameworkDir("Dummy.framework.bak"))
	assert.False(t, IsFrameworkDir("framework"))
}

func TestNamingPolicyDetectsSiblingCollision(t *testing.T) {
	policy, err := NewNamingPolicy("")
	require.NoError(t, err)

	err = policy.CheckSiblings("lib", []string{"a.b", "a__dot__b"}, []string{"a.b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "collides")

	require.NoError(t, policy.CheckSiblings("", []string{"a.b", "c.d"}, []string{"a.b", "c.d"}))
}
