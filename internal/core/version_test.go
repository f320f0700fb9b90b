package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCurrentVersion(t *testing.T) {
	tests := []struct {
		name     string
		versions []string
		want     string
	}{
		{"single letter", []string{"A"}, "A"},
		{"letters", []string{"A", "C", "B"}, "C"},
		{"pep440", []string{"1.10", "1.9", "1.2"}, "1.10"},
		{"pre-release", []string{"2.0rc1", "2.0", "1.9"}, "2.0"},
		{"debian", []string{"1:1.0", "2.0"}, "1:1.0"},
		{"empty", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, CurrentVersion(tt.versions)); diff != "" {
				t.Fatalf("unexpected current version (-want +got):\n%s", diff)
			}
		})
	}
}

func TestVersionCacheMemoizesParseFailures(t *testing.T) {
	cache := newVersionCache()
	_, ok := cache.pepVersion("not-a-version!!")
	if ok {
		t.Fatal("expected pep440 parse failure")
	}
	if !cache.pepErr["not-a-version!!"] {
		t.Fatal("expected parse failure to be cached")
	}
}
