package types

type BundleEntryType string

const (
	BundleEntryDir     BundleEntryType = "dir"
	BundleEntryFile    BundleEntryType = "file"
	BundleEntrySymlink BundleEntryType = "symlink"
)

// BundleEntry is one path found while inspecting a built bundle.
type BundleEntry struct {
	Root   Root            `yaml:"root"`
	Path   string          `yaml:"path"`
	Type   BundleEntryType `yaml:"type"`
	Target string          `yaml:"target,omitempty"`
}

type ClassificationSummary struct {
	DataOnly   int `yaml:"data_only"`
	BinaryOnly int `yaml:"binary_only"`
	Mixed      int `yaml:"mixed"`
}
