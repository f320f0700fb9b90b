package types

// ResourceEntry is one item to place into the bundle. For symlink entries
// Source holds the verbatim link target and Category decides how the link
// counts towards its directory's classification.
type ResourceEntry struct {
	Source   string       `json:"source" yaml:"source"`
	Dest     string       `json:"dest" yaml:"dest"`
	Kind     ResourceKind `json:"kind" yaml:"kind"`
	Category ResourceKind `json:"category,omitempty" yaml:"category,omitempty"`
}

// IsSymlink reports whether the entry is replicated as a link instead of copied.
func (e ResourceEntry) IsSymlink() bool {
	return e.Kind == ResourceKindSymlink
}

// EffectiveKind is the kind used for classification: the entry kind for
// regular files and the declared category (data by default) for symlinks.
func (e ResourceEntry) EffectiveKind() ResourceKind {
	if e.Kind != ResourceKindSymlink {
		return e.Kind
	}
	if e.Category == ResourceKindBinary {
		return ResourceKindBinary
	}
	return ResourceKindData
}

type Manifest struct {
	Entries []ResourceEntry `json:"entries" yaml:"entries"`
}

// CollectSpec is a single --add-data / --add-binary request.
type CollectSpec struct {
	Source string
	Dest   string
	Kind   ResourceKind
}
