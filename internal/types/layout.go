package types

// DirectoryNode is one directory of the destination tree, inferred from the
// manifest destination paths. Leaf entries live in Files; names are unique
// across Dirs and Files.
type DirectoryNode struct {
	Name           string
	Path           string
	Dirs           map[string]*DirectoryNode
	Files          map[string]ResourceEntry
	Classification Classification
	Framework      bool
}

// NewDirectoryNode returns an empty directory node at the given logical path.
func NewDirectoryNode(name string, path string) *DirectoryNode {
	return &DirectoryNode{
		Name:  name,
		Path:  path,
		Dirs:  map[string]*DirectoryNode{},
		Files: map[string]ResourceEntry{},
	}
}

// PlacementDecision records which root physically holds a path and how the
// other root reaches it.
type PlacementDecision struct {
	Path           string         `yaml:"path"`
	Directory      bool           `yaml:"directory"`
	Classification Classification `yaml:"classification,omitempty"`
	Owner          Root           `yaml:"owner,omitempty"`
	Link           LinkLevel      `yaml:"link,omitempty"`
}

// Operation is a single filesystem mutation relative to the bundle Contents
// directory. Path is the physical location; Target is the copy source or
// the verbatim symlink target.
type Operation struct {
	Type   OperationType `yaml:"type"`
	Root   Root          `yaml:"root"`
	Path   string        `yaml:"path"`
	Target string        `yaml:"target,omitempty"`
	Link   LinkLevel     `yaml:"link,omitempty"`
}

// RelPath is the operation location including its root directory.
func (o Operation) RelPath() string {
	if o.Path == "" {
		return string(o.Root)
	}
	return string(o.Root) + "/" + o.Path
}

type LayoutPlan struct {
	DotReplacement string              `yaml:"dot_replacement"`
	Decisions      []PlacementDecision `yaml:"decisions"`
	Operations     []Operation         `yaml:"operations"`
}

// Count returns the number of operations of the given type.
func (p LayoutPlan) Count(opType OperationType) int {
	count := 0
	for _, op := range p.Operations {
		if op.Type == opType {
			count++
		}
	}
	return count
}
