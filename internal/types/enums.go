package types

type ResourceKind string

const (
	ResourceKindData    ResourceKind = "data"
	ResourceKindBinary  ResourceKind = "binary"
	ResourceKindSymlink ResourceKind = "symlink"
)

type Classification string

const (
	ClassificationDataOnly   Classification = "data-only"
	ClassificationBinaryOnly Classification = "binary-only"
	ClassificationMixed      Classification = "mixed"
)

// Root names one of the two top-level bundle directories under Contents.
type Root string

const (
	RootResources  Root = "Resources"
	RootFrameworks Root = "Frameworks"
)

// Other returns the opposite bundle root.
func (r Root) Other() Root {
	if r == RootResources {
		return RootFrameworks
	}
	return RootResources
}

type OperationType string

const (
	OperationMkdir   OperationType = "mkdir"
	OperationCopy    OperationType = "copy"
	OperationSymlink OperationType = "symlink"
)

// LinkLevel records why a symlink operation exists.
type LinkLevel string

const (
	LinkLevelNone       LinkLevel = ""
	LinkLevelDirectory  LinkLevel = "directory"
	LinkLevelLeaf       LinkLevel = "leaf"
	LinkLevelReplicated LinkLevel = "replicated"
	LinkLevelAlias      LinkLevel = "alias"
	LinkLevelVersion    LinkLevel = "version"
)

type OutputFormat string

const (
	OutputFormatYAML OutputFormat = "yaml"
	OutputFormatText OutputFormat = "text"
)
