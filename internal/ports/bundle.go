package ports

import (
	"context"

	"bundle-layout/internal/types"
)

// BundleWriterPort materializes a layout plan below <bundle>/Contents.
type BundleWriterPort interface {
	// Prepare ensures Contents holds no Resources or Frameworks root.
	// With clean set, existing roots are removed first.
	Prepare(bundle string, clean bool) error
	Apply(ctx context.Context, bundle string, ops []types.Operation) error
}

type BundleReaderPort interface {
	ReadBundle(bundle string) ([]types.BundleEntry, error)
}
