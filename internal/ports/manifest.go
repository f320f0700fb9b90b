package ports

import "bundle-layout/internal/types"

// ManifestPort loads a resource manifest. Relative entry sources are
// resolved against the manifest's directory.
type ManifestPort interface {
	LoadManifest(path string) (types.Manifest, error)
}

// CollectorPort expands a SRC:DEST collect spec into manifest entries.
type CollectorPort interface {
	Collect(spec types.CollectSpec) ([]types.ResourceEntry, error)
}
