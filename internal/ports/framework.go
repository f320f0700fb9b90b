package ports

import "bundle-layout/internal/types"

type FrameworkPort interface {
	// ReadInfo parses an Info.plist. The boolean is false when the file
	// does not exist.
	ReadInfo(path string) (types.FrameworkInfo, bool, error)
}
