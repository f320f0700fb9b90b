package types

// FrameworkInfo is the subset of a framework Info.plist the resolver cares about.
type FrameworkInfo struct {
	Executable  string `plist:"CFBundleExecutable"`
	Identifier  string `plist:"CFBundleIdentifier"`
	PackageType string `plist:"CFBundlePackageType"`
	Version     string `plist:"CFBundleShortVersionString"`
}

// FrameworkBinary describes a binary entry that lives inside a framework
// version directory.
type FrameworkBinary struct {
	FrameworkPath string
	Version       string
	Entry         ResourceEntry
}
