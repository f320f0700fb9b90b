package app

import "bundle-layout/internal/types"

// SourceRequest names where resource entries come from. Any combination
// may be given; collected entries follow manifest entries.
type SourceRequest struct {
	ManifestPath string
	AddData      []string
	AddBinary    []string
}

type ValidateRequest struct {
	SourceRequest
}

type ValidateResult struct {
	Entries int
	Summary types.ClassificationSummary
}

type PlanRequest struct {
	SourceRequest
	DotReplacement string
	OutputPath     string
	Format         types.OutputFormat
}

type PlanResult struct {
	Entries int
	Summary types.ClassificationSummary
	Plan    types.LayoutPlan
}

type BuildRequest struct {
	SourceRequest
	DotReplacement string
	BundlePath     string
	Clean          bool
	PlanOutput     string
	Format         types.OutputFormat
}

type BuildResult struct {
	BuildID    string
	BundlePath string
	Mkdirs     int
	Copies     int
	Symlinks   int
}

type InspectRequest struct {
	BundlePath string
}

type InspectResult struct {
	Entries []types.BundleEntry
}
