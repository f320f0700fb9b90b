package ports

import (
	"io"

	"bundle-layout/internal/types"
)

type ReportPort interface {
	WritePlan(path string, plan types.LayoutPlan, format types.OutputFormat) error
	RenderPlan(w io.Writer, plan types.LayoutPlan, format types.OutputFormat) error
	RenderBundle(w io.Writer, entries []types.BundleEntry, format types.OutputFormat) error
}
