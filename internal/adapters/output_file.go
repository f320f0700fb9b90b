package adapters

import (
	"bytes"
	"embed"
	"io"
	"os"
	"path/filepath"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"bundle-layout/internal/ports"
	"bundle-layout/internal/types"
)

//go:embed templates/*.tmpl
var reportTemplates embed.FS

// ReportFileAdapter renders layout plans and bundle listings as YAML or
// plain text.
type ReportFileAdapter struct{}

func NewReportFileAdapter() ReportFileAdapter {
	return ReportFileAdapter{}
}

func (a ReportFileAdapter) WritePlan(path string, plan types.LayoutPlan, format types.OutputFormat) error {
	if path == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("plan output path is empty")
	}
	var buf bytes.Buffer
	if err := a.RenderPlan(&buf, plan, format); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create plan output directory").
			WithCause(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write plan output").
			WithCause(err)
	}
	return nil
}

func (a ReportFileAdapter) RenderPlan(w io.Writer, plan types.LayoutPlan, format types.OutputFormat) error {
	switch format {
	case types.OutputFormatYAML, "":
		return encodeYAML(w, plan)
	case types.OutputFormatText:
		return renderTemplate(w, "plan.txt.tmpl", newPlanView(plan))
	default:
		return unknownFormat(format)
	}
}

func (a ReportFileAdapter) RenderBundle(w io.Writer, entries []types.BundleEntry, format types.OutputFormat) error {
	switch format {
	case types.OutputFormatYAML, "":
		return encodeYAML(w, map[string][]types.BundleEntry{"entries": entries})
	case types.OutputFormatText:
		return renderTemplate(w, "bundle.txt.tmpl", newBundleView(entries))
	default:
		return unknownFormat(format)
	}
}

// Template views carry plain strings so sprig string functions accept them.
type planView struct {
	DotReplacement string
	Mkdirs         int
	Copies         int
	Symlinks       int
	Operations     []operationView
}

type operationView struct {
	Type   string
	Path   string
	Target string
	Link   string
}

type bundleView struct {
	Roots []bundleRootView
}

type bundleRootView struct {
	Name     string
	Dirs     int
	Files    int
	Symlinks int
	Entries  []bundleEntryView
}

type bundleEntryView struct {
	Type   string
	Path   string
	Target string
}

func newPlanView(plan types.LayoutPlan) planView {
	view := planView{
		DotReplacement: plan.DotReplacement,
		Mkdirs:         plan.Count(types.OperationMkdir),
		Copies:         plan.Count(types.OperationCopy),
		Symlinks:       plan.Count(types.OperationSymlink),
	}
	for _, op := range plan.Operations {
		view.Operations = append(view.Operations, operationView{
			Type:   string(op.Type),
			Path:   op.RelPath(),
			Target: op.Target,
			Link:   string(op.Link),
		})
	}
	return view
}

func newBundleView(entries []types.BundleEntry) bundleView {
	var view bundleView
	index := map[types.Root]int{}
	for _, entry := range entries {
		i, ok := index[entry.Root]
		if !ok {
			i = len(view.Roots)
			index[entry.Root] = i
			view.Roots = append(view.Roots, bundleRootView{Name: string(entry.Root)})
		}
		root := &view.Roots[i]
		switch entry.Type {
		case types.BundleEntryDir:
			root.Dirs++
		case types.BundleEntrySymlink:
			root.Symlinks++
		default:
			root.Files++
		}
		root.Entries = append(root.Entries, bundleEntryView{
			Type:   string(entry.Type),
			Path:   entry.Path,
			Target: entry.Target,
		})
	}
	return view
}

func encodeYAML(w io.Writer, value any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(value); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode yaml").
			WithCause(err)
	}
	if err := encoder.Close(); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode yaml").
			WithCause(err)
	}
	return nil
}

func renderTemplate(w io.Writer, name string, data any) error {
	tmpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).ParseFS(reportTemplates, "templates/"+name)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to parse template " + name).
			WithCause(err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to render template " + name).
			WithCause(err)
	}
	if _, err := w.Write(bytes.TrimLeft(buf.Bytes(), "\n")); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write report").
			WithCause(err)
	}
	return nil
}

func unknownFormat(format types.OutputFormat) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg("unknown output format " + string(format))
}

var _ ports.ReportPort = ReportFileAdapter{}
