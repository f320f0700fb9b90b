package adapters

import (
	_ "embed"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"sigs.k8s.io/yaml"

	"bundle-layout/internal/ports"
	"bundle-layout/internal/types"
)

const manifestSchemaURL = "bundle-layout://manifest.schema.json"

//go:embed schema/manifest.schema.json
var manifestSchemaJSON string

var (
	manifestSchemaOnce sync.Once
	manifestSchemaErr  error
	manifestSchema     *jsonschema.Schema
)

type ManifestFileAdapter struct{}

func NewManifestFileAdapter() ManifestFileAdapter {
	return ManifestFileAdapter{}
}

// LoadManifest reads a YAML or JSON manifest, validates it against the
// embedded schema and makes relative file sources absolute. Symlink
// sources are link targets and stay verbatim.
func (a ManifestFileAdapter) LoadManifest(path string) (types.Manifest, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return types.Manifest{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("manifest file not found").
			WithCause(err)
	}
	jsonData, err := yaml.YAMLToJSON(content)
	if err != nil {
		return types.Manifest{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse manifest").
			WithCause(err)
	}
	if err := validateManifest(jsonData); err != nil {
		return types.Manifest{}, err
	}

	var manifest types.Manifest
	if err := json.Unmarshal(jsonData, &manifest); err != nil {
		return types.Manifest{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to decode manifest").
			WithCause(err)
	}

	baseDir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return types.Manifest{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to resolve manifest directory").
			WithCause(err)
	}
	for i, entry := range manifest.Entries {
		if entry.IsSymlink() || filepath.IsAbs(entry.Source) {
			continue
		}
		manifest.Entries[i].Source = filepath.Join(baseDir, filepath.FromSlash(entry.Source))
	}
	return manifest, nil
}

func validateManifest(jsonData []byte) error {
	sch, err := loadManifestSchema()
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to compile manifest schema").
			WithCause(err)
	}
	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to decode manifest").
			WithCause(err)
	}
	if err := sch.Validate(document); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest does not match schema").
			WithCause(err)
	}
	return nil
}

func loadManifestSchema() (*jsonschema.Schema, error) {
	manifestSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(manifestSchemaURL, strings.NewReader(manifestSchemaJSON)); err != nil {
			manifestSchemaErr = err
			return
		}
		manifestSchema, manifestSchemaErr = compiler.Compile(manifestSchemaURL)
	})
	return manifestSchema, manifestSchemaErr
}

var _ ports.ManifestPort = ManifestFileAdapter{}
