package policies

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// DefaultDotReplacement replaces dots in directory names that are
// materialized inside Contents/Frameworks.
const DefaultDotReplacement = "__dot__"

const frameworkSuffix = ".framework"

// NamingPolicy decides the physical directory names used in the
// Frameworks root. Codesign rejects dotted directory names there, so dotted
// names get a sanitized physical directory plus an alias symlink. The
// lookup table is scoped to one policy instance (one build).
type NamingPolicy struct {
	replacement string
	sanitized   map[string]string
}

func NewNamingPolicy(replacement string) (NamingPolicy, error) {
	if replacement == "" {
		replacement = DefaultDotReplacement
	}
	if strings.Contains(replacement, ".") || strings.ContainsAny(replacement, `/\`) {
		return NamingPolicy{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid dot replacement %q: must not contain dots or path separators", replacement))
	}
	return NamingPolicy{
		replacement: replacement,
		sanitized:   map[string]string{},
	}, nil
}

func (p NamingPolicy) Replacement() string {
	return p.replacement
}

// IsFrameworkDir reports whether a directory name denotes a .framework bundle.
func IsFrameworkDir(name string) bool {
	return len(name) > len(frameworkSuffix) && strings.HasSuffix(name, frameworkSuffix)
}

// NeedsSanitize reports whether a physical Frameworks directory with this
// name must be renamed.
func (p NamingPolicy) NeedsSanitize(name string) bool {
	return strings.Contains(name, ".") && !IsFrameworkDir(name)
}

// Sanitize returns the physical directory name for name. Names that need
// no sanitization are returned unchanged.
func (p NamingPolicy) Sanitize(name string) string {
	if !p.NeedsSanitize(name) {
		return name
	}
	if cached, ok := p.sanitized[name]; ok {
		return cached
	}
	out := strings.ReplaceAll(name, ".", p.replacement)
	if p.sanitized != nil {
		p.sanitized[name] = out
	}
	return out
}

// CheckSiblings verifies that renaming the given directories does not
// collide with any other entry of the same parent directory.
func (p NamingPolicy) CheckSiblings(parent string, siblings []string, renamed []string) error {
	taken := make(map[string]string, len(siblings))
	for _, name := range siblings {
		taken[name] = name
	}
	sort.Strings(renamed)
	for _, name := range renamed {
		physical := p.Sanitize(name)
		if physical == name {
			continue
		}
		if owner, exists := taken[physical]; exists {
			return errbuilder.New().
				WithCode(errbuilder.CodeAlreadyExists).
				WithMsg(fmt.Sprintf("sanitized name %q for %q collides with %q in %q", physical, name, owner, displayDir(parent)))
		}
		taken[physical] = name
	}
	return nil
}

func displayDir(path string) string {
	if path == "" {
		return "."
	}
	return path
}
