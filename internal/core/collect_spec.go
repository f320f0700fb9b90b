package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"bundle-layout/internal/types"
)

// ParseCollectSpec splits a raw "SRC:DEST" pair as accepted by --add-data
// and --add-binary. DEST names the destination directory; a missing DEST
// means the bundle content root.
func ParseCollectSpec(raw string, kind types.ResourceKind) (types.CollectSpec, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return types.CollectSpec{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("empty collect spec")
	}
	if kind != types.ResourceKindData && kind != types.ResourceKindBinary {
		return types.CollectSpec{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid collect kind: %s", kind))
	}
	source, dest, found := strings.Cut(raw, ":")
	source = strings.TrimSpace(source)
	dest = strings.TrimSpace(dest)
	if source == "" || (found && dest == "") {
		return types.CollectSpec{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid collect spec: %s", raw))
	}
	if !found {
		dest = "."
	}
	return types.CollectSpec{
		Source: source,
		Dest:   dest,
		Kind:   kind,
	}, nil
}
