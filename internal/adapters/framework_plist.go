package adapters

import (
	"errors"
	"io/fs"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"howett.net/plist"

	"bundle-layout/internal/ports"
	"bundle-layout/internal/types"
)

type FrameworkPlistAdapter struct{}

func NewFrameworkPlistAdapter() FrameworkPlistAdapter {
	return FrameworkPlistAdapter{}
}

// ReadInfo parses a framework Info.plist in XML or binary form.
func (a FrameworkPlistAdapter) ReadInfo(path string) (types.FrameworkInfo, bool, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return types.FrameworkInfo{}, false, nil
	}
	if err != nil {
		return types.FrameworkInfo{}, false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read " + path).
			WithCause(err)
	}
	var info types.FrameworkInfo
	if _, err := plist.Unmarshal(content, &info); err != nil {
		return types.FrameworkInfo{}, false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse framework Info.plist " + path).
			WithCause(err)
	}
	log.Debug().
		Str("path", path).
		Str("identifier", info.Identifier).
		Str("executable", info.Executable).
		Msg("framework Info.plist found")
	return info, true, nil
}

var _ ports.FrameworkPort = FrameworkPlistAdapter{}
