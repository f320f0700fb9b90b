package app

import (
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

func (s Service) Inspect(req InspectRequest) (InspectResult, error) {
	bundlePath := strings.TrimSpace(req.BundlePath)
	if bundlePath == "" {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("bundle path is required")
	}
	entries, err := s.Reader.ReadBundle(bundlePath)
	if err != nil {
		return InspectResult{}, err
	}
	return InspectResult{Entries: entries}, nil
}
