package app

import (
	"github.com/google/uuid"

	"bundle-layout/internal/adapters"
	"bundle-layout/internal/ports"
)

type Service struct {
	Manifest   ports.ManifestPort
	Collector  ports.CollectorPort
	Framework  ports.FrameworkPort
	Writer     ports.BundleWriterPort
	Reader     ports.BundleReaderPort
	Report     ports.ReportPort
	NewBuildID func() string
}

func NewService() Service {
	return Service{
		Manifest:   adapters.NewManifestFileAdapter(),
		Collector:  adapters.NewCollectorAdapter(),
		Framework:  adapters.NewFrameworkPlistAdapter(),
		Writer:     adapters.NewBundleFSAdapter(),
		Reader:     adapters.NewBundleReaderAdapter(),
		Report:     adapters.NewReportFileAdapter(),
		NewBuildID: uuid.NewString,
	}
}
