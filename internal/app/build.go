package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"bundle-layout/internal/types"
)

func (s Service) Build(ctx context.Context, req BuildRequest) (BuildResult, error) {
	bundlePath := strings.TrimSpace(req.BundlePath)
	if bundlePath == "" {
		return BuildResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("bundle path is required")
	}
	buildID := s.NewBuildID()
	logger := log.Ctx(ctx).With().Str("build_id", buildID).Logger()
	ctx = logger.WithContext(ctx)

	planned, err := s.Plan(ctx, PlanRequest{
		SourceRequest:  req.SourceRequest,
		DotReplacement: req.DotReplacement,
		OutputPath:     req.PlanOutput,
		Format:         req.Format,
	})
	if err != nil {
		return BuildResult{}, err
	}
	if err := s.Writer.Prepare(bundlePath, req.Clean); err != nil {
		return BuildResult{}, err
	}
	if err := s.Writer.Apply(ctx, bundlePath, planned.Plan.Operations); err != nil {
		return BuildResult{}, err
	}

	result := BuildResult{
		BuildID:    buildID,
		BundlePath: bundlePath,
		Mkdirs:     planned.Plan.Count(types.OperationMkdir),
		Copies:     planned.Plan.Count(types.OperationCopy),
		Symlinks:   planned.Plan.Count(types.OperationSymlink),
	}
	logger.Info().
		Str("bundle", bundlePath).
		Int("copies", result.Copies).
		Int("symlinks", result.Symlinks).
		Msg("bundle layout built")
	return result, nil
}
