package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bundle-layout/internal/app"
	"bundle-layout/internal/types"
)

type buildOptions struct {
	Plan   planOptions
	Bundle string
	Clean  bool
}

func newBuildCommand() *cobra.Command {
	opts := buildOptions{}
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Write the bundle layout into <bundle>/Contents",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBuild(cmd.Context(), cmd, opts)
		},
	}

	addSourceFlags(cmd, &opts.Plan.Sources)
	addPlanFlags(cmd, &opts.Plan)
	cmd.Flags().StringVar(&opts.Bundle, "bundle", "", "Path of the .app bundle to populate")
	cmd.Flags().BoolVar(&opts.Clean, "clean", false, "Remove existing Contents/Resources and Contents/Frameworks first")

	_ = viper.BindPFlag("bundle", cmd.Flags().Lookup("bundle"))
	_ = viper.BindPFlag("clean", cmd.Flags().Lookup("clean"))

	return cmd
}

func runBuild(ctx context.Context, cmd *cobra.Command, opts buildOptions) error {
	service := newAppService()
	result, err := service.Build(ctx, app.BuildRequest{
		SourceRequest:  resolveSources(cmd, opts.Plan.Sources),
		DotReplacement: resolveString(cmd, opts.Plan.DotReplacement, "dot_replacement", "dot-replacement"),
		BundlePath:     resolveString(cmd, opts.Bundle, "bundle", "bundle"),
		Clean:          resolveBool(cmd, opts.Clean, "clean", "clean"),
		PlanOutput:     resolveString(cmd, opts.Plan.Output, "plan_output", "plan-output"),
		Format:         types.OutputFormat(resolveString(cmd, opts.Plan.Format, "format", "format")),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "built %s (build %s): %d directories, %d files, %d symlinks\n",
		result.BundlePath, result.BuildID, result.Mkdirs, result.Copies, result.Symlinks)
	return nil
}
