package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bundle-layout/internal/app"
	"bundle-layout/internal/policies"
	"bundle-layout/internal/types"
)

type planOptions struct {
	Sources        sourceOptions
	DotReplacement string
	Output         string
	Format         string
}

func addPlanFlags(cmd *cobra.Command, opts *planOptions) {
	cmd.Flags().StringVar(&opts.DotReplacement, "dot-replacement", policies.DefaultDotReplacement, "Replacement for dots in Frameworks directory names")
	cmd.Flags().StringVar(&opts.Output, "plan-output", "", "Write the layout plan to this file")
	cmd.Flags().StringVar(&opts.Format, "format", string(types.OutputFormatYAML), "Report format (yaml|text)")
	_ = viper.BindPFlag("dot_replacement", cmd.Flags().Lookup("dot-replacement"))
	_ = viper.BindPFlag("plan_output", cmd.Flags().Lookup("plan-output"))
	_ = viper.BindPFlag("format", cmd.Flags().Lookup("format"))
}

func newPlanCommand() *cobra.Command {
	opts := planOptions{}
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Compute the bundle layout without touching the filesystem",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlan(cmd.Context(), cmd, opts)
		},
	}
	addSourceFlags(cmd, &opts.Sources)
	addPlanFlags(cmd, &opts)
	return cmd
}

func runPlan(ctx context.Context, cmd *cobra.Command, opts planOptions) error {
	service := newAppService()
	format := types.OutputFormat(resolveString(cmd, opts.Format, "format", "format"))
	output := resolveString(cmd, opts.Output, "plan_output", "plan-output")
	result, err := service.Plan(ctx, app.PlanRequest{
		SourceRequest:  resolveSources(cmd, opts.Sources),
		DotReplacement: resolveString(cmd, opts.DotReplacement, "dot_replacement", "dot-replacement"),
		OutputPath:     output,
		Format:         format,
	})
	if err != nil {
		return err
	}
	if output != "" {
		return nil
	}
	return service.Report.RenderPlan(cmd.OutOrStdout(), result.Plan, format)
}
