package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bundle-layout/internal/app"
	"bundle-layout/internal/types"
)

type inspectOptions struct {
	Bundle string
	Format string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "List the Resources and Frameworks trees of a built bundle",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Bundle, "bundle", "", "Path of the .app bundle")
	cmd.Flags().StringVar(&opts.Format, "format", string(types.OutputFormatText), "Report format (yaml|text)")
	_ = viper.BindPFlag("bundle", cmd.Flags().Lookup("bundle"))
	return cmd
}

func runInspect(cmd *cobra.Command, opts inspectOptions) error {
	service := newAppService()
	result, err := service.Inspect(app.InspectRequest{
		BundlePath: resolveString(cmd, opts.Bundle, "bundle", "bundle"),
	})
	if err != nil {
		return err
	}
	format := types.OutputFormat(opts.Format)
	return service.Report.RenderBundle(cmd.OutOrStdout(), result.Entries, format)
}
