package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bundle-layout/internal/app"
)

// sourceOptions are the resource inputs shared by validate, plan and build.
type sourceOptions struct {
	Manifest  string
	AddData   []string
	AddBinary []string
}

func addSourceFlags(cmd *cobra.Command, opts *sourceOptions) {
	cmd.Flags().StringVar(&opts.Manifest, "manifest", "", "Resource manifest path (YAML or JSON)")
	cmd.Flags().StringArrayVar(&opts.AddData, "add-data", nil, "Data resource to collect as SRC:DEST (repeatable)")
	cmd.Flags().StringArrayVar(&opts.AddBinary, "add-binary", nil, "Binary resource to collect as SRC:DEST (repeatable)")
	_ = viper.BindPFlag("manifest", cmd.Flags().Lookup("manifest"))
	_ = viper.BindPFlag("add_data", cmd.Flags().Lookup("add-data"))
	_ = viper.BindPFlag("add_binary", cmd.Flags().Lookup("add-binary"))
}

func resolveSources(cmd *cobra.Command, opts sourceOptions) app.SourceRequest {
	return app.SourceRequest{
		ManifestPath: resolveString(cmd, opts.Manifest, "manifest", "manifest"),
		AddData:      resolveStrings(cmd, opts.AddData, "add_data", "add-data"),
		AddBinary:    resolveStrings(cmd, opts.AddBinary, "add_binary", "add-binary"),
	}
}

type validateOptions struct {
	Sources sourceOptions
}

func newValidateCommand() *cobra.Command {
	opts := validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate resources and report directory classification",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd.Context(), cmd, opts)
		},
	}
	addSourceFlags(cmd, &opts.Sources)
	return cmd
}

func runValidate(ctx context.Context, cmd *cobra.Command, opts validateOptions) error {
	service := newAppService()
	result, err := service.Validate(ctx, app.ValidateRequest{
		SourceRequest: resolveSources(cmd, opts.Sources),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "validated: %d entries\n", result.Entries)
	fmt.Fprintf(cmd.OutOrStdout(), "directories: %d data-only, %d binary-only, %d mixed\n",
		result.Summary.DataOnly, result.Summary.BinaryOnly, result.Summary.Mixed)
	return nil
}

func newAppService() app.Service {
	return app.NewService()
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveStrings(cmd *cobra.Command, values []string, key string, flagName string) []string {
	if cmd == nil {
		if len(values) > 0 {
			return values
		}
		return viper.GetStringSlice(key)
	}
	if flagChanged(cmd, flagName) {
		return values
	}
	return viper.GetStringSlice(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
