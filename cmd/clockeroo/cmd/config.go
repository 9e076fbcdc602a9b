package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/clockeroo/internal/config"
)

// errConfigExists is returned when config init would overwrite a file.
var errConfigExists = errors.New("configuration file already exists, use --force to overwrite")

var (
	// force allows config init to overwrite an existing file.
	force bool

	// configCmd groups the configuration subcommands.
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage settings.",
	}

	configInitCmd = &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default settings to a file.",
		Long: `Write the default settings to path, or to the user configuration directory
when no path is given. An existing file is kept unless --force is set.`,
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{annotationSkipSettings: ""},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			path := config.DefaultPath()
			if len(args) > 0 {
				path = args[0]
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%w: %s", errConfigExists, path)
			}

			if err := config.Save(path, config.Default()); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Settings written to %s\n", path)

			return nil
		},
	}

	configShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			encoder := yaml.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent(2)

			if err := encoder.Encode(settings); err != nil {
				return fmt.Errorf("encode settings: %w", err)
			}

			return encoder.Close()
		},
	}
)

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	configInitCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	configCmd.AddCommand(configInitCmd, configShowCmd)
	rootCmd.AddCommand(configCmd)
}
