// Package root contains the root command for the application
package root

import (
	"fmt"

	"fjacquet/training-report/internal/config"
	"fjacquet/training-report/internal/container"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
	Format string
}

var (
	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "training-report",
		Short: "A CLI tool to report on employee training completions.",
		Long: `training-report reads a JSON file of employee training completions and reports
completion counts per training, the people who completed given trainings in a
fiscal year, and the trainings that are expired or expire within 30 days.`,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				return err
			}
			applyFlagOverrides(cmd, cfg)

			c, err := container.NewContainer(cfg, container.WithLogOutput(cmd.ErrOrStderr()))
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}
			appContainer = c
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if appContainer != nil {
				_ = appContainer.Close()
			}
		},
	}

	// SharedFlags holds the persistent flags accessible to all commands
	SharedFlags = CommonFlags{}

	appContainer *container.Container
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Training records JSON file (default from config, trainings.txt)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Directory for report files (default from config, current directory)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Format, "format", "f", "", "Report format: json, yaml, csv or xlsx (default from config, json)")
}

// applyFlagOverrides copies explicitly set flags over configuration values.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Data.InputFile = SharedFlags.Input
	}
	if flags.Changed("output") {
		cfg.Output.Directory = SharedFlags.Output
	}
	if flags.Changed("format") {
		cfg.Report.Format = SharedFlags.Format
	}
}

// GetContainer returns the container built for the running command.
func GetContainer() *container.Container {
	return appContainer
}

// SetContainer replaces the running container. It is meant for tests that
// execute command handlers directly.
func SetContainer(c *container.Container) {
	appContainer = c
}
