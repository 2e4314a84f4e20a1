package main

import (
	"github.com/piercep/thread-safe-collections/pkg/cfg"
	"github.com/spf13/cobra"
	"strings"
)

func (c *CLI) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tsc",
		Short: "Exercises thread-safe collections",

		// needed to properly bind CLI flags with viper values from env and YML files
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			c.configure()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			c.exit()
			return nil
		},
	}
	cmd.AddCommand(c.versionCmd())
	cmd.AddCommand(c.configCmd())
	cmd.AddCommand(c.stressCmd())
	cmd.AddCommand(c.demoCmd())
	c.rootFlags(cmd)
	return cmd
}

func (c *CLI) rootFlags(cmd *cobra.Command) {
	cv := c.config.Values()

	cmd.PersistentFlags().StringVar(&(cv.Input.Format),
		"input-format", cv.Input.Format,
		"Controls input format ("+strings.Join(cfg.InputFormats(), "|")+")")
	cmd.PersistentFlags().StringVar(&(cv.Input.File),
		"input-file", cv.Input.File,
		"Provides input as file path")
	cmd.PersistentFlags().StringVar(&(cv.Input.String),
		"input-string", cv.Input.String,
		"Provides input as string")
	cmd.PersistentFlags().StringVar(&(cv.Output.Format),
		"output-format", cv.Output.Format,
		"Controls output format ("+strings.Join(cfg.OutputFormats(), "|")+")")
	cmd.PersistentFlags().StringVar(&(cv.Output.File),
		"output-file", cv.Output.File,
		"Controls output file path")
	cmd.PersistentFlags().StringVar(&(cv.Output.Value),
		"output-value", cv.Output.Value,
		"Limits output to single variable")
	cmd.PersistentFlags().StringVar(&(cv.Output.Query),
		"output-query", cv.Output.Query,
		"Filters output data using JMESPath query")
	cmd.PersistentFlags().BoolVar(&(cv.Output.NoColor),
		"no-color", cv.Output.NoColor,
		"Disables colors and progress bars")
}
