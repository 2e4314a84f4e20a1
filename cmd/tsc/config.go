package main

import (
	"github.com/piercep/thread-safe-collections/pkg/cfg"
	"github.com/spf13/cobra"
)

func (c *CLI) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Aliases: []string{"cfg"},
		Short:   "Manages configuration",
	}
	cmd.AddCommand(c.configListCmd())
	cmd.AddCommand(c.configInitCmd())
	return cmd
}

func (c *CLI) configListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "print"},
		Short:   "Print effective configuration",
		Run: func(cmd *cobra.Command, args []string) {
			c.SetOutput("values", c.config.Values())
			c.Ok("config values printed")
		},
	}
}

func (c *CLI) configInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "initialize",
		Aliases: []string{"init"},
		Short:   "Initialize configuration from template",
		Run: func(cmd *cobra.Command, args []string) {
			changed, err := c.config.InitializeWithChanged()
			if err != nil {
				c.Error(err)
				return
			}
			c.SetOutput("path", cfg.File())
			if changed {
				c.Changed("config initialized")
			} else {
				c.Ok("config already initialized")
			}
		},
	}
}
