// Package cli defines the qrstudio command tree.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/cristianadrielbraun/qrstudio/internal/config"
)

// NewRootCommand builds the root command with every subcommand attached.
func NewRootCommand() *cobra.Command {
	flags := &config.Flags{}

	root := &cobra.Command{
		Use:           config.AppName,
		Short:         "Design, preview and export styled QR codes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&flags.ConfigPath, "config", "c", "config.yaml", "path to the yaml config file")
	root.PersistentFlags().BoolVar(&flags.Debug, "debug", false, "enable debug logging")

	root.AddCommand(newServeCommand(flags), newRenderCommand(flags))
	return root
}
