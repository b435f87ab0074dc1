/*
Copyright © 2023 Glossopoeia
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Flags shared by every subcommand.
type rootFlags struct {
	config  string
	verbose bool
	color   string
}

// newRootCmd represents the base command when called without any subcommands
func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	rootCmd := &cobra.Command{
		Use:   "resugar",
		Short: "Print elaborated core terms as surface syntax",
		Long: `Resugar reads core modules written as YAML documents and prints them
back as surface syntax, with named binders, arrows, telescopes and
definition headers restored.

Options are read from the file given with --config and can be overridden
with flags on each subcommand.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&flags.config, "config", "", "YAML file with resugaring options")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log resugaring decisions to stderr")
	rootCmd.PersistentFlags().StringVar(&flags.color, "color", "auto", "highlight output: auto, always or never")

	rootCmd.AddCommand(newPrintCmd(flags))
	rootCmd.AddCommand(newCheckCmd(flags))
	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := newRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}
