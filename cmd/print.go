/*
Copyright © 2023 Glossopoeia
*/
package cmd

import (
	"fmt"

	"github.com/glossopoeia/resugar/compiler/core"
	"github.com/glossopoeia/resugar/compiler/resugar"
	"github.com/spf13/cobra"
)

func newPrintCmd(flags *rootFlags) *cobra.Command {
	var single bool
	printCmd := &cobra.Command{
		Use:   "print [file]",
		Short: "Print a core module as surface syntax",
		Long: `Print reads a core module from the given file, or standard input, and
writes it back as a surface module: a claim and a definition for each
definition of the core module, in order.

With --term the input is a single core term instead of a module.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd)
			if err != nil {
				return err
			}
			printer, err := flags.printer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			r := resugar.New(opts)

			if single {
				term, err := core.DecodeTerm(data)
				if err != nil {
					return err
				}
				res, err := r.Term(term)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), printer.Term(res))
				return nil
			}

			mod, err := core.DecodeModule(data)
			if err != nil {
				return err
			}
			res, err := r.Module(mod)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), printer.Module(res))
			return nil
		},
	}

	printCmd.Flags().BoolVarP(&single, "term", "t", false, "read a single term instead of a module")
	printCmd.Flags().AddFlagSet(optionFlags())
	return printCmd
}
