/*
Copyright © 2023 Glossopoeia
*/
package cmd

import (
	"errors"
	"fmt"

	"github.com/glossopoeia/resugar/compiler/core"
	"github.com/glossopoeia/resugar/compiler/resugar"
	"github.com/hashicorp/go-set/v3"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func newCheckCmd(flags *rootFlags) *cobra.Command {
	checkCmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Check that every definition of a core module can be resugared",
		Long: `Check resugars every definition of a core module without printing it,
reporting each definition that fails. Names used by a definition that the
module does not define are reported as warnings.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd)
			if err != nil {
				return err
			}
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			mod, err := core.DecodeModule(data)
			if err != nil {
				return err
			}

			r := resugar.New(opts)
			logger := opts.Logger.With("section", "check", "module", mod.Name)
			defined := set.From(lo.Map(mod.Definitions, func(d core.Definition, _ int) string { return d.Name }))

			var errs []error
			for _, def := range mod.Definitions {
				if _, _, err := r.Definition(def); err != nil {
					errs = append(errs, err)
					continue
				}
				used := set.From(core.FreeUserNames(def.Ann))
				used.InsertSlice(core.FreeUserNames(def.Term))
				undefined := lo.Filter(used.Slice(), func(n string, _ int) bool { return !defined.Contains(n) })
				slices.Sort(undefined)
				for _, name := range undefined {
					logger.Warn("undefined name", "definition", def.Name, "name", name)
				}
			}
			if err := errors.Join(errs...); err != nil {
				return err
			}

			name := mod.Name
			if name == "" {
				name = "<module>"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d definitions ok\n", name, len(mod.Definitions))
			return nil
		},
	}

	checkCmd.Flags().AddFlagSet(optionFlags())
	return checkCmd
}
