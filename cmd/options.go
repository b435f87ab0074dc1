package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/glossopoeia/resugar/compiler/concrete"
	"github.com/glossopoeia/resugar/compiler/resugar"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags overriding single settings of the options file. Only flags given on
// the command line take effect.
func optionFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("options", pflag.ContinueOnError)
	fs.Bool("avoid-capture", true, "rename binders that would capture or be captured")
	fs.Bool("merge-applications", false, "print curried applications as a single spine")
	fs.Bool("collapse-telescopes", true, "merge directly nested binders into one telescope")
	fs.Bool("group-parameters", true, "share one annotation between adjacent parameters of the same type")
	fs.Bool("elide-hoisted-annotations", true, "drop annotations of parameters moved into definition headers")
	fs.StringSlice("reserved", nil, "additional names binders must avoid")
	return fs
}

func (f *rootFlags) options(cmd *cobra.Command) (resugar.Options, error) {
	opts := resugar.DefaultOptions()
	if f.config != "" {
		var err error
		if opts, err = resugar.LoadOptions(f.config); err != nil {
			return resugar.Options{}, err
		}
	}

	fs := cmd.Flags()
	overrides := []struct {
		name  string
		field *bool
	}{
		{"avoid-capture", &opts.AvoidCapture},
		{"merge-applications", &opts.MergeApplications},
		{"collapse-telescopes", &opts.CollapseTelescopes},
		{"group-parameters", &opts.GroupParameters},
		{"elide-hoisted-annotations", &opts.ElideHoistedAnnotations},
	}
	for _, o := range overrides {
		if !fs.Changed(o.name) {
			continue
		}
		v, err := fs.GetBool(o.name)
		if err != nil {
			return resugar.Options{}, err
		}
		*o.field = v
	}
	if fs.Changed("reserved") {
		extra, err := fs.GetStringSlice("reserved")
		if err != nil {
			return resugar.Options{}, err
		}
		opts.Reserved = resugar.NormalizeNames(append(opts.Reserved, extra...))
	}

	opts.Logger = f.logger(cmd.ErrOrStderr())
	return opts, nil
}

func (f *rootFlags) logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if f.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func (f *rootFlags) printer(out io.Writer) (*concrete.Printer, error) {
	switch f.color {
	case "always":
		return &concrete.Printer{Color: true}, nil
	case "never":
		return &concrete.Printer{}, nil
	case "auto":
		file, ok := out.(*os.File)
		return &concrete.Printer{Color: ok && isTerminal(file)}, nil
	default:
		return nil, fmt.Errorf("invalid color mode %q, expected auto, always or never", f.color)
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Read the whole input named by the arguments, standard input when there is
// none or it is `-`.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(args[0])
}
