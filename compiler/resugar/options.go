package resugar

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/glossopoeia/resugar/compiler/util"
	"github.com/rjNemo/underscore"
	"gopkg.in/yaml.v3"
)

// Names that display names must never take: the keywords of the surface
// language and the primitives the constant translation emits.
var Keywords = []string{
	"as", "else", "_", "module", "if", "import", "then", "where", "Type", "Record", "record",
	"true", "false",
	"Bool", "String", "Char",
	"U8", "U16", "U32", "U64",
	"I8", "I16", "I32", "I64",
	"F32", "F64",
}

// Options control which sugar the resugarer reconstructs. The zero value
// reproduces the plainest output: binder hints used verbatim, one binder per
// telescope, one argument per application.
type Options struct {
	// Pick display names that cannot capture or be captured.
	AvoidCapture bool `yaml:"avoid_capture"`
	// Render `f a b` as a single application node with two arguments.
	MergeApplications bool `yaml:"merge_applications"`
	// Merge directly nested dependent pis, and nested lambdas, into one telescope.
	CollapseTelescopes bool `yaml:"collapse_telescopes"`
	// Share one type annotation between adjacent parameters of the same type.
	GroupParameters bool `yaml:"group_parameters"`
	// Drop the annotations of parameters hoisted into a definition header,
	// since the definition's claim already determines them.
	ElideHoistedAnnotations bool `yaml:"elide_hoisted_annotations"`
	// Additional names display names must avoid.
	Reserved []string `yaml:"reserved"`

	Logger *slog.Logger `yaml:"-"`
}

func DefaultOptions() Options {
	return Options{
		AvoidCapture:            true,
		CollapseTelescopes:      true,
		GroupParameters:         true,
		ElideHoistedAnnotations: true,
	}
}

// Read options from a YAML file. Settings missing from the file keep their
// default values; unknown settings are an error.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("resugar: reading options: %w", err)
	}
	return ParseOptions(data)
}

func ParseOptions(data []byte) (Options, error) {
	opts := DefaultOptions()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return Options{}, fmt.Errorf("resugar: parsing options: %w", err)
	}
	opts.Reserved = NormalizeNames(opts.Reserved)
	return opts, nil
}

// Trim names and drop empty and repeated ones, keeping the first occurrence.
func NormalizeNames(names []string) []string {
	trimmed := underscore.Map(names, strings.TrimSpace)
	nonEmpty := underscore.Filter(trimmed, func(s string) bool { return s != "" })
	return util.UniqueBy(nonEmpty, func(s string) string { return s })
}
