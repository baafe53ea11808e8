package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/DeepakRathod14/java-custom-automation/flattener"
	"github.com/DeepakRathod14/java-custom-automation/internal/cliutil"
	"github.com/DeepakRathod14/java-custom-automation/internal/maputil"
	"github.com/DeepakRathod14/java-custom-automation/walker"
)

// FlattenFlags contains flags for the flatten command
type FlattenFlags struct {
	Format    string
	Match     patternFlag
	Overrides overrideFlag
	MaxDepth  int
	Verbose   bool
}

// FlattenOutput is the structured form of the flatten command's output.
type FlattenOutput struct {
	Source  string            `json:"source" yaml:"source"`
	Applied []string          `json:"applied,omitempty" yaml:"applied,omitempty"`
	Total   int               `json:"total" yaml:"total"`
	Entries []flattener.Entry `json:"entries" yaml:"entries"`
}

// SetupFlattenFlags creates and configures a FlagSet for the flatten command.
// Returns the FlagSet and a FlattenFlags struct with bound flag variables.
func SetupFlattenFlags() (*flag.FlagSet, *FlattenFlags) {
	fs := flag.NewFlagSet("flatten", flag.ContinueOnError)
	flags := &FlattenFlags{Overrides: make(overrideFlag)}

	fs.StringVar(&flags.Format, "format", cliutil.FormatText, "output format: text, json, or yaml")
	fs.Var(&flags.Match, "match", "only print paths matching this wildcard pattern (repeatable)")
	fs.Var(&flags.Match, "m", "only print paths matching this wildcard pattern (repeatable)")
	fs.Var(flags.Overrides, "set", "override an existing leaf before flattening, as path=value (repeatable)")
	fs.IntVar(&flags.MaxDepth, "max-depth", walker.DefaultMaxDepth, "maximum nesting depth to flatten")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log debug output to stderr")
	fs.BoolVar(&flags.Verbose, "v", false, "log debug output to stderr")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: jsoncmp flatten [flags] <file>\n\n")
		cliutil.Writef(fs.Output(), "Flatten a JSON/YAML document into dotted leaf paths and values.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nPaths:\n")
		cliutil.Writef(fs.Output(), "  Object keys are joined with '.', array elements use an [i] segment:\n")
		cliutil.Writef(fs.Output(), "    orders.[0].id=1\n")
		cliutil.Writef(fs.Output(), "  Null values are omitted.\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  jsoncmp flatten response.json\n")
		cliutil.Writef(fs.Output(), "  jsoncmp flatten --match 'orders.*.id' response.json\n")
		cliutil.Writef(fs.Output(), "  jsoncmp flatten --set database.host=db2 --format yaml config.yaml\n")
		cliutil.Writef(fs.Output(), "  cat response.json | jsoncmp flatten -\n")
	}

	return fs, flags
}

// HandleFlatten executes the flatten command
func HandleFlatten(args []string) error {
	fs, flags := SetupFlattenFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("flatten command requires exactly one file path")
	}
	path := fs.Arg(0)

	if err := cliutil.ValidateFormat(flags.Format); err != nil {
		return err
	}
	if flags.MaxDepth <= 0 {
		return fmt.Errorf("max-depth must be positive, got %d", flags.MaxDepth)
	}

	logger := newLogger(flags.Verbose)
	doc, err := parseDocument(path, logger)
	if err != nil {
		return fmt.Errorf("parsing document: %w", err)
	}

	opts := []flattener.Option{
		flattener.WithLogger(logger),
		flattener.WithMaxDepth(flags.MaxDepth),
	}
	var applied []string
	if len(flags.Overrides) > 0 {
		applied = flattener.Override(doc.Document, flags.Overrides, opts...)
		for _, key := range maputil.SortedKeys(flags.Overrides) {
			if !slices.Contains(applied, key) {
				cliutil.Writef(os.Stderr, "Warning: override %s does not match an existing leaf\n", key)
			}
		}
	}

	flat := flattener.Flatten(doc.Document, opts...).Filter(flags.Match...)

	if flags.Format == cliutil.FormatJSON || flags.Format == cliutil.FormatYAML {
		return cliutil.WriteStructured(os.Stdout, FlattenOutput{
			Source:  FormatSourcePath(path),
			Applied: applied,
			Total:   flat.Len(),
			Entries: flat.Entries(),
		}, flags.Format)
	}

	for _, e := range flat.Entries() {
		cliutil.Writef(os.Stdout, "%s\n", e)
	}
	return nil
}
