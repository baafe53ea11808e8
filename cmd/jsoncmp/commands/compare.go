package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	jsoncmp "github.com/DeepakRathod14/java-custom-automation"
	"github.com/DeepakRathod14/java-custom-automation/differ"
	"github.com/DeepakRathod14/java-custom-automation/internal/cliutil"
	"github.com/DeepakRathod14/java-custom-automation/walker"
)

// CompareFlags contains flags for the compare command
type CompareFlags struct {
	Format      string
	IgnoreNulls bool
	MaxDepth    int
	Verbose     bool
}

// SetupCompareFlags creates and configures a FlagSet for the compare command.
// Returns the FlagSet and a CompareFlags struct with bound flag variables.
func SetupCompareFlags() (*flag.FlagSet, *CompareFlags) {
	fs := flag.NewFlagSet("compare", flag.ContinueOnError)
	flags := &CompareFlags{}

	fs.StringVar(&flags.Format, "format", cliutil.FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.IgnoreNulls, "ignore-nulls", false, "compare flattened leaf values instead of structure")
	fs.IntVar(&flags.MaxDepth, "max-depth", walker.DefaultMaxDepth, "maximum nesting depth to compare")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log debug output to stderr")
	fs.BoolVar(&flags.Verbose, "v", false, "log debug output to stderr")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: jsoncmp compare [flags] <actual> <expected>\n\n")
		cliutil.Writef(fs.Output(), "Compare an actual JSON/YAML document against an expected one.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nModes:\n")
		cliutil.Writef(fs.Output(), "  Default (Structural):\n")
		cliutil.Writef(fs.Output(), "    Every field of expected must match actual. Extra fields in actual are\n")
		cliutil.Writef(fs.Output(), "    ignored and null or absent actual fields are skipped.\n\n")
		cliutil.Writef(fs.Output(), "  --ignore-nulls:\n")
		cliutil.Writef(fs.Output(), "    Both documents are flattened to dotted paths; every expected path must\n")
		cliutil.Writef(fs.Output(), "    exist in actual with the same rendered value.\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  jsoncmp compare response.json expected.yaml\n")
		cliutil.Writef(fs.Output(), "  curl -s https://api.example.com/users/1 | jsoncmp compare - expected.json\n")
		cliutil.Writef(fs.Output(), "  jsoncmp compare --ignore-nulls --format json actual.json expected.json\n")
		cliutil.Writef(fs.Output(), "\nExit Status:\n")
		cliutil.Writef(fs.Output(), "  0    Documents match\n")
		cliutil.Writef(fs.Output(), "  1    Differences found, or an error occurred\n")
	}

	return fs, flags
}

// HandleCompare executes the compare command. It returns ErrChangesFound
// when the documents differ.
func HandleCompare(args []string) error {
	fs, flags := SetupCompareFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("compare command requires exactly two file paths")
	}
	actualPath, expectedPath := fs.Arg(0), fs.Arg(1)
	if actualPath == StdinFilePath && expectedPath == StdinFilePath {
		return fmt.Errorf("only one document can be read from stdin")
	}

	if err := cliutil.ValidateFormat(flags.Format); err != nil {
		return err
	}

	logger := newLogger(flags.Verbose)
	startTime := time.Now()

	actual, err := parseDocument(actualPath, logger)
	if err != nil {
		return fmt.Errorf("parsing actual: %w", err)
	}
	expected, err := parseDocument(expectedPath, logger)
	if err != nil {
		return fmt.Errorf("parsing expected: %w", err)
	}

	mode := differ.ModeStructural
	if flags.IgnoreNulls {
		mode = differ.ModeIgnoreNulls
	}
	result, err := differ.CompareWithOptions(
		differ.WithActualParsed(*actual),
		differ.WithExpectedParsed(*expected),
		differ.WithMode(mode),
		differ.WithMaxDepth(flags.MaxDepth),
		differ.WithLogger(logger),
	)
	totalTime := time.Since(startTime)
	if err != nil {
		return fmt.Errorf("comparing documents: %w", err)
	}

	if flags.Format == cliutil.FormatJSON || flags.Format == cliutil.FormatYAML {
		if err := cliutil.WriteStructured(os.Stdout, result, flags.Format); err != nil {
			return err
		}
		if !result.Equal {
			return ErrChangesFound
		}
		return nil
	}

	cliutil.Writef(os.Stdout, "JSON Structural Compare\n")
	cliutil.Writef(os.Stdout, "=======================\n\n")
	cliutil.Writef(os.Stdout, "jsoncmp version: %s\n", jsoncmp.Version())
	cliutil.Writef(os.Stdout, "Actual: %s\n", FormatSourcePath(actualPath))
	cliutil.Writef(os.Stdout, "Expected: %s\n", FormatSourcePath(expectedPath))
	cliutil.Writef(os.Stdout, "Mode: %s\n", result.Mode)
	cliutil.Writef(os.Stdout, "Total Time: %v\n\n", totalTime)

	if result.Equal {
		cliutil.Passf(os.Stdout, "✓ Documents match")
		return nil
	}

	cliutil.Writef(os.Stdout, "Changes (%d):\n", len(result.Changes))
	for _, change := range result.Changes {
		cliutil.Writef(os.Stdout, "  [%s] %s\n", change.Kind, indent(change.Message))
	}
	cliutil.Writef(os.Stdout, "\n")
	cliutil.Failf(os.Stdout, "✗ %d difference(s) found", len(result.Changes))
	return ErrChangesFound
}

// indent aligns continuation lines of multi-line change messages.
func indent(msg string) string {
	return strings.ReplaceAll(msg, "\n", "\n    ")
}
