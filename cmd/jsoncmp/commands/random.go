package commands

import (
	"errors"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/DeepakRathod14/java-custom-automation/flattener"
	"github.com/DeepakRathod14/java-custom-automation/internal/cliutil"
)

// RandomFlags contains flags for the random command
type RandomFlags struct {
	Format  string
	Seed    uint64
	Match   patternFlag
	Verbose bool
}

// SetupRandomFlags creates and configures a FlagSet for the random command.
// Returns the FlagSet and a RandomFlags struct with bound flag variables.
func SetupRandomFlags() (*flag.FlagSet, *RandomFlags) {
	fs := flag.NewFlagSet("random", flag.ContinueOnError)
	flags := &RandomFlags{}

	fs.StringVar(&flags.Format, "format", cliutil.FormatText, "output format: text, json, or yaml")
	fs.Uint64Var(&flags.Seed, "seed", 0, "seed for a reproducible pick (default: random)")
	fs.Var(&flags.Match, "match", "pick only among paths matching this wildcard pattern (repeatable)")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log debug output to stderr")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: jsoncmp random [flags] <file>\n\n")
		cliutil.Writef(fs.Output(), "Print one pseudo-random leaf entry of a JSON/YAML document.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  jsoncmp random testdata.yaml\n")
		cliutil.Writef(fs.Output(), "  jsoncmp random --seed 7 --match 'users.*' testdata.yaml\n")
	}

	return fs, flags
}

// HandleRandom executes the random command
func HandleRandom(args []string) error {
	fs, flags := SetupRandomFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("random command requires exactly one file path")
	}
	path := fs.Arg(0)

	if err := cliutil.ValidateFormat(flags.Format); err != nil {
		return err
	}

	seeded := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seeded = true
		}
	})
	var rng *rand.Rand
	if seeded {
		rng = rand.New(rand.NewPCG(flags.Seed, flags.Seed))
	}

	logger := newLogger(flags.Verbose)
	doc, err := parseDocument(path, logger)
	if err != nil {
		return fmt.Errorf("parsing document: %w", err)
	}

	entry, ok := pickEntry(doc.Document, rng, flags.Match, flattener.WithLogger(logger))
	if !ok {
		return fmt.Errorf("%s has no matching leaf entries", FormatSourcePath(path))
	}

	if flags.Format == cliutil.FormatJSON || flags.Format == cliutil.FormatYAML {
		return cliutil.WriteStructured(os.Stdout, entry, flags.Format)
	}
	cliutil.Writef(os.Stdout, "%s\n", entry)
	return nil
}

// pickEntry chooses among the leaves matching patterns, or all leaves when
// no pattern is given.
func pickEntry(root any, rng *rand.Rand, patterns []string, opts ...flattener.Option) (flattener.Entry, bool) {
	if len(patterns) == 0 {
		return flattener.RandomEntry(root, rng, opts...)
	}
	entries := flattener.Flatten(root, opts...).Filter(patterns...).Entries()
	if len(entries) == 0 {
		return flattener.Entry{}, false
	}
	if rng == nil {
		return entries[rand.IntN(len(entries))], true
	}
	return entries[rng.IntN(len(entries))], true
}
