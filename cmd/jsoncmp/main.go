package main

import (
	"errors"
	"fmt"
	"os"

	jsoncmp "github.com/DeepakRathod14/java-custom-automation"
	"github.com/DeepakRathod14/java-custom-automation/cmd/jsoncmp/commands"
)

// commandNames lists every top-level command for typo suggestions.
var commandNames = []string{"compare", "flatten", "random", "mcp", "version", "help"}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run dispatches args to a command and returns the process exit status.
func run(args []string) int {
	if len(args) < 1 {
		printUsage()
		return 1
	}

	command := args[0]
	var handler func([]string) error

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("jsoncmp v%s\n", jsoncmp.Version())
		fmt.Println(jsoncmp.BuildInfo())
		return 0
	case "help", "-h", "--help":
		printUsage()
		return 0
	case "compare":
		handler = commands.HandleCompare
	case "flatten":
		handler = commands.HandleFlatten
	case "random":
		handler = commands.HandleRandom
	case "mcp":
		handler = commands.HandleMCP
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if s := suggestCommand(command); s != "" {
			fmt.Fprintf(os.Stderr, "Did you mean: %s?\n", s)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		return 1
	}

	if err := handler(args[1:]); err != nil {
		if !errors.Is(err, commands.ErrChangesFound) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

// suggestCommand returns the known command closest to input, or "" when no
// command is within an edit distance of 2.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := editDistance(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

// editDistance is the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	fmt.Println(`jsoncmp - Structural JSON/YAML comparison tools

Usage:
  jsoncmp <command> [options]

Commands:
  compare     Compare an actual document against an expected one
  flatten     Flatten a document into dotted leaf paths and values
  random      Print one pseudo-random leaf entry of a document
  mcp         Run the MCP server on stdio
  version     Show version information
  help        Show this help message

Examples:
  jsoncmp compare response.json expected.yaml
  jsoncmp compare --ignore-nulls actual.json expected.json
  jsoncmp flatten --match 'orders.*.id' response.json
  jsoncmp random --seed 7 testdata.yaml

Use "-" as a file path to read from stdin.
Run 'jsoncmp <command> --help' for more information on a command.`)
}
