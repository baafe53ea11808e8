// Package options provides validation shared by the functional options of
// the parser, differ and MCP server packages.
package options

import (
	"strings"

	"github.com/DeepakRathod14/java-custom-automation/cmperrors"
)

// Source names one way of supplying an input and whether it was set.
type Source struct {
	Name string
	Set  bool
}

// ExactlyOne returns a *cmperrors.ConfigError unless exactly one of sources
// is set. input names the input being configured, e.g. "actual".
func ExactlyOne(input string, sources ...Source) error {
	names := make([]string, 0, len(sources))
	var set []string
	for _, s := range sources {
		names = append(names, s.Name)
		if s.Set {
			set = append(set, s.Name)
		}
	}

	switch len(set) {
	case 1:
		return nil
	case 0:
		return &cmperrors.ConfigError{
			Option:  input,
			Message: "must specify an input source (use " + strings.Join(names, ", ") + ")",
		}
	default:
		return &cmperrors.ConfigError{
			Option:  input,
			Value:   strings.Join(set, ", "),
			Message: "must specify exactly one input source",
		}
	}
}

// NonNegative returns a *cmperrors.ConfigError when v is negative.
func NonNegative(option string, v int64) error {
	if v < 0 {
		return &cmperrors.ConfigError{Option: option, Value: v, Message: "must not be negative"}
	}
	return nil
}
