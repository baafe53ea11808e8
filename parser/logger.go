package parser

import "github.com/DeepakRathod14/java-custom-automation/walker"

// Logger is the structured logger used by the parser. It is shared with the
// walker package so one adapter serves every package.
type Logger = walker.Logger

// NopLogger discards all log output.
type NopLogger = walker.NopLogger
