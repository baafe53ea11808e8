package flattener

import (
	"github.com/DeepakRathod14/java-custom-automation/walker"
)

// Logger is the structured logging interface, shared with the walker.
type Logger = walker.Logger

// Option configures a flatten or path-access operation.
type Option func(*config)

type config struct {
	walkerOpts []walker.Option
	logger     Logger
	ignoreCase bool
}

func applyOptions(opts ...Option) *config {
	cfg := &config{logger: walker.NopLogger{}}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func (c *config) walker() *walker.Walker {
	return walker.New(c.walkerOpts...)
}

// WithLogger sets the logger for reflection failures, skipped subtrees and
// rejected overrides. A nil logger is ignored.
func WithLogger(l Logger) Option {
	return func(c *config) {
		if l == nil {
			return
		}
		c.logger = l
		c.walkerOpts = append(c.walkerOpts, walker.WithLogger(l))
	}
}

// WithMaxDepth sets the maximum nesting depth (default 100).
// Non-positive values are ignored.
func WithMaxDepth(depth int) Option {
	return func(c *config) {
		c.walkerOpts = append(c.walkerOpts, walker.WithMaxDepth(depth))
	}
}

// WithConverters replaces the leaf converter registry.
func WithConverters(conv *walker.Converters) Option {
	return func(c *config) {
		c.walkerOpts = append(c.walkerOpts, walker.WithConverters(conv))
	}
}

// WithTagName sets the struct tag used for bean property keys (default "json").
func WithTagName(name string) Option {
	return func(c *config) {
		c.walkerOpts = append(c.walkerOpts, walker.WithTagName(name))
	}
}

// WithIgnoreCase makes path segments match mapping keys and bean
// properties case-insensitively in GetProperty and SetProperty. Exact
// matches are still preferred.
func WithIgnoreCase(enabled bool) Option {
	return func(c *config) {
		c.ignoreCase = enabled
	}
}
