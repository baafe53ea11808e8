// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes jsoncmp capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"log/slog"
	"regexp"

	jsoncmp "github.com/DeepakRathod14/java-custom-automation"
	"github.com/DeepakRathod14/java-custom-automation/walker"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `jsoncmp MCP server: compares JSON/YAML documents structurally, flattens them into dotted paths, and picks random leaf entries.

Comparison is directional: every field of the expected document must match the actual document, while extra fields in actual are ignored. Fields that are null or absent in actual are skipped. Set ignore_nulls=true to compare flattened renderings instead.

Configuration: All defaults are configurable via JSONCMP_* environment variables set in your MCP client config.

Key settings:
- JSONCMP_LIST_LIMIT (default: 100) - default page size for flatten
- JSONCMP_MAX_LIMIT (default: 1000) - maximum page size for flatten
- JSONCMP_MAX_INLINE_SIZE (default: 10MiB) - maximum inline content size
- JSONCMP_MAX_FILE_SIZE (default: 10MiB) - maximum document file size
- JSONCMP_MAX_DEPTH (default: 100) - maximum nesting depth traversed
- JSONCMP_CACHE_ENABLED (default: true) - disable document caching entirely
- JSONCMP_CACHE_FILE_TTL / JSONCMP_CACHE_CONTENT_TTL (default: 15m)

Caching: Parsed documents are cached per session. File entries use path+mtime as key, so edits invalidate them automatically.`

// toolServer carries the state shared by all tool handlers.
type toolServer struct {
	cfg    *Config
	cache  *docCache
	logger walker.Logger
}

func newToolServer(cfg *Config, logger *slog.Logger) *toolServer {
	return &toolServer{
		cfg:    cfg,
		cache:  newDocCache(cfg.CacheMaxSize),
		logger: walker.NewSlogAdapter(logger),
	}
}

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled. A nil logger uses slog.Default().
func Run(ctx context.Context, cfg *Config, logger *slog.Logger) error {
	s := newToolServer(cfg, logger)
	if cfg.CacheEnabled {
		s.cache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "jsoncmp", Version: jsoncmp.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	s.registerAllTools(server)
	s.logger.Info("mcp server starting", "version", jsoncmp.Version())
	return server.Run(ctx, &mcp.StdioTransport{})
}

func (s *toolServer) registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "compare",
		Description: "Compare an actual JSON/YAML document against an expected one. Every field of expected must match actual; extra fields in actual are ignored and null or absent actual fields are skipped. Array elements are aligned by their position in the expected array. Set ignore_nulls=true to compare the flattened leaf renderings of both documents instead, reporting every expected path missing from actual. Returns equal=true when no changes are found.",
	}, s.handleCompare)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "flatten",
		Description: "Flatten a JSON/YAML document into dotted leaf paths (e.g. orders.[0].id) and their string values, sorted by path. Null values are omitted. Use match with * and ? wildcards to filter paths (e.g. orders.*.id). Use offset/limit to paginate; the default limit is configurable via JSONCMP_LIST_LIMIT.",
	}, s.handleFlatten)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "random_entry",
		Description: "Pick a pseudo-random leaf entry (path and value) from a flattened JSON/YAML document. Pass seed for a reproducible pick.",
	}, s.handleRandomEntry)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to the configured ListLimit.
func (s *toolServer) paginate(n, offset, limit int) (start, end int) {
	if limit <= 0 {
		limit = s.cfg.ListLimit
	}
	if limit > s.cfg.MaxLimit {
		limit = s.cfg.MaxLimit
	}
	if offset < 0 || offset >= n {
		return 0, 0
	}
	end = offset + limit
	if end < offset || end > n { // overflow or beyond slice
		end = n
	}
	return offset, end
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// pathPattern matches absolute filesystem paths so they can be stripped from
// error messages returned to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
