package mcpserver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/DeepakRathod14/java-custom-automation/internal/options"
	"github.com/DeepakRathod14/java-custom-automation/parser"
)

// docInput represents the two ways a document can be provided to a tool.
// Exactly one of File or Content must be set.
type docInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a JSON or YAML file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline document content (JSON or YAML)"`
}

// cacheEntry holds a cached parse result with LRU ordering and TTL expiry.
type cacheEntry struct {
	result    *parser.ParseResult
	touchedAt time.Time
	expiresAt time.Time
}

// docCache provides a session-scoped cache for parsed documents.
// File inputs are keyed by (absolutePath, modTime). Content inputs are keyed
// by a SHA-256 hash. Cached documents are shared between calls and must be
// treated as read-only.
type docCache struct {
	mu             sync.Mutex
	entries        map[string]*cacheEntry
	maxSize        int
	sweeperStarted atomic.Bool
}

func newDocCache(maxSize int) *docCache {
	return &docCache{
		entries: make(map[string]*cacheEntry),
		maxSize: maxSize,
	}
}

// get returns a cached result or nil. Expired entries are lazily removed.
func (c *docCache) get(key string) *parser.ParseResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil
	}
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		delete(c.entries, key)
		return nil
	}
	e.touchedAt = time.Now()
	return e.result
}

// put stores a result with a TTL, evicting the least recently used entry
// when at capacity. A zero TTL never expires.
func (c *docCache) put(key string, result *parser.ParseResult, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	entry := &cacheEntry{result: result, touchedAt: now}
	if ttl > 0 {
		entry.expiresAt = now.Add(ttl)
	}

	if _, ok := c.entries[key]; ok {
		c.entries[key] = entry
		return
	}

	if len(c.entries) >= c.maxSize {
		var oldestKey string
		var oldest time.Time
		for k, e := range c.entries {
			if oldestKey == "" || e.touchedAt.Before(oldest) {
				oldestKey = k
				oldest = e.touchedAt
			}
		}
		delete(c.entries, oldestKey)
	}

	c.entries[key] = entry
}

// sweep removes all expired entries.
func (c *docCache) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for k, e := range c.entries {
		if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
}

// startSweeper launches a goroutine that periodically removes expired
// entries until ctx is cancelled. Only the first call spawns a sweeper.
func (c *docCache) startSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	if !c.sweeperStarted.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer c.sweeperStarted.Store(false)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.sweep()
			}
		}
	}()
}

func (c *docCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// cacheKey returns the cache key for d, or "" when d cannot be cached.
func (d docInput) cacheKey() string {
	switch {
	case d.File != "":
		absPath, err := filepath.Abs(d.File)
		if err != nil {
			return ""
		}
		info, err := os.Stat(absPath)
		if err != nil {
			return ""
		}
		return fmt.Sprintf("file:%s:%d", absPath, info.ModTime().UnixNano())
	case d.Content != "":
		h := sha256.Sum256([]byte(d.Content))
		return "content:" + hex.EncodeToString(h[:])
	default:
		return ""
	}
}

// resolve parses the document from whichever input was provided, using the
// server's cache when enabled. name identifies the input in error messages.
func (s *toolServer) resolve(name string, d docInput) (*parser.ParseResult, error) {
	err := options.ExactlyOne(name,
		options.Source{Name: "file", Set: d.File != ""},
		options.Source{Name: "content", Set: d.Content != ""},
	)
	if err != nil {
		return nil, err
	}

	if int64(len(d.Content)) > s.cfg.MaxInlineSize {
		return nil, fmt.Errorf("%s: inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set %sMAX_INLINE_SIZE to increase",
			name, len(d.Content), s.cfg.MaxInlineSize, EnvPrefix)
	}

	var key string
	ttl := s.cfg.CacheContentTTL
	if s.cfg.CacheEnabled {
		key = d.cacheKey()
		if d.File != "" {
			ttl = s.cfg.CacheFileTTL
		}
	}
	if key != "" {
		if cached := s.cache.get(key); cached != nil {
			s.logger.Debug("document cache hit", "input", name)
			return cached, nil
		}
	}

	opts := []parser.Option{
		parser.WithLogger(s.logger),
		parser.WithMaxFileSize(s.cfg.MaxFileSize),
	}
	if d.File != "" {
		opts = append(opts, parser.WithFilePath(d.File))
	} else {
		opts = append(opts,
			parser.WithReader(strings.NewReader(d.Content)),
			parser.WithSourceName(name),
		)
	}

	result, err := parser.ParseWithOptions(opts...)
	if err != nil {
		return nil, err
	}
	if key != "" {
		s.cache.put(key, result, ttl)
	}
	return result, nil
}
