package walker

import (
	"sync"
)

// recordingLogger captures log messages for assertions.
type recordingLogger struct {
	mu       sync.Mutex
	messages []string
}

func (r *recordingLogger) add(level, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, level+" "+msg)
}

func (r *recordingLogger) Debug(msg string, _ ...any) { r.add("DEBUG", msg) }
func (r *recordingLogger) Info(msg string, _ ...any)  { r.add("INFO", msg) }
func (r *recordingLogger) Warn(msg string, _ ...any)  { r.add("WARN", msg) }
func (r *recordingLogger) Error(msg string, _ ...any) { r.add("ERROR", msg) }
func (r *recordingLogger) With(_ ...any) Logger       { return r }

// collectLeaves walks root and returns every leaf path and rendering.
func collectLeaves(root any, opts ...Option) map[string]string {
	leaves := make(map[string]string)
	opts = append(opts, WithLeafHandler(func(path, text string) Action {
		leaves[path] = text
		return Continue
	}))
	_ = Walk(root, opts...)
	return leaves
}
