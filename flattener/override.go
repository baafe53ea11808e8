package flattener

import (
	"github.com/DeepakRathod14/java-custom-automation/internal/maputil"
)

// Override applies each override whose key is a path reported by
// Flatten(root) and returns the applied keys in sorted order. Keys that
// do not name an existing leaf are ignored. An override that cannot be
// stored is logged and left out of the returned keys.
//
// Typical use is letting environment-supplied values replace fields of a
// loaded configuration graph:
//
//	applied := flattener.Override(cfg, map[string]string{
//	    "database.port": "5433",
//	})
func Override(root any, overrides map[string]string, opts ...Option) []string {
	cfg := applyOptions(opts...)
	flat := Flatten(root, opts...)

	applied := make([]string, 0, len(overrides))
	for _, key := range maputil.SortedKeys(overrides) {
		if !flat.Has(key) {
			continue
		}
		if err := SetProperty(root, key, overrides[key], opts...); err != nil {
			cfg.logger.Warn("override not applied", "path", key, "error", err)
			continue
		}
		cfg.logger.Debug("override applied", "path", key)
		applied = append(applied, key)
	}
	return applied
}
