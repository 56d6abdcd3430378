package config

import (
	"context"
	"fmt"
	"path/filepath"
)

// resolverKey is the context key for ConfigResolver
type resolverKey struct{}

// ConfigResolver provides lazy per-view config resolution with caching.
// It loads and merges .desccol.toml files with the global config on demand.
type ConfigResolver struct {
	global *Config
	cache  map[string]*Config // view dir -> merged config
}

// NewResolver creates a new ConfigResolver backed by the given global config.
func NewResolver(global *Config) *ConfigResolver {
	return &ConfigResolver{
		global: global,
		cache:  make(map[string]*Config),
	}
}

// ConfigForView returns the effective config for the view rooted at dir,
// merging any .desccol.toml found there with the global config.
// The merged config is validated. Results are cached per dir.
func (r *ConfigResolver) ConfigForView(dir string) (*Config, error) {
	if dir == "" {
		return r.global, nil
	}
	dir = filepath.Clean(dir)
	if cached, ok := r.cache[dir]; ok {
		return cached, nil
	}

	local, err := LoadLocal(dir)
	if err != nil {
		return nil, err
	}

	merged := MergeLocal(r.global, local)
	if local != nil {
		if err := merged.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Join(dir, LocalConfigFileName), err)
		}
	}
	r.cache[dir] = merged
	return merged, nil
}

// ConfigForFile returns the effective config for a jobs file.
// An empty path (stdin) uses the global config.
func (r *ConfigResolver) ConfigForFile(path string) (*Config, error) {
	if path == "" || path == "-" {
		return r.global, nil
	}
	return r.ConfigForView(filepath.Dir(path))
}

// WithResolver returns a new context with the ConfigResolver stored in it.
func WithResolver(ctx context.Context, r *ConfigResolver) context.Context {
	return context.WithValue(ctx, resolverKey{}, r)
}

// ResolverFromContext returns the ConfigResolver from context.
// Returns nil if no resolver is stored.
func ResolverFromContext(ctx context.Context) *ConfigResolver {
	if r, ok := ctx.Value(resolverKey{}).(*ConfigResolver); ok {
		return r
	}
	return nil
}
