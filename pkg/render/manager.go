// Package render is the collaborator layer around the template core: it
// compiles each source once and reuses the routine across renders, and it
// acts on presenter cache descriptors against a pluggable fragment store.
// The template core itself never touches a cache backend.
package render

import (
	"log/slog"
	"sync"
	"time"

	"github.com/templatekit/go-curly/pkg/escape"
	"github.com/templatekit/go-curly/pkg/presenter"
	"github.com/templatekit/go-curly/pkg/template"
)

// Store is the fragment cache a Manager reads and writes through when a
// presenter supplies a cache key. Implementations own eviction and expiry;
// a zero TTL means the entry does not expire.
type Store interface {
	Get(key string) (string, bool)
	Set(key string, value string, ttl time.Duration)
}

// Manager wires compiled-template reuse and fragment caching together. All
// methods are safe for concurrent use; compiled routines are shared
// read-only.
type Manager struct {
	logger *slog.Logger
	store  Store
	escape escape.Func

	mu       sync.RWMutex
	compiled map[string]*template.Template
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the structured logger. Defaults to slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithStore attaches a fragment cache. Without one, presenter cache
// descriptors are ignored and every render evaluates the template.
func WithStore(store Store) Option {
	return func(m *Manager) {
		m.store = store
	}
}

// WithEscape sets the escaping function for every template the manager
// compiles. Defaults to escape.HTML.
func WithEscape(f escape.Func) Option {
	return func(m *Manager) {
		if f != nil {
			m.escape = f
		}
	}
}

// New creates a Manager.
func New(options ...Option) *Manager {
	m := &Manager{
		logger:   slog.Default(),
		escape:   escape.HTML,
		compiled: make(map[string]*template.Template),
	}
	for _, opt := range options {
		if opt != nil {
			opt(m)
		}
	}
	return m
}

// Compile returns the compiled routine for source, compiling on first use.
func (m *Manager) Compile(source string) *template.Template {
	m.mu.RLock()
	tmpl, ok := m.compiled[source]
	m.mu.RUnlock()
	if ok {
		return tmpl
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if tmpl, ok := m.compiled[source]; ok {
		return tmpl
	}
	tmpl = template.Compile(source, template.WithEscape(m.escape))
	m.compiled[source] = tmpl
	return tmpl
}

// Render renders source against p. When p supplies a cache key and a store
// is attached, a stored fragment is returned without evaluating the
// template, and fresh output is stored with the presenter's TTL.
func (m *Manager) Render(source string, p presenter.Presenter, options ...template.RenderOption) (string, error) {
	key := p.CacheKey()
	if key != "" && m.store != nil {
		if fragment, ok := m.store.Get(key); ok {
			m.logger.Debug("fragment cache hit", "key", key)
			return fragment, nil
		}
	}

	out, err := m.Compile(source).Render(p, options...)
	if err != nil {
		return "", err
	}

	if key != "" && m.store != nil {
		ttl := p.CacheDuration()
		m.store.Set(key, out, ttl)
		m.logger.Debug("fragment stored", "key", key, "ttl", ttl)
	}
	return out, nil
}
