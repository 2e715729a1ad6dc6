package render_test

import (
	"errors"
	"testing"
	"time"

	"github.com/templatekit/go-curly/pkg/presenter"
	"github.com/templatekit/go-curly/pkg/render"
	"github.com/templatekit/go-curly/pkg/template"
)

type fakeStore struct {
	entries map[string]string
	ttls    map[string]time.Duration
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		entries: make(map[string]string),
		ttls:    make(map[string]time.Duration),
	}
}

func (s *fakeStore) Get(key string) (string, bool) {
	value, ok := s.entries[key]
	return value, ok
}

func (s *fakeStore) Set(key, value string, ttl time.Duration) {
	s.entries[key] = value
	s.ttls[key] = ttl
}

// greetingPresenter counts capability invocations so tests can tell cached
// fragments from fresh renders.
type greetingPresenter struct {
	presenter.Base
	hits int
}

func (p *greetingPresenter) Greeting() string {
	p.hits++
	return "hello"
}

type cachedGreetingPresenter struct {
	greetingPresenter
}

func (p *cachedGreetingPresenter) CacheKey() string {
	return "greetings/v1"
}

func (p *cachedGreetingPresenter) CacheDuration() time.Duration {
	return 2 * time.Minute
}

func TestManagerCompileReusesRoutine(t *testing.T) {
	m := render.New()
	source := "Hi {{Greeting}}"

	if first, second := m.Compile(source), m.Compile(source); first != second {
		t.Fatal("Compile returned distinct routines for the same source")
	}
}

func TestManagerRenderStoresFragmentWithTTL(t *testing.T) {
	store := newFakeStore()
	m := render.New(render.WithStore(store))
	p := &cachedGreetingPresenter{}

	got, err := m.Render("{{Greeting}}!", p)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if got != "hello!" {
		t.Fatalf("Render = %q, want %q", got, "hello!")
	}
	if p.hits != 1 {
		t.Fatalf("capability invoked %d times, want 1", p.hits)
	}
	if store.entries["greetings/v1"] != "hello!" {
		t.Fatalf("stored fragment = %q, want %q", store.entries["greetings/v1"], "hello!")
	}
	if store.ttls["greetings/v1"] != 2*time.Minute {
		t.Fatalf("stored ttl = %v, want 2m", store.ttls["greetings/v1"])
	}

	got, err = m.Render("{{Greeting}}!", p)
	if err != nil {
		t.Fatalf("second Render returned error: %v", err)
	}
	if got != "hello!" {
		t.Fatalf("second Render = %q, want the cached fragment", got)
	}
	if p.hits != 1 {
		t.Fatalf("capability invoked %d times after cache hit, want 1", p.hits)
	}
}

func TestManagerRenderWithoutKeySkipsStore(t *testing.T) {
	store := newFakeStore()
	m := render.New(render.WithStore(store))
	p := &greetingPresenter{}

	for i := 0; i < 2; i++ {
		if _, err := m.Render("{{Greeting}}", p); err != nil {
			t.Fatalf("Render returned error: %v", err)
		}
	}
	if p.hits != 2 {
		t.Fatalf("capability invoked %d times, want every render evaluated", p.hits)
	}
	if len(store.entries) != 0 {
		t.Fatalf("store holds %d entries, want none without a cache key", len(store.entries))
	}
}

func TestManagerRenderWithoutStoreIgnoresDescriptor(t *testing.T) {
	m := render.New()
	p := &cachedGreetingPresenter{}

	for i := 0; i < 2; i++ {
		if _, err := m.Render("{{Greeting}}", p); err != nil {
			t.Fatalf("Render returned error: %v", err)
		}
	}
	if p.hits != 2 {
		t.Fatalf("capability invoked %d times, want every render evaluated", p.hits)
	}
}

func TestManagerRenderPropagatesInvalidReference(t *testing.T) {
	store := newFakeStore()
	m := render.New(render.WithStore(store))
	p := &cachedGreetingPresenter{}

	_, err := m.Render("{{Missing}}", p)
	var invalid *template.InvalidReferenceError
	if !errors.As(err, &invalid) {
		t.Fatalf("Render error = %v, want InvalidReferenceError", err)
	}
	if len(store.entries) != 0 {
		t.Fatal("failed render stored a fragment")
	}
}
