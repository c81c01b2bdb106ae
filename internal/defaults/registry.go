package defaults

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"sync"

	"struct-migrator/internal/shape"
)

var (
	// ErrEmptyTag is returned when registering under an empty type tag.
	ErrEmptyTag = errors.New("defaults: empty type tag")
	// ErrNilProvider is returned when registering a nil provider.
	ErrNilProvider = errors.New("defaults: nil provider")
)

// Provider produces the canonical empty value of one type.
// It must be pure: every call returns an equal value.
type Provider func() any

// Lookup resolves a provider for a type tag.
type Lookup interface {
	Provider(tag shape.TypeTag) (Provider, bool)
}

// Registry is a concurrency-safe mapping from type tag to Provider.
// Derivations should read from a Snapshot so that later registrations
// never change an in-flight result.
type Registry struct {
	mu        sync.RWMutex
	providers map[shape.TypeTag]Provider
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{providers: make(map[shape.TypeTag]Provider)}
}

// Builtin returns a registry pre-populated with the empty values of every Kind.
func Builtin() *Registry {
	r := NewRegistry()
	for k := Kind(1); int(k) < KindTotal; k++ {
		r.providers[k.Tag()] = k.Empty
	}

	return r
}

// Register associates p with tag, replacing any previous provider.
func (r *Registry) Register(tag shape.TypeTag, p Provider) error {
	if tag == "" {
		return ErrEmptyTag
	}
	if p == nil {
		return fmt.Errorf("%w for %s", ErrNilProvider, tag)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.providers[tag] = p
	return nil
}

// RegisterValue registers a provider that always returns v.
func (r *Registry) RegisterValue(tag shape.TypeTag, v any) error {
	return r.Register(tag, func() any { return v })
}

// RegisterZero registers the Go zero value of t under t's tag, e.g. nil
// for pointer (optional) types. It returns the tag used.
func (r *Registry) RegisterZero(t reflect.Type) (shape.TypeTag, error) {
	if t == nil {
		return "", fmt.Errorf("%w: nil type", ErrNilProvider)
	}

	tag := shape.TagOf(t)
	zero := reflect.Zero(t).Interface()

	return tag, r.RegisterValue(tag, zero)
}

// Unregister removes the provider for tag, if any.
func (r *Registry) Unregister(tag shape.TypeTag) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.providers, tag)
}

// Provider implements Lookup.
func (r *Registry) Provider(tag shape.TypeTag) (Provider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.providers[tag]
	return p, ok
}

// Tags returns the registered tags in sorted order.
func (r *Registry) Tags() []shape.TypeTag {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Sorted(maps.Keys(r.providers))
}

// Snapshot returns an immutable copy of the current registrations.
func (r *Registry) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return Snapshot{providers: maps.Clone(r.providers)}
}

// Snapshot is a read-only view of a Registry at one point in time.
type Snapshot struct {
	providers map[shape.TypeTag]Provider
}

// Provider implements Lookup.
func (s Snapshot) Provider(tag shape.TypeTag) (Provider, bool) {
	p, ok := s.providers[tag]
	return p, ok
}

// Len returns the number of registered tags.
func (s Snapshot) Len() int {
	return len(s.providers)
}
