package transport

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownTransport is returned by Create for unregistered names.
var ErrUnknownTransport = errors.New("unknown transport")

// Registry holds transport factories by name.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Default has the http, log and discard transports registered.
var Default = newDefaultRegistry()

func newDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(httpFactory{})
	r.Register(logFactory{})
	r.Register(discardFactory{})
	return r
}

// Register adds or replaces the factory for factory.Name().
func (r *Registry) Register(factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[factory.Name()] = factory
}

// Create builds the transport registered under name.
func (r *Registry) Create(name string, opts Options) (Transport, error) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTransport, name)
	}
	return factory.Create(opts)
}

// ListRegistered returns the registered names, sorted.
func (r *Registry) ListRegistered() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AllInfo returns the description of every registered transport, sorted by name.
func (r *Registry) AllInfo() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Info, 0, len(r.factories))
	for _, factory := range r.factories {
		out = append(out, factory.Info())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
