package backend

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/sprite/gpucore"
)

// Config carries the construction parameters shared by all backends.
// Provider supplies the GPU device and queue; record-style backends
// ignore it.
type Config struct {
	// Provider supplies the device and queue the backend renders with.
	Provider gpucontext.DeviceProvider

	// Label prefixes GPU resource labels for debugging. Empty means
	// "sprite".
	Label string
}

// Factory creates a backend instance from a Config.
// Factories are registered via Register and called by New.
type Factory func(Config) (gpucore.DrawBackend, error)

var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
)

// Register registers a backend factory under the given name. It is
// typically called from init() in backend packages.
//
// Register panics if factory is nil or the name is already taken, so
// duplicate registrations surface during program initialization rather
// than silently overwriting each other.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("backend: Register factory is nil")
	}
	if _, dup := factories[name]; dup {
		panic("backend: Register called twice for " + name)
	}
	factories[name] = factory
}

// Unregister removes a backend from the registry. Unknown names are a
// no-op. Primarily useful for cleaning up between tests.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// New creates a backend instance by name. The name must match a
// previously registered backend; the error for an unknown name hints
// at a forgotten blank import.
func New(name string, cfg Config) (gpucore.DrawBackend, error) {
	registryMu.RLock()
	factory, ok := factories[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("backend: unknown backend %q (forgotten import?)", name)
	}
	return factory(cfg)
}

// Backends returns the registered backend names, sorted alphabetically.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether a backend with the given name exists.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[name]
	return ok
}
