package scene

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"tagaro/log"
)

var ErrUnknownBackend = errors.New("unknown audio scene backend")

// Factory builds a fresh backend instance.
type Factory func() (Scene, error)

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{
		NullName: func() (Scene, error) { return NewNull(), nil },
	}
)

// Register makes a backend available under name, replacing any previous
// registration.
func Register(name string, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = f
}

// Backends returns the registered backend names in sorted order.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Open builds the backend registered under name.
func Open(name string) (Scene, error) {
	registryMu.RLock()
	f, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
	s, err := f()
	if err != nil {
		return nil, fmt.Errorf("open %s backend: %w", name, err)
	}
	return s, nil
}

// New opens DefaultBackend, falling back to the null backend when it is
// missing or fails to start.
func New() Scene {
	s, err := Open(DefaultBackend)
	if err != nil {
		log.Warnf("audio scene: %v, using %s backend", err, NullName)
		return NewNull()
	}
	return s
}
