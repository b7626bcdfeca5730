package registry

import (
	"fmt"
	"sync"
)

// Container holds the active Registry implementation for a process,
// together with the one-time bootstrap guard.
//
// It replaces hidden global state with an explicit, injectable object:
// build one Container at application wiring time and pass it to the
// components that need the registry.
type Container struct {
	mx           sync.Mutex
	registry     Registry
	bootstrapped bool
}

// NewContainer creates an empty Container. The first Get call lazily
// constructs a default InMemory registry, unless Set was called before.
func NewContainer() *Container {
	return new(Container)
}

// Get returns the active Registry, lazily constructing a default InMemory
// instance on first use.
func (c *Container) Get() Registry {
	c.mx.Lock()
	defer c.mx.Unlock()

	return c.getLocked()
}

func (c *Container) getLocked() Registry {
	if c.registry == nil {
		c.registry = NewInMemory()
	}

	return c.registry
}

// Set injects an alternative Registry implementation.
//
// Set is intended for composition before first use, not for hot-swapping
// the registry mid-request: schemas registered on the previous instance
// are not carried over.
func (c *Container) Set(registry Registry) {
	c.mx.Lock()
	defer c.mx.Unlock()

	c.registry = registry
}

// EnsureBootstrapped runs the provided registration function against the
// active Registry exactly once per Container lifetime.
//
// The whole registration sequence runs under the Container lock, so
// concurrent first-callers cannot both attempt registration and trip over
// the duplicate-schema check. After the first successful call, subsequent
// calls are guaranteed no-ops.
func (c *Container) EnsureBootstrapped(register func(Registry) error) error {
	c.mx.Lock()
	defer c.mx.Unlock()

	if c.bootstrapped {
		return nil
	}

	if err := register(c.getLocked()); err != nil {
		return fmt.Errorf("registry.Container: bootstrap failed, %w", err)
	}

	c.bootstrapped = true

	return nil
}
