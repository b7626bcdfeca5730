package registry_test

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/evercart/eventschema/registry"
	"github.com/evercart/eventschema/taxonomy"
)

func TestContainerGet(t *testing.T) {
	t.Run("it lazily constructs a default registry", func(t *testing.T) {
		container := registry.NewContainer()

		r := container.Get()
		require.NotNil(t, r)

		// Repeated calls return the same instance.
		assert.Same(t, r, container.Get())
	})

	t.Run("it returns an injected registry", func(t *testing.T) {
		container := registry.NewContainer()
		injected := registry.NewInMemory()

		container.Set(injected)
		assert.Same(t, injected, container.Get())
	})
}

func TestContainerEnsureBootstrapped(t *testing.T) {
	register := func(r registry.Registry) error {
		return r.Register(taxonomy.OrderCreated, "1.0", orderDefinitionV1)
	}

	t.Run("it runs the registration sequence exactly once", func(t *testing.T) {
		container := registry.NewContainer()

		var calls int64

		bootstrap := func(r registry.Registry) error {
			atomic.AddInt64(&calls, 1)
			return register(r)
		}

		require.NoError(t, container.EnsureBootstrapped(bootstrap))

		typesAfterFirst := container.Get().EventTypes()

		// A second call must be a no-op: were the sequence to run again,
		// the duplicate-schema check would reject it.
		require.NoError(t, container.EnsureBootstrapped(bootstrap))

		assert.Equal(t, int64(1), atomic.LoadInt64(&calls))
		assert.Equal(t, typesAfterFirst, container.Get().EventTypes())
	})

	t.Run("it tolerates concurrent first-callers", func(t *testing.T) {
		container := registry.NewContainer()

		var calls int64

		group := new(errgroup.Group)
		for i := 0; i < 16; i++ {
			group.Go(func() error {
				return container.EnsureBootstrapped(func(r registry.Registry) error {
					atomic.AddInt64(&calls, 1)
					return register(r)
				})
			})
		}

		require.NoError(t, group.Wait())
		assert.Equal(t, int64(1), atomic.LoadInt64(&calls))
	})

	t.Run("it surfaces bootstrap failures and allows a retry", func(t *testing.T) {
		container := registry.NewContainer()

		failure := errors.New("schema source unavailable")

		err := container.EnsureBootstrapped(func(registry.Registry) error { return failure })
		require.ErrorIs(t, err, failure)

		// The failed attempt must not latch the bootstrap flag.
		require.NoError(t, container.EnsureBootstrapped(register))
		assert.Equal(t, []string{taxonomy.OrderCreated}, container.Get().EventTypes())
	})

	t.Run("it bootstraps an injected registry", func(t *testing.T) {
		container := registry.NewContainer()
		injected := registry.NewInMemory()
		container.Set(injected)

		require.NoError(t, container.EnsureBootstrapped(register))
		assert.Equal(t, []string{taxonomy.OrderCreated}, injected.EventTypes())
	})
}
