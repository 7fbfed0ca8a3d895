package di

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/drill/internal/config"
)

func newInitializedContainer(t *testing.T) *ServiceContainer {
	t.Helper()
	container := NewServiceContainer(config.Default())
	require.NoError(t, container.Initialize())
	return container
}

func TestInitialize_Twice(t *testing.T) {
	container := newInitializedContainer(t)
	assert.Error(t, container.Initialize())
}

func TestGet_Unregistered(t *testing.T) {
	container := NewServiceContainer(config.Default())
	_, err := container.Get("ghost")
	assert.Error(t, err)
}

func TestGetRegistry_LoadsCatalog(t *testing.T) {
	container := newInitializedContainer(t)

	reg, err := container.GetRegistry()
	require.NoError(t, err)
	assert.Greater(t, reg.Count(), 0)
}

func TestGetRunner(t *testing.T) {
	container := newInitializedContainer(t)

	r, err := container.GetRunner()
	require.NoError(t, err)
	assert.NotNil(t, r)
}

func TestGetNotes(t *testing.T) {
	container := newInitializedContainer(t)

	catalog, err := container.GetNotes()
	require.NoError(t, err)
	assert.Greater(t, catalog.Len(), 0)
}

func TestSingletonIdentity(t *testing.T) {
	container := newInitializedContainer(t)

	first, err := container.GetRegistry()
	require.NoError(t, err)
	second, err := container.GetRegistry()
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestRegisterInstance(t *testing.T) {
	container := NewServiceContainer(config.Default())
	container.RegisterInstance("answer", 42)

	instance, err := container.Get("answer")
	require.NoError(t, err)
	assert.Equal(t, 42, instance)
}

func TestCircularDependencyDetection(t *testing.T) {
	container := NewServiceContainer(config.Default())

	container.RegisterSingleton("a", func(resolver DependencyResolver) (interface{}, error) {
		return resolver.Get("b")
	})
	container.RegisterSingleton("b", func(resolver DependencyResolver) (interface{}, error) {
		return resolver.Get("a")
	})

	_, err := container.Get("a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "circular dependency")
}

func TestConcurrentResolution(t *testing.T) {
	container := newInitializedContainer(t)

	var wg sync.WaitGroup
	results := make([]interface{}, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			reg, err := container.GetRegistry()
			if err == nil {
				results[i] = reg
			}
		}(i)
	}
	wg.Wait()

	for i := 1; i < len(results); i++ {
		require.NotNil(t, results[i])
		assert.Same(t, results[0], results[i], fmt.Sprintf("resolution %d diverged", i))
	}
}

func TestShutdown_ResetsSingletons(t *testing.T) {
	container := newInitializedContainer(t)

	first, err := container.GetRegistry()
	require.NoError(t, err)

	require.NoError(t, container.Shutdown(context.Background()))
	require.NoError(t, container.Initialize())

	second, err := container.GetRegistry()
	require.NoError(t, err)
	assert.NotSame(t, first, second)
}
