// Package di wires the application services. The container keeps wiring
// explicit: every service is registered with a named factory in
// Initialize, and resolution detects circular dependencies instead of
// deadlocking on them.
package di

import (
	"context"
	"fmt"
	"sync"

	"github.com/dkoosis/drill/internal/config"
	"github.com/dkoosis/drill/internal/drills"
	"github.com/dkoosis/drill/internal/logging"
	"github.com/dkoosis/drill/internal/notes"
	"github.com/dkoosis/drill/internal/registry"
	"github.com/dkoosis/drill/internal/runner"
)

// FactoryFunc creates a service instance using the dependency resolver
type FactoryFunc func(resolver DependencyResolver) (interface{}, error)

// DependencyResolver provides resolution with circular-dependency detection
type DependencyResolver interface {
	Get(name string) (interface{}, error)
	MustGet(name string) interface{}
}

// ServiceContainer manages dependency injection for the application
type ServiceContainer struct {
	factories   map[string]FactoryFunc
	singletons  map[string]interface{}
	mu          sync.RWMutex
	config      *config.Config
	initialized bool
}

// Service names registered by Initialize.
const (
	ServiceLogger   = "logger"
	ServiceRegistry = "registry"
	ServiceRunner   = "runner"
	ServiceNotes    = "notes"
)

// NewServiceContainer creates a new dependency injection container
func NewServiceContainer(cfg *config.Config) *ServiceContainer {
	return &ServiceContainer{
		factories:  make(map[string]FactoryFunc),
		singletons: make(map[string]interface{}),
		config:     cfg,
	}
}

// Config returns the configuration the container was built with.
func (c *ServiceContainer) Config() *config.Config {
	return c.config
}

// RegisterSingleton registers a lazily-created singleton service
func (c *ServiceContainer) RegisterSingleton(name string, factory FactoryFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.factories[name] = factory
}

// RegisterInstance registers an existing instance as a singleton
func (c *ServiceContainer) RegisterInstance(name string, instance interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.singletons[name] = instance
}

// Get retrieves a service from the container
func (c *ServiceContainer) Get(name string) (interface{}, error) {
	return c.getWithResolver(name, make(map[string]bool))
}

// getWithResolver retrieves a service with circular dependency detection
func (c *ServiceContainer) getWithResolver(
	name string,
	resolving map[string]bool,
) (interface{}, error) {
	if resolving[name] {
		return nil, fmt.Errorf("circular dependency detected for service '%s'", name)
	}

	c.mu.RLock()
	if instance, exists := c.singletons[name]; exists {
		c.mu.RUnlock()
		return instance, nil
	}
	factory, exists := c.factories[name]
	c.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("service '%s' not registered", name)
	}

	resolving[name] = true
	instance, err := factory(&resolver{container: c, resolving: resolving})
	delete(resolving, name)
	if err != nil {
		return nil, fmt.Errorf("creating service '%s': %w", name, err)
	}

	c.mu.Lock()
	// another goroutine may have won the race; keep the first instance
	if existing, exists := c.singletons[name]; exists {
		c.mu.Unlock()
		return existing, nil
	}
	c.singletons[name] = instance
	c.mu.Unlock()

	return instance, nil
}

type resolver struct {
	container *ServiceContainer
	resolving map[string]bool
}

func (r *resolver) Get(name string) (interface{}, error) {
	return r.container.getWithResolver(name, r.resolving)
}

func (r *resolver) MustGet(name string) interface{} {
	instance, err := r.Get(name)
	if err != nil {
		panic(fmt.Sprintf("failed to get service '%s': %v", name, err))
	}
	return instance
}

// Initialize registers the application's service graph.
func (c *ServiceContainer) Initialize() error {
	c.mu.Lock()
	if c.initialized {
		c.mu.Unlock()
		return fmt.Errorf("container already initialized")
	}
	c.initialized = true
	c.mu.Unlock()

	c.RegisterSingleton(ServiceLogger, func(resolver DependencyResolver) (interface{}, error) {
		return logging.NewLogger(&logging.LoggerConfig{
			Level:  logging.ParseLevel(c.config.Logging.Level),
			Format: c.config.Logging.Format,
			Output: logging.DefaultConfig().Output,
		}), nil
	})

	c.RegisterSingleton(ServiceRegistry, func(resolver DependencyResolver) (interface{}, error) {
		reg := registry.NewDrillRegistry()
		drills.RegisterAll(reg)
		return reg, nil
	})

	c.RegisterSingleton(ServiceRunner, func(resolver DependencyResolver) (interface{}, error) {
		reg, err := resolver.Get(ServiceRegistry)
		if err != nil {
			return nil, err
		}
		logger, err := resolver.Get(ServiceLogger)
		if err != nil {
			return nil, err
		}
		return runner.New(reg.(*registry.DrillRegistry), logger.(logging.Logger)), nil
	})

	c.RegisterSingleton(ServiceNotes, func(resolver DependencyResolver) (interface{}, error) {
		return notes.NewCatalog(c.config.Notes.ExtraPaths...)
	})

	return nil
}

// GetLogger returns the application logger
func (c *ServiceContainer) GetLogger() (logging.Logger, error) {
	instance, err := c.Get(ServiceLogger)
	if err != nil {
		return nil, err
	}
	return instance.(logging.Logger), nil
}

// GetRegistry returns the drill registry with the catalog loaded
func (c *ServiceContainer) GetRegistry() (*registry.DrillRegistry, error) {
	instance, err := c.Get(ServiceRegistry)
	if err != nil {
		return nil, err
	}
	return instance.(*registry.DrillRegistry), nil
}

// GetRunner returns the drill runner
func (c *ServiceContainer) GetRunner() (*runner.Runner, error) {
	instance, err := c.Get(ServiceRunner)
	if err != nil {
		return nil, err
	}
	return instance.(*runner.Runner), nil
}

// GetNotes returns the study-note catalog
func (c *ServiceContainer) GetNotes() (*notes.Catalog, error) {
	instance, err := c.Get(ServiceNotes)
	if err != nil {
		return nil, err
	}
	return instance.(*notes.Catalog), nil
}

// Shutdown releases container resources. Services holding goroutines or
// sockets are owned by their commands, so there is nothing to stop here
// yet; the hook exists so commands can defer it uniformly.
func (c *ServiceContainer) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.singletons = make(map[string]interface{})
	c.initialized = false
	return nil
}
