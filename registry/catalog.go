package registry

import "sync"

// Catalog wraps a Registry for use from several goroutines. Each Register
// call holds the lock for the whole recursive registration so a type is
// materialized at most once.
type Catalog struct {
	mu       sync.Mutex
	registry *Registry
}

// NewCatalog creates an empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{registry: New()}
}

// Register registers t and returns its qualified type name.
func (c *Catalog) Register(t TypeInfoCreator) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return t.CreateTypeInfo(c.registry)
}

// Lookup returns the meta type registered under name.
func (c *Catalog) Lookup(name string) (MetaType, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.registry.Lookup(name)
}

// SDL renders the registered types.
func (c *Catalog) SDL() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.registry.SDL()
}
