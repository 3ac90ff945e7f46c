package multiton

import (
	"fmt"
	"reflect"
	"sync"
)

// Descriptor is the type-erased view of a Registry kept by the catalog.
type Descriptor interface {
	Name() string
	State() State
	Load() error
	Keys() ([]string, error)
	Entries() ([]Member, error)
	Entry(key string) (Member, error)
}

// catalog indexes every Define'd registry by Go type and by name.
type catalog struct {
	mu     sync.RWMutex
	byType map[reflect.Type]Descriptor
	byName map[string]Descriptor
	order  []Descriptor
}

func newCatalog() *catalog {
	return &catalog{
		byType: make(map[reflect.Type]Descriptor),
		byName: make(map[string]Descriptor),
	}
}

func (c *catalog) add(t reflect.Type, d Descriptor) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if prev, ok := c.byType[t]; ok {
		return fmt.Errorf("multiton: type %s already defined as %s", t, prev.Name())
	}
	if _, ok := c.byName[d.Name()]; ok {
		return fmt.Errorf("multiton: name %s already defined", d.Name())
	}
	c.byType[t] = d
	c.byName[d.Name()] = d
	c.order = append(c.order, d)
	return nil
}

func (c *catalog) ofType(t reflect.Type) (Descriptor, bool) {
	c.mu.RLock()
	d, ok := c.byType[t]
	c.mu.RUnlock()
	return d, ok
}

func (c *catalog) lookup(name string) (Descriptor, bool) {
	c.mu.RLock()
	d, ok := c.byName[name]
	c.mu.RUnlock()
	return d, ok
}

func (c *catalog) all() []Descriptor {
	c.mu.RLock()
	out := make([]Descriptor, len(c.order))
	copy(out, c.order)
	c.mu.RUnlock()
	return out
}

// global is the process-wide catalog.
var global = newCatalog()

// Define creates a registry like New and records it in the process-wide
// catalog under the Go type M and under name. Each type and each name may
// be defined once; a second Define panics. Call it from a package-level
// var declaration.
func Define[M Member](name string, populate PopulateFunc[M], opts ...Option) *Registry[M] {
	r := New(name, populate, opts...)
	if err := global.add(reflect.TypeFor[M](), r); err != nil {
		panic(err)
	}
	return r
}

// Of returns the registry Define'd for M.
func Of[M Member]() (*Registry[M], bool) {
	d, ok := global.ofType(reflect.TypeFor[M]())
	if !ok {
		return nil, false
	}
	r, ok := d.(*Registry[M])
	return r, ok
}

// Lookup returns the catalogued registry called name.
func Lookup(name string) (Descriptor, bool) {
	return global.lookup(name)
}

// Defined returns every catalogued registry in definition order.
func Defined() []Descriptor {
	return global.all()
}
