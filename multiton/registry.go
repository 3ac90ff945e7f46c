package multiton

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/petermattis/goid"
)

// PopulateFunc builds every member of a type by adding it to r.
type PopulateFunc[M Member] func(r *Registrar[M]) error

// Chain runs fns in order against the same Registrar, stopping at the
// first error. Use it to extend a base type's member set.
func Chain[M Member](fns ...PopulateFunc[M]) PopulateFunc[M] {
	return func(r *Registrar[M]) error {
		for _, fn := range fns {
			if fn == nil {
				continue
			}
			if err := fn(r); err != nil {
				return err
			}
		}
		return nil
	}
}

// Registry is the member store for one multiton type.
// It is safe for concurrent use.
type Registry[M Member] struct {
	name     string
	populate PopulateFunc[M]
	opt      Options

	state atomic.Int32
	owner atomic.Int64 // goroutine running populate, 0 otherwise
	mu    sync.Mutex

	// Written once under mu before state becomes Populated or Failed.
	members []M
	index   map[string]int
	err     error
}

// New creates an unpopulated registry for the type called name. populate
// runs on first access.
func New[M Member](name string, populate PopulateFunc[M], opts ...Option) *Registry[M] {
	if name == "" {
		panic("multiton: empty type name")
	}
	if populate == nil {
		panic("multiton: nil populate func for " + name)
	}
	return &Registry[M]{
		name:     name,
		populate: populate,
		opt:      buildOptions(opts),
	}
}

// Name returns the type name.
func (r *Registry[M]) Name() string { return r.name }

// String returns the type name.
func (r *Registry[M]) String() string { return r.name }

// State reports the population state without triggering population.
func (r *Registry[M]) State() State { return State(r.state.Load()) }

// Load populates the registry if needed and returns the population error,
// if any. The same error is returned on every call after a failure.
func (r *Registry[M]) Load() error {
	switch r.State() {
	case StatePopulated:
		return nil
	case StateFailed:
		return r.err
	}
	return r.loadSlow()
}

func (r *Registry[M]) loadSlow() error {
	// goid reports 0 when it cannot identify the goroutine. Then every
	// caller looks alike, so the re-entrancy shortcut is skipped.
	self := goid.Get()
	if self != 0 && r.State() == StatePopulating && r.owner.Load() == self {
		r.opt.log().Debug("multiton re-entrant access", "type", r.name)
		return fmt.Errorf("%w: %s", ErrReentrantAccess, r.name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	switch r.State() {
	case StatePopulated:
		return nil
	case StateFailed:
		return r.err
	}

	r.owner.Store(self)
	r.state.Store(int32(StatePopulating))
	start := time.Now()

	reg := newRegistrar[M](r.name, &r.opt)
	returned := false
	defer func() {
		if returned {
			return
		}
		// populate left through runtime.Goexit.
		r.fail(reg, fmt.Errorf("multiton: populating %s: routine exited without returning", r.name))
	}()

	err := r.run(reg)
	returned = true
	if err != nil {
		r.fail(reg, err)
		return err
	}

	reg.seal()
	r.owner.Store(0)
	r.members = reg.members
	r.index = reg.index
	r.state.Store(int32(StatePopulated))
	r.opt.log().Debug("multiton populated",
		"type", r.name,
		"members", len(r.members),
		"elapsed", time.Since(start),
	)
	return nil
}

// fail records err as the terminal population error. Callers hold mu.
func (r *Registry[M]) fail(reg *Registrar[M], err error) {
	reg.seal()
	r.owner.Store(0)
	r.err = err
	r.state.Store(int32(StateFailed))
	r.opt.log().Warn("multiton population failed", "type", r.name, "error", err)
}

func (r *Registry[M]) run(reg *Registrar[M]) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			if e, ok := rec.(error); ok {
				err = fmt.Errorf("multiton: populating %s: panic: %w", r.name, e)
				return
			}
			err = fmt.Errorf("multiton: populating %s: panic: %v", r.name, rec)
		}
	}()
	return r.populate(reg)
}

// Members returns every member in declaration order. The slice is a fresh
// copy; the members themselves are shared.
func (r *Registry[M]) Members() ([]M, error) {
	if err := r.Load(); err != nil {
		return nil, err
	}
	out := make([]M, len(r.members))
	copy(out, r.members)
	return out, nil
}

// Keys returns every member key in declaration order.
func (r *Registry[M]) Keys() ([]string, error) {
	if err := r.Load(); err != nil {
		return nil, err
	}
	keys := make([]string, len(r.members))
	for i, m := range r.members {
		keys[i] = m.Key()
	}
	return keys, nil
}

// Len returns the number of members.
func (r *Registry[M]) Len() (int, error) {
	if err := r.Load(); err != nil {
		return 0, err
	}
	return len(r.members), nil
}

// ByKey returns the member registered under key. It fails with an
// *UndefinedInstanceError when no such member exists.
func (r *Registry[M]) ByKey(key string) (M, error) {
	var zero M
	if err := r.Load(); err != nil {
		return zero, err
	}
	i, ok := r.index[r.opt.normalize(key)]
	if !ok {
		return zero, undefinedKey(r.name, key)
	}
	return r.members[i], nil
}

// MustByKey is like ByKey but panics on error. It is meant for accessor
// functions over keys the type itself declares.
func (r *Registry[M]) MustByKey(key string) M {
	m, err := r.ByKey(key)
	if err != nil {
		panic(err)
	}
	return m
}

// Has reports whether a member is registered under key.
func (r *Registry[M]) Has(key string) (bool, error) {
	if err := r.Load(); err != nil {
		return false, err
	}
	_, ok := r.index[r.opt.normalize(key)]
	return ok, nil
}

// Find returns the first member, in declaration order, for which match
// reports true.
func (r *Registry[M]) Find(match func(M) bool) (M, bool, error) {
	var zero M
	if err := r.Load(); err != nil {
		return zero, false, err
	}
	for _, m := range r.members {
		if match(m) {
			return m, true, nil
		}
	}
	return zero, false, nil
}

// Entries is Members without the type parameter.
func (r *Registry[M]) Entries() ([]Member, error) {
	if err := r.Load(); err != nil {
		return nil, err
	}
	out := make([]Member, len(r.members))
	for i, m := range r.members {
		out[i] = m
	}
	return out, nil
}

// Entry is ByKey without the type parameter.
func (r *Registry[M]) Entry(key string) (Member, error) {
	m, err := r.ByKey(key)
	if err != nil {
		return nil, err
	}
	return m, nil
}
