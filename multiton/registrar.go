package multiton

import (
	"fmt"
	"reflect"
	"sync/atomic"
)

// Registrar collects members while a Registry is populating. It is the
// only way to add members, and it is sealed once population returns.
type Registrar[M Member] struct {
	typ     string
	opt     *Options
	members []M
	index   map[string]int
	sealed  atomic.Bool
}

func newRegistrar[M Member](typ string, opt *Options) *Registrar[M] {
	return &Registrar[M]{
		typ:   typ,
		opt:   opt,
		index: make(map[string]int),
	}
}

// Add registers m under m.Key(). It fails with a *DuplicateKeyError if the
// key (after normalization) is already present, and with ErrInvalidMember
// if m is nil, not a pointer, or has an empty key.
func (r *Registrar[M]) Add(m M) error {
	if r.sealed.Load() {
		return fmt.Errorf("%w: %s", ErrSealed, r.typ)
	}
	if err := r.check(m); err != nil {
		return err
	}

	key := m.Key()
	nk := r.opt.normalize(key)
	if _, exists := r.index[nk]; exists {
		return &DuplicateKeyError{Type: r.typ, Key: key}
	}
	r.index[nk] = len(r.members)
	r.members = append(r.members, m)
	return nil
}

func (r *Registrar[M]) seal() { r.sealed.Store(true) }

// Members must be references so == compares identity.
func (r *Registrar[M]) check(m M) error {
	v := reflect.ValueOf(m)
	if !v.IsValid() {
		return InvalidMember(r.typ, "nil member")
	}
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return InvalidMember(r.typ, "nil member")
		}
	default:
		return InvalidMember(r.typ, fmt.Sprintf("member %s is not a pointer", v.Type()))
	}
	if m.Key() == "" {
		return InvalidMember(r.typ, "empty key")
	}
	return nil
}

// Get returns the member registered so far under key.
func (r *Registrar[M]) Get(key string) (M, bool) {
	i, ok := r.index[r.opt.normalize(key)]
	if !ok {
		var zero M
		return zero, false
	}
	return r.members[i], true
}

// Keys returns the keys registered so far, in registration order.
func (r *Registrar[M]) Keys() []string {
	keys := make([]string, len(r.members))
	for i, m := range r.members {
		keys[i] = m.Key()
	}
	return keys
}

// Len returns the number of members registered so far.
func (r *Registrar[M]) Len() int { return len(r.members) }

// Type returns the name of the type being populated.
func (r *Registrar[M]) Type() string { return r.typ }
