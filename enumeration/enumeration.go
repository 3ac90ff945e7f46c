package enumeration

import (
	"slices"

	"github.com/joshuapare/enumkit/multiton"
)

// Enumeration is a multiton registry whose members carry values.
type Enumeration[M Valued[V], V comparable] struct {
	*multiton.Registry[M]
}

// New creates an uncatalogued value enumeration populated by populate.
func New[M Valued[V], V comparable](name string, populate multiton.PopulateFunc[M], opts ...multiton.Option) *Enumeration[M, V] {
	return &Enumeration[M, V]{Registry: multiton.New(name, checked[M, V](populate), opts...)}
}

// Define is like New but also records the enumeration in the multiton
// catalog. See multiton.Define.
func Define[M Valued[V], V comparable](name string, populate multiton.PopulateFunc[M], opts ...multiton.Option) *Enumeration[M, V] {
	return &Enumeration[M, V]{Registry: multiton.Define(name, checked[M, V](populate), opts...)}
}

// Declare defines a catalogued enumeration with one member per pair, in
// order, each built by build.
func Declare[M Valued[V], V comparable](name string, pairs []Pair[V], build func(Member[V]) M, opts ...multiton.Option) *Enumeration[M, V] {
	return Define[M, V](name, Populate(pairs, build), opts...)
}

// Populate returns the default population routine: one member per pair,
// in declaration order. Chain it with other routines to extend a set.
func Populate[M Valued[V], V comparable](pairs []Pair[V], build func(Member[V]) M) multiton.PopulateFunc[M] {
	pairs = slices.Clone(pairs)
	return func(r *multiton.Registrar[M]) error {
		for _, p := range pairs {
			if err := r.Add(build(NewMember(p.Key, p.Value))); err != nil {
				return err
			}
		}
		return nil
	}
}

func checked[M Valued[V], V comparable](populate multiton.PopulateFunc[M]) multiton.PopulateFunc[M] {
	if populate == nil {
		return nil
	}
	return func(r *multiton.Registrar[M]) error {
		if err := populate(r); err != nil {
			return err
		}
		for _, key := range r.Keys() {
			m, _ := r.Get(key)
			if err := checkValue(r.Type(), key, m.Value()); err != nil {
				return err
			}
		}
		return nil
	}
}

// ByValue returns the first member, in declaration order, whose value
// equals v. It fails with a *multiton.UndefinedInstanceError when no
// member matches.
func (e *Enumeration[M, V]) ByValue(v V) (M, error) {
	m, ok, err := e.Find(func(m M) bool { return m.Value() == v })
	if err != nil {
		return m, err
	}
	if !ok {
		return m, multiton.UndefinedValue(e.Name(), v)
	}
	return m, nil
}

// MustByValue is like ByValue but panics on error.
func (e *Enumeration[M, V]) MustByValue(v V) M {
	m, err := e.ByValue(v)
	if err != nil {
		panic(err)
	}
	return m
}

// HasValue reports whether any member carries v.
func (e *Enumeration[M, V]) HasValue(v V) (bool, error) {
	_, ok, err := e.Find(func(m M) bool { return m.Value() == v })
	return ok, err
}

// Values returns every member value in declaration order.
func (e *Enumeration[M, V]) Values() ([]V, error) {
	members, err := e.Members()
	if err != nil {
		return nil, err
	}
	values := make([]V, len(members))
	for i, m := range members {
		values[i] = m.Value()
	}
	return values, nil
}

// Pairs returns every (key, value) pair in declaration order.
func (e *Enumeration[M, V]) Pairs() ([]Pair[V], error) {
	members, err := e.Members()
	if err != nil {
		return nil, err
	}
	pairs := make([]Pair[V], len(members))
	for i, m := range members {
		pairs[i] = NewPair(m.Key(), m.Value())
	}
	return pairs, nil
}
