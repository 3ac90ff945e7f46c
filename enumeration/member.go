package enumeration

import (
	"fmt"
	"reflect"

	"github.com/joshuapare/enumkit/multiton"
)

// Member is the embeddable base for value enumeration members.
type Member[V comparable] struct {
	multiton.Base
	value V
}

// NewMember returns a Member with the given key and value.
func NewMember[V comparable](key string, value V) Member[V] {
	return Member[V]{Base: multiton.NewBase(key), value: value}
}

// Value returns the value the member was declared with.
func (m Member[V]) Value() V { return m.value }

// Valued is satisfied by pointers to types embedding Member[V].
type Valued[V comparable] interface {
	multiton.Member
	Value() V
}

// Pair is one declared (key, value) entry.
type Pair[V comparable] struct {
	Key   string
	Value V
}

// NewPair returns a Pair.
func NewPair[V comparable](key string, value V) Pair[V] {
	return Pair[V]{Key: key, Value: value}
}

// ValueOf returns the value of a member seen only through multiton.Member.
// ok is false when m has no Value method.
func ValueOf(m multiton.Member) (v any, ok bool) {
	if m == nil {
		return nil, false
	}
	meth := reflect.ValueOf(m).MethodByName("Value")
	if !meth.IsValid() || meth.Type().NumIn() != 0 || meth.Type().NumOut() != 1 {
		return nil, false
	}
	return meth.Call(nil)[0].Interface(), true
}

// checkValue rejects values whose dynamic type cannot be compared with ==.
// Only reachable when V is an interface type.
func checkValue(typ, key string, v any) error {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Comparable() {
		return nil
	}
	return multiton.InvalidMember(typ, fmt.Sprintf("value of %s has incomparable type %T", key, v))
}
