package multiton

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is. The typed errors below match the first two.
var (
	// ErrUndefinedInstance indicates no member matched a key or value lookup.
	ErrUndefinedInstance = errors.New("multiton: undefined instance")
	// ErrDuplicateKey indicates two members of one type share a key.
	ErrDuplicateKey = errors.New("multiton: duplicate key")
	// ErrReentrantAccess indicates a population routine accessed its own registry.
	ErrReentrantAccess = errors.New("multiton: registry accessed during its own population")
	// ErrInvalidMember indicates a member that cannot be registered (nil, empty key, incomparable value).
	ErrInvalidMember = errors.New("multiton: invalid member")
	// ErrSealed indicates an Add after population finished.
	ErrSealed = errors.New("multiton: registrar sealed")
)

// UndefinedInstanceError is returned when a lookup finds no member.
type UndefinedInstanceError struct {
	Type     string // enumeration type name
	Property string // "key" or "value"
	Value    any    // the key or value that was looked up
}

func (e *UndefinedInstanceError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if s, ok := e.Value.(string); ok && e.Property == "key" {
		return fmt.Sprintf("multiton: no member of %s with key %q", e.Type, s)
	}
	return fmt.Sprintf("multiton: no member of %s with %s %#v (%T)", e.Type, e.Property, e.Value, e.Value)
}

// Is matches ErrUndefinedInstance.
func (e *UndefinedInstanceError) Is(target error) bool { return target == ErrUndefinedInstance }

// DuplicateKeyError is returned when a population routine registers a key twice.
type DuplicateKeyError struct {
	Type string
	Key  string
}

func (e *DuplicateKeyError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("multiton: duplicate key %q in %s", e.Key, e.Type)
}

// Is matches ErrDuplicateKey.
func (e *DuplicateKeyError) Is(target error) bool { return target == ErrDuplicateKey }

func undefinedKey(typ, key string) error {
	return &UndefinedInstanceError{Type: typ, Property: "key", Value: key}
}

// UndefinedValue builds the error value lookups return when nothing matches v.
func UndefinedValue(typ string, v any) error {
	return &UndefinedInstanceError{Type: typ, Property: "value", Value: v}
}

// InvalidMember builds an ErrInvalidMember error for type typ. Packages
// layered on top of Registrar use it to reject members before Add.
func InvalidMember(typ, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidMember, typ, reason)
}
