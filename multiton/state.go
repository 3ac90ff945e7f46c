package multiton

import "fmt"

// State is the population state of a Registry.
type State int32

const (
	StateUninitialized State = iota // no access yet
	StatePopulating                 // population routine running
	StatePopulated                  // member set complete and immutable
	StateFailed                     // population failed; terminal
)

// String implements the Stringer interface for State
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StatePopulating:
		return "populating"
	case StatePopulated:
		return "populated"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// Terminal reports whether no further transition can happen.
func (s State) Terminal() bool {
	return s == StatePopulated || s == StateFailed
}
