package multiton

// Member is implemented by every value stored in a Registry.
type Member interface {
	// Key returns the identifier the member is registered under.
	Key() string
}

// Base carries a member key. Embed it in concrete member types.
type Base struct {
	key string
}

// NewBase returns a Base holding key.
func NewBase(key string) Base {
	return Base{key: key}
}

// Key returns the member key.
func (b Base) Key() string { return b.key }

// String returns the member key.
func (b Base) String() string { return b.key }
