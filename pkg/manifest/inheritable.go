package manifest

// State tells which of the three forms an inheritable field has in the manifest
type State uint8

const (
	// StateAbsent means the field is not in the manifest at all
	StateAbsent State = iota
	// StateDirect means the field holds its own value
	StateDirect
	// StateInherited means the field is `{ workspace = true }`
	StateInherited
)

func (s State) String() string {
	switch s {
	case StateDirect:
		return "direct"
	case StateInherited:
		return "inherited"
	default:
		return "absent"
	}
}

// Inheritable is a package field that is either absent, a direct value or
// a marker to inherit the value from `[workspace.package]`
type Inheritable[T any] struct {
	state State
	value T
}

// Direct returns a field holding v
func Direct[T any](v T) Inheritable[T] {
	return Inheritable[T]{state: StateDirect, value: v}
}

// Inherit returns a field marked with `workspace = true`
func Inherit[T any]() Inheritable[T] {
	return Inheritable[T]{state: StateInherited}
}

// State returns the form of this field
func (i Inheritable[T]) State() State {
	return i.state
}

// Value returns the direct value. The bool is false for absent and inherited fields
func (i Inheritable[T]) Value() (T, bool) {
	return i.value, i.state == StateDirect
}

// Optional is a concrete value that might be missing
type Optional[T any] struct {
	set   bool
	value T
}

// Some returns a present optional holding v
func Some[T any](v T) Optional[T] {
	return Optional[T]{set: true, value: v}
}

// Get returns the value and whether it is present
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// IsSet returns true if the value is present
func (o Optional[T]) IsSet() bool {
	return o.set
}
