package input

// ValueType is the action's interpreted value shape, per spec.md §3.6.
type ValueType uint32

const (
	ValueBool ValueType = iota
	ValueFloat
	ValueFloat2
)

// ActionType distinguishes a continuously-sampled value from a
// press/release button and a raw pass-through, per spec.md §3.6.
type ActionType uint32

const (
	ActionValue ActionType = iota
	ActionButton
	ActionDirect
)

// BindingType selects single-key binding versus the four-key composite
// axis, per spec.md §3.6/§6.3.
type BindingType uint32

const (
	BindingSingle BindingType = iota
	BindingCompositeUpDownRightLeft
)

// Source is the device an action's keys are drawn from.
type Source uint32

const (
	SourceKeyboard Source = iota
	SourceMouse
)

// maxCompositeKeys bounds CreateInfo.Keys: one key per binding, or four
// for a composite (up, down, right, left), per spec.md §3.6.
const maxCompositeKeys = 4

// CreateInfo describes one action to Channel.CreateAction, mirroring
// original_source's InputActionCreateInfo.
type CreateInfo struct {
	ValueType   ValueType
	ActionType  ActionType
	BindingType BindingType
	Source      Source
	Keys        [maxCompositeKeys]Key
}

// ActionHandle indexes an action within its owning Channel. The zero
// value is invalid; indices are offset by one so a missing lookup and a
// valid handle to slot 0 are distinguishable.
type ActionHandle uint32

// InvalidAction is the sentinel returned when an action cannot be
// created or found.
const InvalidAction ActionHandle = 0

// Action is one bound input action: its static binding plus the value
// and edge state Update refreshes every frame.
type Action struct {
	name string
	info CreateInfo

	cached   Vec2 // bool/float live in X; float2 uses both
	pressed  bool // true exactly on the frame a button transitions up->down
	released bool // true exactly on the frame a button transitions down->up
	held     bool // true while a button binding's key is down
}

// Name returns the action's identifier, as given to CreateAction.
func (a *Action) Name() string { return a.name }
