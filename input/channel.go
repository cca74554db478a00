package input

// ErrOutOfCapacity is returned by CreateAction when a channel's fixed
// action-table capacity is already full, mirroring ecs.ErrOutOfCapacity
// (spec.md §4.2's CapacityExceeded taxonomy applied to C5 per §3.6).
type ErrOutOfCapacity struct{ Channel string }

func (e ErrOutOfCapacity) Error() string {
	return "input: channel " + e.Channel + " action table at capacity"
}

// Channel is a named table of InputActions, loaded once per project from
// input.json (spec.md §6.3) and then refreshed every frame by
// System.Update.
type Channel struct {
	name     string
	actions  []*Action
	byName   map[string]ActionHandle
	capacity int // 0 means unbounded
}

// NewChannel creates an empty channel. capacity <= 0 means unbounded,
// matching ecs.NewComponentPool's convention.
func NewChannel(name string, capacity int) *Channel {
	return &Channel{name: name, byName: make(map[string]ActionHandle), capacity: capacity}
}

// Name returns the channel's identifier.
func (c *Channel) Name() string { return c.name }

// CreateAction registers a new action. Re-registering an existing name
// returns its existing handle rather than a duplicate slot.
func (c *Channel) CreateAction(name string, info CreateInfo) (ActionHandle, error) {
	if h, ok := c.byName[name]; ok {
		return h, nil
	}
	if c.capacity > 0 && len(c.actions) >= c.capacity {
		return InvalidAction, ErrOutOfCapacity{Channel: c.name}
	}
	c.actions = append(c.actions, &Action{name: name, info: info})
	h := ActionHandle(len(c.actions)) // 1-based: index 0 is InvalidAction
	c.byName[name] = h
	return h, nil
}

// FindAction looks up a previously created action by name.
func (c *Channel) FindAction(name string) (ActionHandle, bool) {
	h, ok := c.byName[name]
	return h, ok
}

func (c *Channel) action(h ActionHandle) *Action {
	if h == InvalidAction || int(h) > len(c.actions) {
		return nil
	}
	return c.actions[h-1]
}

// IsPressed reports whether h's button transitioned up->down this
// Update, per spec.md §4.5.
func (c *Channel) IsPressed(h ActionHandle) bool {
	a := c.action(h)
	return a != nil && a.pressed
}

// IsHeld reports whether h's button is currently down.
func (c *Channel) IsHeld(h ActionHandle) bool {
	a := c.action(h)
	return a != nil && a.held
}

// IsReleased reports whether h's button transitioned down->up this
// Update.
func (c *Channel) IsReleased(h ActionHandle) bool {
	a := c.action(h)
	return a != nil && a.released
}

// GetFloat returns h's cached analog value, or 0 if h is a button
// action (spec.md §4.5).
func (c *Channel) GetFloat(h ActionHandle) float32 {
	a := c.action(h)
	if a == nil || a.info.ActionType == ActionButton {
		return 0
	}
	return a.cached.X
}

// GetFloat2 returns h's cached 2-component analog value; 0 if h is a
// button action.
func (c *Channel) GetFloat2(h ActionHandle) Vec2 {
	a := c.action(h)
	if a == nil || a.info.ActionType == ActionButton {
		return Vec2{}
	}
	return a.cached
}

// evaluate refreshes every action in the channel from the current key
// and mouse state snapshots, per spec.md §4.5's binding/composite
// evaluation rules.
func (c *Channel) evaluate(keyHeld *[keyCount]bool, mouse MouseEvent) {
	for _, a := range c.actions {
		switch a.info.BindingType {
		case BindingCompositeUpDownRightLeft:
			// Keys are {up, down, right, left} (spec.md §3.6/HID.h's
			// "0 = UP, 1 = DOWN, 2 = RIGHT, 3 = LEFT"). The cached float2
			// is (up-down, right-left) — per spec.md §8 scenario 5's
			// worked example, not a screen x/y convention.
			up := boolToFloat(keyHeld[a.info.Keys[0]])
			down := boolToFloat(keyHeld[a.info.Keys[1]])
			right := boolToFloat(keyHeld[a.info.Keys[2]])
			left := boolToFloat(keyHeld[a.info.Keys[3]])
			a.cached = Vec2{X: up - down, Y: right - left}
			a.pressed, a.released = false, false
		default: // BindingSingle
			evaluateSingle(a, keyHeld, mouse)
		}
	}
}

func boolToFloat(b bool) float32 {
	if b {
		return 1
	}
	return 0
}

func evaluateSingle(a *Action, keyHeld *[keyCount]bool, mouse MouseEvent) {
	wasHeld := a.held

	switch a.info.Source {
	case SourceKeyboard:
		a.held = keyHeld[a.info.Keys[0]]
		a.cached = Vec2{X: boolToFloat(a.held)}
	case SourceMouse:
		switch a.info.Keys[0] {
		case mouseMoveKey:
			a.cached = mouse.MoveOffset
			a.held = mouse.MoveOffset.X != 0 || mouse.MoveOffset.Y != 0
		case mouseWheelKey:
			a.cached = Vec2{X: float32(mouse.Wheel)}
			a.held = mouse.Wheel != 0
		case mouseLeftKey:
			a.held = mouse.LeftPressed || (wasHeld && !mouse.LeftReleased)
			a.cached = Vec2{X: boolToFloat(a.held)}
		case mouseRightKey:
			a.held = mouse.RightPressed || (wasHeld && !mouse.RightReleased)
			a.cached = Vec2{X: boolToFloat(a.held)}
		case mouseMiddleKey:
			a.held = mouse.MidPressed || (wasHeld && !mouse.MidReleased)
			a.cached = Vec2{X: boolToFloat(a.held)}
		}
	}

	a.pressed = a.held && !wasHeld
	a.released = !a.held && wasHeld
}

// Mouse source actions reuse the Key type as a small fixed enumeration
// of mouse inputs so CreateInfo.Keys doesn't need a second array type;
// these constants live far outside the keyboard scan-code range so they
// never collide with a real Key.
const (
	mouseLeftKey Key = 0xF0 + iota
	mouseRightKey
	mouseMiddleKey
	mouseWheelKey
	mouseMoveKey
)
