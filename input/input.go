package input

// OSEventSource is the named boundary to the out-of-scope OS/window
// layer (spec.md §1: "Platform file I/O, window creation, and raw input
// capture (OS layer)"). The engine only ever calls Poll on it; nothing
// in this package implements it.
type OSEventSource interface {
	// Poll pushes any newly captured OS input events into ring,
	// translating scan codes via ScanCodeToKey.
	Poll(ring *Ring)
}

// System is the engine's input subsystem: the global event ring plus
// one action Channel per loaded project (spec.md §4.5's
// InitInputSystem/UpdateInput entry points).
type System struct {
	ring     *Ring
	channels map[string]*Channel

	keyHeld [keyCount]bool
	mouse   MouseEvent
}

// NewSystem allocates the channel table; the event ring is created on
// first use (Ring or Poll). It takes no capacity or arena: each
// channel's action-table capacity is given to CreateChannel instead, and
// the table is held in ordinary Go maps/slices.
func NewSystem() *System {
	return &System{channels: make(map[string]*Channel)}
}

// CreateChannel registers a new named channel (one per project,
// spec.md §6.2) with the given action-table capacity (0 = unbounded).
// Re-registering an existing name returns the existing channel.
func (s *System) CreateChannel(name string, maxActions int) *Channel {
	if c, ok := s.channels[name]; ok {
		return c
	}
	c := NewChannel(name, maxActions)
	s.channels[name] = c
	return c
}

// Channel looks up a previously created channel by name.
func (s *System) Channel(name string) (*Channel, bool) {
	c, ok := s.channels[name]
	return c, ok
}

// Ring exposes the global event ring so an OSEventSource implementation
// can push into it.
func (s *System) Ring() *Ring { return s.ring0() }

func (s *System) ring0() *Ring {
	if s.ring == nil {
		s.ring = NewRing()
	}
	return s.ring
}

// Poll drains the global ring and folds the drained events into the
// held-key/mouse state, then re-evaluates every channel's actions.
// Equivalent to spec.md §4.5's PollOSEvents followed by UpdateInput for
// callers that don't want to manage the drain themselves.
func (s *System) Poll() {
	s.Update(s.ring0().Drain())
}

// Update folds events into the subsystem's held-key and mouse state,
// then re-evaluates every channel's cached action values. Per-frame
// mouse move offset and wheel delta are reset at the start of each
// Update call, since they are deltas rather than levels.
func (s *System) Update(events []Event) {
	s.mouse.MoveOffset = Vec2{}
	s.mouse.Wheel = 0
	s.mouse.LeftPressed, s.mouse.LeftReleased = false, false
	s.mouse.RightPressed, s.mouse.RightReleased = false, false
	s.mouse.MidPressed, s.mouse.MidReleased = false, false

	for _, e := range events {
		switch e.Kind {
		case EventKeyboard:
			s.keyHeld[e.Keyboard.Key] = e.Keyboard.Pressed
		case EventMouse:
			m := e.Mouse
			s.mouse.Position = m.Position
			s.mouse.MoveOffset.X += m.MoveOffset.X
			s.mouse.MoveOffset.Y += m.MoveOffset.Y
			s.mouse.Wheel += m.Wheel
			s.mouse.LeftPressed = s.mouse.LeftPressed || m.LeftPressed
			s.mouse.LeftReleased = s.mouse.LeftReleased || m.LeftReleased
			s.mouse.RightPressed = s.mouse.RightPressed || m.RightPressed
			s.mouse.RightReleased = s.mouse.RightReleased || m.RightReleased
			s.mouse.MidPressed = s.mouse.MidPressed || m.MidPressed
			s.mouse.MidReleased = s.mouse.MidReleased || m.MidReleased
		}
	}

	for _, c := range s.channels {
		c.evaluate(&s.keyHeld, s.mouse)
	}
}
