package input

import "testing"

func TestRingOverflowWraps(t *testing.T) {
	r := NewRing()
	for i := 0; i < ringCapacity+1; i++ {
		r.Push(Event{Kind: EventKeyboard, Keyboard: KeyboardEvent{Key: KeyA, Pressed: true}})
	}
	if got := r.Len(); got != ringCapacity {
		t.Fatalf("Len() = %d, want %d (used stays capped, oldest overwritten)", got, ringCapacity)
	}
}

func TestRingDrainIsFIFOAndResets(t *testing.T) {
	r := NewRing()
	r.Push(Event{Kind: EventKeyboard, Keyboard: KeyboardEvent{Key: KeyA, Pressed: true}})
	r.Push(Event{Kind: EventKeyboard, Keyboard: KeyboardEvent{Key: KeyB, Pressed: true}})

	got := r.Drain()
	if len(got) != 2 || got[0].Keyboard.Key != KeyA || got[1].Keyboard.Key != KeyB {
		t.Fatalf("Drain() = %+v, want [A, B] in push order", got)
	}
	if r.Len() != 0 {
		t.Fatalf("Len() after Drain = %d, want 0", r.Len())
	}
}

func TestCompositeMoveAction(t *testing.T) {
	s := NewSystem()
	ch := s.CreateChannel("gameplay", 8)
	h, err := ch.CreateAction("move", CreateInfo{
		ValueType:   ValueFloat2,
		ActionType:  ActionValue,
		BindingType: BindingCompositeUpDownRightLeft,
		Source:      SourceKeyboard,
		Keys:        [4]Key{KeyW, KeyS, KeyD, KeyA},
	})
	if err != nil {
		t.Fatalf("CreateAction: %v", err)
	}

	s.Update([]Event{
		{Kind: EventKeyboard, Keyboard: KeyboardEvent{Key: KeyW, Pressed: true}},
		{Kind: EventKeyboard, Keyboard: KeyboardEvent{Key: KeyD, Pressed: true}},
	})
	if got := ch.GetFloat2(h); got != (Vec2{X: 1, Y: 1}) {
		t.Fatalf("after W+D down: GetFloat2 = %v, want (1,1)", got)
	}

	s.Update([]Event{
		{Kind: EventKeyboard, Keyboard: KeyboardEvent{Key: KeyW, Pressed: false}},
	})
	if got := ch.GetFloat2(h); got != (Vec2{X: 0, Y: 1}) {
		t.Fatalf("after W up: GetFloat2 = %v, want (0,1)", got)
	}
}

func TestButtonPressedReleasedEdges(t *testing.T) {
	s := NewSystem()
	ch := s.CreateChannel("gameplay", 0)
	h, _ := ch.CreateAction("jump", CreateInfo{
		ValueType:   ValueBool,
		ActionType:  ActionButton,
		BindingType: BindingSingle,
		Source:      SourceKeyboard,
		Keys:        [4]Key{KeySpacebar},
	})

	s.Update(nil)
	if ch.IsPressed(h) || ch.IsHeld(h) {
		t.Fatalf("jump should start unpressed")
	}

	s.Update([]Event{{Kind: EventKeyboard, Keyboard: KeyboardEvent{Key: KeySpacebar, Pressed: true}}})
	if !ch.IsPressed(h) || !ch.IsHeld(h) {
		t.Fatalf("jump should be pressed+held on key-down frame")
	}

	s.Update(nil)
	if ch.IsPressed(h) || !ch.IsHeld(h) {
		t.Fatalf("jump should stay held without re-firing pressed on a no-op frame")
	}

	s.Update([]Event{{Kind: EventKeyboard, Keyboard: KeyboardEvent{Key: KeySpacebar, Pressed: false}}})
	if !ch.IsReleased(h) || ch.IsHeld(h) {
		t.Fatalf("jump should be released and not held on key-up frame")
	}
}

func TestChannelCapacityExceeded(t *testing.T) {
	ch := NewChannel("tiny", 1)
	if _, err := ch.CreateAction("a", CreateInfo{}); err != nil {
		t.Fatalf("first CreateAction: %v", err)
	}
	if _, err := ch.CreateAction("b", CreateInfo{}); err == nil {
		t.Fatalf("second CreateAction should fail: channel at capacity")
	}
}

func TestScanCodeTableRoundTrips(t *testing.T) {
	for k, row := range keyTable {
		if got := ScanCodeToKey(row.scan); got != Key(k) {
			t.Fatalf("ScanCodeToKey(%#x) = %v, want %v", row.scan, got, Key(k))
		}
	}
}
