package ecs

import "testing"

func TestTransformHierarchyPropagation(t *testing.T) {
	w := NewWorld()
	a := w.CreateEntity("A", InvalidHandle, Vec3{1, 0, 0}, IdentityQuat, Vec3{1, 1, 1})
	b := w.CreateEntity("B", a, Vec3{0, 1, 0}, IdentityQuat, Vec3{1, 1, 1})

	w.TransformSystemUpdate()

	world := w.Transforms().Get(b).World
	gotX, gotY, gotZ := world[12], world[13], world[14]
	if gotX != 1 || gotY != 1 || gotZ != 0 {
		t.Fatalf("B.world translation = (%v,%v,%v), want (1,1,0)", gotX, gotY, gotZ)
	}
}

func TestTransformUpdateIsIdempotent(t *testing.T) {
	w := NewWorld()
	a := w.CreateEntity("A", InvalidHandle, Vec3{1, 2, 3}, IdentityQuat, Vec3{1, 1, 1})
	w.TransformSystemUpdate()
	before := w.Transforms().Get(a).World

	// Second call with no intervening mutation must be a no-op.
	w.TransformSystemUpdate()
	after := w.Transforms().Get(a).World
	if before != after {
		t.Fatalf("second transform update changed world matrix: %v -> %v", before, after)
	}
}

func TestSetPositionGetPositionRoundTrip(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity("E", InvalidHandle, Vec3{}, IdentityQuat, Vec3{1, 1, 1})
	w.SetPosition(e, Vec3{5, 6, 7})
	got := w.Transforms().Get(e).Position
	if got != (Vec3{5, 6, 7}) {
		t.Fatalf("position round-trip failed: got %v", got)
	}
}

func TestDestroyEntityRecursivelyDestroysChildren(t *testing.T) {
	w := NewWorld()
	a := w.CreateEntity("A", InvalidHandle, Vec3{}, IdentityQuat, Vec3{1, 1, 1})
	b := w.CreateEntity("B", a, Vec3{}, IdentityQuat, Vec3{1, 1, 1})
	c := w.CreateEntity("C", b, Vec3{}, IdentityQuat, Vec3{1, 1, 1})

	w.DestroyEntity(a)

	if w.Exists(a) || w.Exists(b) || w.Exists(c) {
		t.Fatal("expected a, b, c all destroyed")
	}
}

func TestDestroyedEntityHandleFailsGenerationCheck(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity("E", InvalidHandle, Vec3{}, IdentityQuat, Vec3{1, 1, 1})
	w.DestroyEntity(e)
	if w.Exists(e) {
		t.Fatal("stale handle should fail existence check after destroy")
	}

	e2 := w.CreateEntity("E2", InvalidHandle, Vec3{}, IdentityQuat, Vec3{1, 1, 1})
	if e2.Index() == e.Index() && e2.Generation() == e.Generation() {
		t.Fatal("recycled slot must bump generation")
	}
}

func TestRegisterSignatureIsIdempotent(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity("E", InvalidHandle, Vec3{}, IdentityQuat, Vec3{1, 1, 1})
	before := w.signatures[e.Index()]
	w.RegisterSignature(e, SigTransform)
	after := w.signatures[e.Index()]
	if before != after {
		t.Fatal("re-registering an already-set signature bit must be a no-op")
	}
}

func TestComponentPoolCapacityExceeded(t *testing.T) {
	w := NewWorld()
	p := NewComponentPool[int](2)
	e1 := w.entities.Create()
	e2 := w.entities.Create()
	e3 := w.entities.Create()

	if err := p.Create(e1, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.Create(e2, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.Create(e3, 3); err == nil {
		t.Fatal("expected ErrOutOfCapacity on the third create")
	}
}

func TestSparseSetSwapPopPreservesInvariant(t *testing.T) {
	var m EntityMap
	a := m.Create()
	b := m.Create()
	c := m.Create()

	m.Erase(b)

	for _, e := range []Entity{a, c} {
		if !m.Exists(e) {
			t.Fatalf("entity %v should still exist after erasing b", e)
		}
	}
	if m.Exists(b) {
		t.Fatal("b should no longer exist")
	}
	if m.Len() != 2 {
		t.Fatalf("expected 2 live entities, got %d", m.Len())
	}
}
