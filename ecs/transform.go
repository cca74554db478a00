package ecs

// MarkDirty inserts e into the dirty-transform set. TransformSystemUpdate
// will recompute its local and world matrices on the next drain.
func (w *World) MarkDirty(e Entity) {
	if w.transforms.Has(e) {
		w.dirty.add(e)
	}
}

// SetPosition overwrites e's local position and marks it dirty.
func (w *World) SetPosition(e Entity, pos Vec3) {
	w.transforms.Get(e).Position = pos
	w.MarkDirty(e)
}

// SetRotation overwrites e's local rotation and marks it dirty.
func (w *World) SetRotation(e Entity, rot Quat) {
	w.transforms.Get(e).Rotation = rot
	w.MarkDirty(e)
}

// SetScale overwrites e's local scale and marks it dirty.
func (w *World) SetScale(e Entity, scale Vec3) {
	w.transforms.Get(e).Scale = scale
	w.MarkDirty(e)
}

// Translate adds delta to e's local position and marks it dirty.
func (w *World) Translate(e Entity, delta Vec3) {
	t := w.transforms.Get(e)
	t.Position.X += delta.X
	t.Position.Y += delta.Y
	t.Position.Z += delta.Z
	w.MarkDirty(e)
}

// Reparent detaches e from its current parent (if any) and attaches it to
// newParent, marking e dirty so its world matrix is recomputed against the
// new ancestor. Passing the invalid handle makes e a root.
func (w *World) Reparent(e Entity, newParent Entity) {
	if p, ok := w.parent[e.Index()]; ok {
		w.detachFromParent(e, p)
		delete(w.parent, e.Index())
	}
	if newParent.Valid() && w.entities.Exists(newParent) {
		w.parent[e.Index()] = newParent
		w.children[newParent.Index()] = append(w.children[newParent.Index()], e)
	}
	w.MarkDirty(e)
}

// TransformSystemUpdate drains the dirty-transform set. For each entry it
// recomputes local = T*R*S and, if the entity has a parent, first makes
// sure the parent's world matrix is current (recursing if the parent is
// itself dirty) before composing world = parent.world * local. Orphans
// get world = local. Every entity is erased from the dirty set exactly
// once it is processed, matching spec.md §4.2's pop-any/recurse algorithm.
func (w *World) TransformSystemUpdate() {
	for !w.dirty.empty() {
		e := w.dirty.any()
		w.updateTransform(e)
	}
}

// updateTransform brings e's local/world matrices up to date and removes
// it from the dirty set. If e is not dirty it is a no-op, which is what
// lets recursion into an already-clean parent terminate immediately.
func (w *World) updateTransform(e Entity) {
	if !w.dirty.has(e) {
		return
	}
	t := w.transforms.Get(e)
	t.Local = TRS(t.Position, t.Rotation, t.Scale)

	if parent, ok := w.parent[e.Index()]; ok && w.entities.Exists(parent) {
		w.updateTransform(parent)
		t.World = w.transforms.Get(parent).World.Mul(t.Local)
	} else {
		t.World = t.Local
	}

	w.dirty.remove(e)
}
