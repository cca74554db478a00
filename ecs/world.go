package ecs

// freer is implemented by every typed ComponentPool; it lets World
// dispatch a destroy to the right pool via an entity's Signature without
// a type switch per component kind.
type freer interface {
	Free(Entity)
}

// dirtySet is a sparse set of entities needing transform recomputation.
// It mirrors ComponentPool's sparse/dense pairing but carries no payload
// beyond the entity handle itself.
type dirtySet struct {
	set   sparseSet
	dense []Entity
}

func (d *dirtySet) add(e Entity) {
	if d.set.has(e.Index()) {
		return
	}
	d.set.insert(e.Index())
	d.dense = append(d.dense, e)
}

func (d *dirtySet) remove(e Entity) {
	if !d.set.has(e.Index()) {
		return
	}
	slot, _, moved := d.set.remove(e.Index())
	last := len(d.dense) - 1
	if last < 0 {
		return
	}
	if moved {
		d.dense[slot] = d.dense[last]
	}
	d.dense = d.dense[:last]
}

func (d *dirtySet) has(e Entity) bool { return d.set.has(e.Index()) }
func (d *dirtySet) empty() bool       { return len(d.dense) == 0 }
func (d *dirtySet) any() Entity       { return d.dense[len(d.dense)-1] }

// World is the central ECS registry: entity identities, component pools,
// parent/child hierarchy, and the dirty-transform set the transform
// system drains each frame.
type World struct {
	entities   EntityMap
	signatures map[uint32]Signature

	parent   map[uint32]Entity
	children map[uint32][]Entity

	dirty dirtySet

	names      *ComponentPool[NameComponent]
	transforms *ComponentPool[Transform]
	renders    *ComponentPool[RenderComponent]
	lights     *ComponentPool[LightComponent]

	pools [sigCount]freer
}

// NewWorld creates an empty world with unbounded component pools.
func NewWorld() *World {
	w := &World{
		signatures: make(map[uint32]Signature),
		parent:     make(map[uint32]Entity),
		children:   make(map[uint32][]Entity),
		names:      NewComponentPool[NameComponent](0),
		transforms: NewComponentPool[Transform](0),
		renders:    NewComponentPool[RenderComponent](0),
		lights:     NewComponentPool[LightComponent](0),
	}
	w.pools[SigName] = w.names
	w.pools[SigTransform] = w.transforms
	w.pools[SigRender] = w.renders
	w.pools[SigLight] = w.lights
	return w
}

// CreateEntity allocates an entity, attaches its name and transform
// components, registers the corresponding signatures, inserts it into
// the dirty-transform set, and — if parent is valid — appends it to the
// parent's child list.
func (w *World) CreateEntity(name string, parent Entity, pos Vec3, rot Quat, scale Vec3) Entity {
	e := w.entities.Create()

	w.names.Create(e, NameComponent{Name: name})
	w.transforms.Create(e, NewTransform(pos, rot, scale))
	w.RegisterSignature(e, SigName)
	w.RegisterSignature(e, SigTransform)

	if parent.Valid() && w.entities.Exists(parent) {
		w.parent[e.Index()] = parent
		w.children[parent.Index()] = append(w.children[parent.Index()], e)
	}
	w.dirty.add(e)
	return e
}

// DestroyEntity recursively destroys e's children first, frees every
// component e is registered for (dispatched via its signature), then
// removes e from the entity map. Any previously stored handle to e fails
// Exists from this point on.
func (w *World) DestroyEntity(e Entity) {
	if !w.entities.Exists(e) {
		return
	}
	for _, child := range append([]Entity(nil), w.children[e.Index()]...) {
		w.DestroyEntity(child)
	}
	delete(w.children, e.Index())

	if p, ok := w.parent[e.Index()]; ok {
		w.detachFromParent(e, p)
		delete(w.parent, e.Index())
	}

	sig := w.signatures[e.Index()]
	for i := SignatureIndex(0); i < sigCount; i++ {
		if sig.Has(i) && w.pools[i] != nil {
			w.pools[i].Free(e)
		}
	}
	delete(w.signatures, e.Index())
	w.dirty.remove(e)

	w.entities.Erase(e)
}

func (w *World) detachFromParent(e, p Entity) {
	siblings := w.children[p.Index()]
	for i, c := range siblings {
		if c == e {
			w.children[p.Index()] = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
}

// RegisterSignature ORs kind's bit into e's signature mask. Re-registering
// an already-set bit is a no-op.
func (w *World) RegisterSignature(e Entity, kind SignatureIndex) {
	w.signatures[e.Index()] = w.signatures[e.Index()].Set(kind)
}

// HasSignature reports whether e is registered for kind.
func (w *World) HasSignature(e Entity, kind SignatureIndex) bool {
	return w.signatures[e.Index()].Has(kind)
}

// Entities returns every live entity.
func (w *World) Entities() []Entity { return w.entities.All() }

// Exists reports whether e is still live.
func (w *World) Exists(e Entity) bool { return w.entities.Exists(e) }

// Transforms exposes the transform component pool.
func (w *World) Transforms() *ComponentPool[Transform] { return w.transforms }

// Names exposes the name component pool.
func (w *World) Names() *ComponentPool[NameComponent] { return w.names }

// AddRenderComponent attaches a RenderComponent to e and registers its
// signature.
func (w *World) AddRenderComponent(e Entity, rc RenderComponent) error {
	if err := w.renders.Create(e, rc); err != nil {
		return err
	}
	w.RegisterSignature(e, SigRender)
	return nil
}

// Render exposes the render component pool.
func (w *World) Render() *ComponentPool[RenderComponent] { return w.renders }

// AddLightComponent attaches a LightComponent to e and registers its
// signature.
func (w *World) AddLightComponent(e Entity, lc LightComponent) error {
	if err := w.lights.Create(e, lc); err != nil {
		return err
	}
	w.RegisterSignature(e, SigLight)
	return nil
}

// Light exposes the light component pool.
func (w *World) Light() *ComponentPool[LightComponent] { return w.lights }

// Parent returns e's parent entity, or the invalid handle if e is a
// root.
func (w *World) Parent(e Entity) Entity { return w.parent[e.Index()] }

// Children returns e's child entities.
func (w *World) Children(e Entity) []Entity { return w.children[e.Index()] }
