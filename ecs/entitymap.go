package ecs

// EntityMap is the sparse-dense map described in spec.md §3.3: sparse
// entries map a live entity's index to its dense slot, dense holds the
// live Entity handles themselves so iteration is contiguous. Insert,
// erase (swap-and-pop) and lookup are all O(1).
type EntityMap struct {
	set        sparseSet
	dense      []Entity
	generation []uint32 // per-index generation, bumped each time Create (re)uses the index
	freeIndex  []uint32 // recycled indices, LIFO
}

// Create allocates a new entity, reusing a freed index (with its
// generation bumped) when one is available.
func (m *EntityMap) Create() Entity {
	var index uint32
	if n := len(m.freeIndex); n > 0 {
		index = m.freeIndex[n-1]
		m.freeIndex = m.freeIndex[:n-1]
	} else {
		index = uint32(len(m.generation))
		m.generation = append(m.generation, 0)
	}
	m.generation[index]++ // first use of any index starts at generation 1
	e := newHandle(index, m.generation[index])

	slot := m.set.insert(index)
	for len(m.dense) <= int(slot) {
		m.dense = append(m.dense, InvalidHandle)
	}
	m.dense[slot] = e
	return e
}

// Exists reports whether e is still live: its index is mapped and the
// stored generation matches.
func (m *EntityMap) Exists(e Entity) bool {
	idx := e.Index()
	if !m.set.has(idx) {
		return false
	}
	return m.generation[idx] == e.Generation()
}

// Erase removes e from the map (swap-and-pop) and retires its index for
// reuse under a bumped generation. Any previously stored handle to e
// fails Exists from this point on.
func (m *EntityMap) Erase(e Entity) {
	idx := e.Index()
	if !m.Exists(e) {
		return
	}
	slot, movedIndex, moved := m.set.remove(idx)
	last := uint32(len(m.dense) - 1)
	if moved {
		m.dense[slot] = m.dense[last]
		_ = movedIndex
	}
	m.dense = m.dense[:last]
	m.freeIndex = append(m.freeIndex, idx)
}

// Len returns the number of live entities.
func (m *EntityMap) Len() int { return len(m.dense) }

// All returns the live entities in dense (contiguous, swap-pop) order.
// The returned slice is owned by the map; callers must not retain it
// across further Create/Erase calls.
func (m *EntityMap) All() []Entity { return m.dense }
