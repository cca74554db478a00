package ecs

// sparseSlotFree marks a sparse-array slot as having no dense mapping.
const sparseSlotFree = ^uint32(0)

// sparseSet is the O(1) add/remove/lookup/iterate building block spec'd
// for both the entity map and every component pool: a sparse array
// mapping a dense index to a "does this exist, and where" slot, and a
// dense array that is iterated contiguously. Removal is swap-and-pop:
// the last dense element moves into the hole, and its sparse entry is
// repointed.
type sparseSet struct {
	sparse []uint32 // index(key) -> dense slot, or sparseSlotFree
	dense  []uint32 // dense slot -> index(key)
}

func newSparseSet() sparseSet {
	return sparseSet{}
}

func (s *sparseSet) has(index uint32) bool {
	return int(index) < len(s.sparse) && s.sparse[index] != sparseSlotFree
}

func (s *sparseSet) slotOf(index uint32) (uint32, bool) {
	if !s.has(index) {
		return 0, false
	}
	return s.sparse[index], true
}

// insert records index as occupying the next dense slot and returns that
// slot. The caller is responsible for appending the matching payload to
// its own parallel dense array at the same slot.
func (s *sparseSet) insert(index uint32) uint32 {
	for len(s.sparse) <= int(index) {
		s.sparse = append(s.sparse, sparseSlotFree)
	}
	slot := uint32(len(s.dense))
	s.sparse[index] = slot
	s.dense = append(s.dense, index)
	return slot
}

// remove erases index, returning the slot it occupied and the index that
// was swapped into that slot (equal to the removed index if it was last).
// The caller must apply the same swap-pop to its parallel dense array.
func (s *sparseSet) remove(index uint32) (removedSlot uint32, movedIndex uint32, moved bool) {
	slot, ok := s.slotOf(index)
	if !ok {
		return 0, 0, false
	}
	last := uint32(len(s.dense) - 1)
	lastIndex := s.dense[last]

	s.dense[slot] = lastIndex
	s.sparse[lastIndex] = slot
	s.dense = s.dense[:last]
	s.sparse[index] = sparseSlotFree

	if lastIndex == index {
		return slot, index, false
	}
	return slot, lastIndex, true
}

func (s *sparseSet) len() int { return len(s.dense) }
