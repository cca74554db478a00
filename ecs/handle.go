// Package ecs implements the engine's entity-component-system: sparse-set
// component pools, generational entity handles, signature-based
// registration, and hierarchical transform propagation.
package ecs

// Handle is the framework-wide 64-bit handle: the low 32 bits are a sparse
// index, the high 32 bits a generation counter. The zero handle is
// always invalid. Handles compare by raw value; equality implies
// referential identity only when generations match, so a stale handle to
// a freed-and-reused slot never aliases the new occupant.
type Handle uint64

// InvalidHandle is the zero handle shared by every handle-typed slot.
const InvalidHandle Handle = 0

func newHandle(index, generation uint32) Handle {
	return Handle(uint64(generation)<<32 | uint64(index))
}

// Index returns the sparse index encoded in the handle.
func (h Handle) Index() uint32 { return uint32(h) }

// Generation returns the generation counter encoded in the handle.
func (h Handle) Generation() uint32 { return uint32(h >> 32) }

// Valid reports whether h is anything other than the zero handle.
func (h Handle) Valid() bool { return h != InvalidHandle }

// Entity is a 64-bit framework handle carrying {sparse_index, generation}.
type Entity = Handle
