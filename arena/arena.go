package arena

import (
	"fmt"
)

// DefaultReserve is the default address-space reservation for a new arena.
const DefaultReserve = 1 << 30 // 1 GiB

// Marker is a saved watermark into an Arena. Restoring it logically frees
// every allocation made after it was taken; allocations inside the scope
// must have no non-trivial destructors, or the caller must invoke them
// before the scope exits.
type Marker struct {
	used  int
	logAt *allocLog // debug log head at the time the marker was taken
}

// Arena is an ordered region of reserved address space that allocations
// bump-allocate from. The invariant reservedBase <= used <= committed <=
// reservedBase+reservedSize always holds between calls.
type Arena struct {
	Name string

	res       *reservation
	reserved  int
	committed int
	used      int

	// Debug enables the per-allocation boundary/leak tracker. It is cheap
	// to leave off in release builds; tests flip it on to exercise the
	// tracker without a separate build tag.
	Debug bool
	log   *allocLog
}

// New reserves `reserve` bytes of address space and commits one page up
// front. It only fails when the OS refuses the reservation outright.
func New(name string, reserve int) (*Arena, error) {
	if reserve <= 0 {
		reserve = DefaultReserve
	}
	r, err := virtualReserve(reserve)
	if err != nil {
		return nil, err
	}
	initial := roundUpPage(1)
	if err := r.commit(initial); err != nil {
		r.release()
		return nil, err
	}
	return &Arena{
		Name:      name,
		res:       r,
		reserved:  reserve,
		committed: initial,
	}, nil
}

// Used returns the current watermark, for tests and diagnostics.
func (a *Arena) Used() int { return a.used }

// Reserved returns the total reservation size.
func (a *Arena) Reserved() int { return a.reserved }

func alignForwardAdjustment(addr, align int) int {
	if align <= 1 {
		return 0
	}
	mod := addr & (align - 1)
	if mod == 0 {
		return 0
	}
	return align - mod
}

// Alloc bump-allocates size bytes aligned to align (a power of two),
// growing the committed region in page-sized, doubling chunks as needed.
// A zero-size request still returns a non-nil, correctly aligned slice
// into the arena rather than nil; outside Debug mode it does not advance
// the watermark, so back-to-back zero-size requests share an address.
// Alloc panics (OutOfMemory, fatal per the
// engine's error taxonomy) if satisfying the request would exceed the
// reservation.
func (a *Arena) Alloc(size, align int) []byte {
	if align <= 0 {
		align = 1
	}
	payloadAt := a.used
	if a.Debug {
		// The payload follows the front sentinel; align that, not the guard.
		payloadAt += sentinelSize
	}
	adj := alignForwardAdjustment(payloadAt, align)
	if adj > align-1 {
		panic("arena: alignment adjustment exceeds align-1")
	}

	start := a.used + adj
	reqSize := size
	if a.Debug {
		reqSize += debugOverhead
	}
	end := start + reqSize

	if end > a.reserved {
		panic(fmt.Sprintf("arena %q: out of memory, requested %d bytes past reservation of %d", a.Name, reqSize, a.reserved))
	}

	if end > a.committed {
		grow := end
		if doubled := a.committed * 2; doubled > grow {
			grow = doubled
		}
		if grow > a.reserved {
			grow = a.reserved
		}
		grow = roundUpPage(grow)
		if grow > a.reserved {
			grow = a.reserved
		}
		if err := a.res.commit(grow); err != nil {
			panic(err)
		}
		a.committed = grow
	}

	a.used = end
	raw := a.res.base[start:end]

	if a.Debug {
		return a.wrapDebug(raw, size)
	}
	if size == 0 {
		// Still return a non-nil, correctly aligned slice header.
		return raw[:0:0]
	}
	return raw[:size:size]
}

// Scope saves the current watermark, runs fn, then restores it — logically
// freeing everything fn allocated. In debug builds the log chain is also
// trimmed back to what it was at entry.
func (a *Arena) Scope(fn func()) {
	m := a.Mark()
	fn()
	a.Reset(m)
}

// Mark saves the current watermark for a later Reset.
func (a *Arena) Mark() Marker {
	return Marker{used: a.used, logAt: a.log}
}

// Reset restores a previously saved watermark.
func (a *Arena) Reset(m Marker) {
	a.used = m.used
	if a.Debug {
		a.log = m.logAt
	}
}

// Free releases the entire reservation. In debug builds it first walks
// the allocation log: a non-empty chain is a leak report, and a corrupted
// sentinel is a boundary-overflow report — both are fatal per the
// engine's error taxonomy (OutOfMemory / BoundaryCorruption).
func (a *Arena) Free() error {
	if a.Debug {
		a.validate()
	}
	return a.res.release()
}
