package arena

// Ring is a single-producer cyclic buffer used for per-frame transient
// CPU memory: Alloc bump-allocates from the write cursor and wraps to
// the start once the buffer is full, overwriting the oldest contents.
// It carries no per-allocation bookkeeping — callers that need the
// memory to outlive a wrap must copy it out.
type Ring struct {
	Name string

	res  *reservation
	size int
	pos  int
}

// NewRing reserves and fully commits a size-byte ring.
func NewRing(name string, size int) (*Ring, error) {
	r, err := virtualReserve(size)
	if err != nil {
		return nil, err
	}
	if err := r.commit(size); err != nil {
		r.release()
		return nil, err
	}
	return &Ring{Name: name, res: r, size: size}, nil
}

// Alloc returns size bytes aligned to align, wrapping the write cursor
// to the start of the ring if the request does not fit in the remaining
// span. size must not exceed the ring's total capacity.
func (r *Ring) Alloc(size, align int) []byte {
	if align <= 0 {
		align = 1
	}
	adj := alignForwardAdjustment(r.pos, align)
	if r.pos+adj+size > r.size {
		r.pos = 0
		adj = alignForwardAdjustment(r.pos, align)
	}
	start := r.pos + adj
	end := start + size
	if end > r.size {
		panic("arena: ring allocation larger than ring capacity")
	}
	r.pos = end
	return r.res.base[start:end:end]
}

// Clear resets the write cursor to the start of the ring.
func (r *Ring) Clear() { r.pos = 0 }

// Release releases the ring's backing reservation.
func (r *Ring) Release() error { return r.res.release() }
