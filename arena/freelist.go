package arena

import (
	"encoding/binary"
	"fmt"
	"unsafe"
)

// freeBlockHeader precedes every block on the freelist's free chain and
// every live allocation handed out by it: {size, adjustment}. adjustment
// records how far the returned pointer was nudged forward for alignment,
// so Free can recover the true block start.
const freeBlockHeaderSize = 16 // size uint64 + adjustment uint64

// Freelist is a general-purpose allocator over a fixed, fully committed
// region: free blocks are kept in address order and coalesced with
// touching neighbors on Free, matching the engine's freelist reclamation
// policy (as opposed to Arena's bump-only, free-as-a-whole policy).
type Freelist struct {
	Name string

	res  *reservation
	size int

	// free is the ordered list of free block spans [start, end) within
	// res.base. Kept sorted and coalesced so adjacent spans merge.
	free []span
}

type span struct{ start, end int }

// NewFreelist reserves and fully commits size bytes for freelist-style
// allocation.
func NewFreelist(name string, size int) (*Freelist, error) {
	r, err := virtualReserve(size)
	if err != nil {
		return nil, err
	}
	if err := r.commit(size); err != nil {
		r.release()
		return nil, err
	}
	return &Freelist{
		Name: name,
		res:  r,
		size: size,
		free: []span{{0, size}},
	}, nil
}

// Alloc finds the first free span large enough for size+header, aligned
// to align, and carves it out. It returns nil if no span fits.
func (f *Freelist) Alloc(size, align int) []byte {
	need := size + freeBlockHeaderSize
	for i, s := range f.free {
		adj := alignForwardAdjustment(s.start+freeBlockHeaderSize, align)
		total := need + adj
		if s.end-s.start < total {
			continue
		}

		blockStart := s.start
		blockEnd := blockStart + total
		if remaining := s.end - blockEnd; remaining > 0 {
			f.free[i] = span{blockEnd, s.end}
		} else {
			f.free = append(f.free[:i], f.free[i+1:]...)
		}

		payloadStart := blockStart + freeBlockHeaderSize + adj
		hdr := f.res.base[payloadStart-freeBlockHeaderSize : payloadStart]
		binary.LittleEndian.PutUint64(hdr[0:8], uint64(size))
		binary.LittleEndian.PutUint64(hdr[8:16], uint64(adj))

		return f.res.base[payloadStart : payloadStart+size : payloadStart+size]
	}
	return nil
}

// Free returns a previously allocated block to the free list, coalescing
// it with any immediately adjacent free spans.
func (f *Freelist) Free(p []byte) {
	if len(p) == 0 {
		return
	}
	payloadStart := f.offsetOf(p)

	// Re-read the header to find the true block start/size. Scanning
	// backward is unsafe in general, so the header is read from the
	// fixed offset the allocator always writes it to (just before the
	// payload): the adjustment tells us how far payloadStart is from
	// blockStart+header.
	hdrStart := payloadStart - freeBlockHeaderSize
	if hdrStart < 0 {
		panic(fmt.Sprintf("freelist %q: Free called with a pointer not owned by this allocator", f.Name))
	}
	size := int(binary.LittleEndian.Uint64(f.res.base[hdrStart : hdrStart+8]))
	adj := int(binary.LittleEndian.Uint64(f.res.base[hdrStart+8 : hdrStart+16]))
	f.insertFree(span{hdrStart - adj, payloadStart + size})
}

func (f *Freelist) offsetOf(p []byte) int {
	base := uintptr(unsafe.Pointer(&f.res.base[0]))
	target := uintptr(unsafe.Pointer(&p[0]))
	if target < base || target >= base+uintptr(f.size) {
		panic(fmt.Sprintf("freelist %q: pointer not within allocator region", f.Name))
	}
	return int(target - base)
}

// insertFree inserts s into the sorted free list, coalescing with any
// neighbor spans whose addresses touch.
func (f *Freelist) insertFree(s span) {
	i := 0
	for ; i < len(f.free); i++ {
		if f.free[i].start >= s.start {
			break
		}
	}
	f.free = append(f.free, span{})
	copy(f.free[i+1:], f.free[i:])
	f.free[i] = s

	// Coalesce with next.
	if i+1 < len(f.free) && f.free[i].end == f.free[i+1].start {
		f.free[i].end = f.free[i+1].end
		f.free = append(f.free[:i+1], f.free[i+2:]...)
	}
	// Coalesce with previous.
	if i > 0 && f.free[i-1].end == f.free[i].start {
		f.free[i-1].end = f.free[i].end
		f.free = append(f.free[:i], f.free[i+1:]...)
	}
}

// Release releases the entire backing reservation.
func (f *Freelist) Release() error {
	return f.res.release()
}
