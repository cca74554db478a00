// Package gpu provides the GPU-buffer allocators the render graph and
// material cache share: a fence-gated upload ring for one-shot transient
// uploads, and a per-frame linear buffer that grows but never shrinks.
package gpu

import (
	"fmt"
	"unsafe"

	vk "github.com/NOT-REAL-GAMES/anvil"
)

// ringSegment is a pending reservation: the half-open byte range
// [start, end) in the ring's monotonic (non-wrapping) address space, and
// the fence value that must complete before the range is reusable.
type ringSegment struct {
	start, end uint64
	fence      uint64
}

// UploadRing is the cyclic host-visible buffer of spec.md §4.3.3:
// allocate(size, fence) reserves a span gated by the fence value that
// will guard its reuse; memcpy writes through the persistent mapping;
// AdvanceCompleted moves the consumer pointer past finished segments.
type UploadRing struct {
	device vk.Device

	Buffer vk.Buffer
	memory vk.DeviceMemory
	mapped unsafe.Pointer

	capacity uint64
	head     uint64 // monotonic next-allocation point
	pending  []ringSegment

	completedFence uint64
}

// NewUploadRing allocates a host-visible, host-coherent buffer of the
// given capacity and persistently maps it, grounded on
// Device.CreateBufferWithMemory / Device.MapMemory.
func NewUploadRing(device vk.Device, physicalDevice vk.PhysicalDevice, capacity uint64) (*UploadRing, error) {
	buffer, memory, err := device.CreateBufferWithMemory(
		capacity,
		vk.BUFFER_USAGE_TRANSFER_SRC_BIT,
		vk.MEMORY_PROPERTY_HOST_VISIBLE_BIT|vk.MEMORY_PROPERTY_HOST_COHERENT_BIT,
		physicalDevice,
	)
	if err != nil {
		return nil, fmt.Errorf("gpu: upload ring buffer: %w", err)
	}

	mapped, err := device.MapMemory(memory, 0, capacity)
	if err != nil {
		device.FreeMemory(memory)
		device.DestroyBuffer(buffer)
		return nil, fmt.Errorf("gpu: upload ring map: %w", err)
	}

	return &UploadRing{
		device:   device,
		Buffer:   buffer,
		memory:   memory,
		mapped:   mapped,
		capacity: capacity,
	}, nil
}

// tail is the monotonic start of the oldest still-pending segment, or
// head if nothing is pending.
func (r *UploadRing) tail() uint64 {
	if len(r.pending) == 0 {
		return r.head
	}
	return r.pending[0].start
}

// reclaim drops segments from the front of the pending queue whose fence
// has already completed.
func (r *UploadRing) reclaim() {
	for len(r.pending) > 0 && r.pending[0].fence <= r.completedFence {
		r.pending = r.pending[1:]
	}
}

// Allocate reserves size bytes tagged with fence, the fence value the
// caller's upcoming submission will carry. It returns -1 if the free
// span is smaller than size (spec.md §8: "one free byte less than
// requested" must return -1), which the caller treats as
// ResourceNotReady and retries next frame.
func (r *UploadRing) Allocate(size, fence uint64) int64 {
	if size > r.capacity {
		return -1
	}
	r.reclaim()

	offsetInBuf := r.head % r.capacity
	if offsetInBuf+size > r.capacity {
		// Would split across the wrap point; waste the remainder and
		// restart the allocation at the next buffer-relative zero.
		r.head += r.capacity - offsetInBuf
		r.reclaim()
	}

	if r.head+size-r.tail() > r.capacity {
		return -1
	}

	start := r.head
	r.pending = append(r.pending, ringSegment{start: start, end: start + size, fence: fence})
	r.head += size
	return int64(start % r.capacity)
}

// MemcpyInto writes src through the ring's persistent host mapping at
// offset, the value returned by a prior Allocate.
func (r *UploadRing) MemcpyInto(offset int64, src []byte) {
	if len(src) == 0 {
		return
	}
	dst := unsafe.Slice((*byte)(unsafe.Add(r.mapped, offset)), len(src))
	copy(dst, src)
}

// AdvanceCompleted records the highest fence value the GPU has reached,
// letting subsequent Allocate calls reclaim segments gated by it.
func (r *UploadRing) AdvanceCompleted(fence uint64) {
	if fence > r.completedFence {
		r.completedFence = fence
	}
}

// Release unmaps and frees the ring's backing buffer and memory.
func (r *UploadRing) Release() {
	r.device.UnmapMemory(r.memory)
	r.device.FreeMemory(r.memory)
	r.device.DestroyBuffer(r.Buffer)
}
