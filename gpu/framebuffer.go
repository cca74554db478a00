package gpu

import (
	"fmt"
	"unsafe"

	vk "github.com/NOT-REAL-GAMES/anvil"
)

// PerFrameBuffer is the render graph's per-frame linear buffer (spec.md
// §4.3.1 compile: "sums per-frame buffer requirements, grows the
// per-frame linear buffer if needed"). Growth never shrinks the backing
// allocation — the second Open Question in spec.md §9 is resolved as a
// memory ratchet, matching the source's grow-only GPU buffer pattern.
type PerFrameBuffer struct {
	device         vk.Device
	physicalDevice vk.PhysicalDevice
	usage          vk.BufferUsageFlags

	Buffer   vk.Buffer
	memory   vk.DeviceMemory
	mapped   unsafe.Pointer
	capacity uint64
	used     uint64
}

// NewPerFrameBuffer creates an empty ratchet buffer; its first Reserve
// call triggers the initial allocation.
func NewPerFrameBuffer(device vk.Device, physicalDevice vk.PhysicalDevice, usage vk.BufferUsageFlags) *PerFrameBuffer {
	return &PerFrameBuffer{device: device, physicalDevice: physicalDevice, usage: usage}
}

// Reset rewinds the write cursor to the start of frame without touching
// capacity — the high-water mark established by prior growth is kept.
func (b *PerFrameBuffer) Reset() { b.used = 0 }

// Used returns the bytes written since the last Reset.
func (b *PerFrameBuffer) Used() uint64 { return b.used }

// Capacity returns the current backing allocation size.
func (b *PerFrameBuffer) Capacity() uint64 { return b.capacity }

// Reserve bumps the write cursor by size, growing the backing buffer
// first if the request would overrun capacity. new_commit follows the
// arena doubling rule: max(required, 2*current).
func (b *PerFrameBuffer) Reserve(size uint64) (offset uint64, err error) {
	if b.used+size > b.capacity {
		required := b.used + size
		next := required
		if 2*b.capacity > next {
			next = 2 * b.capacity
		}
		if err := b.grow(next); err != nil {
			return 0, err
		}
	}
	offset = b.used
	b.used += size
	return offset, nil
}

func (b *PerFrameBuffer) grow(newCapacity uint64) error {
	buffer, memory, err := b.device.CreateBufferWithMemory(
		newCapacity,
		b.usage|vk.BUFFER_USAGE_TRANSFER_DST_BIT,
		vk.MEMORY_PROPERTY_HOST_VISIBLE_BIT|vk.MEMORY_PROPERTY_HOST_COHERENT_BIT,
		b.physicalDevice,
	)
	if err != nil {
		return fmt.Errorf("gpu: per-frame buffer grow to %d: %w", newCapacity, err)
	}

	mapped, err := b.device.MapMemory(memory, 0, newCapacity)
	if err != nil {
		b.device.FreeMemory(memory)
		b.device.DestroyBuffer(buffer)
		return fmt.Errorf("gpu: per-frame buffer map: %w", err)
	}

	if b.capacity > 0 {
		b.device.UnmapMemory(b.memory)
		b.device.FreeMemory(b.memory)
		b.device.DestroyBuffer(b.Buffer)
	}

	b.Buffer = buffer
	b.memory = memory
	b.mapped = mapped
	b.capacity = newCapacity
	return nil
}

// MemcpyInto writes src at offset through the buffer's persistent host
// mapping.
func (b *PerFrameBuffer) MemcpyInto(offset uint64, src []byte) {
	if len(src) == 0 {
		return
	}
	dst := unsafe.Slice((*byte)(unsafe.Add(b.mapped, offset)), len(src))
	copy(dst, src)
}

// Release frees the current backing allocation, if any.
func (b *PerFrameBuffer) Release() {
	if b.capacity == 0 {
		return
	}
	b.device.UnmapMemory(b.memory)
	b.device.FreeMemory(b.memory)
	b.device.DestroyBuffer(b.Buffer)
	b.capacity = 0
	b.used = 0
}
