// Package vulkango names the boundary to the backend Vulkan
// implementation. spec.md §1 places "Backend Vulkan calls (layer below
// the render graph)" explicitly out of scope: "treated as external
// collaborators, only their interfaces are named." This package is that
// naming — a Backend interface covering the handful of device, command
// buffer, and queue operations the render graph (rendergraph), GPU
// buffer allocators (gpu), and material/shader cache (material) call,
// plus the opaque handle types those calls pass around. It declares no
// Vulkan call itself; a real engine binary links a concrete Backend
// (a cgo binding against vulkan.h, or a pure-Go binding such as
// github.com/vulkan-go/vulkan) and constructs a Device against it.
package vulkango

import "unsafe"

// Backend is the out-of-scope collaborator's interface. Every method a
// package above this one calls against a Device, CommandBuffer, or
// Queue ultimately dispatches here.
type Backend interface {
	CreateBufferWithMemory(size uint64, usage BufferUsageFlags, properties MemoryPropertyFlags, physicalDevice PhysicalDevice) (Buffer, DeviceMemory, error)
	CreateImageWithMemory(width, height uint32, format Format, tiling ImageTiling, usage ImageUsageFlags, properties MemoryPropertyFlags, physicalDevice PhysicalDevice) (Image, DeviceMemory, error)
	CreateImageViewForTexture(image Image, format Format) (ImageView, error)
	MapMemory(memory DeviceMemory, offset, size uint64) (unsafe.Pointer, error)
	UnmapMemory(memory DeviceMemory)
	FreeMemory(memory DeviceMemory)
	DestroyBuffer(buffer Buffer)
	CreateShaderModule(createInfo *ShaderModuleCreateInfo) (ShaderModule, error)
	DestroyShaderModule(shaderModule ShaderModule)
	UpdateDescriptorSets(writes []WriteDescriptorSet)
	CreateCommandPool(createInfo *CommandPoolCreateInfo) (CommandPool, error)
	AllocateCommandBuffers(allocInfo *CommandBufferAllocateInfo) ([]CommandBuffer, error)
	DestroyCommandPool(pool CommandPool)
	FreeCommandBuffers(pool CommandPool, buffers []CommandBuffer)

	Begin(cmd CommandBuffer, beginInfo *CommandBufferBeginInfo) error
	End(cmd CommandBuffer) error
	BeginRendering(cmd CommandBuffer, renderingInfo *RenderingInfo)
	EndRendering(cmd CommandBuffer)
	PipelineBarrier(cmd CommandBuffer, srcStageMask, dstStageMask PipelineStageFlags, dependencyFlags uint32, imageMemoryBarriers []ImageMemoryBarrier)
	BindPipeline(cmd CommandBuffer, bindPoint PipelineBindPoint, pipeline Pipeline)
	SetViewport(cmd CommandBuffer, firstViewport uint32, viewports []Viewport)
	SetScissor(cmd CommandBuffer, firstScissor uint32, scissors []Rect2D)
	BindIndexBuffer(cmd CommandBuffer, buffer Buffer, offset uint64, indexType IndexType)
	BindVertexBuffers(cmd CommandBuffer, firstBinding uint32, buffers []Buffer, offsets []uint64)
	CmdPushConstants(cmd CommandBuffer, layout PipelineLayout, stageFlags ShaderStageFlags, offset, size uint32, pValues unsafe.Pointer)
	Draw(cmd CommandBuffer, vertexCount, instanceCount, firstVertex, firstInstance uint32)
	DrawIndexed(cmd CommandBuffer, indexCount, instanceCount, firstIndex uint32, vertexOffset int32, firstInstance uint32)
	CmdCopyBuffer(cmd CommandBuffer, srcBuffer, dstBuffer Buffer, regions []BufferCopy)
	CopyBufferToImage(cmd CommandBuffer, srcBuffer Buffer, dstImage Image, dstImageLayout ImageLayout, regions []BufferImageCopy)

	Submit(queue Queue, submits []SubmitInfo, fence Fence) error
}

// Opaque handle types. Each wraps the id the linked Backend assigned it
// plus a reference back to that Backend, so a value like Buffer or
// CommandBuffer is self-sufficient: callers never thread a separate
// Device/Backend parameter through to use one. The zero value of every
// handle type (nil backend, zero id) is the spec's "invalid" handle and
// compares equal across copies, matching spec.md §3.2's "Invalid = 0."

type handle struct {
	backend Backend
	id      uint64
}

// Device is the logical device every other handle in this package is
// created against.
type Device struct{ handle }

// PhysicalDevice names the adapter a Device was opened on; carried
// alongside Device by callers that need both (CreateBufferWithMemory's
// memory-type search is the Backend's job, not this package's).
type PhysicalDevice struct{ handle }

// Queue is a device queue work is submitted to.
type Queue struct{ handle }

// CommandPool backs CommandBuffer allocation.
type CommandPool struct{ handle }

// CommandBuffer is a recorded stream of GPU commands.
type CommandBuffer struct{ handle }

// Buffer is an opaque backend buffer handle (spec.md §3.4's GPUBuffer,
// minus the type tag the material/gpu layers track separately).
type Buffer struct{ handle }

// DeviceMemory is the backing allocation a Buffer or Image is bound to.
type DeviceMemory struct{ handle }

// Image is a physical image allocation; ImageView is an interpretation
// of it (spec.md §3.4: "image = physical allocation; view =
// interpretation").
type Image struct{ handle }
type ImageView struct{ handle }

// Sampler is an external collaborator resource the render graph's
// SAMPLER-kind resources re-point a descriptor index at.
type Sampler struct{ handle }

// ShaderModule wraps one compiled SPIR-V module, the EffectCache's
// compile result (material.EffectCache).
type ShaderModule struct{ handle }

// DescriptorPool, DescriptorSet, and DescriptorSetLayout back the
// material registry's per-instance uniform-buffer array (spec.md
// §3.4's "array-of-uniform-buffers indexed by the instance index").
type DescriptorPool struct{ handle }
type DescriptorSet struct{ handle }
type DescriptorSetLayout struct{ handle }

// Pipeline and PipelineLayout are created and owned by the caller (a
// real engine binary's pipeline-building code, out of this module's
// scope per spec.md §1); this package only carries the handles through
// to material.Registry.Bind and the render-graph pass stencils.
type Pipeline struct{ handle }
type PipelineLayout struct{ handle }

// Semaphore and Fence are the GPU-signalled synchronization primitives
// spec.md's glossary defines ("a monotonically increasing GPU-signalled
// counter"); the render graph tracks fence *values* itself (Graph.
// NotifyCompleted) rather than polling these handles directly.
type Semaphore struct{ handle }
type Fence struct{ handle }

// NewDevice constructs a Device against a linked Backend. physicalDevice
// and queue are opaque handles the Backend assigned during its own
// instance/device bring-up (out of scope here, per spec.md §1).
func NewDevice(backend Backend, id uint64) Device {
	return Device{handle{backend: backend, id: id}}
}

// NewPhysicalDevice and NewQueue mirror NewDevice for the other two
// handles a real bring-up sequence hands this package.
func NewPhysicalDevice(backend Backend, id uint64) PhysicalDevice {
	return PhysicalDevice{handle{backend: backend, id: id}}
}

func NewQueue(backend Backend, id uint64) Queue {
	return Queue{handle{backend: backend, id: id}}
}
