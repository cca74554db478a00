package vulkango

import "unsafe"

// Device methods are pure delegation to the linked Backend; this
// package owns only the handle identity and argument/result shapes.
// See backend.go for why the implementation lives outside this module.

func (d Device) CreateBufferWithMemory(size uint64, usage BufferUsageFlags, properties MemoryPropertyFlags, physicalDevice PhysicalDevice) (Buffer, DeviceMemory, error) {
	return d.backend.CreateBufferWithMemory(size, usage, properties, physicalDevice)
}

func (d Device) CreateImageWithMemory(width, height uint32, format Format, tiling ImageTiling, usage ImageUsageFlags, properties MemoryPropertyFlags, physicalDevice PhysicalDevice) (Image, DeviceMemory, error) {
	return d.backend.CreateImageWithMemory(width, height, format, tiling, usage, properties, physicalDevice)
}

func (d Device) CreateImageViewForTexture(image Image, format Format) (ImageView, error) {
	return d.backend.CreateImageViewForTexture(image, format)
}

func (d Device) MapMemory(memory DeviceMemory, offset, size uint64) (unsafe.Pointer, error) {
	return d.backend.MapMemory(memory, offset, size)
}

func (d Device) UnmapMemory(memory DeviceMemory) {
	d.backend.UnmapMemory(memory)
}

func (d Device) FreeMemory(memory DeviceMemory) {
	d.backend.FreeMemory(memory)
}

func (d Device) DestroyBuffer(buffer Buffer) {
	d.backend.DestroyBuffer(buffer)
}

func (d Device) CreateShaderModule(createInfo *ShaderModuleCreateInfo) (ShaderModule, error) {
	return d.backend.CreateShaderModule(createInfo)
}

func (d Device) DestroyShaderModule(shaderModule ShaderModule) {
	d.backend.DestroyShaderModule(shaderModule)
}

func (d Device) UpdateDescriptorSets(writes []WriteDescriptorSet) {
	d.backend.UpdateDescriptorSets(writes)
}

func (d Device) CreateCommandPool(createInfo *CommandPoolCreateInfo) (CommandPool, error) {
	return d.backend.CreateCommandPool(createInfo)
}

func (d Device) AllocateCommandBuffers(allocInfo *CommandBufferAllocateInfo) ([]CommandBuffer, error) {
	return d.backend.AllocateCommandBuffers(allocInfo)
}

func (d Device) DestroyCommandPool(pool CommandPool) {
	d.backend.DestroyCommandPool(pool)
}

func (d Device) FreeCommandBuffers(pool CommandPool, buffers []CommandBuffer) {
	d.backend.FreeCommandBuffers(pool, buffers)
}
