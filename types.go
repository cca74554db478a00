package vulkango

// Enums, flags, and plain data structs the Backend boundary's methods
// take as arguments. Values are the real Vulkan 1.3 core enum ordinals
// (vk.xml), not placeholders: a concrete Backend only has to cast these
// to its own C types, not renumber them.

type Format int32

const (
	FORMAT_UNDEFINED      Format = 0
	FORMAT_B8G8R8A8_UNORM Format = 44
	FORMAT_B8G8R8A8_SRGB  Format = 50
	FORMAT_R8G8B8A8_UNORM Format = 37
	FORMAT_D32_SFLOAT     Format = 126
)

type Extent2D struct{ Width, Height uint32 }
type Extent3D struct{ Width, Height, Depth uint32 }
type Offset2D struct{ X, Y int32 }
type Offset3D struct{ X, Y, Z int32 }

type Rect2D struct {
	Offset Offset2D
	Extent Extent2D
}

type Viewport struct {
	X, Y, Width, Height, MinDepth, MaxDepth float32
}

type ImageLayout int32

const (
	IMAGE_LAYOUT_UNDEFINED                        ImageLayout = 0
	IMAGE_LAYOUT_GENERAL                           ImageLayout = 1
	IMAGE_LAYOUT_COLOR_ATTACHMENT_OPTIMAL          ImageLayout = 2
	IMAGE_LAYOUT_DEPTH_STENCIL_ATTACHMENT_OPTIMAL  ImageLayout = 3
	IMAGE_LAYOUT_DEPTH_STENCIL_READ_ONLY_OPTIMAL   ImageLayout = 4
	IMAGE_LAYOUT_SHADER_READ_ONLY_OPTIMAL          ImageLayout = 5
	IMAGE_LAYOUT_TRANSFER_SRC_OPTIMAL              ImageLayout = 6
	IMAGE_LAYOUT_TRANSFER_DST_OPTIMAL              ImageLayout = 7
	IMAGE_LAYOUT_PRESENT_SRC_KHR                   ImageLayout = 1000001002
)

type ImageTiling int32

const (
	IMAGE_TILING_OPTIMAL ImageTiling = 0
	IMAGE_TILING_LINEAR  ImageTiling = 1
)

type ImageUsageFlags uint32

const (
	IMAGE_USAGE_TRANSFER_SRC_BIT             ImageUsageFlags = 0x00000001
	IMAGE_USAGE_TRANSFER_DST_BIT             ImageUsageFlags = 0x00000002
	IMAGE_USAGE_SAMPLED_BIT                  ImageUsageFlags = 0x00000004
	IMAGE_USAGE_COLOR_ATTACHMENT_BIT         ImageUsageFlags = 0x00000010
	IMAGE_USAGE_DEPTH_STENCIL_ATTACHMENT_BIT ImageUsageFlags = 0x00000020
)

type ImageAspectFlags uint32

const (
	IMAGE_ASPECT_COLOR_BIT ImageAspectFlags = 0x00000001
	IMAGE_ASPECT_DEPTH_BIT ImageAspectFlags = 0x00000002
)

type BufferUsageFlags uint32

const (
	BUFFER_USAGE_TRANSFER_SRC_BIT   BufferUsageFlags = 0x00000001
	BUFFER_USAGE_TRANSFER_DST_BIT   BufferUsageFlags = 0x00000002
	BUFFER_USAGE_UNIFORM_BUFFER_BIT BufferUsageFlags = 0x00000010
	BUFFER_USAGE_INDEX_BUFFER_BIT   BufferUsageFlags = 0x00000040
	BUFFER_USAGE_VERTEX_BUFFER_BIT  BufferUsageFlags = 0x00000080
)

type MemoryPropertyFlags uint32

const (
	MEMORY_PROPERTY_DEVICE_LOCAL_BIT  MemoryPropertyFlags = 0x00000001
	MEMORY_PROPERTY_HOST_VISIBLE_BIT  MemoryPropertyFlags = 0x00000002
	MEMORY_PROPERTY_HOST_COHERENT_BIT MemoryPropertyFlags = 0x00000004
)

type ShaderStageFlags uint32

const (
	SHADER_STAGE_VERTEX_BIT   ShaderStageFlags = 0x00000001
	SHADER_STAGE_GEOMETRY_BIT ShaderStageFlags = 0x00000008
	SHADER_STAGE_FRAGMENT_BIT ShaderStageFlags = 0x00000010
)

type DescriptorType int32

const (
	DESCRIPTOR_TYPE_UNIFORM_BUFFER DescriptorType = 6
)

type AccessFlags uint32

const (
	ACCESS_NONE                                AccessFlags = 0
	ACCESS_SHADER_READ_BIT                     AccessFlags = 0x00000020
	ACCESS_COLOR_ATTACHMENT_WRITE_BIT          AccessFlags = 0x00000100
	ACCESS_DEPTH_STENCIL_ATTACHMENT_READ_BIT   AccessFlags = 0x00000200
	ACCESS_DEPTH_STENCIL_ATTACHMENT_WRITE_BIT  AccessFlags = 0x00000400
)

type PipelineStageFlags uint32

const (
	PIPELINE_STAGE_TOP_OF_PIPE_BIT             PipelineStageFlags = 0x00000001
	PIPELINE_STAGE_EARLY_FRAGMENT_TESTS_BIT     PipelineStageFlags = 0x00000100
	PIPELINE_STAGE_LATE_FRAGMENT_TESTS_BIT      PipelineStageFlags = 0x00000200
	PIPELINE_STAGE_COLOR_ATTACHMENT_OUTPUT_BIT  PipelineStageFlags = 0x00000400
	PIPELINE_STAGE_BOTTOM_OF_PIPE_BIT           PipelineStageFlags = 0x00002000
)

type PipelineBindPoint int32

const (
	PIPELINE_BIND_POINT_GRAPHICS PipelineBindPoint = 0
	PIPELINE_BIND_POINT_COMPUTE  PipelineBindPoint = 1
)

type IndexType int32

const (
	INDEX_TYPE_UINT16 IndexType = 0
	INDEX_TYPE_UINT32 IndexType = 1
)

type AttachmentLoadOp int32
type AttachmentStoreOp int32

const (
	ATTACHMENT_LOAD_OP_LOAD      AttachmentLoadOp = 0
	ATTACHMENT_LOAD_OP_CLEAR     AttachmentLoadOp = 1
	ATTACHMENT_LOAD_OP_DONT_CARE AttachmentLoadOp = 2

	ATTACHMENT_STORE_OP_STORE     AttachmentStoreOp = 0
	ATTACHMENT_STORE_OP_DONT_CARE AttachmentStoreOp = 1
)

type CommandPoolCreateFlags uint32

const (
	COMMAND_POOL_CREATE_TRANSIENT_BIT            CommandPoolCreateFlags = 0x00000001
	COMMAND_POOL_CREATE_RESET_COMMAND_BUFFER_BIT CommandPoolCreateFlags = 0x00000002
)

type CommandBufferLevel int32

const (
	COMMAND_BUFFER_LEVEL_PRIMARY   CommandBufferLevel = 0
	COMMAND_BUFFER_LEVEL_SECONDARY CommandBufferLevel = 1
)

type CommandBufferUsageFlags uint32

const (
	COMMAND_BUFFER_USAGE_ONE_TIME_SUBMIT_BIT CommandBufferUsageFlags = 0x00000001
)

// Create-info and data-transfer structs. These are exactly the fields
// the gpu/material/rendergraph packages populate; a concrete Backend
// translates each into its own wire format.

type CommandPoolCreateInfo struct {
	Flags            CommandPoolCreateFlags
	QueueFamilyIndex uint32
}

type CommandBufferAllocateInfo struct {
	CommandPool        CommandPool
	Level              CommandBufferLevel
	CommandBufferCount uint32
}

type CommandBufferBeginInfo struct {
	Flags CommandBufferUsageFlags
}

type RenderingInfo struct {
	RenderArea        Rect2D
	LayerCount        uint32
	ColorAttachments  []RenderingAttachmentInfo
	DepthAttachment   *RenderingAttachmentInfo
	StencilAttachment *RenderingAttachmentInfo
}

type RenderingAttachmentInfo struct {
	ImageView   ImageView
	ImageLayout ImageLayout
	LoadOp      AttachmentLoadOp
	StoreOp     AttachmentStoreOp
	ClearValue  ClearValue
}

type ClearColorValue struct{ Float32 [4]float32 }
type ClearDepthStencilValue struct {
	Depth   float32
	Stencil uint32
}
type ClearValue struct {
	Color        ClearColorValue
	DepthStencil ClearDepthStencilValue
}

type ImageSubresourceRange struct {
	AspectMask     ImageAspectFlags
	BaseMipLevel   uint32
	LevelCount     uint32
	BaseArrayLayer uint32
	LayerCount     uint32
}

type ImageSubresourceLayers struct {
	AspectMask     ImageAspectFlags
	MipLevel       uint32
	BaseArrayLayer uint32
	LayerCount     uint32
}

type ImageMemoryBarrier struct {
	SrcAccessMask       AccessFlags
	DstAccessMask       AccessFlags
	OldLayout           ImageLayout
	NewLayout           ImageLayout
	SrcQueueFamilyIndex uint32
	DstQueueFamilyIndex uint32
	Image               Image
	SubresourceRange    ImageSubresourceRange
}

type BufferCopy struct {
	SrcOffset uint64
	DstOffset uint64
	Size      uint64
}

type BufferImageCopy struct {
	BufferOffset      uint64
	BufferRowLength   uint32
	BufferImageHeight uint32
	ImageSubresource  ImageSubresourceLayers
	ImageOffset       Offset3D
	ImageExtent       Extent3D
}

type ShaderModuleCreateInfo struct {
	Code []uint32
}

type DescriptorBufferInfo struct {
	Buffer Buffer
	Offset uint64
	Range  uint64
}

type WriteDescriptorSet struct {
	DstSet          DescriptorSet
	DstBinding      uint32
	DstArrayElement uint32
	DescriptorType  DescriptorType
	BufferInfo      []DescriptorBufferInfo
}

type SubmitInfo struct {
	WaitSemaphores   []Semaphore
	WaitDstStageMask []PipelineStageFlags
	CommandBuffers   []CommandBuffer
	SignalSemaphores []Semaphore
}
