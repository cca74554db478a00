package rendergraph

import (
	"errors"

	"github.com/NOT-REAL-GAMES/anvil/gpu"

	vk "github.com/NOT-REAL-GAMES/anvil"
)

// SlotState is a back-buffer slot's position in the lifecycle spec.md
// §4.3.1 names: Recording -> Compiled -> Submitted -> Finished.
type SlotState int

const (
	Finished SlotState = iota
	Recording
	Compiled
	Submitted
)

var (
	// ErrSlotBusy is returned by Start when the slot's last submission
	// has not yet reached the GPU-completed fence value.
	ErrSlotBusy = errors.New("rendergraph: slot not finished")
	// ErrWrongState is returned when a lifecycle method is called out of
	// order (e.g. AddPass before Start, or Execute before Compile).
	ErrWrongState = errors.New("rendergraph: slot in wrong lifecycle state")
)

type bufferUploadPlan struct {
	resource   ResourceHandle
	ringOffset int64
	frameOffset uint64
	size       uint64
}

type imageUploadPlan struct {
	resource   ResourceHandle
	ringOffset int64
	size       uint64
}

// FrameSlot owns one back-buffer's worth of render-graph state: the
// pass/resource vectors authored this frame, the per-frame linear
// buffer, and the command pool/fence pair that frame submits through.
type FrameSlot struct {
	State      SlotState
	FenceValue uint64

	Passes         []Pass
	Resources      []Resource
	ExecutionOrder []int

	FrameBuffer *gpu.PerFrameBuffer

	CommandPool   vk.CommandPool
	CommandBuffer vk.CommandBuffer
	Fence         vk.Fence

	bufferUploads []bufferUploadPlan
	imageUploads  []imageUploadPlan
	ringBuffer    vk.Buffer
}

// Graph owns N back-buffer slots and the shared state (descriptor
// index cursor, completed-fence counter) they compile and execute
// against.
type Graph struct {
	Device           vk.Device
	PhysicalDevice   vk.PhysicalDevice
	Queue            vk.Queue
	QueueFamilyIndex uint32

	Slots []*FrameSlot

	completedFence  uint64
	nextDescriptor  int32

	// WriteSceneConstants, if set, is invoked at the end of Execute to
	// produce the scene constant-buffer payload for this slot.
	WriteSceneConstants func(slot int) []byte
}

// NewGraph creates a graph with slotCount back-buffer slots, each
// starting in the Finished state so the first Start call succeeds
// immediately.
func NewGraph(device vk.Device, physicalDevice vk.PhysicalDevice, queue vk.Queue, queueFamilyIndex uint32, slotCount int) *Graph {
	g := &Graph{
		Device:           device,
		PhysicalDevice:   physicalDevice,
		Queue:            queue,
		QueueFamilyIndex: queueFamilyIndex,
		Slots:            make([]*FrameSlot, slotCount),
	}
	for i := range g.Slots {
		g.Slots[i] = &FrameSlot{
			State:       Finished,
			FrameBuffer: gpu.NewPerFrameBuffer(device, physicalDevice, vk.BufferUsageFlags(0)),
		}
	}
	return g
}

// NotifyCompleted records the highest fence value the GPU has reached.
// Start and upload-ring reclamation are both gated on this value.
func (g *Graph) NotifyCompleted(fence uint64) {
	if fence > g.completedFence {
		g.completedFence = fence
	}
}

// Start resets slot for a new frame. It requires the slot's last
// submission to be Finished, i.e. completedFence >= slot.FenceValue
// (spec.md §4.3.1).
func (g *Graph) Start(slotIdx int) error {
	slot := g.Slots[slotIdx]
	if g.completedFence < slot.FenceValue {
		return ErrSlotBusy
	}
	slot.Passes = slot.Passes[:0]
	slot.Resources = slot.Resources[:0]
	slot.ExecutionOrder = slot.ExecutionOrder[:0]
	slot.bufferUploads = nil
	slot.imageUploads = nil
	slot.FrameBuffer.Reset()
	slot.State = Recording
	return nil
}

// AddResource appends resource and returns its handle (its index in the
// slot's resource vector, per spec.md §4.3.1).
func (g *Graph) AddResource(slotIdx int, resource Resource) (ResourceHandle, error) {
	slot := g.Slots[slotIdx]
	if slot.State != Recording {
		return 0, ErrWrongState
	}
	slot.Resources = append(slot.Resources, resource)
	return ResourceHandle(len(slot.Resources) - 1), nil
}

// AddPass appends a pass declaring its input/output resources; a
// resource handle present in both lists is read-modify-write and is
// marked as such for barrier insertion. Execute derives the pass's
// dynamic-rendering attachments from outputs and wraps Fn in a single
// BeginRendering/EndRendering pair.
func (g *Graph) AddPass(slotIdx int, name string, fn PassFunc, inputs, outputs []ResourceHandle, material uint32) (int, error) {
	return g.addPass(slotIdx, name, fn, inputs, outputs, material, false)
}

// AddManualPass is AddPass for a pass whose Fn calls BeginRendering/
// EndRendering itself — the shadow-map pass, which renders into a
// different depth view per light inside its own loop rather than a
// single attachment set Execute could derive from Outputs.
func (g *Graph) AddManualPass(slotIdx int, name string, fn PassFunc, inputs, outputs []ResourceHandle, material uint32) (int, error) {
	return g.addPass(slotIdx, name, fn, inputs, outputs, material, true)
}

func (g *Graph) addPass(slotIdx int, name string, fn PassFunc, inputs, outputs []ResourceHandle, material uint32, manual bool) (int, error) {
	slot := g.Slots[slotIdx]
	if slot.State != Recording {
		return 0, ErrWrongState
	}
	for _, in := range inputs {
		for _, out := range outputs {
			if in == out {
				slot.Resources[in].rmw = true
			}
		}
	}
	slot.Passes = append(slot.Passes, Pass{Name: name, Fn: fn, Inputs: inputs, Outputs: outputs, Material: material, ManualRendering: manual})
	return len(slot.Passes) - 1, nil
}

// Compile sums per-frame buffer requirements (growing the linear buffer
// if needed), stages every resource's upload through ring, and assigns
// descriptor indices to newly created images and external samplers. It
// returns false, leaving the slot's passes untouched and ExecutionOrder
// empty, if the upload ring cannot satisfy a reservation (spec.md
// §4.3.1, end-to-end scenario 3). Images created and ring or per-frame
// buffer space reserved before the failing reservation are not rolled
// back.
func (g *Graph) Compile(slotIdx int, ring *gpu.UploadRing, fenceValue uint64) bool {
	slot := g.Slots[slotIdx]
	if slot.State != Recording {
		return false
	}

	var bufferUploads []bufferUploadPlan
	for i := range slot.Resources {
		r := &slot.Resources[i]
		if r.Kind != KindBuffer || r.UploadData == nil {
			continue
		}
		size := uint64(len(r.UploadData))
		ringOff := ring.Allocate(size, fenceValue)
		if ringOff == -1 {
			return false
		}
		frameOff, err := slot.FrameBuffer.Reserve(size)
		if err != nil {
			return false
		}
		ring.MemcpyInto(ringOff, r.UploadData)
		bufferUploads = append(bufferUploads, bufferUploadPlan{
			resource: ResourceHandle(i), ringOffset: ringOff, frameOffset: frameOff, size: size,
		})
	}

	var imageUploads []imageUploadPlan
	for i := range slot.Resources {
		r := &slot.Resources[i]
		if r.Kind != KindImage {
			continue
		}
		if r.Image == (vk.Image{}) {
			if err := g.createImageResource(r); err != nil {
				return false
			}
		}
		if r.UploadData != nil {
			size := uint64(len(r.UploadData))
			ringOff := ring.Allocate(size, fenceValue)
			if ringOff == -1 {
				return false
			}
			ring.MemcpyInto(ringOff, r.UploadData)
			imageUploads = append(imageUploads, imageUploadPlan{resource: ResourceHandle(i), ringOffset: ringOff, size: size})
		}
	}

	for i := range slot.Resources {
		r := &slot.Resources[i]
		if r.Kind == KindSampler && r.DescriptorIdx == 0 {
			r.DescriptorIdx = g.nextDescriptor
			g.nextDescriptor++
		}
	}

	slot.bufferUploads = bufferUploads
	slot.imageUploads = imageUploads
	slot.ringBuffer = ring.Buffer
	slot.ExecutionOrder = make([]int, len(slot.Passes))
	for i := range slot.ExecutionOrder {
		slot.ExecutionOrder[i] = i // authored order, per spec.md §4.3.1
	}
	slot.FenceValue = fenceValue
	slot.State = Compiled
	return true
}

func (g *Graph) createImageResource(r *Resource) error {
	usage := vk.IMAGE_USAGE_SAMPLED_BIT | vk.IMAGE_USAGE_TRANSFER_DST_BIT
	if r.IsDepth {
		usage |= vk.IMAGE_USAGE_DEPTH_STENCIL_ATTACHMENT_BIT
	} else {
		usage |= vk.IMAGE_USAGE_COLOR_ATTACHMENT_BIT
	}
	image, _, err := g.Device.CreateImageWithMemory(
		r.Extent.Width, r.Extent.Height, r.Format,
		vk.IMAGE_TILING_OPTIMAL, usage,
		vk.MEMORY_PROPERTY_DEVICE_LOCAL_BIT, g.PhysicalDevice,
	)
	if err != nil {
		return err
	}
	view, err := g.Device.CreateImageViewForTexture(image, r.Format)
	if err != nil {
		return err
	}
	r.Image = image
	r.View = view
	r.CurrentLayout = vk.IMAGE_LAYOUT_UNDEFINED
	r.DescriptorIdx = g.nextDescriptor
	g.nextDescriptor++
	return nil
}
