// Package rendergraph implements the per-frame render graph of spec.md
// §4.3: passes declare the resources they read and write, compile
// resolves transient uploads and grows the per-frame buffer, and execute
// inserts image-layout barriers and dispatches each pass's draw work.
package rendergraph

import vk "github.com/NOT-REAL-GAMES/anvil"

// ResourceKind distinguishes the three things a pass can declare.
type ResourceKind int

const (
	KindBuffer ResourceKind = iota
	KindImage
	KindSampler
)

// ResourceHandle is a resource's index within a slot's resource vector,
// per spec.md §4.3.1 ("the resource handle is its index in the vector").
type ResourceHandle int

// Resource is one entry a pass can declare as input or output. Buffers
// and images may carry CPU-side data (UploadData) to be staged through
// the upload ring at compile time.
type Resource struct {
	Kind ResourceKind
	Name string

	// Buffer fields.
	Buffer     vk.Buffer
	BufferSize uint64

	// Image fields.
	Image         vk.Image
	View          vk.ImageView
	Format        vk.Format
	Extent        vk.Extent3D
	IsDepth       bool
	CurrentLayout vk.ImageLayout
	DescriptorIdx int32

	// Sampler fields.
	Sampler vk.Sampler

	// UploadData, when non-nil, is staged into the resource at compile
	// time via the upload ring (buffers) or a buffer-to-image copy
	// (images).
	UploadData []byte

	// rmw marks a resource declared as both input and output of the
	// same pass; set by Graph.AddPass, consulted by barrier insertion.
	rmw bool
}

// readLayout returns the layout a pass needs before it reads this
// resource: depth resources are read through the depth-read-only
// layout, everything else through shader-read-only (spec.md §4.3.2:
// "RO_DEPTH for depth reads", "RW_FRAGMENT for general reads"). A
// read-modify-write resource is read in GENERAL, the same layout
// writeLayout gives it, so its output needs no second transition.
func (r *Resource) readLayout() vk.ImageLayout {
	if r.rmw {
		return vk.IMAGE_LAYOUT_GENERAL
	}
	if r.IsDepth {
		return vk.IMAGE_LAYOUT_DEPTH_STENCIL_READ_ONLY_OPTIMAL
	}
	return vk.IMAGE_LAYOUT_SHADER_READ_ONLY_OPTIMAL
}

// writeLayout returns the layout a pass needs before it writes this
// resource (spec.md §4.3.2: "RT_COLOR for color, RT_DEPTH for
// depth/shadow"). A resource declared read-modify-write settles on
// GENERAL, satisfying both the read and the write in one transition
// (see the render-graph Open Question resolution in DESIGN.md).
func (r *Resource) writeLayout() vk.ImageLayout {
	if r.rmw {
		return vk.IMAGE_LAYOUT_GENERAL
	}
	if r.IsDepth {
		return vk.IMAGE_LAYOUT_DEPTH_STENCIL_ATTACHMENT_OPTIMAL
	}
	return vk.IMAGE_LAYOUT_COLOR_ATTACHMENT_OPTIMAL
}
