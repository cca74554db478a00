package rendergraph

import (
	"unsafe"

	"github.com/NOT-REAL-GAMES/anvil/material"

	vk "github.com/NOT-REAL-GAMES/anvil"
)

// This file is the small library of canonical pass stencils spec.md
// §4.3.4 names: Skybox, shadow map, PBR raster, bloom, lines, and the
// UI/glyph pass. Each constructor returns the three values AddPass
// wants (a PassFunc plus its declared inputs/outputs); the caller still
// owns resource declaration and pipeline/master-material lifetime,
// mirroring how the teacher's vala/systems/render.go systems take a
// *RenderContext rather than owning the command buffer's state.

func fullViewport(extent vk.Extent2D) ([]vk.Viewport, []vk.Rect2D) {
	return []vk.Viewport{{
			X: 0, Y: 0,
			Width: float32(extent.Width), Height: float32(extent.Height),
			MinDepth: 0, MaxDepth: 1,
		}}, []vk.Rect2D{{
			Offset: vk.Offset2D{X: 0, Y: 0},
			Extent: extent,
		}}
}

// SkyboxPassConfig configures NewSkyboxPass.
type SkyboxPassConfig struct {
	Registry *material.Registry
	Master   material.MasterMaterialHandle
	Pipeline vk.Pipeline
	Extent   vk.Extent2D
}

// NewSkyboxPass draws a fullscreen cube with back-face culling off
// (spec.md §4.3.4: "Draws a fullscreen cube with back-face culling
// off"). Inputs are the skybox cube image and its sampler; the single
// output is the color render target.
func NewSkyboxPass(cfg SkyboxPassConfig, cube, sampler, colorTarget ResourceHandle) (PassFunc, []ResourceHandle, []ResourceHandle) {
	fn := func(cmd vk.CommandBuffer, g *Graph, slotIdx int) {
		cfg.Registry.Bind(cmd, cfg.Pipeline, cfg.Master)
		vp, sc := fullViewport(cfg.Extent)
		cmd.SetViewport(0, vp)
		cmd.SetScissor(0, sc)
		// Fullscreen cube: 36 vertices (6 faces * 2 triangles * 3
		// verts), generated in the vertex shader from gl_VertexIndex —
		// no vertex buffer needed, matching the depth-at-infinity
		// skybox trick the teacher's shaders already assume elsewhere.
		cmd.Draw(36, 1, 0, 0)
	}
	return fn, []ResourceHandle{cube, sampler}, []ResourceHandle{colorTarget}
}

// ShadowMapPassConfig configures NewShadowMapPass.
type ShadowMapPassConfig struct {
	Registry     *material.Registry
	Master       material.MasterMaterialHandle
	Pipeline     vk.Pipeline
	Extent       vk.Extent2D
	LightViews   []vk.ImageView // one single-layer depth view per light
	LightProjView []ecsMat4     // per-light projection*view, pushed as a constant
	MeshIndexBuffer vk.Buffer
	VertexBuffer vk.Buffer
	Drawlist     Drawlist
}

// ecsMat4 avoids an import cycle with package ecs; callers pass their
// own Mat4 values in as this 16-float layout (column-major, matching
// ecs.Mat4's GPU-ready layout).
type ecsMat4 = [16]float32

type shadowPushConstants struct {
	ProjView       ecsMat4
	TransformIndex uint32
	_              [12]byte // pad to 16-byte push-constant alignment
}

// NewShadowMapPass draws every drawlist entry once per light into that
// light's single-layer depth view, front-face culling with depth bias
// (spec.md §4.3.4). It opens and closes its own BeginRendering/
// EndRendering scope per light rather than the single scope Execute
// derives for other passes, since each light writes a different view
// of the same depth resource; register it with Graph.AddManualPass.
func NewShadowMapPass(cfg ShadowMapPassConfig, projViews, depth ResourceHandle, transforms ResourceHandle) (PassFunc, []ResourceHandle, []ResourceHandle) {
	fn := func(cmd vk.CommandBuffer, g *Graph, slotIdx int) {
		layout := cfg.Registry.Bind(cmd, cfg.Pipeline, cfg.Master)
		vp, sc := fullViewport(cfg.Extent)
		cmd.SetViewport(0, vp)
		cmd.SetScissor(0, sc)
		cmd.BindIndexBuffer(cfg.MeshIndexBuffer, 0, vk.INDEX_TYPE_UINT32)
		cmd.BindVertexBuffers(0, []vk.Buffer{cfg.VertexBuffer}, []uint64{0})

		for i, view := range cfg.LightViews {
			cmd.BeginRendering(&vk.RenderingInfo{
				RenderArea: vk.Rect2D{Offset: vk.Offset2D{X: 0, Y: 0}, Extent: cfg.Extent},
				LayerCount: 1,
				DepthAttachment: &vk.RenderingAttachmentInfo{
					ImageView:   view,
					ImageLayout: vk.IMAGE_LAYOUT_DEPTH_STENCIL_ATTACHMENT_OPTIMAL,
					LoadOp:      vk.ATTACHMENT_LOAD_OP_CLEAR,
					StoreOp:     vk.ATTACHMENT_STORE_OP_STORE,
					ClearValue:  vk.ClearValue{DepthStencil: vk.ClearDepthStencilValue{Depth: 1}},
				},
			})
			for _, entry := range cfg.Drawlist {
				pc := shadowPushConstants{ProjView: cfg.LightProjView[i], TransformIndex: entry.TransformIndex}
				cmd.CmdPushConstants(layout, vk.SHADER_STAGE_VERTEX_BIT, 0, uint32(unsafe.Sizeof(pc)), unsafe.Pointer(&pc))
				cmd.DrawIndexed(entry.IndexCount, 1, entry.IndexStart, entry.VertexOffset, 0)
			}
			cmd.EndRendering()
		}
	}
	return fn, []ResourceHandle{projViews, transforms}, []ResourceHandle{depth}
}

// PBRPassConfig configures NewPBRPass.
type PBRPassConfig struct {
	Registry     *material.Registry
	Pipeline     vk.Pipeline
	Extent       vk.Extent2D
	MeshIndexBuffer vk.Buffer
	VertexBuffer vk.Buffer
	Drawlist     Drawlist
}

type pbrPushConstants struct {
	TransformIndex uint32
	VertexOffset   uint32
	VertexCount    uint32
	MaterialIndex  uint32
}

// NewPBRPass draws every drawlist entry with its own master material
// bound, per-draw push constants {transform_index, vertex_offset,
// vertex_count, material_index} (spec.md §4.3.4). Inputs are the
// shadow-map array and the per-frame matrix/material SSBOs; outputs are
// the HDR color target, an optional bright-pass target, and depth.
func NewPBRPass(cfg PBRPassConfig, masterOf func(entry DrawEntry) material.MasterMaterialHandle, shadowMap, matrixSSBO, materialSSBO, hdrColor, depth ResourceHandle, brightPass *ResourceHandle) (PassFunc, []ResourceHandle, []ResourceHandle) {
	fn := func(cmd vk.CommandBuffer, g *Graph, slotIdx int) {
		vp, sc := fullViewport(cfg.Extent)
		cmd.SetViewport(0, vp)
		cmd.SetScissor(0, sc)
		cmd.BindIndexBuffer(cfg.MeshIndexBuffer, 0, vk.INDEX_TYPE_UINT32)
		cmd.BindVertexBuffers(0, []vk.Buffer{cfg.VertexBuffer}, []uint64{0})

		for _, entry := range cfg.Drawlist {
			master := masterOf(entry)
			layout := cfg.Registry.Bind(cmd, cfg.Pipeline, master)
			pc := pbrPushConstants{
				TransformIndex: entry.TransformIndex,
				VertexOffset:   uint32(entry.VertexOffset),
				VertexCount:    entry.IndexCount,
				MaterialIndex:  entry.MaterialInstance,
			}
			cmd.CmdPushConstants(layout, vk.SHADER_STAGE_FRAGMENT_BIT|vk.SHADER_STAGE_VERTEX_BIT, 0, uint32(unsafe.Sizeof(pc)), unsafe.Pointer(&pc))
			cmd.DrawIndexed(entry.IndexCount, 1, entry.IndexStart, entry.VertexOffset, 0)
		}
	}
	inputs := []ResourceHandle{shadowMap, matrixSSBO, materialSSBO}
	outputs := []ResourceHandle{hdrColor, depth}
	if brightPass != nil {
		outputs = append(outputs, *brightPass)
	}
	return fn, inputs, outputs
}

// BloomPassConfig configures NewBloomPass.
type BloomPassConfig struct {
	Registry *material.Registry
	Master   material.MasterMaterialHandle
	Pipeline vk.Pipeline
	Extent   vk.Extent2D
}

type bloomPushConstants struct {
	Horizontal uint32
	_          [12]byte
}

// NewBloomPass is the two-pass separable Gaussian bloom: it ping-pongs
// between layer 0 (bright source) and layer 1 (working buffer) of the
// same image, then the caller's subsequent composite pass blends layer
// 1 back onto color with additive blending (SRC=ONE, DST=ONE — the
// Bloom blend-state Open Question resolved in DESIGN.md). Both Gaussian
// passes read and write the same image resource across its two layers,
// so it is declared once as both input and output (read-modify-write).
func NewBloomPass(cfg BloomPassConfig, brightAndWorking ResourceHandle) (PassFunc, []ResourceHandle, []ResourceHandle) {
	fn := func(cmd vk.CommandBuffer, g *Graph, slotIdx int) {
		layout := cfg.Registry.Bind(cmd, cfg.Pipeline, cfg.Master)
		vp, sc := fullViewport(cfg.Extent)
		cmd.SetViewport(0, vp)
		cmd.SetScissor(0, sc)
		for _, horizontal := range [2]uint32{1, 0} {
			pc := bloomPushConstants{Horizontal: horizontal}
			cmd.CmdPushConstants(layout, vk.SHADER_STAGE_FRAGMENT_BIT, 0, uint32(unsafe.Sizeof(pc)), unsafe.Pointer(&pc))
			cmd.Draw(3, 1, 0, 0) // fullscreen triangle
		}
	}
	return fn, []ResourceHandle{brightAndWorking}, []ResourceHandle{brightAndWorking}
}

// LinesPassConfig configures NewLinesPass.
type LinesPassConfig struct {
	Registry     *material.Registry
	Master       material.MasterMaterialHandle
	Pipeline     vk.Pipeline
	Extent       vk.Extent2D
	VertexBuffer vk.Buffer
	VertexCount  uint32
	Width        float32
}

type linesPushConstants struct {
	Width float32
	_     [12]byte
}

// NewLinesPass draws line-topology geometry that a geometry shader
// expands into quads with a width push-constant (spec.md §4.3.4).
func NewLinesPass(cfg LinesPassConfig, vertexView, colorTarget ResourceHandle) (PassFunc, []ResourceHandle, []ResourceHandle) {
	fn := func(cmd vk.CommandBuffer, g *Graph, slotIdx int) {
		layout := cfg.Registry.Bind(cmd, cfg.Pipeline, cfg.Master)
		vp, sc := fullViewport(cfg.Extent)
		cmd.SetViewport(0, vp)
		cmd.SetScissor(0, sc)
		cmd.BindVertexBuffers(0, []vk.Buffer{cfg.VertexBuffer}, []uint64{0})
		pc := linesPushConstants{Width: cfg.Width}
		cmd.CmdPushConstants(layout, vk.SHADER_STAGE_GEOMETRY_BIT, 0, uint32(unsafe.Sizeof(pc)), unsafe.Pointer(&pc))
		cmd.Draw(cfg.VertexCount, 1, 0, 0)
	}
	return fn, []ResourceHandle{vertexView}, []ResourceHandle{colorTarget}
}

// GlyphInstance is one glyph quad's per-instance data, uploaded into the
// per-frame buffer ahead of the draw (spec.md §4.3.4: "per-instance data
// in the per-frame buffer").
type GlyphInstance struct {
	ScreenPos [2]float32
	Size      [2]float32
	UVMin     [2]float32
	UVMax     [2]float32
	Color     [4]float32
}

// UIPassConfig configures NewUIPass.
type UIPassConfig struct {
	Registry    *material.Registry
	Master      material.MasterMaterialHandle
	Pipeline    vk.Pipeline
	Extent      vk.Extent2D
	GlyphBuffer vk.Buffer // per-frame buffer slice holding []GlyphInstance
	GlyphCount  uint32
}

// NewUIPass draws one instanced, six-vertex quad per glyph, sampling the
// font atlas image (spec.md §4.3.4). Grounded on material/font's SDF
// atlas shaders (font.SDFVertexShader/SDFFragmentShader).
func NewUIPass(cfg UIPassConfig, fontAtlas, colorTarget ResourceHandle) (PassFunc, []ResourceHandle, []ResourceHandle) {
	fn := func(cmd vk.CommandBuffer, g *Graph, slotIdx int) {
		cfg.Registry.Bind(cmd, cfg.Pipeline, cfg.Master)
		vp, sc := fullViewport(cfg.Extent)
		cmd.SetViewport(0, vp)
		cmd.SetScissor(0, sc)
		cmd.BindVertexBuffers(0, []vk.Buffer{cfg.GlyphBuffer}, []uint64{0})
		cmd.Draw(6, cfg.GlyphCount, 0, 0)
	}
	return fn, []ResourceHandle{fontAtlas}, []ResourceHandle{colorTarget}
}
