package rendergraph

import vk "github.com/NOT-REAL-GAMES/anvil"

// PassFunc is the work a pass performs once its resources are in the
// layouts it declared; it draws against the slot's already-bound
// command buffer.
type PassFunc func(cmd vk.CommandBuffer, g *Graph, slot int)

// Pass is a named block of GPU work declaring its input and output
// resources so Execute can insert the right barriers before it runs
// (spec.md glossary: "Pass").
type Pass struct {
	Name     string
	Fn       PassFunc
	Inputs   []ResourceHandle
	Outputs  []ResourceHandle
	Material uint32 // MasterMaterialHandle, package material; 0 if none

	// ManualRendering marks a pass whose Fn calls BeginRendering/
	// EndRendering itself instead of having Execute derive a single
	// attachment set from Outputs. The shadow-map pass needs this: it
	// renders into a different single-layer depth view per light, one
	// BeginRendering/EndRendering pair per light, inside its own loop.
	ManualRendering bool
}
