package rendergraph

// DrawEntry is one (mesh, submesh range, material instance, transform
// index) tuple a pass consumes, per spec.md's glossary entry for
// "Drawlist entry". Mesh/index data lives in a single shared vertex and
// index buffer the graph's owner binds once per frame; IndexStart and
// IndexCount slice into it per submesh.
type DrawEntry struct {
	Mesh             uint32
	IndexStart       uint32
	IndexCount       uint32
	VertexOffset     int32
	MaterialInstance uint32
	TransformIndex   uint32
}

// Drawlist is the ordered list of draws the PBR raster and shadow-map
// passes walk every frame (spec.md §3.5's Graph.drawlist field).
type Drawlist []DrawEntry
