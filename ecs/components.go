package ecs

// Transform is the decomposed-storage transform component of spec.md
// §3.3: position, rotation, scale plus the cached local and world
// matrices transform_system_update keeps coherent.
type Transform struct {
	Position Vec3
	Rotation Quat
	Scale    Vec3

	Local Mat4
	World Mat4
}

// NewTransform returns a Transform with the given position, rotation and
// scale, its local and world matrices both set to their TRS composition.
func NewTransform(position Vec3, rotation Quat, scale Vec3) Transform {
	t := Transform{Position: position, Rotation: rotation, Scale: scale}
	t.Local = TRS(position, rotation, scale)
	t.World = t.Local
	return t
}

// RenderComponent is the drawable-entity component of spec.md §3.3.
type RenderComponent struct {
	Mesh             uint32
	IndexStart       uint32
	IndexCount       uint32
	MasterMaterial   uint32 // MasterMaterialHandle, package material
	MaterialInstance uint32 // MaterialHandle, package material
	MaterialData     []byte
	MaterialDirty    bool
}

// LightType enumerates the light kinds spec.md §3.3 names.
type LightType int

const (
	LightPoint LightType = iota
	LightSpot
	LightDirectional
)

// LightComponent is the light-entity component of spec.md §3.3.
type LightComponent struct {
	Type     LightType
	Color    Vec3
	Specular float32

	Position Vec3

	Constant  float32
	Linear    float32
	Quadratic float32

	Direction Vec3
	Cutoff    float32

	ProjectionView Mat4
}

// NameComponent holds an entity's debug/editor display name. Entities
// created through World.CreateEntity always carry one.
type NameComponent struct {
	Name string
}
