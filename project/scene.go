package project

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/NOT-REAL-GAMES/anvil/ecs"
)

// sceneObjectJSON is one entry of scene.json's scene_objects array,
// spec.md §6.4.
type sceneObjectJSON struct {
	FileName string     `json:"file_name"`
	Position [3]float32 `json:"position"`
}

// lightJSON is one entry of scene.json's lights array, spec.md §6.4.
type lightJSON struct {
	LightType         string     `json:"light_type"`
	Position          [3]float32 `json:"position"`
	Color             [3]float32 `json:"color"`
	SpecularStrength  float32    `json:"specular_strength"`
	Constant          float32    `json:"constant"`
	Linear            float32    `json:"linear"`
	Quadratic         float32    `json:"quadratic"`
	Direction         *[3]float32 `json:"direction,omitempty"`
	CutoffRadius      *float32   `json:"cutoff_radius,omitempty"`
	Name              string     `json:"name"`
}

type sceneJSONRoot struct {
	Scene struct {
		SceneName    string            `json:"scene_name"`
		SceneObjects []sceneObjectJSON `json:"scene_objects"`
		Lights       []lightJSON       `json:"lights"`
	} `json:"scene"`
}

// Scene is the decoded form of scene.json: a name plus the raw object
// and light records, before they are instantiated into an ecs.World.
type Scene struct {
	Name    string
	Objects []sceneObjectJSON
	Lights  []lightJSON
}

// LoadScene decodes path per spec.md §6.4.
func LoadScene(path string) (Scene, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("project: read %s: %w", path, err)
	}
	var doc sceneJSONRoot
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Scene{}, fmt.Errorf("project: parse %s: %w", path, err)
	}
	return Scene{
		Name:    doc.Scene.SceneName,
		Objects: doc.Scene.SceneObjects,
		Lights:  doc.Scene.Lights,
	}, nil
}

// Instantiate creates one entity per scene object and one per light in
// w, wiring LightComponent fields from the JSON record. Mesh loading
// from Objects[i].FileName is the asset-decoding collaborator named out
// of scope by spec.md §1; Instantiate only creates the entity and
// transform, leaving RenderComponent.Mesh for the caller to fill in
// once the asset is resolved.
func (s Scene) Instantiate(w *ecs.World) ([]ecs.Entity, []ecs.Entity, error) {
	objects := make([]ecs.Entity, 0, len(s.Objects))
	for _, o := range s.Objects {
		e := w.CreateEntity(o.FileName, ecs.InvalidHandle,
			ecs.Vec3{X: o.Position[0], Y: o.Position[1], Z: o.Position[2]},
			ecs.IdentityQuat, ecs.Vec3{X: 1, Y: 1, Z: 1})
		objects = append(objects, e)
	}

	lights := make([]ecs.Entity, 0, len(s.Lights))
	for _, l := range s.Lights {
		lt, err := decodeLightType(l.LightType)
		if err != nil {
			return objects, lights, fmt.Errorf("project: light %q: %w", l.Name, err)
		}
		e := w.CreateEntity(l.Name, ecs.InvalidHandle,
			ecs.Vec3{X: l.Position[0], Y: l.Position[1], Z: l.Position[2]},
			ecs.IdentityQuat, ecs.Vec3{X: 1, Y: 1, Z: 1})

		lc := ecs.LightComponent{
			Type:      lt,
			Color:     ecs.Vec3{X: l.Color[0], Y: l.Color[1], Z: l.Color[2]},
			Specular:  l.SpecularStrength,
			Position:  ecs.Vec3{X: l.Position[0], Y: l.Position[1], Z: l.Position[2]},
			Constant:  l.Constant,
			Linear:    l.Linear,
			Quadratic: l.Quadratic,
		}
		if l.Direction != nil {
			lc.Direction = ecs.Vec3{X: l.Direction[0], Y: l.Direction[1], Z: l.Direction[2]}
		}
		if l.CutoffRadius != nil {
			lc.Cutoff = *l.CutoffRadius
		}
		if err := w.AddLightComponent(e, lc); err != nil {
			return objects, lights, fmt.Errorf("project: light %q: %w", l.Name, err)
		}
		lights = append(lights, e)
	}
	return objects, lights, nil
}

func decodeLightType(s string) (ecs.LightType, error) {
	switch s {
	case "spotlight":
		return ecs.LightSpot, nil
	case "pointlight":
		return ecs.LightPoint, nil
	case "directional":
		return ecs.LightDirectional, nil
	default:
		return 0, fmt.Errorf("unknown light_type %q", s)
	}
}
