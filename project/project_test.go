package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/NOT-REAL-GAMES/anvil/ecs"
	"github.com/NOT-REAL-GAMES/anvil/input"
)

func TestLoadInputJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.json")
	doc := `{
		"input_actions": [
			{ "name": "move", "INPUT_VALUE": "FLOAT_2", "INPUT_BINDING": "COMPOSITE_UP_DOWN_RIGHT_LEFT",
			  "INPUT_SOURCE": "KEYBOARD", "KEYS": ["W", "S", "D", "A"] },
			{ "name": "jump", "INPUT_VALUE": "BOOL", "INPUT_BINDING": "BINDING",
			  "INPUT_SOURCE": "KEYBOARD", "KEYS": ["SPACEBAR"] }
		]
	}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	ch := input.NewChannel("gameplay", 0)
	if err := LoadInputJSON(path, ch); err != nil {
		t.Fatalf("LoadInputJSON: %v", err)
	}
	if _, ok := ch.FindAction("move"); !ok {
		t.Fatalf("expected action %q to be registered", "move")
	}
	if _, ok := ch.FindAction("jump"); !ok {
		t.Fatalf("expected action %q to be registered", "jump")
	}
}

func TestLoadSceneAndInstantiate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.json")
	doc := `{
		"scene": {
			"scene_name": "test",
			"scene_objects": [ { "file_name": "cube.gltf", "position": [1, 2, 3] } ],
			"lights": [
				{ "light_type": "pointlight", "position": [0,1,0], "color": [1,1,1],
				  "specular_strength": 0.5, "constant": 1, "linear": 0.09, "quadratic": 0.032,
				  "name": "lamp" }
			]
		}
	}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	scene, err := LoadScene(path)
	if err != nil {
		t.Fatalf("LoadScene: %v", err)
	}
	if scene.Name != "test" || len(scene.Objects) != 1 || len(scene.Lights) != 1 {
		t.Fatalf("LoadScene decoded wrong shape: %+v", scene)
	}

	w := ecs.NewWorld()
	objects, lights, err := scene.Instantiate(w)
	if err != nil {
		t.Fatalf("Instantiate: %v", err)
	}
	if len(objects) != 1 || len(lights) != 1 {
		t.Fatalf("Instantiate produced %d objects, %d lights; want 1, 1", len(objects), len(lights))
	}
	lc := w.Light().Get(lights[0])
	if lc.Type != ecs.LightPoint {
		t.Fatalf("light type = %v, want LightPoint", lc.Type)
	}
}

func TestRootFromExecutable(t *testing.T) {
	got := RootFromExecutable(filepath.Join("root", "bin", "Debug", "engine"))
	want := "root"
	if got != want {
		t.Fatalf("RootFromExecutable = %q, want %q", got, want)
	}
}
