package font

import "testing"

func TestMasterCreateInfoWiresInlineSDFShaders(t *testing.T) {
	info := MasterCreateInfo()
	if len(info.Shaders) != 2 {
		t.Fatalf("expected vertex+fragment shader entries, got %d", len(info.Shaders))
	}
	for _, s := range info.Shaders {
		if s.Source == "" {
			t.Fatalf("expected inline Source on %+v, got none", s)
		}
	}
	if info.Shaders[0].Source != SDFVertexShader {
		t.Fatalf("vertex entry did not wire SDFVertexShader")
	}
	if info.Shaders[1].Source != SDFFragmentShader {
		t.Fatalf("fragment entry did not wire SDFFragmentShader")
	}
}
