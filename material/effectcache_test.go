package material

import "testing"

func TestEffectHashDistinguishesStageAndPath(t *testing.T) {
	a := effectHash(ShaderCreateInfo{Path: "a.glsl", Entry: "main", Stage: StageVertex})
	b := effectHash(ShaderCreateInfo{Path: "a.glsl", Entry: "main", Stage: StageFragment})
	if a == b {
		t.Fatalf("hashes for distinct stages must differ, got %d for both", a)
	}

	c := effectHash(ShaderCreateInfo{Path: "b.glsl", Entry: "main", Stage: StageVertex})
	if a == c {
		t.Fatalf("hashes for distinct paths must differ, got %d for both", a)
	}
}

func TestEffectHashStableForInlineSource(t *testing.T) {
	info := ShaderCreateInfo{Path: "inline/sdf.vert", Entry: "main", Stage: StageVertex, Source: "#version 450\nvoid main(){}"}
	if effectHash(info) != effectHash(info) {
		t.Fatalf("effectHash must be a pure function of the cache key fields")
	}
}
