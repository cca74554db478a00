package font

import "github.com/NOT-REAL-GAMES/anvil/material"

// MasterCreateInfo builds the master-material create-info for the
// UI/glyph pass's SDF text shaders (rendergraph.NewUIPass), baked into
// the binary rather than resolved against a project's shader
// directory like scene materials are.
func MasterCreateInfo() material.CreateInfo {
	return material.CreateInfo{
		Name: "ui.sdf_text",
		Shaders: []material.ShaderCreateInfo{
			{Path: "sdf.vert", Entry: "main", Stage: material.StageVertex, NextStages: material.StageFragment, Source: SDFVertexShader},
			{Path: "sdf.frag", Entry: "main", Stage: material.StageFragment, Source: SDFFragmentShader},
		},
		Pass: material.PassGlobal,
		Kind: material.Kind2D,
	}
}

// SDFVertexShader draws screen-space text quads: position and UV per
// vertex, color and screen size via push constants.
const SDFVertexShader = `
#version 450

layout(location = 0) in vec2 inPosition;
layout(location = 1) in vec2 inTexCoord;

layout(push_constant) uniform PushConstants {
    vec2 screenSize;
    vec4 textColor;
} push;

layout(location = 0) out vec2 fragTexCoord;
layout(location = 1) out vec4 fragColor;

void main() {
    vec2 ndc = (inPosition / push.screenSize) * 2.0 - 1.0;
    gl_Position = vec4(ndc, 0.0, 1.0);
    fragTexCoord = inTexCoord;
    fragColor = push.textColor;
}
`

// SDFFragmentShader samples the SDF atlas and anti-aliases the glyph edge
// with fwidth-derived smoothstep.
const SDFFragmentShader = `
#version 450

layout(location = 0) in vec2 fragTexCoord;
layout(location = 1) in vec4 fragColor;

layout(binding = 0) uniform sampler2D sdfAtlas;

layout(location = 0) out vec4 outColor;

void main() {
    float distance = texture(sdfAtlas, fragTexCoord).r;
    float signedDist = distance - 0.5;
    float alpha = smoothstep(-fwidth(signedDist), fwidth(signedDist), signedDist);

    outColor = vec4(fragColor.rgb, fragColor.a * alpha);
    if (outColor.a < 0.01) {
        discard;
    }
}
`
