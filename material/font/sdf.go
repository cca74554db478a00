// Package font bakes signed-distance-field glyph atlases used by the
// UI/glyph render pass stencil.
package font

import (
	"fmt"
	"math"

	vk "github.com/NOT-REAL-GAMES/anvil"
)

// SDFChar holds SDF character metrics for rendering.
type SDFChar struct {
	U0, V0, U1, V1 float32
	Width, Height  int
	XOffset        int
	YOffset        int
	XAdvance       int
}

// SDFAtlas holds an SDF font atlas texture and its per-glyph metrics.
type SDFAtlas struct {
	Width, Height int
	Pixels        []byte
	Chars         map[rune]SDFChar
	FontSize      float32
}

// GenerateSDFAtlas bakes an SDF atlas for the printable ASCII range
// (32-126) from raw TrueType bytes, using stb_truetype's SDF generator
// through the vulkango font binding.
func GenerateSDFAtlas(fontData []byte, fontSize float32, padding int, onedgeValue byte, pixelDistScale float32) (*SDFAtlas, error) {
	fontInfo, err := vk.InitFont(fontData)
	if err != nil {
		return nil, fmt.Errorf("font: init: %w", err)
	}
	defer fontInfo.Free()

	scale := fontInfo.ScaleForPixelHeight(fontSize)

	const firstChar = 32
	const numChars = 95

	cellSize := int(math.Ceil(float64(fontSize))) + padding*2
	gridSize := int(math.Ceil(math.Sqrt(float64(numChars))))
	atlasWidth := gridSize * cellSize
	atlasHeight := gridSize * cellSize

	atlas := make([]byte, atlasWidth*atlasHeight)
	chars := make(map[rune]SDFChar, numChars)

	gridX, gridY := 0, 0
	advance := func() {
		gridX++
		if gridX >= gridSize {
			gridX = 0
			gridY++
		}
	}

	for i := 0; i < numChars; i++ {
		codepoint := firstChar + i

		sdfBitmap, width, height, xoff, yoff := fontInfo.GetCodepointSDF(
			scale, codepoint, padding, onedgeValue, pixelDistScale,
		)

		if sdfBitmap == nil {
			if codepoint == firstChar {
				advanceWidth, _ := fontInfo.GetCodepointHMetrics(codepoint)
				chars[rune(codepoint)] = SDFChar{
					XAdvance: int(float32(advanceWidth) * scale),
				}
			}
			advance()
			continue
		}

		atlasX := gridX * cellSize
		atlasY := gridY * cellSize

		for y := 0; y < height && atlasY+y < atlasHeight; y++ {
			for x := 0; x < width && atlasX+x < atlasWidth; x++ {
				atlas[(atlasY+y)*atlasWidth+(atlasX+x)] = sdfBitmap[y*width+x]
			}
		}

		advanceWidth, _ := fontInfo.GetCodepointHMetrics(codepoint)
		chars[rune(codepoint)] = SDFChar{
			U0: float32(atlasX) / float32(atlasWidth),
			V0: float32(atlasY) / float32(atlasHeight),
			U1: float32(atlasX+width) / float32(atlasWidth),
			V1: float32(atlasY+height) / float32(atlasHeight),
			Width:    width,
			Height:   height,
			XOffset:  xoff,
			YOffset:  yoff,
			XAdvance: int(float32(advanceWidth) * scale),
		}
		advance()
	}

	return &SDFAtlas{
		Width:    atlasWidth,
		Height:   atlasHeight,
		Pixels:   atlas,
		Chars:    chars,
		FontSize: fontSize,
	}, nil
}
