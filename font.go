package vulkango

import "fmt"

// FontBackend is the out-of-scope collaborator for glyph rasterization.
// spec.md §1 places the font/SDF backend alongside the Vulkan backend
// as a "layer below" this package: only its interface is named here. A
// real engine binary links a concrete FontBackend (a cgo binding
// against stb_truetype.h, or a pure-Go rasterizer) via SetFontBackend
// before calling InitFont.
type FontBackend interface {
	Init(fontData []byte) (uint64, error)
	ScaleForPixelHeight(font uint64, pixelHeight float32) float32
	GetCodepointHMetrics(font uint64, codepoint int) (advanceWidth, leftSideBearing int)
	GetCodepointSDF(font uint64, scale float32, codepoint int, padding int, onedgeValue byte, pixelDistScale float32) (bitmap []byte, width, height, xoff, yoff int)
	Free(font uint64)
}

var fontBackend FontBackend

// SetFontBackend installs the linked FontBackend. A real engine binary
// calls this once during startup, before any InitFont call.
func SetFontBackend(backend FontBackend) {
	fontBackend = backend
}

// FontInfo is an opaque handle to one loaded typeface.
type FontInfo struct {
	id uint64
}

// InitFont initializes a font from TTF data against the linked
// FontBackend.
func InitFont(fontData []byte) (*FontInfo, error) {
	if fontBackend == nil {
		return nil, fmt.Errorf("vulkango: no FontBackend linked")
	}
	id, err := fontBackend.Init(fontData)
	if err != nil {
		return nil, err
	}
	return &FontInfo{id: id}, nil
}

// ScaleForPixelHeight calculates the scale factor for a given pixel height.
func (f *FontInfo) ScaleForPixelHeight(pixelHeight float32) float32 {
	return fontBackend.ScaleForPixelHeight(f.id, pixelHeight)
}

// GetCodepointHMetrics returns horizontal metrics for a codepoint.
func (f *FontInfo) GetCodepointHMetrics(codepoint int) (advanceWidth, leftSideBearing int) {
	return fontBackend.GetCodepointHMetrics(f.id, codepoint)
}

// GetCodepointSDF generates a signed-distance-field bitmap for a codepoint.
func (f *FontInfo) GetCodepointSDF(scale float32, codepoint int, padding int, onedgeValue byte, pixelDistScale float32) ([]byte, int, int, int, int) {
	return fontBackend.GetCodepointSDF(f.id, scale, codepoint, padding, onedgeValue, pixelDistScale)
}

// Free releases the font's backend-side resources.
func (f *FontInfo) Free() {
	fontBackend.Free(f.id)
}
