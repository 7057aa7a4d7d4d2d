package ticker

import (
	"golang.org/x/image/font"
)

// FaceFont adapts a golang.org/x/image/font.Face to [Font], giving the
// proportional smooth-ticker variants real glyph-advance metrics without
// this package ever rasterizing a glyph itself.
type FaceFont struct {
	Face font.Face
}

// GlyphWidth returns the rounded advance width, in pixels, of the rune at
// codepoint index i within s. It returns -1 if the face cannot advance the
// rune (matching the engine's "metric unavailable" failure path).
func (f FaceFont) GlyphWidth(s string, i int) int {
	runes := []rune(s)
	if i < 0 || i >= len(runes) {
		return -1
	}
	advance, ok := f.Face.GlyphAdvance(runes[i])
	if !ok {
		return -1
	}
	return advance.Round()
}

// LineHeight returns the face's recommended line height in pixels.
func (f FaceFont) LineHeight() int {
	return f.Face.Metrics().Height.Round()
}
