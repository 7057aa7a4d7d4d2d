// Package ticker implements the character and line scrolling algorithms
// that turn an overly long label and a monotonic tick index into the
// substring, pixel offsets, and fade parameters a frame should draw.
//
// Two animation styles are supported, [Bounce] (ping-pong) and [Loop]
// (cylindrical wrap with a spacer), each at two resolutions:
// character-quantised (whole glyphs per tick) and pixel-smooth
// (sub-glyph, driven by a [Font]'s advance widths). A companion
// [LineTicker]/[LineTickerSmooth] pair scrolls word-wrapped multi-line text
// vertically, with optional fade at the viewport edges.
//
// Every routine in this package is a pure function of its inputs plus the
// tick index supplied by the caller (typically read off an
// [github.com/uiticker/animengine/pkg/animation.Engine]); none of them
// allocate persistent state, rasterize glyphs, or touch a clock directly.
package ticker

// Type selects a ticker's animation style.
type Type int

const (
	// Bounce ping-pongs the visible window across the source string,
	// pausing briefly at each end.
	Bounce Type = iota
	// Loop scrolls the source string past the viewport as an infinite
	// cylinder, separated by a spacer on each wrap.
	Loop
)

const (
	// DefaultEllipsis terminates the static output shown for an
	// unselected, overly long label.
	DefaultEllipsis = "..."
	// DefaultSpacer separates repetitions of the source text in a loop
	// ticker when the caller supplies none.
	DefaultSpacer = "   |   "
	// SmoothPauseTicks is the pixel-tick pause duration at each end of a
	// smooth-scroll cycle.
	SmoothPauseTicks = 32
	// ReadingPaceCPM is the assumed reading speed, in characters per
	// minute, used to size how long a wrapped line is held on screen.
	ReadingPaceCPM = 1000.0
)

// Font measures glyph advance widths for the proportional-font smooth
// ticker variants. Implementations typically wrap a rasterizer-agnostic
// metrics source such as golang.org/x/image/font.Face; see
// [FaceFont] in font.go.
type Font interface {
	// GlyphWidth returns the advance width, in pixels, of the rune at
	// codepoint index i within s. A negative return indicates the metric
	// could not be resolved.
	GlyphWidth(s string, i int) int
	// LineHeight returns the font's recommended line height in pixels.
	LineHeight() int
}
