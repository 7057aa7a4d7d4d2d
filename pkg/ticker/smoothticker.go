package ticker

import (
	"github.com/uiticker/animengine/pkg/animation"
	"github.com/uiticker/animengine/pkg/errors"
)

// SmoothResult is the pixel-accurate output of a smooth ticker call.
type SmoothResult struct {
	Text          string
	XOffset       int
	DrawnWidth    int
	DisplayWidth  int
}

// SmoothRequest describes one pixel-accurate ticker call. Exactly one of
// Font or GlyphWidth should be set: Font selects the proportional-font
// scan, GlyphWidth (a positive fixed advance) selects the fixed-width
// arithmetic shortcut.
type SmoothRequest struct {
	Source     string
	Spacer     string
	FieldWidth int
	Selected   bool
	Type       Type
	Idx        uint64
	Font       Font
	GlyphWidth int
}

// SmoothTicker computes the pixel-accurate visible window of req.Source.
// It returns the substring, its x-offset and drawn width, and whether
// animation is needed.
func SmoothTicker(engine *animation.Engine, req SmoothRequest) (SmoothResult, bool) {
	if req.Source == "" || req.FieldWidth <= 0 {
		errors.Report(&errors.EngineError{Op: "ticker.SmoothTicker", Kind: errors.KindInvalidInput})
		return SmoothResult{}, false
	}

	widths, totalWidth, err := glyphWidths(req.Font, req.GlyphWidth, req.Source)
	if err != nil {
		errors.Report(&errors.EngineError{Op: "ticker.SmoothTicker", Kind: errors.KindMetricUnavailable, Err: err})
		return SmoothResult{}, false
	}

	if totalWidth <= req.FieldWidth {
		return SmoothResult{Text: req.Source, DrawnWidth: totalWidth, DisplayWidth: totalWidth}, false
	}

	if !req.Selected {
		dotWidth := 0
		if req.Font != nil {
			dotWidth = avgGlyphWidth(widths)
		} else {
			dotWidth = req.GlyphWidth
		}
		budget := req.FieldWidth - 3*dotWidth
		if budget < 0 {
			budget = 0
		}
		n, w := fitPrefix(widths, budget)
		text := runeSlice(req.Source, 0, n) + DefaultEllipsis
		return SmoothResult{Text: text, DrawnWidth: w, DisplayWidth: w}, false
	}

	spacer := req.Spacer
	if spacer == "" {
		spacer = DefaultSpacer
	}

	var res SmoothResult
	switch req.Type {
	case Loop:
		res = smoothLoop(req, widths)
	default:
		res = smoothBounce(req, widths, totalWidth)
	}

	if engine != nil {
		engine.SetTickerActive(true)
	}
	return res, true
}

// glyphWidths returns the per-codepoint advance widths of s and their sum.
// When font is non-nil, each width comes from font.GlyphWidth; otherwise
// fixedWidth is used for every codepoint (the fixed-width shortcut).
func glyphWidths(font Font, fixedWidth int, s string) ([]int, int, error) {
	n := runeLen(s)
	widths := make([]int, n)
	total := 0
	for i := 0; i < n; i++ {
		w := fixedWidth
		if font != nil {
			w = font.GlyphWidth(s, i)
			if w < 0 {
				return nil, 0, errNegativeGlyphWidth
			}
		}
		widths[i] = w
		total += w
	}
	return widths, total, nil
}

func avgGlyphWidth(widths []int) int {
	if len(widths) == 0 {
		return 0
	}
	sum := 0
	for _, w := range widths {
		sum += w
	}
	return sum / len(widths)
}

// fitPrefix greedily counts how many leading glyphs of widths fit within
// budget pixels, returning the count and the pixel width actually used.
func fitPrefix(widths []int, budget int) (int, int) {
	used := 0
	n := 0
	for _, w := range widths {
		if used+w > budget {
			break
		}
		used += w
		n++
	}
	return n, used
}

// scrollOffset computes the symmetric pause-scroll-pause-scroll curve used
// by the smooth bounce ticker. The smooth loop ticker does not use it: it
// takes its phase directly as idx modulo the source-plus-spacer width.
func scrollOffset(idx uint64, strWidth, fieldWidth int) int {
	scrollWidth := strWidth - fieldWidth
	period := 2 * (scrollWidth + SmoothPauseTicks)
	phase := int(idx % uint64(period))

	switch {
	case phase < SmoothPauseTicks:
		return 0
	case phase < period/2:
		return phase - SmoothPauseTicks
	case phase < period/2+SmoothPauseTicks:
		return (period - 2*SmoothPauseTicks) / 2
	default:
		return period - phase
	}
}

// scanString walks widths, finds the first glyph whose cumulative width
// exceeds scroll, and greedily copies subsequent glyphs while they still
// fit fieldWidth. It mirrors ticker_smooth_scan_characters.
func scanString(widths []int, fieldWidth, scroll int) (charOffset, numChars, xOffset, strWidth, displayWidth int) {
	n := len(widths)
	scrollPos := scroll

	if scrollPos > 0 {
		for i := 0; i < n; i++ {
			if scrollPos > widths[i] {
				scrollPos -= widths[i]
			} else {
				charOffset = i + 1
				xOffset = widths[i] - scrollPos
				break
			}
		}
	}

	textWidth := 0
	deferred := true
	i := charOffset
	for ; i < n; i++ {
		textWidth += widths[i]
		if xOffset+textWidth <= fieldWidth {
			numChars++
		} else {
			deferred = false
			strWidth = textWidth - widths[i]
			break
		}
	}
	if deferred {
		strWidth = textWidth
	}

	displayWidth = xOffset + textWidth
	if displayWidth > fieldWidth {
		displayWidth = fieldWidth
	}
	return
}

func smoothBounce(req SmoothRequest, widths []int, totalWidth int) SmoothResult {
	scroll := scrollOffset(req.Idx, totalWidth, req.FieldWidth)
	charOffset, numChars, xOffset, strWidth, displayWidth := scanString(widths, req.FieldWidth, scroll)
	text := runeSlice(req.Source, charOffset, numChars)
	return SmoothResult{Text: text, XOffset: xOffset, DrawnWidth: strWidth, DisplayWidth: displayWidth}
}

func smoothLoop(req SmoothRequest, srcWidths []int) SmoothResult {
	spacer := req.Spacer
	if spacer == "" {
		spacer = DefaultSpacer
	}
	spacerWidths, spacerTotal, _ := glyphWidths(req.Font, req.GlyphWidth, spacer)
	srcTotal := 0
	for _, w := range srcWidths {
		srcTotal += w
	}

	period := srcTotal + spacerTotal
	phase := 0
	if period > 0 {
		phase = int(req.Idx % uint64(period))
	}

	remaining := req.FieldWidth
	drawnWidth := 0
	var result SmoothResult
	var out string

	if phase < srcTotal {
		charOffset, numChars, xOffset, strWidth, displayWidth := scanString(srcWidths, remaining, phase)
		out += runeSlice(req.Source, charOffset, numChars)
		result.XOffset = xOffset
		remaining -= displayWidth
		drawnWidth += strWidth
	}

	if remaining > 0 {
		scroll := 0
		if phase > srcTotal {
			scroll = phase - srcTotal
		}
		charOffset, numChars, xOffset2, strWidth, displayWidth := scanString(spacerWidths, remaining, scroll)
		out += runeSlice(spacer, charOffset, numChars)
		remaining -= displayWidth
		drawnWidth += strWidth
		if scroll > 0 {
			result.XOffset = xOffset2
		}
	}

	if remaining > 0 {
		textWidth := 0
		numChars := 0
		for _, w := range srcWidths {
			textWidth += w
			if textWidth <= remaining {
				numChars++
			} else {
				break
			}
		}
		trailingWidth := 0
		for i := 0; i < numChars; i++ {
			trailingWidth += srcWidths[i]
		}
		out += runeSlice(req.Source, 0, numChars)
		drawnWidth += trailingWidth
	}

	result.Text = out
	// DrawnWidth is the sum of actual glyph advances (dst_str_width in the
	// original), which excludes the leading x_offset of a partially
	// scrolled-off glyph; DisplayWidth is the full field span it occupies.
	result.DrawnWidth = drawnWidth
	result.DisplayWidth = req.FieldWidth
	return result
}

var errNegativeGlyphWidth = smoothTickerError("font metric returned a negative glyph width")

type smoothTickerError string

func (e smoothTickerError) Error() string { return string(e) }
