package ticker

import "github.com/uiticker/animengine/pkg/animation"

// LineRequest describes one quantised (whole-line) multi-line ticker call.
// LineLen is the wrap width (in characters) the caller used to produce
// Lines; it paces how long each line set is held on screen. Idx is a
// coarse tick index (the engine's Idx), since lines change far less often
// than characters scroll.
type LineRequest struct {
	Lines           []string
	LineLen         int
	MaxDisplayLines int
	Type            Type
	Idx             uint64
}

// LineResult is the quantised line ticker's visible window.
type LineResult struct {
	Lines  []string
	TopIdx int
}

// LineTicker selects which contiguous run of req.Lines is visible this
// tick. If the full text already fits within MaxDisplayLines, all lines
// are returned unmodified and active is false.
func LineTicker(req LineRequest) (LineResult, bool) {
	n := len(req.Lines)
	if n <= req.MaxDisplayLines || req.MaxDisplayLines <= 0 {
		return LineResult{Lines: req.Lines}, false
	}

	lineTicks := lineDisplayTicks(req.LineLen)
	excess := n - req.MaxDisplayLines

	var topIdx int
	switch req.Type {
	case Loop:
		topIdx = lineTickerLoopOffset(req.Idx, lineTicks, n)
	default:
		topIdx = lineTickerBounceOffset(req.Idx, lineTicks, excess)
	}

	numDisplay := clampWindow(topIdx, req.MaxDisplayLines, n)
	return LineResult{Lines: req.Lines[topIdx : topIdx+numDisplay], TopIdx: topIdx}, true
}

// lineTickerBounceOffset transcribes gfx_animation_line_ticker_generic: the
// display pauses for one line duration at the first and last line before
// reversing, over a period of 2*excess+2.
func lineTickerBounceOffset(idx, lineTicks uint64, excess int) int {
	period := uint64(excess*2 + 2)
	phase := int((idx / lineTicks) % period)

	if phase > 0 {
		phase--
	}
	if phase > excess {
		phase--
	}

	if phase <= excess {
		return phase
	}
	return excess*2 - phase
}

// lineTickerLoopOffset transcribes gfx_animation_line_ticker_loop: the
// offset cycles modulo numLines+1, the extra slot being a blank line that
// separates the end of the text from its repetition.
func lineTickerLoopOffset(idx, lineTicks uint64, numLines int) int {
	period := uint64(numLines + 1)
	phase := (idx / lineTicks) % period
	return int(phase)
}

// LineSmoothRequest describes one fade-capable multi-line ticker call.
// LineLen paces the display/scroll duration the same way as LineRequest.
// LineHeight is the pixel line height, used for the sub-line Y offset and
// the fade-line Y offsets. Idx is a pixel-accurate tick index (the
// engine's PixelLineIdx).
type LineSmoothRequest struct {
	Lines           []string
	LineLen         int
	LineHeight      int
	MaxDisplayLines int
	FadeEnabled     bool
	Type            Type
	Idx             uint64
}

// LineSmoothResult is the fade-capable multi-line ticker's visible window.
// When FadeActive, TopFadeLine/BottomFadeLine are the partial neighbour
// lines cross-fading into view at each edge, at their own Y offset and
// alpha; they are the empty string when no such line exists (e.g. at the
// very start or end of the text).
type LineSmoothResult struct {
	Lines          []string
	TopIdx         int
	YOffset        float64
	FadeActive     bool
	TopFadeLine    string
	TopFadeY       float64
	TopAlpha       float64
	BottomFadeLine string
	BottomFadeY    float64
	BottomAlpha    float64
}

// LineTickerSmooth is [LineTicker] with pixel-accurate sub-line scrolling
// and, if FadeEnabled, a cross-fade of the neighbouring line scrolling in
// at each edge.
func LineTickerSmooth(req LineSmoothRequest) LineSmoothResult {
	n := len(req.Lines)
	if n <= req.MaxDisplayLines || req.MaxDisplayLines <= 0 {
		return LineSmoothResult{Lines: req.Lines}
	}

	scrollTicks := lineSmoothScrollTicks(req.LineLen)
	excess := n - req.MaxDisplayLines

	var (
		topIdx     int
		numDisplay int
		yOffset    float64
		fadeActive bool
		linePhase  uint64
		scrollUp   bool
	)

	switch req.Type {
	case Loop:
		topIdx, numDisplay, yOffset, fadeActive, linePhase, scrollUp =
			lineTickerSmoothLoop(req.Idx, scrollTicks, req.LineHeight, req.MaxDisplayLines, n, req.FadeEnabled)
	default:
		topIdx, numDisplay, yOffset, fadeActive, linePhase, scrollUp =
			lineTickerSmoothBounce(req.Idx, scrollTicks, req.LineHeight, req.MaxDisplayLines, excess, req.FadeEnabled)
	}

	window := clampWindow(topIdx, numDisplay, n)
	res := LineSmoothResult{
		Lines:      req.Lines[topIdx : topIdx+window],
		TopIdx:     topIdx,
		YOffset:    yOffset,
		FadeActive: fadeActive,
	}

	if fadeActive {
		applyLineSmoothFade(&res, req.Lines, scrollUp, scrollTicks, linePhase, req.LineHeight, n, window, topIdx, yOffset)
	}
	return res
}

// lineTickerSmoothBounce transcribes gfx_animation_line_ticker_smooth_generic.
func lineTickerSmoothBounce(idx, scrollTicks uint64, lineHeight, maxDisplay, excess int, fadeEnabled bool) (topIdx, numDisplay int, yOffset float64, fadeActive bool, linePhase uint64, scrollUp bool) {
	period := uint64(excess*2+2) * scrollTicks
	phase := idx % period
	pause := false
	scrollUp = true

	if phase < scrollTicks {
		pause = true
	}
	if phase >= scrollTicks {
		phase -= scrollTicks
	} else {
		phase = 0
	}

	if phase >= uint64(excess)*scrollTicks {
		scrollUp = false
		if phase < uint64(excess+1)*scrollTicks {
			pause = true
			phase = 0
		} else {
			phase -= uint64(excess+1) * scrollTicks
		}
	}

	linePhase = phase % scrollTicks

	if pause || linePhase == 0 {
		numDisplay = maxDisplay
		fadeActive = false
		switch {
		case pause && scrollUp:
			topIdx = 0
		case pause:
			topIdx = excess
		case scrollUp:
			topIdx = int(phase / scrollTicks)
		default:
			topIdx = excess - int(phase/scrollTicks)
		}
		return
	}

	numDisplay = maxDisplay - 1
	fadeActive = fadeEnabled
	st, lp := float64(scrollTicks), float64(linePhase)
	if scrollUp {
		topIdx = int(phase/scrollTicks) + 1
		yOffset = float64(lineHeight) * (st - lp) / st
	} else {
		topIdx = excess - int(phase/scrollTicks)
		yOffset = float64(lineHeight) * (1 - (st-lp)/st)
	}
	return
}

// lineTickerSmoothLoop transcribes gfx_animation_line_ticker_smooth_loop.
func lineTickerSmoothLoop(idx, scrollTicks uint64, lineHeight, maxDisplay, numLines int, fadeEnabled bool) (topIdx, numDisplay int, yOffset float64, fadeActive bool, linePhase uint64, scrollUp bool) {
	period := uint64(numLines+1) * scrollTicks
	phase := idx % period
	linePhase = phase % scrollTicks
	topIdx = int(phase / scrollTicks)
	scrollUp = true

	if linePhase == scrollTicks-1 {
		numDisplay = maxDisplay
		fadeActive = false
	} else {
		numDisplay = maxDisplay - 1
		fadeActive = fadeEnabled
	}

	st, lp := float64(scrollTicks), float64(linePhase)
	yOffset = float64(lineHeight) * (st - lp) / st
	return
}

// applyLineSmoothFade transcribes set_line_smooth_fade_parameters: the
// outgoing line fades 1->0 over the first half of the line height's
// scroll, the incoming line fades 0->1 over the second half, and they are
// never both visible at once: at the exact midpoint both alphas are 0.
func applyLineSmoothFade(res *LineSmoothResult, lines []string, scrollUp bool, scrollTicks, linePhase uint64, lineHeight, numLines, numDisplay, lineOffset int, yOffset float64) {
	st, lp := float64(scrollTicks), float64(linePhase)

	fadeOut := (st - lp*2) / st
	fadeIn := -fadeOut
	if fadeOut < 0 {
		fadeOut = 0
	}
	if fadeIn < 0 {
		fadeIn = 0
	}

	topOffset := numLines
	if lineOffset > 0 {
		topOffset = lineOffset - 1
	}
	res.TopFadeY = yOffset - float64(lineHeight)
	if scrollUp {
		res.TopAlpha = fadeOut
	} else {
		res.TopAlpha = fadeIn
	}
	if topOffset >= 0 && topOffset < len(lines) {
		res.TopFadeLine = lines[topOffset]
	}

	bottomOffset := lineOffset + numDisplay
	res.BottomFadeY = yOffset + float64(lineHeight*numDisplay)
	if scrollUp {
		res.BottomAlpha = fadeIn
	} else {
		res.BottomAlpha = fadeOut
	}
	if bottomOffset >= 0 && bottomOffset < len(lines) {
		res.BottomFadeLine = lines[bottomOffset]
	}
}

// clampWindow bounds a numDisplay-line window starting at topIdx so it
// never runs past the end of a numLines-line slice.
func clampWindow(topIdx, numDisplay, numLines int) int {
	if topIdx >= numLines {
		return 0
	}
	if topIdx+numDisplay > numLines {
		return numLines - topIdx
	}
	if numDisplay < 0 {
		return 0
	}
	return numDisplay
}

// lineDisplayTicks transcribes get_line_display_ticks: the number of
// coarse ticks (animation.TickerSpeed microseconds apart) a line of
// lineLen characters should be held on screen at ReadingPaceCPM.
func lineDisplayTicks(lineLen int) uint64 {
	if lineLen < 1 {
		lineLen = 1
	}
	durationUS := float64(lineLen) * 60.0 * 1e6 / ReadingPaceCPM
	ticks := uint64(durationUS / animation.TickerSpeed)
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

// lineSmoothScrollTicks transcribes get_line_smooth_scroll_ticks: the
// number of pixel ticks (animation.PixelTickPeriod milliseconds apart) it
// takes to scroll from one line to the next at ReadingPaceCPM.
func lineSmoothScrollTicks(lineLen int) uint64 {
	if lineLen < 1 {
		lineLen = 1
	}
	durationMS := float64(lineLen) * 60.0 * 1000.0 / ReadingPaceCPM
	ticks := uint64(durationMS / animation.PixelTickPeriod)
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}
