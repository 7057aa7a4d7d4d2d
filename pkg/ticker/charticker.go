package ticker

import (
	"github.com/uiticker/animengine/pkg/animation"
	"github.com/uiticker/animengine/pkg/errors"
)

// Request describes one character-quantised ticker call.
type Request struct {
	// Source is the full (possibly overly long) label.
	Source string
	// Spacer separates repetitions of Source in a Loop ticker. Empty
	// means [DefaultSpacer].
	Spacer string
	// FieldLen is the maximum display length, in characters.
	FieldLen int
	// Selected controls whether the unselected-ellipsis rule applies.
	Selected bool
	// Type picks the animation style.
	Type Type
	// Idx is the tick index driving the animation phase.
	Idx uint64
}

// CharTicker computes the visible substring of req.Source for the current
// tick, quantised to whole characters. It returns the substring and whether
// animation is needed (false for a short source or an unselected ellipsis).
//
// If engine is non-nil and animation is needed, the engine's ticker-active
// flag is set so [animation.Engine.Update] advances the tick indices.
func CharTicker(engine *animation.Engine, req Request) (string, bool) {
	if req.Source == "" || req.FieldLen <= 0 {
		errors.Report(&errors.EngineError{
			Op:   "ticker.CharTicker",
			Kind: errors.KindInvalidInput,
		})
		return "", false
	}

	spacer := req.Spacer
	if spacer == "" {
		spacer = DefaultSpacer
	}

	srcLen := runeLen(req.Source)
	if srcLen <= req.FieldLen {
		return req.Source, false
	}

	if !req.Selected {
		prefixLen := req.FieldLen - len(DefaultEllipsis)
		if prefixLen < 0 {
			prefixLen = 0
		}
		return runeSlice(req.Source, 0, prefixLen) + DefaultEllipsis, false
	}

	var out string
	switch req.Type {
	case Loop:
		spacerLen := runeLen(spacer)
		off1, w1, off2, w2, off3, w3 := tickerLoop(req.Idx, req.FieldLen, srcLen, spacerLen)
		out = runeSlice(req.Source, off1, w1) + runeSlice(spacer, off2, w2) + runeSlice(req.Source, off3, w3)
	default:
		offset, width := tickerBounceGeneric(req.Idx, req.FieldLen, srcLen)
		out = runeSlice(req.Source, offset, width)
	}

	if engine != nil {
		engine.SetTickerActive(true)
	}
	return out, true
}

// tickerBounceGeneric computes the (offset, width) window for a bounce
// ticker. Period is 2*(srcWidth-fieldWidth)+4: a two-tick pause at each end
// bookends the scroll in each direction.
func tickerBounceGeneric(idx uint64, fieldWidth, srcWidth int) (offset, width int) {
	period := 2*(srcWidth-fieldWidth) + 4
	phase := int(idx % uint64(period))

	const phaseLeftStop = 2
	phaseLeftMoving := phaseLeftStop + (srcWidth - fieldWidth)
	phaseRightStop := phaseLeftMoving + 2

	leftOffset := phase - phaseLeftStop
	rightOffset := (srcWidth - fieldWidth) - (phase - phaseRightStop)

	switch {
	case phase < phaseLeftStop:
		offset = 0
	case phase < phaseLeftMoving:
		offset = leftOffset
	case phase < phaseRightStop:
		offset = srcWidth - fieldWidth
	default:
		offset = rightOffset
	}

	return offset, fieldWidth
}

// tickerLoop decomposes the visible window of a loop ticker into up to
// three slices: the tail of the source string, a slice of the spacer, and
// the head of the source string, so the text reads as an infinite
// cylinder.
func tickerLoop(idx uint64, maxWidth, strWidth, spacerWidth int) (offset1, width1, offset2, width2, offset3, width3 int) {
	period := strWidth + spacerWidth
	phase := int(idx % uint64(period))

	offset := 0
	if phase < strWidth {
		offset = phase
	}
	width := strWidth - phase
	if width < 0 {
		width = 0
	}
	if width > maxWidth {
		width = maxWidth
	}
	offset1, width1 = offset, width

	offset = phase - strWidth
	if offset < 0 {
		offset = 0
	}
	width = maxWidth - width1
	if width > spacerWidth {
		width = spacerWidth
	}
	width -= offset
	offset2, width2 = offset, width

	width = maxWidth - (width1 + width2)
	if width < 0 {
		width = 0
	}
	offset3, width3 = 0, width

	return
}
