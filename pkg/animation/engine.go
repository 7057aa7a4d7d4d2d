// Package animation implements the tween scheduler and tick-index driver
// that back the ticker package's text-scrolling algorithms.
//
// [Engine] owns a reentrant-safe list of active [Tween] values and advances
// them once per host-supplied frame. It also derives four monotonic tick
// indices off the same frame clock, driven by [Engine.Update]:
//
//   - Idx, a coarse index incremented roughly every 333ms.
//   - SlowIdx, incremented roughly every 1.67s.
//   - PixelIdx and PixelLineIdx, sub-frame pixel-accurate accumulators used
//     by the smooth ticker variants.
//
// The engine has no concurrency of its own: it is driven synchronously from
// a single caller's frame loop, and Update must never be called reentrantly
// from within a completion callback.
package animation

import (
	"github.com/uiticker/animengine/pkg/errors"
)

// Coarse and slow tick periods, and the pixel-ticker frame period, all in
// the units the original menu-ticker driver used them: microseconds for the
// two tick periods, milliseconds for the pixel period.
const (
	TickerSpeed      = 333333
	TickerSlowSpeed  = 1666666
	PixelTickPeriod  = 1000.0 / 60.0
	minSpeedFactor   = 0.0001
	clockUpdatePulse = 1000000
)

// UpdateTimeCB lets a host scale the horizontal pixel-ticker increment to
// account for display size before it accumulates into PixelIdx. It receives
// the unscaled increment plus the frame's video dimensions and returns the
// adjusted increment. The default installed hook is a no-op.
type UpdateTimeCB func(increment float32, videoWidth, videoHeight int) float32

// State is a control request recognized by [Engine.Ctl].
type State int

const (
	// CtlNone performs no action.
	CtlNone State = iota
	// CtlDeinit fully resets the engine: both tween lists, all indices,
	// and both active flags are cleared.
	CtlDeinit
	// CtlClearActive clears both the animation-active and ticker-active
	// flags without touching the tween lists or indices.
	CtlClearActive
	// CtlSetActive forces both the animation-active and ticker-active
	// flags on.
	CtlSetActive
)

// Engine is a handle-typed tween scheduler and tick-index driver. The zero
// value is not ready for use; construct one with [NewEngine].
type Engine struct {
	active  []*Tween
	pending []*Tween

	idx          uint64
	slowIdx      uint64
	pixelIdx     uint64
	pixelLineIdx uint64

	pixelAccum     float64
	pixelLineAccum float64

	curTime  uint64
	oldTime  uint64
	started  bool
	deltaMS  float64

	lastCoarseUpdate uint64
	lastSlowUpdate   uint64
	lastClockUpdate  uint64

	animationActive bool
	tickerActive    bool
	inUpdate        bool
	pendingDeletes  bool

	updateTimeCB UpdateTimeCB
}

func noopUpdateTimeCB(increment float32, _, _ int) float32 { return increment }

// NewEngine creates an idle engine ready to accept pushes.
func NewEngine() *Engine {
	return &Engine{updateTimeCB: noopUpdateTimeCB}
}

// Push enqueues a tween. A degenerate tween (zero duration, initial already
// equal to target, or an unset easing variant) is rejected and reported via
// [errors.Report]; Push then returns false.
//
// If called from within Update (i.e. from a completion callback), the entry
// is appended to the pending list and only joins active at the end of the
// current sweep, per the engine's reentrancy contract.
func (e *Engine) Push(tw *Tween) bool {
	if tw == nil {
		return false
	}
	if tw.degenerate() {
		errors.Report(&errors.EngineError{
			Op:   "animation.Engine.Push",
			Kind: errors.KindDegenerateTween,
			Err:  errDegenerateTween,
		})
		return false
	}
	tw.RunningSince = 0
	tw.deleted = false
	if e.inUpdate {
		e.pending = append(e.pending, tw)
	} else {
		e.active = append(e.active, tw)
	}
	return true
}

// Update advances the frame clock and every active tween, then recomputes
// the four tick indices if the ticker is marked active (see
// [Engine.SetTickerActive]). currentTimeUS is the host's monotonic clock in
// microseconds. timedateEnable, when true, forces animation-active once per
// second to keep a clock/date display refreshing. tickerSpeed scales the
// tick-index periods (values at or below 0.0001 are treated as 1.0).
// videoWidth and videoHeight are forwarded to the installed
// [UpdateTimeCB].
//
// Update returns the resulting animation-active state.
func (e *Engine) Update(currentTimeUS uint64, timedateEnable bool, tickerSpeed float32, videoWidth, videoHeight int) bool {
	e.curTime = currentTimeUS
	if !e.started {
		e.deltaMS = 0
		e.started = true
	} else {
		e.deltaMS = float64(e.curTime-e.oldTime) / 1000.0
	}
	e.oldTime = e.curTime

	clockPulse := false
	if timedateEnable && (e.curTime-e.lastClockUpdate) > clockUpdatePulse {
		clockPulse = true
		e.lastClockUpdate = e.curTime
	}

	e.sweepTweens()

	if e.tickerActive {
		e.advanceTickIndices(tickerSpeed, videoWidth, videoHeight)
	}

	e.animationActive = clockPulse || len(e.active) > 0
	return e.animationActive
}

func (e *Engine) sweepTweens() {
	e.inUpdate = true

	for i := 0; i < len(e.active); i++ {
		tw := e.active[i]
		if tw.deleted {
			continue
		}

		tw.RunningSince += e.deltaMS
		if tw.RunningSince >= tw.Duration {
			tw.RunningSince = tw.Duration
			if tw.Subject != nil {
				*tw.Subject = float32(tw.Target)
			}
			e.fireOnComplete(tw)

			e.active = append(e.active[:i], e.active[i+1:]...)
			i--
			continue
		}

		value := Eval(tw.Easing, tw.RunningSince, tw.Initial, tw.Target-tw.Initial, tw.Duration)
		if tw.Subject != nil {
			*tw.Subject = float32(value)
		}
	}

	if e.pendingDeletes {
		e.compactTombstones()
		e.pendingDeletes = false
	}

	if len(e.pending) > 0 {
		e.active = append(e.active, e.pending...)
		e.pending = e.pending[:0]
	}

	e.inUpdate = false
	e.animationActive = len(e.active) > 0
}

func (e *Engine) fireOnComplete(tw *Tween) {
	if tw.OnComplete == nil {
		return
	}
	defer errors.Recover("animation.Engine.Update")
	tw.OnComplete(tw.UserData)
}

func (e *Engine) compactTombstones() {
	kept := e.active[:0]
	for _, tw := range e.active {
		if !tw.deleted {
			kept = append(kept, tw)
		}
	}
	e.active = kept
}

// advanceTickIndices replicates the original menu-ticker driver's pixel
// accumulator coupling: both the horizontal and vertical pixel indices are
// flushed only when the horizontal accumulator's integer part is positive,
// not each accumulator's own.
func (e *Engine) advanceTickIndices(tickerSpeed float32, videoWidth, videoHeight int) {
	speedFactor := float64(tickerSpeed)
	if speedFactor <= minSpeedFactor {
		speedFactor = 1.0
	}

	coarsePeriod := uint64(TickerSpeed/speedFactor + 0.5)
	slowPeriod := uint64(TickerSlowSpeed/speedFactor + 0.5)

	if e.curTime-e.lastCoarseUpdate >= coarsePeriod {
		e.idx++
		e.lastCoarseUpdate = e.curTime
	}
	if e.curTime-e.lastSlowUpdate >= slowPeriod {
		e.slowIdx++
		e.lastSlowUpdate = e.curTime
	}

	increment := e.deltaMS / PixelTickPeriod * speedFactor
	lineIncrement := increment

	cb := e.updateTimeCB
	if cb == nil {
		cb = noopUpdateTimeCB
	}
	increment = float64(cb(float32(increment), videoWidth, videoHeight))

	e.pixelAccum += increment
	e.pixelLineAccum += lineIncrement

	flushed := uint64(e.pixelAccum)
	if flushed > 0 {
		e.pixelIdx += flushed
		e.pixelAccum -= float64(flushed)

		lineFlushed := uint64(e.pixelLineAccum)
		e.pixelLineIdx += lineFlushed
		e.pixelLineAccum -= float64(lineFlushed)
	}
}

// KillByTag cancels every active tween carrying tag, without firing their
// completion callbacks. Passing [NoTag] is always a no-op. Called from
// within a completion callback, matches are tombstoned rather than spliced
// out directly so the in-progress sweep is not corrupted.
func (e *Engine) KillByTag(tag Tag) bool {
	if tag == NoTag {
		return false
	}

	found := false
	if e.inUpdate {
		for _, tw := range e.active {
			if tw.Tag == tag && !tw.deleted {
				tw.deleted = true
				e.pendingDeletes = true
				found = true
			}
		}
		for i := 0; i < len(e.pending); i++ {
			if e.pending[i].Tag == tag {
				e.pending = append(e.pending[:i], e.pending[i+1:]...)
				i--
				found = true
			}
		}
		return found
	}

	for i := 0; i < len(e.active); i++ {
		if e.active[i].Tag == tag {
			e.active = append(e.active[:i], e.active[i+1:]...)
			i--
			found = true
		}
	}
	return found
}

// IsActive reports whether the engine produced animation or ticker activity
// on the most recent Update.
func (e *Engine) IsActive() bool {
	return e.animationActive || e.tickerActive
}

// GetDeltaTime returns the most recent frame's delta time in milliseconds.
func (e *Engine) GetDeltaTime() float32 {
	return float32(e.deltaMS)
}

// Idx returns the coarse tick index.
func (e *Engine) Idx() uint64 { return e.idx }

// SlowIdx returns the slow tick index.
func (e *Engine) SlowIdx() uint64 { return e.slowIdx }

// PixelIdx returns the horizontal pixel-accurate tick index.
func (e *Engine) PixelIdx() uint64 { return e.pixelIdx }

// PixelLineIdx returns the vertical pixel-accurate tick index.
func (e *Engine) PixelLineIdx() uint64 { return e.pixelLineIdx }

// SetTickerActive marks the ticker subsystem active, which is what gates
// index advancement in Update. A host calls this once a ticker call reports
// it needs animation.
func (e *Engine) SetTickerActive(active bool) { e.tickerActive = active }

// SetUpdateTimeCB installs the pixel-scaling hook applied to the horizontal
// pixel-ticker increment.
func (e *Engine) SetUpdateTimeCB(cb UpdateTimeCB) {
	if cb == nil {
		e.updateTimeCB = noopUpdateTimeCB
		return
	}
	e.updateTimeCB = cb
}

// UnsetUpdateTimeCB removes any installed pixel-scaling hook, restoring the
// no-op default.
func (e *Engine) UnsetUpdateTimeCB() {
	e.updateTimeCB = noopUpdateTimeCB
}

// Ctl performs a control-state request. CtlDeinit fully resets engine state
// (both tween lists, all indices, and both active flags) rather than
// reproducing the original driver's pointer-zeroing bug, which left the
// struct itself untouched.
func (e *Engine) Ctl(state State) {
	switch state {
	case CtlDeinit:
		*e = *NewEngine()
	case CtlClearActive:
		e.animationActive = false
		e.tickerActive = false
	case CtlSetActive:
		e.animationActive = true
		e.tickerActive = true
	case CtlNone:
	}
}

var errDegenerateTween = degenerateTweenError("degenerate tween rejected at push")

type degenerateTweenError string

func (e degenerateTweenError) Error() string { return string(e) }
