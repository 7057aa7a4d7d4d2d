package animation

import "unsafe"

// identityTag derives a tag from a float32 cell's own address, the same way
// a timer's cancellation tag is tied to the identity of the cell it drives
// rather than to a caller-chosen value.
func identityTag(cell *float32) Tag {
	return Tag(uintptr(unsafe.Pointer(cell)))
}

// TimerStart pushes a linear 0->1 tween over duration milliseconds into
// cell. The timer's tag is derived from cell's own identity, so a later
// TimerKill(cell) cancels exactly this timer without the caller needing to
// track a separate tag.
func (e *Engine) TimerStart(cell *float32, durationMS float64, onComplete func(userData any), userData any) bool {
	if cell == nil {
		return false
	}
	*cell = 0
	return e.Push(&Tween{
		Duration:   durationMS,
		Initial:    0,
		Target:     1,
		Subject:    cell,
		Tag:        identityTag(cell),
		Easing:     CurveLinear,
		OnComplete: onComplete,
		UserData:   userData,
	})
}

// TimerKill cancels the timer driving cell, if any, without firing its
// completion callback.
func (e *Engine) TimerKill(cell *float32) bool {
	if cell == nil {
		return false
	}
	return e.KillByTag(identityTag(cell))
}

// delayedTween is the heap-owned wrapper PushDelayed uses to stage a
// deferred Push: it is itself a timer whose completion pushes the wrapped
// entry; the engine holds it only until that timer is removed.
type delayedTween struct {
	progress float32
	entry    *Tween
}

// PushDelayed is equivalent to starting a linear 0->1 timer whose completion
// pushes entry. The wrapper is owned by the engine for the timer's lifetime
// and released once it fires.
func (e *Engine) PushDelayed(delayMS float64, entry *Tween) bool {
	if entry == nil || delayMS <= 0 {
		return false
	}
	wrapper := &delayedTween{entry: entry}
	return e.Push(&Tween{
		Duration: delayMS,
		Initial:  0,
		Target:   1,
		Subject:  &wrapper.progress,
		Tag:      identityTag(&wrapper.progress),
		Easing:   CurveLinear,
		OnComplete: func(_ any) {
			e.Push(wrapper.entry)
		},
	})
}
