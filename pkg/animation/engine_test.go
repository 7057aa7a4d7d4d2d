package animation

import "testing"

func TestPushRejectsDegenerateTween(t *testing.T) {
	e := NewEngine()
	var s float32

	cases := []*Tween{
		{Duration: 0, Initial: 0, Target: 1, Subject: &s, Easing: CurveLinear},
		{Duration: 100, Initial: 5, Target: 5, Subject: &s, Easing: CurveLinear},
		{Duration: 100, Initial: 0, Target: 1, Subject: &s, Easing: CurveUnset},
	}
	for i, tw := range cases {
		if e.Push(tw) {
			t.Errorf("case %d: expected Push to reject degenerate tween", i)
		}
	}
	if len(e.active) != 0 {
		t.Errorf("expected no tweens accepted, got %d", len(e.active))
	}
}

func TestUpdateMonotoneCompletion(t *testing.T) {
	e := NewEngine()
	var s float32
	e.Push(&Tween{Duration: 1000, Initial: 0, Target: 100, Subject: &s, Easing: CurveLinear})

	e.Update(0, false, 1.0, 0, 0)

	prev := 0.0
	for us := uint64(100000); us <= 1000000; us += 100000 {
		e.Update(us, false, 1.0, 0, 0)
		tw := e.active
		if len(tw) == 1 {
			if tw[0].RunningSince < prev {
				t.Fatalf("RunningSince decreased: %v < %v", tw[0].RunningSince, prev)
			}
			prev = tw[0].RunningSince
		}
	}

	if s != 100 {
		t.Errorf("subject = %v, want 100 exactly", s)
	}
	if len(e.active) != 0 {
		t.Errorf("expected tween removed after completion, got %d remaining", len(e.active))
	}
}

func TestCompletionFiresExactlyOnce(t *testing.T) {
	e := NewEngine()
	var s float32
	fired := 0
	e.Push(&Tween{
		Duration: 100, Initial: 0, Target: 1, Subject: &s, Easing: CurveLinear,
		OnComplete: func(_ any) { fired++ },
	})

	e.Update(0, false, 1.0, 0, 0)
	e.Update(100000, false, 1.0, 0, 0)
	e.Update(200000, false, 1.0, 0, 0)

	if fired != 1 {
		t.Errorf("OnComplete fired %d times, want 1", fired)
	}
}

// TestKillDuringUpdate reproduces end-to-end scenario 5: two tweens share a
// tag; the first's OnComplete kills the second via that tag before the
// second ever completes on its own.
func TestKillDuringUpdate(t *testing.T) {
	e := NewEngine()
	const tag Tag = 42

	var a, b float32
	bFired := false

	e.Push(&Tween{
		Duration: 100, Initial: 0, Target: 1, Subject: &a, Tag: tag, Easing: CurveLinear,
		OnComplete: func(_ any) {
			e.KillByTag(tag)
		},
	})
	e.Push(&Tween{
		Duration: 100, Initial: 0, Target: 1, Subject: &b, Tag: tag, Easing: CurveLinear,
		OnComplete: func(_ any) { bFired = true },
	})

	e.Update(0, false, 1.0, 0, 0)
	e.Update(100000, false, 1.0, 0, 0)

	if len(e.active) != 0 {
		t.Errorf("expected active list empty after kill, got %d", len(e.active))
	}
	if bFired {
		t.Error("expected second tween's OnComplete to never fire")
	}
}

func TestKillByTagSentinelIsNoop(t *testing.T) {
	e := NewEngine()
	if e.KillByTag(NoTag) {
		t.Error("KillByTag(NoTag) should return false")
	}
}

func TestPushDuringUpdateDefersToNextFrame(t *testing.T) {
	e := NewEngine()
	var a, b float32
	pushed := false

	e.Push(&Tween{
		Duration: 100, Initial: 0, Target: 1, Subject: &a, Easing: CurveLinear,
		OnComplete: func(_ any) {
			pushed = e.Push(&Tween{Duration: 100, Initial: 0, Target: 1, Subject: &b, Easing: CurveLinear})
		},
	})

	e.Update(0, false, 1.0, 0, 0)
	e.Update(100000, false, 1.0, 0, 0)

	if !pushed {
		t.Fatal("expected the pending push to be accepted")
	}
	if b != 0 {
		t.Errorf("pending tween should not run in the frame it was pushed, got b=%v", b)
	}

	e.Update(200000, false, 1.0, 0, 0)
	if b != 1 {
		t.Errorf("pending tween should run on the following frame, got b=%v", b)
	}
}

func TestTimerStartAndKill(t *testing.T) {
	e := NewEngine()
	var cell float32

	if !e.TimerStart(&cell, 100, nil, nil) {
		t.Fatal("expected TimerStart to accept")
	}
	e.Update(0, false, 1.0, 0, 0)
	if !e.TimerKill(&cell) {
		t.Error("expected TimerKill to find and cancel the running timer")
	}
	e.Update(100000, false, 1.0, 0, 0)
	if cell == 1 {
		t.Error("killed timer should not have reached its target")
	}
}

func TestPushDelayedFiresEntryAfterDelay(t *testing.T) {
	e := NewEngine()
	var subject float32
	entry := &Tween{Duration: 100, Initial: 0, Target: 42, Subject: &subject, Easing: CurveLinear}

	if !e.PushDelayed(50, entry) {
		t.Fatal("expected PushDelayed to accept")
	}

	e.Update(0, false, 1.0, 0, 0)
	e.Update(50000, false, 1.0, 0, 0) // delay elapses, entry pushed to pending
	if subject != 0 {
		t.Errorf("entry should not run until the frame after the delay fires, got %v", subject)
	}

	e.Update(150000, false, 1.0, 0, 0) // entry runs and completes
	if subject != 42 {
		t.Errorf("subject = %v, want 42", subject)
	}
}

func TestCtlDeinitFullyResets(t *testing.T) {
	e := NewEngine()
	var s float32
	e.Push(&Tween{Duration: 100, Initial: 0, Target: 1, Subject: &s, Easing: CurveLinear})
	e.Update(0, false, 1.0, 0, 0)
	e.SetTickerActive(true)

	e.Ctl(CtlDeinit)

	if len(e.active) != 0 || len(e.pending) != 0 {
		t.Error("expected both tween lists cleared")
	}
	if e.IsActive() {
		t.Error("expected engine inactive after deinit")
	}
	if e.Idx() != 0 || e.PixelIdx() != 0 {
		t.Error("expected tick indices reset to zero")
	}
}

func TestCtlClearAndSetActive(t *testing.T) {
	e := NewEngine()
	e.Ctl(CtlSetActive)
	if !e.IsActive() {
		t.Error("expected CtlSetActive to force IsActive true")
	}
	e.Ctl(CtlClearActive)
	if e.IsActive() {
		t.Error("expected CtlClearActive to force IsActive false")
	}
}
