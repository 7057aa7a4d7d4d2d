package ticker

import "testing"

func fiveLines() []string {
	return []string{"one", "two", "three", "four", "five"}
}

func TestLineTickerFitsWithinDisplay(t *testing.T) {
	res, active := LineTicker(LineRequest{Lines: []string{"a", "b"}, MaxDisplayLines: 3})
	if active {
		t.Error("expected inactive when lines fit within display")
	}
	if len(res.Lines) != 2 {
		t.Errorf("got %d lines, want 2", len(res.Lines))
	}
}

// TestLineTickerBounceMatchesOriginalPeriod hand-traces n=5, max=3
// (excess=2): period 2*excess+2=6, sequence [0,0,1,2,2,1] repeating. A
// LineLen of 1 makes lineDisplayTicks clamp to 1, so Idx advances the
// phase one-for-one.
func TestLineTickerBounceMatchesOriginalPeriod(t *testing.T) {
	lines := fiveLines()
	want := []int{0, 0, 1, 2, 2, 1}
	for idx := uint64(0); idx < 18; idx++ {
		res, active := LineTicker(LineRequest{Lines: lines, LineLen: 1, MaxDisplayLines: 3, Idx: idx})
		if !active {
			t.Fatalf("idx=%d: expected active", idx)
		}
		if got := want[idx%6]; res.TopIdx != got {
			t.Errorf("idx=%d: TopIdx=%d, want %d", idx, res.TopIdx, got)
		}
		if res.TopIdx < 0 || res.TopIdx+len(res.Lines) > len(lines) {
			t.Errorf("idx=%d: window [%d,%d) out of bounds for %d lines", idx, res.TopIdx, res.TopIdx+len(res.Lines), len(lines))
		}
	}
}

// TestLineTickerLoopWrapsWithBlankSlot exercises the loop ticker's
// n+1-period modulus: at Idx=5 (the blank slot, n=5) no lines are valid.
func TestLineTickerLoopWrapsWithBlankSlot(t *testing.T) {
	lines := fiveLines()

	res, active := LineTicker(LineRequest{Lines: lines, LineLen: 1, MaxDisplayLines: 3, Type: Loop, Idx: 4})
	if !active {
		t.Fatal("expected active")
	}
	if res.TopIdx != 4 {
		t.Errorf("got TopIdx=%d, want 4", res.TopIdx)
	}
	if len(res.Lines) != 1 {
		t.Errorf("got %d lines at TopIdx=4, want 1 (only \"five\" remains)", len(res.Lines))
	}

	blank, active := LineTicker(LineRequest{Lines: lines, LineLen: 1, MaxDisplayLines: 3, Type: Loop, Idx: 5})
	if !active {
		t.Fatal("expected active")
	}
	if blank.TopIdx != 5 {
		t.Errorf("got TopIdx=%d, want 5 (the blank slot)", blank.TopIdx)
	}
	if len(blank.Lines) != 0 {
		t.Errorf("got %d lines at the blank slot, want 0", len(blank.Lines))
	}
}

// TestLineTickerSmoothAtRestHasNoFadeOverlay covers the initial pause
// window, where the full display is shown and no fade lines exist yet.
func TestLineTickerSmoothAtRestHasNoFadeOverlay(t *testing.T) {
	res := LineTickerSmooth(LineSmoothRequest{
		Lines: fiveLines(), LineLen: 3, LineHeight: 10, MaxDisplayLines: 3, FadeEnabled: true, Idx: 0,
	})
	if len(res.Lines) != 3 {
		t.Errorf("got %d display lines at rest, want 3", len(res.Lines))
	}
	if res.FadeActive {
		t.Error("expected FadeActive=false while paused")
	}
	if res.TopAlpha != 0 || res.BottomAlpha != 0 {
		t.Errorf("got alpha (%v, %v) at rest, want (0, 0) (no overlay)", res.TopAlpha, res.BottomAlpha)
	}
}

// TestLineTickerSmoothMidScrollIndependentRamps hand-traces LineLen=3
// (scrollTicks=10) at Idx=11, which lands at linePhase=1: the original's
// set_line_smooth_fade_parameters gives fade_out=0.8, fade_in=0, never the
// same symmetric curve applied to both edges.
func TestLineTickerSmoothMidScrollIndependentRamps(t *testing.T) {
	res := LineTickerSmooth(LineSmoothRequest{
		Lines: fiveLines(), LineLen: 3, LineHeight: 10, MaxDisplayLines: 3, FadeEnabled: true, Idx: 11,
	})
	if !res.FadeActive {
		t.Fatal("expected FadeActive=true mid-scroll")
	}
	if len(res.Lines) != 2 {
		t.Errorf("got %d display lines mid-scroll, want 2", len(res.Lines))
	}
	if res.TopAlpha < 0.79 || res.TopAlpha > 0.81 {
		t.Errorf("got top alpha %v at linePhase=1, want approximately 0.8", res.TopAlpha)
	}
	if res.BottomAlpha != 0 {
		t.Errorf("got bottom alpha %v at linePhase=1, want 0", res.BottomAlpha)
	}
	if res.TopAlpha == res.BottomAlpha {
		t.Errorf("top and bottom alpha should ramp independently, both were %v", res.TopAlpha)
	}
	if res.TopFadeLine != "one" {
		t.Errorf("got top fade line %q, want %q", res.TopFadeLine, "one")
	}
	if res.BottomFadeLine != "four" {
		t.Errorf("got bottom fade line %q, want %q", res.BottomFadeLine, "four")
	}
}

func TestLineTickerSmoothFadeDisabledNoOverlay(t *testing.T) {
	res := LineTickerSmooth(LineSmoothRequest{
		Lines: fiveLines(), LineLen: 3, LineHeight: 10, MaxDisplayLines: 3, FadeEnabled: false, Idx: 11,
	})
	if res.FadeActive {
		t.Error("expected FadeActive=false when FadeEnabled=false")
	}
	if len(res.Lines) != 2 {
		t.Errorf("fade disabled: got %d lines, want 2 (display count is independent of fade)", len(res.Lines))
	}
	if res.TopAlpha != 0 || res.BottomAlpha != 0 {
		t.Errorf("fade disabled: got alpha (%v, %v), want (0, 0)", res.TopAlpha, res.BottomAlpha)
	}
}

func TestLineDisplayTicksScalesWithLength(t *testing.T) {
	short := lineDisplayTicks(2)
	long := lineDisplayTicks(40)
	if long <= short {
		t.Errorf("long line ticks %d should exceed short line ticks %d", long, short)
	}
	if short < 1 {
		t.Error("display ticks must be at least 1")
	}
}

func TestLineSmoothScrollTicksScalesWithLength(t *testing.T) {
	short := lineSmoothScrollTicks(2)
	long := lineSmoothScrollTicks(40)
	if long <= short {
		t.Errorf("long line scroll ticks %d should exceed short line scroll ticks %d", long, short)
	}
	if short < 1 {
		t.Error("scroll ticks must be at least 1")
	}
}
