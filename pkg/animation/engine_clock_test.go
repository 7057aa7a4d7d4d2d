package animation

import (
	"testing"
	"time"

	tclock "github.com/uiticker/animengine/pkg/testing"
)

// TestEngineDrivenByFakeClock exercises Update with timestamps sourced from
// a deterministic clock instead of hand-picked microsecond literals, the
// way a host integration test would drive a frame loop.
func TestEngineDrivenByFakeClock(t *testing.T) {
	clk := tclock.NewFakeClock()
	engine := NewEngine()

	subject := float32(0)
	engine.Push(&Tween{Duration: 1000, Initial: 0, Target: 100, Subject: &subject, Easing: CurveLinear, Tag: NoTag})

	engine.Update(uint64(clk.Now().UnixMicro()), false, 1.0, 0, 0)

	clk.Advance(500 * time.Millisecond)
	engine.Update(uint64(clk.Now().UnixMicro()), false, 1.0, 0, 0)
	if subject != 50 {
		t.Errorf("subject = %v after 500ms, want 50", subject)
	}

	clk.Advance(500 * time.Millisecond)
	engine.Update(uint64(clk.Now().UnixMicro()), false, 1.0, 0, 0)
	if subject != 100 {
		t.Errorf("subject = %v after 1000ms, want 100", subject)
	}
}
