// Package testing provides deterministic time control for animation and
// ticker tests.
//
// [FakeClock] lets a test advance wall-clock time in fixed increments
// instead of sleeping in real time, so tween and ticker-index behaviour can
// be asserted frame-by-frame.
package testing
