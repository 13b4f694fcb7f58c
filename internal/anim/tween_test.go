package anim

import (
	"testing"
	"time"
)

func TestInterpolateEndpoints(t *testing.T) {
	d := 800 * time.Millisecond
	if got := Interpolate(100, 200, d, 0); got != 100 {
		t.Errorf("at 0 = %v, want 100", got)
	}
	if got := Interpolate(100, 200, d, d); got != 200 {
		t.Errorf("at duration = %v, want 200", got)
	}
	if got := Interpolate(100, 200, d, 5*d); got != 200 {
		t.Errorf("past duration = %v, want 200", got)
	}
	if got := Interpolate(100, 200, d, 400*time.Millisecond); got != 150 {
		t.Errorf("halfway = %v, want 150", got)
	}
	if got := Interpolate(100, 200, d, -time.Second); got != 100 {
		t.Errorf("negative elapsed = %v, want 100", got)
	}
	if got := Interpolate(100, 200, 0, 0); got != 200 {
		t.Errorf("zero duration = %v, want 200", got)
	}
}

func TestInterpolateMonotone(t *testing.T) {
	d := NumberDuration
	prev := Interpolate(533232, 625968, d, 0)
	for e := 16 * time.Millisecond; e <= d+32*time.Millisecond; e += 16 * time.Millisecond {
		got := Interpolate(533232, 625968, d, e)
		if got < prev {
			t.Fatalf("decreased at %v: %v -> %v", e, prev, got)
		}
		prev = got
	}
	if prev != 625968 {
		t.Errorf("final = %v, want 625968", prev)
	}
}

func TestTweenRetarget(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tw := New(0, 1000, start, CountUpDuration)

	mid := start.Add(400 * time.Millisecond)
	if got := tw.RoundedAt(mid); got != 500 {
		t.Fatalf("RoundedAt(mid) = %d, want 500", got)
	}
	if tw.Done(mid) {
		t.Error("Done(mid) = true, want false")
	}

	next := tw.Retarget(2000, mid)
	if next.From != 500 || next.To != 2000 || !next.Start.Equal(mid) {
		t.Errorf("Retarget = %+v", next)
	}
	if got := next.At(mid.Add(CountUpDuration)); got != 2000 {
		t.Errorf("retargeted end = %v, want 2000", got)
	}
	if !next.Done(mid.Add(CountUpDuration)) {
		t.Error("Done at end = false, want true")
	}
}

func TestTweenFrames(t *testing.T) {
	tw := New(0, 100, time.Time{}, 100*time.Millisecond)
	frames := tw.Frames(25 * time.Millisecond)
	want := []float64{0, 25, 50, 75, 100}
	if len(frames) != len(want) {
		t.Fatalf("frames = %v, want %v", frames, want)
	}
	for i := range want {
		if frames[i] != want[i] {
			t.Errorf("frame %d = %v, want %v", i, frames[i], want[i])
		}
	}
	if got := tw.Frames(0); len(got) != 1 || got[0] != 100 {
		t.Errorf("Frames(0) = %v, want [100]", got)
	}
}

func TestRangeFramesUsesNumberDuration(t *testing.T) {
	los, his := RangeFrames(538000, 702000, 100*time.Millisecond)
	// 1200ms at 100ms steps: 0, 100, ..., 1100, then the final value.
	if len(los) != 13 || len(his) != 13 {
		t.Fatalf("frames = %d/%d, want 13", len(los), len(his))
	}
	if los[0] != 0 || his[0] != 0 {
		t.Errorf("first frame = %d/%d, want 0", los[0], his[0])
	}
	if los[6] != 269000 || his[6] != 351000 {
		t.Errorf("halfway = %d/%d, want 269000/351000", los[6], his[6])
	}
	if los[12] != 538000 || his[12] != 702000 {
		t.Errorf("last frame = %d/%d", los[12], his[12])
	}
}
