// Package anim holds the count-up interpolation used to animate revenue
// figures. The host owns scheduling; everything here is a pure function of time.
package anim

import (
	"math"
	"time"
)

const (
	// CountUpDuration animates the city carousel total.
	CountUpDuration = 800 * time.Millisecond
	// NumberDuration animates the scenario card range.
	NumberDuration = 1200 * time.Millisecond
)

// Progress is min(1, elapsed/duration). A non-positive duration is already complete.
func Progress(duration, elapsed time.Duration) float64 {
	if duration <= 0 {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	p := float64(elapsed) / float64(duration)
	if p > 1 {
		return 1
	}
	return p
}

// Interpolate returns from + (to-from) * Progress(duration, elapsed).
func Interpolate(from, to float64, duration, elapsed time.Duration) float64 {
	if p := Progress(duration, elapsed); p < 1 {
		return from + (to-from)*p
	}
	return to
}

// Tween animates one value from From to To starting at Start.
type Tween struct {
	From     float64
	To       float64
	Start    time.Time
	Duration time.Duration
}

func New(from, to float64, start time.Time, d time.Duration) Tween {
	return Tween{From: from, To: to, Start: start, Duration: d}
}

func (t Tween) At(now time.Time) float64 {
	return Interpolate(t.From, t.To, t.Duration, now.Sub(t.Start))
}

// RoundedAt is At rounded to a whole unit, as displayed by the count-up.
func (t Tween) RoundedAt(now time.Time) int64 {
	return int64(math.Round(t.At(now)))
}

func (t Tween) Done(now time.Time) bool {
	return Progress(t.Duration, now.Sub(t.Start)) >= 1
}

// Retarget supersedes the running tween: the new one starts at the value
// currently displayed and heads for to.
func (t Tween) Retarget(to float64, now time.Time) Tween {
	return Tween{From: t.At(now), To: to, Start: now, Duration: t.Duration}
}

// Frames samples the tween every step until done, including both endpoints.
func (t Tween) Frames(step time.Duration) []float64 {
	if step <= 0 || t.Duration <= 0 {
		return []float64{t.To}
	}
	n := int(t.Duration/step) + 1
	out := make([]float64, 0, n+1)
	for e := time.Duration(0); e < t.Duration; e += step {
		out = append(out, t.At(t.Start.Add(e)))
	}
	return append(out, t.To)
}

// RangeFrames counts a low–high pair up from zero over NumberDuration, sampled
// every step. Both series have the same length and end on lo and hi exactly.
func RangeFrames(lo, hi int64, step time.Duration) (los, his []int64) {
	start := time.Time{}
	for _, f := range New(0, float64(lo), start, NumberDuration).Frames(step) {
		los = append(los, int64(math.Round(f)))
	}
	for _, f := range New(0, float64(hi), start, NumberDuration).Frames(step) {
		his = append(his, int64(math.Round(f)))
	}
	return los, his
}
