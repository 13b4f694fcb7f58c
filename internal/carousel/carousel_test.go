package carousel

import (
	"testing"
	"time"
)

func TestNextPrevWrap(t *testing.T) {
	c := New(7)
	if got := c.Prev(); got != 6 {
		t.Errorf("Prev from 0 = %d, want 6", got)
	}
	if got := c.Next(); got != 0 {
		t.Errorf("Next from 6 = %d, want 0", got)
	}
	if got := c.Go(-1); got != 6 {
		t.Errorf("Go(-1) = %d, want 6", got)
	}
	if got := c.Go(15); got != 1 {
		t.Errorf("Go(15) = %d, want 1", got)
	}

	empty := New(0)
	if got := empty.Next(); got != 0 {
		t.Errorf("empty Next = %d, want 0", got)
	}
}

func TestSwipe(t *testing.T) {
	cases := []struct {
		dx   float64
		want int
	}{
		{41, 2},
		{40, 3},
		{-41, 4},
		{-10, 3},
	}
	for _, tc := range cases {
		c := &Carousel{Len: 7, Index: 3}
		if got := c.Swipe(tc.dx, CitySwipeThreshold); got != tc.want {
			t.Errorf("Swipe(%v) = %d, want %d", tc.dx, got, tc.want)
		}
	}
}

func TestKey(t *testing.T) {
	c := &Carousel{Len: 4, Index: 0}
	if got := c.Key("ArrowLeft"); got != 3 {
		t.Errorf("ArrowLeft = %d, want 3", got)
	}
	if got := c.Key("ArrowRight"); got != 0 {
		t.Errorf("ArrowRight = %d, want 0", got)
	}
	if got := c.Key("Enter"); got != 0 {
		t.Errorf("Enter = %d, want 0", got)
	}
}

func TestAutoplayIndex(t *testing.T) {
	cases := []struct {
		name    string
		elapsed time.Duration
		paused  bool
		want    int
	}{
		{"before first tick", 4 * time.Second, false, 0},
		{"one tick", AutoplayInterval, false, 1},
		{"wraps", 5 * AutoplayInterval, false, 1},
		{"paused", 10 * AutoplayInterval, true, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := AutoplayIndex(4, 0, tc.elapsed, AutoplayInterval, tc.paused); got != tc.want {
				t.Errorf("AutoplayIndex = %d, want %d", got, tc.want)
			}
		})
	}
}
