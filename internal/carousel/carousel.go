package carousel

import "time"

const (
	// AutoplayInterval is how long each scenario slide stays up.
	AutoplayInterval = 4500 * time.Millisecond

	// CitySwipeThreshold and ScenarioSwipeThreshold are the minimum horizontal
	// travel, in px, that counts as a swipe.
	CitySwipeThreshold     = 40
	ScenarioSwipeThreshold = 32
)

// Carousel tracks the visible slide of a fixed-length, wrapping carousel.
type Carousel struct {
	Len   int
	Index int
}

func New(n int) *Carousel { return &Carousel{Len: n} }

func (c *Carousel) Next() int {
	if c.Len > 0 {
		c.Index = (c.Index + 1) % c.Len
	}
	return c.Index
}

func (c *Carousel) Prev() int {
	if c.Len > 0 {
		c.Index = (c.Index - 1 + c.Len) % c.Len
	}
	return c.Index
}

// Go jumps to slide i, wrapping out-of-range values.
func (c *Carousel) Go(i int) int {
	if c.Len > 0 {
		c.Index = ((i % c.Len) + c.Len) % c.Len
	}
	return c.Index
}

// Swipe applies a touch gesture: dragging right (dx > threshold) goes back,
// dragging left goes forward, anything shorter is ignored.
func (c *Carousel) Swipe(dx float64, threshold float64) int {
	switch {
	case dx > threshold:
		return c.Prev()
	case dx < -threshold:
		return c.Next()
	default:
		return c.Index
	}
}

// Key maps arrow keys to navigation.
func (c *Carousel) Key(key string) int {
	switch key {
	case "ArrowLeft":
		return c.Prev()
	case "ArrowRight":
		return c.Next()
	default:
		return c.Index
	}
}

// AutoplayIndex is the slide shown after elapsed time with autoplay running
// from start. Paused carousels do not advance.
func AutoplayIndex(n, start int, elapsed, interval time.Duration, paused bool) int {
	if n <= 0 {
		return 0
	}
	if paused || interval <= 0 || elapsed <= 0 {
		return ((start % n) + n) % n
	}
	ticks := int(elapsed / interval)
	return (((start + ticks) % n) + n) % n
}
