package profiling

import (
	"testing"
	"time"
)

type stepClock struct {
	t    time.Time
	step time.Duration
}

func (c *stepClock) now() time.Time {
	c.t = c.t.Add(c.step)
	return c.t
}

func TestTrackAccumulates(t *testing.T) {
	c := &stepClock{step: time.Millisecond}
	f := NewFrame(c.now)

	f.Track("scene.Render")()
	f.Track("scene.Render")()
	f.Track("renderer.Render")()

	if got := f.Total("scene.Render"); got != 2*time.Millisecond {
		t.Fatalf("scene.Render = %v, want 2ms", got)
	}
	if got := f.SumWithPrefix("scene."); got != 2*time.Millisecond {
		t.Fatalf("SumWithPrefix = %v, want 2ms", got)
	}

	f.Reset()
	if got := f.SumWithPrefix(""); got != 0 {
		t.Fatalf("after Reset total = %v", got)
	}
}

func TestTopNOrdering(t *testing.T) {
	f := NewFrame(nil)
	f.totals["a"] = 1500 * time.Microsecond
	f.totals["b"] = 4 * time.Millisecond
	f.totals["c"] = 200 * time.Microsecond

	if got := f.TopN(2); got != "b:4ms, a:1.5ms" {
		t.Fatalf("TopN(2) = %q", got)
	}
	if got := f.TopN(10); got != "b:4ms, a:1.5ms, c:0.2ms" {
		t.Fatalf("TopN(10) = %q", got)
	}
}
