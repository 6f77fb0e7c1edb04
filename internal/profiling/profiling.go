// Package profiling records how long named sections of a frame take.
package profiling

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Frame accumulates per-section durations for the current frame. It is used
// from the game loop only and does no locking.
type Frame struct {
	now    func() time.Time
	totals map[string]time.Duration
}

// NewFrame creates a profiler reading the given clock; nil means time.Now.
func NewFrame(now func() time.Time) *Frame {
	if now == nil {
		now = time.Now
	}
	return &Frame{now: now, totals: make(map[string]time.Duration)}
}

// Track returns a stop function that records the elapsed time under name.
// Usage: defer prof.Track("scene.Render")()
func (f *Frame) Track(name string) func() {
	start := f.now()
	return func() {
		f.totals[name] += f.now().Sub(start)
	}
}

// Reset clears the totals. Call at the start of each frame.
func (f *Frame) Reset() {
	clear(f.totals)
}

// Total returns the accumulated time of one section.
func (f *Frame) Total(name string) time.Duration {
	return f.totals[name]
}

// SumWithPrefix adds up every section whose name starts with prefix.
func (f *Frame) SumWithPrefix(prefix string) time.Duration {
	var sum time.Duration
	for k, v := range f.totals {
		if strings.HasPrefix(k, prefix) {
			sum += v
		}
	}
	return sum
}

// TopN formats the n slowest sections, slowest first.
// Example: "renderer.Render:4.2ms, scene.Render:2.1ms"
func (f *Frame) TopN(n int) string {
	type pair struct {
		name string
		dur  time.Duration
	}
	list := make([]pair, 0, len(f.totals))
	for k, v := range f.totals {
		list = append(list, pair{name: k, dur: v})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].dur != list[j].dur {
			return list[i].dur > list[j].dur
		}
		return list[i].name < list[j].name
	})
	if n > len(list) {
		n = len(list)
	}
	parts := make([]string, 0, n)
	for _, p := range list[:n] {
		parts = append(parts, fmt.Sprintf("%s:%sms", p.name, formatMs(p.dur)))
	}
	return strings.Join(parts, ", ")
}

// formatMs keeps one decimal and drops a trailing ".0".
func formatMs(d time.Duration) string {
	s := fmt.Sprintf("%.1f", float64(d.Microseconds())/1000.0)
	return strings.TrimSuffix(s, ".0")
}
