package telemetry

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// TimingCollector records wall-clock durations in a tree. Safe for use from
// the single extraction goroutine plus a reporting goroutine; a mutex guards
// the span list for the watch-mode case where reports interleave with runs.
type TimingCollector struct {
	mu    sync.Mutex
	roots []*span
}

type span struct {
	name     string
	started  time.Time
	duration time.Duration
	children []*span
	parent   *span
	owner    *TimingCollector
}

// NewTimingCollector creates an empty collector.
func NewTimingCollector() *TimingCollector {
	return &TimingCollector{}
}

// Start begins a new root-level timer.
func (c *TimingCollector) Start(name string) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := &span{name: name, started: time.Now(), owner: c}
	c.roots = append(c.roots, s)
	return s
}

func (s *span) End() {
	if s.duration == 0 {
		s.duration = time.Since(s.started)
	}
}

func (s *span) Child(name string) Timer {
	s.owner.mu.Lock()
	defer s.owner.mu.Unlock()
	child := &span{name: name, started: time.Now(), parent: s, owner: s.owner}
	s.children = append(s.children, child)
	return child
}

// Report writes an indented timing tree.
func (c *TimingCollector) Report(w io.Writer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, root := range c.roots {
		writeSpan(w, root, 0)
	}
}

func writeSpan(w io.Writer, s *span, depth int) {
	d := s.duration
	if d == 0 {
		d = time.Since(s.started)
	}
	fmt.Fprintf(w, "%s%s: %s\n", strings.Repeat("  ", depth), s.name, formatDuration(d))
	for _, child := range s.children {
		writeSpan(w, child, depth+1)
	}
}

// formatDuration rounds to a human-scale precision.
func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Second:
		return d.Round(time.Millisecond).String()
	case d >= time.Millisecond:
		return d.Round(time.Microsecond).String()
	default:
		return d.String()
	}
}
