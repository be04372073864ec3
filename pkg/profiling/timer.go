package profiling

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"
)

// Stopper ends a timed span.
type Stopper interface {
	Stop()
}

type span struct {
	name     string
	start    time.Time
	duration time.Duration
	children []*span
	profiler *Profiler
}

func (s *span) Stop() {
	s.profiler.endSpan(s)
}

// Profiler records nested timing spans. The zero value is disabled.
type Profiler struct {
	mu      sync.Mutex
	enabled bool
	root    *span
	stack   []*span
}

var defaultProfiler = &Profiler{}

// Enable turns on the global profiler. Calling it again restarts the session.
func Enable() {
	defaultProfiler.Enable()
}

// Reset disables the global profiler and drops recorded spans.
func Reset() {
	defaultProfiler.mu.Lock()
	defer defaultProfiler.mu.Unlock()
	defaultProfiler.enabled = false
	defaultProfiler.root = nil
	defaultProfiler.stack = nil
}

// Start begins a span on the global profiler. End it with Stop, typically via defer.
func Start(name string) Stopper {
	return defaultProfiler.Start(name)
}

// Summarize writes the global profiler's span tree to w.
func Summarize(w io.Writer) {
	defaultProfiler.Summarize(w)
}

// Enable starts a new profiling session on p.
func (p *Profiler) Enable() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.enabled = true
	p.root = &span{name: "total", start: time.Now(), profiler: p}
	p.stack = []*span{p.root}
}

// Start opens a span nested under the innermost open span.
func (p *Profiler) Start(name string) Stopper {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled {
		return noopStopper{}
	}

	parent := p.stack[len(p.stack)-1]
	s := &span{name: name, start: time.Now(), profiler: p}
	parent.children = append(parent.children, s)
	p.stack = append(p.stack, s)
	return s
}

func (p *Profiler) endSpan(s *span) {
	p.mu.Lock()
	defer p.mu.Unlock()

	s.duration = time.Since(s.start)
	// Spans may be stopped out of order; pop s and anything opened after it.
	for i := len(p.stack) - 1; i > 0; i-- {
		if p.stack[i] == s {
			p.stack = p.stack[:i]
			return
		}
	}
}

// Summarize writes p's span tree to w. It writes nothing when p is disabled.
func (p *Profiler) Summarize(w io.Writer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || p.root == nil {
		return
	}
	if p.root.duration == 0 {
		p.root.duration = time.Since(p.root.start)
	}

	fmt.Fprintln(w, "\n--- Timing Profile ---")
	for _, child := range sortedChildren(p.root) {
		printSpan(w, child, 0, p.root.duration)
	}
	fmt.Fprintf(w, "total %v\n", p.root.duration.Round(time.Microsecond))
}

func printSpan(w io.Writer, s *span, depth int, total time.Duration) {
	percentage := 0.0
	if total > 0 {
		percentage = float64(s.duration) / float64(total) * 100
	}
	fmt.Fprintf(w, "%s- %s (%v, %.1f%%)\n", strings.Repeat("  ", depth), s.name, s.duration.Round(time.Microsecond), percentage)

	for _, child := range sortedChildren(s) {
		printSpan(w, child, depth+1, total)
	}
}

func sortedChildren(s *span) []*span {
	children := append([]*span(nil), s.children...)
	sort.Slice(children, func(i, j int) bool {
		return children[i].start.Before(children[j].start)
	})
	return children
}

type noopStopper struct{}

func (noopStopper) Stop() {}
