package app

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Profiler keeps the last duration of named CPU scopes and a few counters.
// It is not safe for concurrent use; the viewer touches it from the render
// thread only.
type Profiler struct {
	Scopes     map[string]time.Duration
	StartTimes map[string]time.Time
	Counts     map[string]int
	Order      []string

	now func() time.Time
}

func NewProfiler() *Profiler {
	return &Profiler{
		Scopes:     make(map[string]time.Duration),
		StartTimes: make(map[string]time.Time),
		Counts:     make(map[string]int),
		now:        time.Now,
	}
}

func (p *Profiler) BeginScope(name string) {
	if _, seen := p.StartTimes[name]; !seen {
		p.Order = append(p.Order, name)
	}
	p.StartTimes[name] = p.now()
}

func (p *Profiler) EndScope(name string) {
	if start, ok := p.StartTimes[name]; ok {
		p.Scopes[name] = p.now().Sub(start)
	}
}

// Measure runs fn inside a scope.
func (p *Profiler) Measure(name string, fn func()) {
	p.BeginScope(name)
	defer p.EndScope(name)
	fn()
}

func (p *Profiler) SetCount(name string, count int) {
	p.Counts[name] = count
}

// Reset zeroes the timings and keeps the scope order.
func (p *Profiler) Reset() {
	for k := range p.Scopes {
		p.Scopes[k] = 0
	}
}

func (p *Profiler) StatsString() string {
	var sb strings.Builder

	sb.WriteString("Timings (CPU):\n")
	for _, name := range p.Order {
		ms := float64(p.Scopes[name].Microseconds()) / 1000.0
		fmt.Fprintf(&sb, "  %-15s: %.2f ms\n", name, ms)
	}

	sb.WriteString("\nStats:\n")
	keys := make([]string, 0, len(p.Counts))
	for k := range p.Counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&sb, "  %-15s: %d\n", k, p.Counts[k])
	}

	return sb.String()
}
