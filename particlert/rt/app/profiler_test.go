package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func TestProfiler_Scopes(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	p := NewProfiler()
	p.now = clock.now

	p.BeginScope("update")
	clock.t = clock.t.Add(1500 * time.Microsecond)
	p.EndScope("update")

	p.Measure("render", func() { clock.t = clock.t.Add(4 * time.Millisecond) })

	// Re-entering a scope keeps its position.
	p.BeginScope("update")
	clock.t = clock.t.Add(2 * time.Millisecond)
	p.EndScope("update")

	assert.Equal(t, []string{"update", "render"}, p.Order)
	assert.Equal(t, 2*time.Millisecond, p.Scopes["update"])
	assert.Equal(t, 4*time.Millisecond, p.Scopes["render"])

	p.EndScope("never-started")
	assert.NotContains(t, p.Scopes, "never-started")

	p.Reset()
	assert.Zero(t, p.Scopes["render"])
	assert.Equal(t, []string{"update", "render"}, p.Order)
}

func TestProfiler_StatsString(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	p := NewProfiler()
	p.now = clock.now

	p.Measure("render", func() { clock.t = clock.t.Add(2500 * time.Microsecond) })
	p.SetCount("particles", 2000)
	p.SetCount("axes", 38)

	s := p.StatsString()
	assert.Contains(t, s, "render         : 2.50 ms")
	assert.Regexp(t, `(?s)axes\s+: 38.*particles\s+: 2000`, s)
}
