package observ

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimerPhases(t *testing.T) {
	tm := NewTimer()
	idx := tm.Begin("parse")
	tm.End(idx, "12 KiB")
	tm.End(idx, "ignored")
	tm.End(42, "out of range")
	tm.Record("standard", 3*time.Millisecond, "")

	r := tm.Report()
	require.Len(t, r.Phases, 2)
	assert.Equal(t, "parse", r.Phases[0].Name)
	assert.Equal(t, "12 KiB", r.Phases[0].Note)
	assert.InDelta(t, 3.0, r.Phases[1].DurationMS, 0.001)
	assert.GreaterOrEqual(t, r.TotalMS, 0.0)
}

func TestTimerMeasure(t *testing.T) {
	tm := NewTimer()
	boom := errors.New("boom")
	err := tm.Measure("write", func() error { return boom })
	require.ErrorIs(t, err, boom)
	assert.Equal(t, "failed", tm.Report().Phases[0].Note)
}

func TestTimerSummary(t *testing.T) {
	tm := NewTimer()
	tm.Record("texture", time.Millisecond, "4 functions")
	s := tm.Summary()
	assert.True(t, strings.HasPrefix(s, "timings:\n"))
	assert.Contains(t, s, "texture")
	assert.Contains(t, s, "// 4 functions")
	assert.Contains(t, s, "total")
}

func TestTimerEmpty(t *testing.T) {
	r := NewTimer().Report()
	assert.NotNil(t, r.Phases)
	assert.Zero(t, r.TotalMS)
}
