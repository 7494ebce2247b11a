package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wgslspec/internal/pipeline"
)

func newModel(t *testing.T, events <-chan pipeline.Event) *progressModel {
	t.Helper()
	m, ok := NewProgressModel("extract WGSL.html", []pipeline.Stage{pipeline.StageLoad, pipeline.StageTexture}, events).(*progressModel)
	require.True(t, ok)
	return m
}

func TestApplyEvent(t *testing.T) {
	m := newModel(t, nil)
	assert.Zero(t, m.fraction())

	m.applyEvent(pipeline.Event{Stage: pipeline.StageLoad, Status: pipeline.StatusDone, Item: "12 KiB", Elapsed: time.Millisecond})
	assert.InDelta(t, 0.5, m.fraction(), 1e-9)

	m.applyEvent(pipeline.Event{Stage: pipeline.StageMerge, Status: pipeline.StatusDone})
	assert.InDelta(t, 0.5, m.fraction(), 1e-9, "unknown stages are ignored")

	m.applyEvent(pipeline.Event{Stage: pipeline.StageTexture, Status: pipeline.StatusError, Err: errors.New("bad anchor")})
	assert.True(t, m.failed)
	assert.InDelta(t, 1.0, m.fraction(), 1e-9)

	view := m.View()
	assert.Contains(t, view, "extract WGSL.html")
	assert.Contains(t, view, "12 KiB")
	assert.Contains(t, view, "bad anchor")
}

func TestListenForEventClosed(t *testing.T) {
	ch := make(chan pipeline.Event)
	close(ch)
	m := newModel(t, ch)
	msg := m.listenForEvent()()
	_, ok := msg.(doneMsg)
	assert.True(t, ok)

	_, cmd := m.Update(msg)
	assert.NotNil(t, cmd)
	assert.True(t, m.done)
	assert.True(t, strings.HasPrefix(stripANSI(m.View()), "done: "))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd...", truncate("abcdefghij", 7))
	assert.Equal(t, "ab", truncate("abcdefghij", 2))
	assert.Equal(t, "abcdefg", truncate("abcdefg", 7))
	assert.Equal(t, "世...", truncate("世界世界世界", 6))
	assert.Equal(t, 7, runewidth.StringWidth(truncate("textureSampleCompareLevel", 7)))
}

func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'):
			inEscape = false
		case !inEscape:
			b.WriteRune(r)
		}
	}
	return b.String()
}
