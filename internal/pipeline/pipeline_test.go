package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStagesOrder(t *testing.T) {
	st := Stages()
	require.Len(t, st, 8)
	assert.Equal(t, StageLoad, st[0])
	assert.Equal(t, StageWrite, st[len(st)-1])
}

func TestStatusTerminal(t *testing.T) {
	assert.False(t, StatusWorking.Terminal())
	assert.True(t, StatusDone.Terminal())
	assert.True(t, StatusSkipped.Terminal())
	assert.True(t, StatusError.Terminal())
}

func TestTimings(t *testing.T) {
	var tm Timings
	assert.False(t, tm.Has(StageTexture))
	tm.Set(StageTexture, 2*time.Millisecond)
	tm.Set(StageAtomic, 3*time.Millisecond)
	assert.True(t, tm.Has(StageTexture))
	assert.Equal(t, 5*time.Millisecond, tm.Sum(StageTexture, StageAtomic, StageMerge))
}

func TestSinks(t *testing.T) {
	rec := &Recorder{}
	var seen int
	sink := Multi(rec, nil, FuncSink(func(Event) { seen++ }))
	Emit(sink, Event{Stage: StageLoad, Status: StatusWorking})
	Emit(sink, Event{Stage: StageLoad, Status: StatusDone})
	Emit(nil, Event{})

	assert.Equal(t, 2, seen)
	require.Len(t, rec.Events(), 2)
	assert.Equal(t, StatusDone, rec.Events()[1].Status)

	ch := make(chan Event, 1)
	ChannelSink{Ch: ch}.OnEvent(Event{Stage: StageWrite})
	assert.Equal(t, StageWrite, (<-ch).Stage)
	ChannelSink{}.OnEvent(Event{})
}
