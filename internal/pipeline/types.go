// Package pipeline describes the stages of an extraction run and the
// progress events they report.
package pipeline

import "time"

// Stage is one step of an extraction run.
type Stage string

const (
	StageLoad     Stage = "load"
	StageCache    Stage = "cache"
	StageTokens   Stage = "tokens"
	StageStandard Stage = "standard"
	StageTexture  Stage = "texture"
	StageAtomic   Stage = "atomic"
	StageMerge    Stage = "merge"
	StageWrite    Stage = "write"
)

// Stages returns the stages in execution order.
func Stages() []Stage {
	return []Stage{StageLoad, StageCache, StageTokens, StageStandard, StageTexture, StageAtomic, StageMerge, StageWrite}
}

// Status captures progress state within a stage.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusWorking Status = "working"
	StatusDone    Status = "done"
	StatusSkipped Status = "skipped"
	StatusError   Status = "error"
)

// Terminal reports whether no further events follow for the stage.
func (s Status) Terminal() bool {
	return s == StatusDone || s == StatusSkipped || s == StatusError
}

// Event reports progress for a stage. Item names the section or function
// being processed; Done and Total count items when known.
type Event struct {
	Stage   Stage
	Status  Status
	Item    string
	Done    int
	Total   int
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events.
type ProgressSink interface {
	OnEvent(Event)
}

// Timings holds stage durations.
type Timings struct {
	stages map[Stage]time.Duration
}

// Set stores a duration for stage.
func (t *Timings) Set(stage Stage, dur time.Duration) {
	if t == nil {
		return
	}
	if t.stages == nil {
		t.stages = make(map[Stage]time.Duration)
	}
	t.stages[stage] = dur
}

// Has reports whether a duration for stage is recorded.
func (t Timings) Has(stage Stage) bool {
	_, ok := t.stages[stage]
	return ok
}

// Duration returns the recorded duration for stage.
func (t Timings) Duration(stage Stage) time.Duration {
	return t.stages[stage]
}

// Sum returns the total across stages.
func (t Timings) Sum(stages ...Stage) time.Duration {
	var total time.Duration
	for _, stage := range stages {
		total += t.stages[stage]
	}
	return total
}
