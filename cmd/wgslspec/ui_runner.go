package main

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"wgslspec/internal/pipeline"
	"wgslspec/internal/ui"
)

type runOutcome struct {
	written []string
	cats    *catalogs
	err     error
}

// runWithUI runs job in a goroutine and renders its stage events until the
// event channel is closed.
func runWithUI(ctx context.Context, out io.Writer, title string, job func(context.Context, pipeline.ProgressSink) runOutcome) runOutcome {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan pipeline.Event, 256)
	outcomeCh := make(chan runOutcome, 1)

	go func() {
		outcome := job(ctx, pipeline.ChannelSink{Ch: events})
		outcomeCh <- outcome
		close(events)
	}()

	model := ui.NewProgressModel(title, pipeline.Stages(), events)
	program := tea.NewProgram(model, tea.WithOutput(out), tea.WithContext(ctx))
	_, uiErr := program.Run()
	// the model may quit early on ctrl+c: stop the job and drain what is left
	cancel()
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil && outcome.err == nil {
		outcome.err = uiErr
	}
	return outcome
}
