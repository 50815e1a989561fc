package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"saffron/internal/domain"
	"saffron/internal/httpclient"
	"saffron/internal/runner"
	"saffron/internal/ui"
)

type runOutcome struct {
	results []runner.Result
	err     error
}

// runCollectionWithUI drives a collection run behind a live progress view.
// The run itself happens on a goroutine; its events feed the Bubble Tea model
// until the channel closes.
func runCollectionWithUI(ctx context.Context, title string, client *httpclient.Client, col *domain.Collection, opts runner.Options) ([]runner.Result, error) {
	saved := col.AllRequests()
	names := make([]string, len(saved))
	for i, sr := range saved {
		names[i] = sr.Name
	}

	events := make(chan runner.Event, 256)
	outcomeCh := make(chan runOutcome, 1)

	go func() {
		opts.Progress = runner.ChannelSink{Ch: events}
		results, err := runner.Run(ctx, client, col, opts)
		outcomeCh <- runOutcome{results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, names, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
