// Package runner executes every request of a collection concurrently and
// reports per-request progress events.
package runner

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"saffron/internal/domain"
	"saffron/internal/httpclient"
)

// Stage describes a phase of one request's execution.
type Stage string

const (
	// StageResolve is variable substitution from the active environment.
	StageResolve Stage = "resolve"
	// StageSend is the network round trip.
	StageSend Stage = "send"
)

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the request is waiting for a worker.
	StatusQueued Status = "queued"
	// StatusWorking indicates the request is in flight.
	StatusWorking Status = "working"
	// StatusDone indicates the request completed.
	StatusDone Status = "done"
	// StatusError indicates the request failed.
	StatusError Status = "error"
)

// Event reports progress for a single request, identified by name.
type Event struct {
	Request    string
	Stage      Stage
	Status     Status
	StatusCode int
	Err        error
	Elapsed    time.Duration
}

// ProgressSink consumes progress events.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

// Options controls a collection run.
type Options struct {
	// Jobs caps worker concurrency; zero or negative means GOMAXPROCS.
	Jobs int
	// Env, when set, resolves {{variable}} placeholders before sending.
	Env *domain.Environment
	// Progress receives per-request events; nil disables reporting.
	Progress ProgressSink
}

// Result is the outcome of one request in a collection run.
type Result struct {
	Name     string
	Request  *domain.Request
	Response *domain.Response
	Err      error
	Elapsed  time.Duration
}

// Failed reports how many results carry an error.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}

// Run sends every request of the collection. Results come back in collection
// order regardless of completion order. A request failure is recorded in its
// result, not returned; Run itself fails only on context cancellation.
func Run(ctx context.Context, client *httpclient.Client, col *domain.Collection, opts Options) ([]Result, error) {
	saved := col.AllRequests()
	if len(saved) == 0 {
		return nil, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	emit := func(evt Event) {
		if opts.Progress != nil {
			opts.Progress.OnEvent(evt)
		}
	}

	for _, sr := range saved {
		emit(Event{Request: sr.Name, Stage: StageResolve, Status: StatusQueued})
	}

	// Indices are unique per goroutine, so no mutex is needed.
	results := make([]Result, len(saved))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(saved)))

	for i, sr := range saved {
		i, sr := i, sr
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			emit(Event{Request: sr.Name, Stage: StageResolve, Status: StatusWorking})
			req := sr.ToRequest()
			if opts.Env != nil {
				req = opts.Env.ResolveRequest(req)
			}

			emit(Event{Request: sr.Name, Stage: StageSend, Status: StatusWorking})
			start := time.Now()
			resp, err := client.Send(gctx, req)
			elapsed := time.Since(start)

			results[i] = Result{
				Name:     sr.Name,
				Request:  req,
				Response: resp,
				Err:      err,
				Elapsed:  elapsed,
			}

			if err != nil {
				emit(Event{Request: sr.Name, Stage: StageSend, Status: StatusError, Err: err, Elapsed: elapsed})
			} else {
				emit(Event{Request: sr.Name, Stage: StageSend, Status: StatusDone, StatusCode: resp.Status, Elapsed: elapsed})
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
