package runner_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"saffron/internal/domain"
	"saffron/internal/httpclient"
	"saffron/internal/runner"
)

func testCollection(baseURL string, paths ...string) *domain.Collection {
	col := domain.NewCollection("suite")
	for _, path := range paths {
		req := domain.NewRequest(domain.MethodGet, baseURL+path)
		col.AddRequest(domain.NewSavedRequest("id-"+path, strings.TrimPrefix(path, "/"), req))
	}
	return col
}

func TestRunCollection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	col := testCollection(server.URL, "/a", "/missing", "/b")
	client := httpclient.New(httpclient.DefaultConfig())

	results, err := runner.Run(context.Background(), client, col, runner.Options{Jobs: 2})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("results = %d, want 3", len(results))
	}

	// Collection order is preserved regardless of completion order.
	for i, want := range []string{"a", "missing", "b"} {
		if results[i].Name != want {
			t.Errorf("results[%d].Name = %q, want %q", i, results[i].Name, want)
		}
	}
	if results[0].Response.Status != 200 || results[1].Response.Status != 404 {
		t.Errorf("statuses = %d, %d", results[0].Response.Status, results[1].Response.Status)
	}

	// A 404 is a response, not a run failure.
	if n := runner.Failed(results); n != 0 {
		t.Errorf("Failed = %d, want 0", n)
	}
}

func TestRunRecordsTransportErrors(t *testing.T) {
	col := domain.NewCollection("suite")
	req := domain.NewRequest(domain.MethodGet, "http://127.0.0.1:1/unreachable")
	col.AddRequest(domain.NewSavedRequest("id", "broken", req))

	client := httpclient.New(httpclient.DefaultConfig())
	results, err := runner.Run(context.Background(), client, col, runner.Options{})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(results) != 1 || results[0].Err == nil {
		t.Fatalf("expected a recorded error, got %+v", results)
	}
	if runner.Failed(results) != 1 {
		t.Errorf("Failed = %d, want 1", runner.Failed(results))
	}
}

func TestRunResolvesEnvironment(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
	}))
	defer server.Close()

	col := domain.NewCollection("suite")
	req := domain.NewRequest(domain.MethodGet, server.URL+"/{{resource}}")
	col.AddRequest(domain.NewSavedRequest("id", "templated", req))

	env := domain.NewEnvironment("dev")
	env.Set("resource", "users")

	client := httpclient.New(httpclient.DefaultConfig())
	if _, err := runner.Run(context.Background(), client, col, runner.Options{Env: env}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if gotPath != "/users" {
		t.Errorf("path = %q, want /users", gotPath)
	}
}

func TestRunEmitsEvents(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	col := testCollection(server.URL, "/one", "/two")
	client := httpclient.New(httpclient.DefaultConfig())

	events := make(chan runner.Event, 64)
	_, err := runner.Run(context.Background(), client, col, runner.Options{
		Progress: runner.ChannelSink{Ch: events},
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	close(events)

	done := map[string]bool{}
	queued := 0
	for evt := range events {
		if evt.Status == runner.StatusQueued {
			queued++
		}
		if evt.Status == runner.StatusDone {
			done[evt.Request] = true
			if evt.StatusCode != 200 {
				t.Errorf("done event status code = %d", evt.StatusCode)
			}
		}
	}
	if queued != 2 {
		t.Errorf("queued events = %d, want 2", queued)
	}
	if !done["one"] || !done["two"] {
		t.Errorf("done events = %v", done)
	}
}

func TestRunEmptyCollection(t *testing.T) {
	client := httpclient.New(httpclient.DefaultConfig())
	results, err := runner.Run(context.Background(), client, domain.NewCollection("empty"), runner.Options{})
	if err != nil || results != nil {
		t.Fatalf("empty run = %v, %v", results, err)
	}
}
