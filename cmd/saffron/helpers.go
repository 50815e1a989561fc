package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"saffron/internal/config"
	"saffron/internal/domain"
	"saffron/internal/httpclient"
	"saffron/internal/output"
	"saffron/internal/storage"
)

// app wires together the pieces every command needs: the loaded config, the
// on-disk storage, and a styled printer.
type app struct {
	cfg     config.Config
	store   *storage.Storage
	printer *output.Printer
}

func newApp(cmd *cobra.Command) (*app, error) {
	store, err := storage.New()
	if err != nil {
		return nil, fmt.Errorf("failed to open data directory: %w", err)
	}
	cfg, err := config.Load(store.ConfigPath())
	if err != nil {
		return nil, err
	}
	store.SetHistoryLimit(cfg.HistoryLimit)

	// The --color flag overrides the configured mode.
	mode := cfg.Color
	if flag, err := cmd.Root().PersistentFlags().GetString("color"); err == nil && flag != "" {
		mode = flag
	}
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		color.NoColor = !isTerminal(os.Stdout)
	}

	return &app{
		cfg:     cfg,
		store:   store,
		printer: output.NewPrinter(os.Stdout, os.Stderr),
	}, nil
}

// httpConfig maps the loaded config onto client settings.
func (a *app) httpConfig() httpclient.Config {
	cfg := httpclient.DefaultConfig()
	if a.cfg.TimeoutSeconds > 0 {
		cfg.TimeoutSeconds = a.cfg.TimeoutSeconds
	}
	cfg.FollowRedirects = a.cfg.FollowRedirects
	if a.cfg.UserAgent != "" {
		cfg.UserAgent = a.cfg.UserAgent
	}
	return cfg
}

// selectEnvironment picks the named environment, or the active one when name
// is empty. A nil environment with no error means no substitution applies.
func (a *app) selectEnvironment(name string) (*domain.Environment, error) {
	set, err := a.store.LoadEnvironmentSet()
	if err != nil {
		return nil, err
	}
	if name != "" {
		env, ok := set.Get(name)
		if !ok {
			return nil, fmt.Errorf("no such environment: %s", name)
		}
		return env, nil
	}
	if env, ok := set.GetActive(); ok {
		return env, nil
	}
	return nil, nil
}

// recordHistory appends a history entry and caches the full response body.
// History failures are reported but never fail the send itself.
func (a *app) recordHistory(req *domain.Request, resp *domain.Response) {
	entry := storage.NewHistoryEntry(req, resp)
	if err := a.store.AppendHistory(entry); err != nil {
		a.printer.Error("failed to record history: %v", err)
		return
	}
	cache, err := storage.OpenBodyCache("saffron")
	if err != nil {
		return
	}
	contentType, _ := resp.ContentType()
	_ = cache.Put(entry.ID, &storage.CachedBody{
		EntryID:     entry.ID,
		Status:      resp.Status,
		ContentType: contentType,
		Body:        resp.Body,
	})
}

// parseHeader splits "Name: Value" at the first colon.
func parseHeader(s string) (domain.Header, error) {
	name, value, ok := strings.Cut(s, ":")
	if !ok || strings.TrimSpace(name) == "" {
		return domain.Header{}, fmt.Errorf("invalid header %q (expected 'Name: Value')", s)
	}
	return domain.Header{Name: strings.TrimSpace(name), Value: strings.TrimSpace(value)}, nil
}

// parseKeyValue splits "key=value" at the first equals sign.
func parseKeyValue(s string) (string, string, error) {
	key, value, ok := strings.Cut(s, "=")
	if !ok || key == "" {
		return "", "", fmt.Errorf("invalid pair %q (expected key=value)", s)
	}
	return key, value, nil
}
