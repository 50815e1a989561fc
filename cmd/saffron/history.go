package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"saffron/internal/domain"
	"saffron/internal/httpclient"
	"saffron/internal/storage"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect and replay past requests",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent requests, newest first",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show one history entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyRerunCmd = &cobra.Command{
	Use:   "rerun ID",
	Short: "Send a past request again",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryRerun,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all history and cached bodies",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

func init() {
	historyListCmd.Flags().IntP("limit", "n", 20, "maximum entries to show")
	historyShowCmd.Flags().Bool("full", false, "show the complete cached response body")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyRerunCmd)
	historyCmd.AddCommand(historyClearCmd)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	entries, err := a.store.LoadHistory()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		a.printer.Info("history is empty")
		return nil
	}
	limit, _ := cmd.Flags().GetInt("limit")
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	for _, e := range entries {
		a.printer.Printf("%s  %s  %-7s %-40s %d (%dms)\n",
			e.ID[:8], e.FormatTimestamp(), e.Request.Method, e.Request.URL, e.Response.Status, e.DurationMS)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	entry, err := findHistoryEntry(a, args[0])
	if err != nil {
		return err
	}

	a.printer.Printf("%s  %s\n", entry.ID, entry.FormatTimestamp())
	a.printer.Printf("%s %s\n", entry.Request.Method, entry.Request.URL)
	for _, h := range entry.Request.Headers {
		a.printer.Printf("  %s: %s\n", h.Name, h.Value)
	}
	if entry.Request.Body != "" {
		a.printer.Printf("\n%s\n", entry.Request.Body)
	}

	full, _ := cmd.Flags().GetBool("full")
	if full {
		if resp, ok := cachedResponse(entry); ok {
			a.printer.PrintResponse(resp, true)
			return nil
		}
		a.printer.Info("full body not cached, showing the stored preview")
	}

	a.printer.Printf("\nStatus: %d %s (%dms)\n", entry.Response.Status, entry.Response.StatusText, entry.DurationMS)
	if entry.Response.BodyPreview != "" {
		a.printer.Printf("%s\n", entry.Response.BodyPreview)
	}
	return nil
}

func runHistoryRerun(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	entry, err := findHistoryEntry(a, args[0])
	if err != nil {
		return err
	}

	method, err := domain.ParseMethod(entry.Request.Method)
	if err != nil {
		method = domain.MethodGet
	}
	req := domain.NewRequest(method, entry.Request.URL)
	req.Headers = append([]domain.Header(nil), entry.Request.Headers...)
	if entry.Request.Body != "" {
		req.Body = domain.TextBody(entry.Request.Body)
	}

	client := httpclient.New(a.httpConfig())
	resp, err := client.Send(context.Background(), req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	a.printer.PrintResponse(resp, false)
	a.recordHistory(req, resp)
	return nil
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	if err := a.store.ClearHistory(); err != nil {
		return err
	}
	if cache, err := storage.OpenBodyCache("saffron"); err == nil {
		_ = cache.DropAll()
	}
	a.printer.Success("history cleared")
	return nil
}

// findHistoryEntry matches an entry by full id or unique prefix.
func findHistoryEntry(a *app, key string) (*storage.HistoryEntry, error) {
	entries, err := a.store.LoadHistory()
	if err != nil {
		return nil, err
	}
	var found *storage.HistoryEntry
	for i := range entries {
		if entries[i].ID == key {
			return &entries[i], nil
		}
		if strings.HasPrefix(entries[i].ID, key) {
			if found != nil {
				return nil, fmt.Errorf("ambiguous id prefix: %s", key)
			}
			found = &entries[i]
		}
	}
	if found == nil {
		return nil, fmt.Errorf("no such history entry: %s", key)
	}
	return found, nil
}

// cachedResponse rebuilds a response from the body cache, if present.
func cachedResponse(entry *storage.HistoryEntry) (*domain.Response, bool) {
	cache, err := storage.OpenBodyCache("saffron")
	if err != nil {
		return nil, false
	}
	var payload storage.CachedBody
	ok, err := cache.Get(entry.ID, &payload)
	if err != nil || !ok {
		return nil, false
	}
	headers := entry.Response.Headers
	if headers == nil {
		headers = map[string]string{}
	}
	if payload.ContentType != "" {
		headers["Content-Type"] = payload.ContentType
	}
	return &domain.Response{
		Status:     payload.Status,
		StatusText: entry.Response.StatusText,
		Headers:    headers,
		Body:       payload.Body,
		Elapsed:    time.Duration(entry.DurationMS) * time.Millisecond,
	}, true
}
