package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"saffron/internal/domain"
	"saffron/internal/httpclient"
	"saffron/internal/importer"
	"saffron/internal/runner"
)

var collectionCmd = &cobra.Command{
	Use:     "collection",
	Aliases: []string{"col"},
	Short:   "Manage request collections",
}

var collectionNewCmd = &cobra.Command{
	Use:   "new NAME",
	Short: "Create an empty collection",
	Args:  cobra.ExactArgs(1),
	RunE:  runCollectionNew,
}

var collectionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved collections",
	Args:  cobra.NoArgs,
	RunE:  runCollectionList,
}

var collectionShowCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Show the requests of a collection",
	Args:  cobra.ExactArgs(1),
	RunE:  runCollectionShow,
}

var collectionAddCmd = &cobra.Command{
	Use:   "add COLLECTION NAME URL",
	Short: "Add a request to a collection",
	Args:  cobra.ExactArgs(3),
	RunE:  runCollectionAdd,
}

var collectionDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete a collection",
	Args:  cobra.ExactArgs(1),
	RunE:  runCollectionDelete,
}

var collectionExportCmd = &cobra.Command{
	Use:   "export NAME [FILE]",
	Short: "Export a collection as JSON",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runCollectionExport,
}

var collectionImportCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Import collections from an Insomnia v4 export",
	Args:  cobra.ExactArgs(1),
	RunE:  runCollectionImport,
}

var collectionRunCmd = &cobra.Command{
	Use:   "run NAME",
	Short: "Send every request of a collection",
	Args:  cobra.ExactArgs(1),
	RunE:  runCollectionRun,
}

func init() {
	collectionAddCmd.Flags().StringP("method", "X", "GET", "HTTP method")
	collectionAddCmd.Flags().StringArrayP("header", "H", nil, "request header as 'Name: Value' (repeatable)")
	collectionAddCmd.Flags().StringP("data", "d", "", "request body")
	collectionAddCmd.Flags().Int("timeout", 0, "request timeout in seconds")

	collectionRunCmd.Flags().StringP("env", "e", "", "environment for {{variable}} substitution (default: the active one)")
	collectionRunCmd.Flags().IntP("jobs", "j", 0, "maximum concurrent requests (0 = number of CPUs)")
	collectionRunCmd.Flags().String("ui", "auto", "live progress view (auto|on|off)")

	collectionCmd.AddCommand(collectionNewCmd)
	collectionCmd.AddCommand(collectionListCmd)
	collectionCmd.AddCommand(collectionShowCmd)
	collectionCmd.AddCommand(collectionAddCmd)
	collectionCmd.AddCommand(collectionDeleteCmd)
	collectionCmd.AddCommand(collectionExportCmd)
	collectionCmd.AddCommand(collectionImportCmd)
	collectionCmd.AddCommand(collectionRunCmd)
}

func runCollectionNew(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	name := args[0]
	if _, err := a.store.LoadCollection(name); err == nil {
		return fmt.Errorf("collection already exists: %s", name)
	}
	if err := a.store.SaveCollection(domain.NewCollection(name)); err != nil {
		return err
	}
	a.printer.Success("created collection '%s'", name)
	return nil
}

func runCollectionList(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	names, err := a.store.ListCollections()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		a.printer.Info("no collections yet, create one with 'saffron collection new'")
		return nil
	}
	for _, name := range names {
		col, err := a.store.LoadCollection(name)
		if err != nil {
			a.printer.Printf("%s (unreadable: %v)\n", name, err)
			continue
		}
		a.printer.Printf("%s (%d requests)\n", col.Name, len(col.AllRequests()))
	}
	return nil
}

func runCollectionShow(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	col, err := a.store.LoadCollection(args[0])
	if err != nil {
		return err
	}
	a.printer.Printf("%s\n", col.Name)
	if col.Description != "" {
		a.printer.Printf("  %s\n", col.Description)
	}
	for _, sr := range col.AllRequests() {
		a.printer.Printf("  %-8s %-24s %s\n", sr.Method, sr.Name, sr.URL)
	}
	return nil
}

func runCollectionAdd(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	colName, reqName, url := args[0], args[1], args[2]

	col, err := a.store.LoadCollection(colName)
	if err != nil {
		return err
	}
	if _, exists := col.FindRequest(reqName); exists {
		return fmt.Errorf("request already exists in %s: %s", colName, reqName)
	}

	methodFlag, _ := cmd.Flags().GetString("method")
	method, err := domain.ParseMethod(methodFlag)
	if err != nil {
		return err
	}
	req := domain.NewRequest(method, url)
	headers, _ := cmd.Flags().GetStringArray("header")
	for _, raw := range headers {
		h, err := parseHeader(raw)
		if err != nil {
			return err
		}
		req.AddHeader(h.Name, h.Value)
	}
	if data, _ := cmd.Flags().GetString("data"); data != "" {
		req.Body = domain.TextBody(data)
	}
	if timeout, _ := cmd.Flags().GetInt("timeout"); timeout > 0 {
		req.TimeoutSeconds = timeout
	}

	col.AddRequest(domain.NewSavedRequest(newID(), reqName, req))
	if err := a.store.SaveCollection(col); err != nil {
		return err
	}
	a.printer.Success("added '%s' to %s", reqName, colName)
	return nil
}

func runCollectionDelete(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	if err := a.store.DeleteCollection(args[0]); err != nil {
		return err
	}
	a.printer.Success("deleted collection '%s'", args[0])
	return nil
}

func runCollectionExport(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	col, err := a.store.LoadCollection(args[0])
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(col, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if len(args) == 2 {
		if err := os.WriteFile(args[1], data, 0o644); err != nil {
			return err
		}
		a.printer.Success("exported '%s' to %s", col.Name, args[1])
		return nil
	}
	_, err = os.Stdout.Write(data)
	return err
}

func runCollectionImport(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	content, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	result, err := importer.AutoImport(string(content))
	if err != nil {
		return err
	}

	for _, imported := range result.Collections {
		col := domain.NewCollection(imported.Name)
		col.Description = imported.Description
		for _, req := range imported.Requests {
			col.AddRequest(domain.SavedRequest{
				ID:          req.ID,
				Name:        req.Name,
				Description: req.Description,
				Method:      req.Method,
				URL:         req.URL,
				Headers:     req.Headers,
				Body:        req.Body,
			})
		}
		if err := a.store.SaveCollection(col); err != nil {
			return err
		}
		a.printer.Success("imported collection '%s' (%d requests)", col.Name, len(col.Requests))
	}

	if len(result.Environments) > 0 {
		set, err := a.store.LoadEnvironmentSet()
		if err != nil {
			return err
		}
		for _, env := range result.Environments {
			set.Add(env)
			a.printer.Success("imported environment '%s'", env.Name)
		}
		if err := a.store.SaveEnvironmentSet(set); err != nil {
			return err
		}
	}
	return nil
}

func runCollectionRun(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	col, err := a.store.LoadCollection(args[0])
	if err != nil {
		return err
	}
	if len(col.AllRequests()) == 0 {
		a.printer.Info("collection '%s' has no requests", col.Name)
		return nil
	}

	envName, _ := cmd.Flags().GetString("env")
	env, err := a.selectEnvironment(envName)
	if err != nil {
		return err
	}
	jobs, _ := cmd.Flags().GetInt("jobs")
	uiFlag, _ := cmd.Flags().GetString("ui")
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	client := httpclient.New(a.httpConfig())
	opts := runner.Options{Jobs: jobs, Env: env}

	var results []runner.Result
	if shouldUseTUI(mode) {
		results, err = runCollectionWithUI(context.Background(), col.Name, client, col, opts)
	} else {
		results, err = runner.Run(context.Background(), client, col, opts)
	}
	if err != nil {
		return err
	}

	var total time.Duration
	for _, r := range results {
		total += r.Elapsed
		switch {
		case r.Err != nil:
			a.printer.Error("%s: %v", r.Name, r.Err)
		default:
			a.printer.Printf("%-24s %d (%s)\n", r.Name, r.Response.Status, r.Elapsed.Round(time.Millisecond))
			a.recordHistory(r.Request, r.Response)
		}
	}
	failed := runner.Failed(results)
	if failed > 0 {
		return fmt.Errorf("%d of %d requests failed", failed, len(results))
	}
	a.printer.Success("%d requests in %s", len(results), total.Round(time.Millisecond))
	return nil
}

// newID returns a short random hex identifier for saved requests.
func newID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("req-%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b[:])
}
