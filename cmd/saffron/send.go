package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"saffron/internal/domain"
	"saffron/internal/httpclient"
)

var sendCmd = &cobra.Command{
	Use:   "send [flags] URL",
	Short: "Send an HTTP request",
	Long:  `Send builds a request from the flags, resolves {{variable}} placeholders from the selected environment, sends it, and records the exchange in history`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSend,
}

func init() {
	sendCmd.Flags().StringP("method", "X", "GET", "HTTP method")
	sendCmd.Flags().StringArrayP("header", "H", nil, "request header as 'Name: Value' (repeatable)")
	sendCmd.Flags().StringP("data", "d", "", "plain text request body")
	sendCmd.Flags().String("json", "", "JSON request body")
	sendCmd.Flags().StringArrayP("form", "F", nil, "form field as key=value (repeatable)")
	sendCmd.Flags().Int("timeout", 0, "request timeout in seconds (overrides config)")
	sendCmd.Flags().Bool("no-follow", false, "do not follow redirects")
	sendCmd.Flags().StringP("env", "e", "", "environment for {{variable}} substitution (default: the active one)")
	sendCmd.Flags().BoolP("verbose", "v", false, "show response headers")
	sendCmd.Flags().Bool("no-history", false, "do not record this request in history")
}

func runSend(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	req, err := buildSendRequest(cmd, args[0])
	if err != nil {
		return err
	}

	envName, _ := cmd.Flags().GetString("env")
	env, err := a.selectEnvironment(envName)
	if err != nil {
		return err
	}
	if env != nil {
		req = env.ResolveRequest(req)
	}

	client := httpclient.New(a.httpConfig())
	resp, err := client.Send(context.Background(), req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	a.printer.PrintResponse(resp, verbose)

	if noHistory, _ := cmd.Flags().GetBool("no-history"); !noHistory {
		a.recordHistory(req, resp)
	}
	return nil
}

func buildSendRequest(cmd *cobra.Command, url string) (*domain.Request, error) {
	methodFlag, _ := cmd.Flags().GetString("method")
	method, err := domain.ParseMethod(methodFlag)
	if err != nil {
		return nil, err
	}

	req := domain.NewRequest(method, url)

	headers, _ := cmd.Flags().GetStringArray("header")
	for _, raw := range headers {
		h, err := parseHeader(raw)
		if err != nil {
			return nil, err
		}
		req.AddHeader(h.Name, h.Value)
	}

	data, _ := cmd.Flags().GetString("data")
	jsonBody, _ := cmd.Flags().GetString("json")
	form, _ := cmd.Flags().GetStringArray("form")

	bodies := 0
	for _, set := range []bool{data != "", jsonBody != "", len(form) > 0} {
		if set {
			bodies++
		}
	}
	if bodies > 1 {
		return nil, fmt.Errorf("only one of --data, --json, --form may be given")
	}
	switch {
	case data != "":
		req.Body = domain.TextBody(data)
	case jsonBody != "":
		req.Body = domain.JSONBody(jsonBody)
	case len(form) > 0:
		fields := domain.FormBody{}
		for _, raw := range form {
			key, value, err := parseKeyValue(raw)
			if err != nil {
				return nil, err
			}
			fields[key] = value
		}
		req.Body = fields
	}

	if timeout, _ := cmd.Flags().GetInt("timeout"); timeout > 0 {
		req.TimeoutSeconds = timeout
	}
	if noFollow, _ := cmd.Flags().GetBool("no-follow"); noFollow {
		req.FollowRedirects = false
	}
	return req, nil
}
