package output_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"saffron/internal/domain"
	"saffron/internal/output"
	"saffron/internal/parser"
)

func plainPrinter() (*output.Printer, *bytes.Buffer, *bytes.Buffer) {
	color.NoColor = true
	var out, errOut bytes.Buffer
	return output.NewPrinter(&out, &errOut), &out, &errOut
}

func TestRenderValue(t *testing.T) {
	color.NoColor = true

	root, err := parser.Parse(`{"b": [1, true, null], "a": "x"}`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	got := output.RenderValue(root)
	want := `{
  "a": "x",
  "b": [
    1,
    true,
    null
  ]
}`
	if got != want {
		t.Errorf("RenderValue =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderValueScalarsAndEmpties(t *testing.T) {
	color.NoColor = true

	cases := []struct {
		input string
		want  string
	}{
		{"null", "null"},
		{"true", "true"},
		{"3.5", "3.5"},
		{"8080", "8080"},
		{`"hi"`, `"hi"`},
		{"[]", "[]"},
		{"{}", "{}"},
	}
	for _, tc := range cases {
		root, err := parser.Parse(tc.input)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", tc.input, err)
		}
		if got := output.RenderValue(root); got != tc.want {
			t.Errorf("RenderValue(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestPrintResponseJSONBody(t *testing.T) {
	p, out, _ := plainPrinter()

	resp := &domain.Response{
		Status:     200,
		StatusText: "OK",
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       []byte(`{"ok": true}`),
	}
	p.PrintResponse(resp, false)

	text := out.String()
	if !strings.Contains(text, "Status: 200") {
		t.Errorf("missing status line:\n%s", text)
	}
	if !strings.Contains(text, `"ok": true`) {
		t.Errorf("body not rendered as a tree:\n%s", text)
	}
}

func TestPrintResponseVerboseShowsHeaders(t *testing.T) {
	p, out, _ := plainPrinter()

	resp := &domain.Response{
		Status:  204,
		Headers: map[string]string{"X-Trace": "abc", "Server": "test"},
	}
	p.PrintResponse(resp, true)

	text := out.String()
	if !strings.Contains(text, "Headers:") || !strings.Contains(text, "X-Trace: abc") {
		t.Errorf("headers missing:\n%s", text)
	}
}

func TestPrintResponseMalformedJSONFallsBack(t *testing.T) {
	p, out, _ := plainPrinter()

	resp := &domain.Response{
		Status:  200,
		Headers: map[string]string{"Content-Type": "application/json"},
		Body:    []byte(`{"broken":`),
	}
	p.PrintResponse(resp, false)

	if !strings.Contains(out.String(), `{"broken":`) {
		t.Errorf("raw body not shown on parse failure:\n%s", out.String())
	}
}

func TestPrintResponseBinaryBody(t *testing.T) {
	p, out, _ := plainPrinter()

	resp := &domain.Response{Status: 200, Body: []byte{0xff, 0xfe, 0x00}}
	p.PrintResponse(resp, false)

	if !strings.Contains(out.String(), "<binary data, 3 bytes>") {
		t.Errorf("binary note missing:\n%s", out.String())
	}
}

func TestMessages(t *testing.T) {
	p, out, errOut := plainPrinter()

	p.Success("saved collection '%s'", "api")
	p.Info("using environment '%s'", "dev")
	p.Error("no such request: %s", "ping")

	if !strings.Contains(out.String(), "✓ saved collection 'api'") {
		t.Errorf("success output = %q", out.String())
	}
	if !strings.Contains(out.String(), "ℹ using environment 'dev'") {
		t.Errorf("info output = %q", out.String())
	}
	if !strings.Contains(errOut.String(), "Error: no such request: ping") {
		t.Errorf("error output = %q", errOut.String())
	}
}
