// Package output renders responses, document trees, and status messages for
// the terminal with type-based styling.
package output

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"saffron/internal/domain"
	"saffron/internal/parser"
	"saffron/internal/value"
)

var (
	boldStyle      = color.New(color.Bold)
	headingStyle   = color.New(color.FgCyan, color.Bold)
	dimStyle       = color.New(color.FgHiBlack)
	successStyle   = color.New(color.FgGreen, color.Bold)
	errorStyle     = color.New(color.FgRed, color.Bold)
	infoStyle      = color.New(color.FgCyan, color.Bold)
	nullStyle      = color.New(color.FgHiBlack)
	boolStyle      = color.New(color.FgYellow)
	numberStyle    = color.New(color.FgCyan)
	stringStyle    = color.New(color.FgGreen)
	objectKeyStyle = color.New(color.FgHiWhite)

	statusOKStyle       = color.New(color.FgGreen)
	statusRedirectStyle = color.New(color.FgYellow)
	statusClientStyle   = color.New(color.FgRed)
	statusServerStyle   = color.New(color.FgHiRed)
)

// Printer writes styled output. Styling is controlled globally via
// color.NoColor, which the CLI sets from the --color flag.
type Printer struct {
	out io.Writer
	err io.Writer
}

// NewPrinter creates a printer over the given streams.
func NewPrinter(out, err io.Writer) *Printer {
	return &Printer{out: out, err: err}
}

// PrintResponse shows status, optional headers, and the response body.
// JSON bodies are re-parsed with the relaxed-dialect parser and rendered as a
// styled tree; if that fails the raw text is shown unstyled.
func (p *Printer) PrintResponse(resp *domain.Response, verbose bool) {
	fmt.Fprintf(p.out, "\n%s %s\n", boldStyle.Sprint("Status:"), formatStatus(resp.Status))

	if verbose {
		fmt.Fprintf(p.out, "\n%s:\n", headingStyle.Sprint("Headers"))
		names := make([]string, 0, len(resp.Headers))
		for name := range resp.Headers {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(p.out, "  %s: %s\n", dimStyle.Sprint(name), resp.Headers[name])
		}
	}

	fmt.Fprintf(p.out, "\n%s:\n", headingStyle.Sprint("Body"))

	body, isText := resp.BodyString()
	switch {
	case resp.IsJSON() && isText:
		if root, err := parser.Parse(body); err == nil {
			fmt.Fprintln(p.out, RenderValue(root))
		} else {
			fmt.Fprintln(p.out, body)
		}
	case isText:
		fmt.Fprintln(p.out, body)
	default:
		fmt.Fprintln(p.out, dimStyle.Sprintf("<binary data, %d bytes>", len(resp.Body)))
	}

	fmt.Fprintln(p.out)
}

// Error prints an error message to the error stream.
func (p *Printer) Error(format string, args ...any) {
	fmt.Fprintf(p.err, "%s %s\n", errorStyle.Sprint("Error:"), fmt.Sprintf(format, args...))
}

// Success prints a confirmation message.
func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintf(p.out, "%s %s\n", successStyle.Sprint("✓"), fmt.Sprintf(format, args...))
}

// Info prints an informational message.
func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintf(p.out, "%s %s\n", infoStyle.Sprint("ℹ"), fmt.Sprintf(format, args...))
}

// Println writes a plain line to the output stream.
func (p *Printer) Println(args ...any) {
	fmt.Fprintln(p.out, args...)
}

// Printf writes plain formatted text to the output stream.
func (p *Printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

func formatStatus(code int) string {
	text := strconv.Itoa(code)
	switch {
	case code >= 200 && code < 300:
		return statusOKStyle.Sprint(text)
	case code >= 300 && code < 400:
		return statusRedirectStyle.Sprint(text)
	case code >= 400 && code < 500:
		return statusClientStyle.Sprint(text)
	case code >= 500:
		return statusServerStyle.Sprint(text)
	default:
		return text
	}
}

// RenderValue renders a document tree with two-space indentation and
// type-based styling. Object members are printed in sorted key order so the
// rendering is deterministic.
func RenderValue(v value.Value) string {
	return renderValue(v, 0)
}

func renderValue(v value.Value, indent int) string {
	pad := strings.Repeat("  ", indent)

	switch node := v.(type) {
	case value.Null:
		return nullStyle.Sprint("null")
	case value.Bool:
		return boolStyle.Sprint(strconv.FormatBool(bool(node)))
	case value.Number:
		return numberStyle.Sprint(strconv.FormatFloat(float64(node), 'f', -1, 64))
	case value.String:
		return stringStyle.Sprintf("%q", string(node))
	case value.Array:
		if len(node) == 0 {
			return "[]"
		}
		var b strings.Builder
		b.WriteString("[\n")
		for i, item := range node {
			b.WriteString(pad + "  " + renderValue(item, indent+1))
			if i < len(node)-1 {
				b.WriteString(",")
			}
			b.WriteString("\n")
		}
		b.WriteString(pad + "]")
		return b.String()
	case value.Object:
		if len(node) == 0 {
			return "{}"
		}
		keys := make([]string, 0, len(node))
		for k := range node {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		var b strings.Builder
		b.WriteString("{\n")
		for i, k := range keys {
			b.WriteString(pad + "  " + objectKeyStyle.Sprintf("%q", k) + ": " + renderValue(node[k], indent+1))
			if i < len(keys)-1 {
				b.WriteString(",")
			}
			b.WriteString("\n")
		}
		b.WriteString(pad + "}")
		return b.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
