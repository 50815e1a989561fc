package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"saffron/internal/lexer"
	"saffron/internal/output"
	"saffron/internal/parser"
	"saffron/internal/token"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] FILE",
	Short: "Parse a document with the relaxed dialect",
	Long:  `Parse reads a document (or stdin when FILE is -), runs it through the relaxed parser, and pretty-prints the result. With --format tokens it shows the token stream instead`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|tokens)")
}

func runParse(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	var content []byte
	if args[0] == "-" {
		content, err = io.ReadAll(os.Stdin)
	} else {
		content, err = os.ReadFile(args[0])
	}
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "pretty":
		root, err := parser.Parse(string(content))
		if err != nil {
			return err
		}
		a.printer.Println(output.RenderValue(root))
		return nil
	case "tokens":
		stream, err := lexer.New(string(content)).ScanTokens()
		if err != nil {
			return err
		}
		for _, tok := range stream.Tokens() {
			a.printer.Printf("%3d:%-3d %s\n", tok.Line, tok.Column, tok)
			if tok.Kind == token.EOF {
				break
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
