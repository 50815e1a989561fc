package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"saffron/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "saffron",
	Short: "A fast HTTP client for the terminal",
	Long:  `Saffron sends HTTP requests, organizes them into collections, and keeps a history of everything it sent`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(collectionCmd)
	rootCmd.AddCommand(envCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "", "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
