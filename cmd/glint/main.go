package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╔═╗┬  ┬┌┐┌┌┬┐
  ║ ╦│  ││││ │
  ╚═╝┴─┘┴┘└┘ ┴
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "glint",
		Short: "A reactive UI runtime for Go",
		Long: `Glint is a fine-grained reactive UI runtime for Go.

Build interactive interfaces from signals, effects, and plain
element constructors. The runtime tracks dependencies implicitly
as your components read state, and re-renders exactly the DOM
regions that depend on what changed.

  • Signals, memos, and effects with implicit tracking
  • Declarative element builders with dynamic children
  • Server-driven sessions over WebSocket
  • In-memory DOM for fast tests`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		initCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

// printBanner prints the Glint ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}
