package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lememta/sage-lang/internal/diagfmt"
)

// useColor resolves the persistent --color flag against the stream the
// output actually goes to.
func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	switch strings.TrimSpace(strings.ToLower(colorFlag)) {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(f)
	}
}

func maxDiagnosticsFlag(cmd *cobra.Command) (int, error) {
	n, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return 0, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	return n, nil
}

func quietFlag(cmd *cobra.Command) bool {
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	return quiet
}

// stderrPrettyOpts is the diagnostics shape shared by every
// subcommand: notes on, color per --color against stderr.
func stderrPrettyOpts(cmd *cobra.Command) diagfmt.PrettyOpts {
	return diagfmt.PrettyOpts{
		Color:     useColor(cmd, os.Stderr),
		ShowNotes: true,
	}
}
