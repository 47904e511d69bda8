package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lememta/sage-lang/internal/diagfmt"
	"github.com/lememta/sage-lang/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.sage",
	Short: "Parse a sage source file",
	Long:  `Parse builds the document structure for a sage source file and prints it`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	maxDiagnostics, err := maxDiagnosticsFlag(cmd)
	if err != nil {
		return err
	}

	result, err := driver.Parse(filePath, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	if result.Bag.Len() > 0 && !quietFlag(cmd) {
		result.Bag.Sort()
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, stderrPrettyOpts(cmd))
	}

	switch format {
	case "pretty":
		return diagfmt.FormatDocumentPretty(os.Stdout, result.Builder, result.Doc, result.FileSet)
	case "json":
		return diagfmt.FormatDocumentJSON(os.Stdout, result.Builder, result.Doc)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
