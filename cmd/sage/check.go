package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/lememta/sage-lang/internal/diagfmt"
	"github.com/lememta/sage-lang/internal/driver"
	"github.com/lememta/sage-lang/internal/project"
	"github.com/lememta/sage-lang/internal/source"
	"github.com/lememta/sage-lang/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [file.sage|dir]",
	Short: "Check sage source files",
	Long: `Check runs the full pipeline (tokenize, parse, validate) over a file
or over every *.sage file under a directory. Without an argument it
checks the paths the project manifest lists, or the current directory.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runCheck,
}

func init() {
	checkCmd.Flags().String("ui", "auto", "interactive progress (auto|on|off)")
	checkCmd.Flags().Int("jobs", 0, "parallel workers (0 = GOMAXPROCS)")
	checkCmd.Flags().Bool("no-cache", false, "bypass the check result cache")
}

func runCheck(cmd *cobra.Command, args []string) error {
	maxDiagnostics, err := maxDiagnosticsFlag(cmd)
	if err != nil {
		return err
	}

	targets, err := checkTargets(args)
	if err != nil {
		return err
	}

	failed := 0
	for _, target := range targets {
		st, err := os.Stat(target)
		if err != nil {
			return err
		}
		if st.IsDir() {
			n, err := checkDir(cmd, target, maxDiagnostics)
			if err != nil {
				return err
			}
			failed += n
		} else {
			result, err := driver.Check(target, maxDiagnostics)
			if err != nil {
				return err
			}
			if result.Bag.Len() > 0 && !quietFlag(cmd) {
				diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, stderrPrettyOpts(cmd))
			}
			if !result.OK {
				failed++
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("check failed: %d file(s) with errors", failed)
	}
	return nil
}

// checkTargets resolves the paths to check: the explicit argument, the
// manifest's [check] paths when run inside a project, or ".".
func checkTargets(args []string) ([]string, error) {
	if len(args) == 1 {
		return []string{args[0]}, nil
	}
	manifestPath, ok, err := project.FindManifest(".")
	if err != nil {
		return nil, err
	}
	if ok {
		manifest, err := project.LoadManifest(manifestPath)
		if err != nil {
			return nil, err
		}
		if len(manifest.Paths) > 0 {
			root := filepath.Dir(manifestPath)
			targets := make([]string, 0, len(manifest.Paths))
			for _, p := range manifest.Paths {
				targets = append(targets, filepath.Join(root, p))
			}
			return targets, nil
		}
		return []string{filepath.Dir(manifestPath)}, nil
	}
	return []string{"."}, nil
}

func checkDir(cmd *cobra.Command, dir string, maxDiagnostics int) (failed int, err error) {
	jobs, _ := cmd.Flags().GetInt("jobs")
	noCache, _ := cmd.Flags().GetBool("no-cache")

	var cache *driver.DiskCache
	if !noCache {
		// A broken cache dir degrades to uncached checks.
		cache, _ = driver.OpenDiskCache("sage")
	}

	opts := driver.CheckDirOptions{
		MaxDiagnostics: maxDiagnostics,
		Jobs:           jobs,
		Cache:          cache,
	}

	uiFlag, _ := cmd.Flags().GetString("ui")
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return 0, err
	}

	var fileSet *source.FileSet
	var results []driver.CheckFileResult
	if shouldUseTUI(mode) {
		fileSet, results, err = checkDirWithUI(cmd.Context(), dir, opts)
	} else {
		fileSet, results, err = driver.CheckDir(cmd.Context(), dir, opts)
	}
	if err != nil {
		return 0, err
	}

	for _, res := range results {
		if res.Bag != nil && res.Bag.Len() > 0 && !quietFlag(cmd) {
			diagfmt.Pretty(os.Stderr, res.Bag, fileSet, stderrPrettyOpts(cmd))
		}
		if !res.OK {
			failed++
		}
	}

	if !quietFlag(cmd) {
		fmt.Fprintf(os.Stdout, "checked %d file(s), %d with errors\n", len(results), failed)
	}
	return failed, nil
}

type checkOutcome struct {
	fileSet *source.FileSet
	results []driver.CheckFileResult
	err     error
}

func checkDirWithUI(ctx context.Context, dir string, opts driver.CheckDirOptions) (*source.FileSet, []driver.CheckFileResult, error) {
	files, err := driver.ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	events := make(chan driver.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		fileSet, results, err := driver.CheckDir(ctx, dir, optsCopy)
		outcomeCh <- checkOutcome{fileSet: fileSet, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("checking "+dir, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fileSet, outcome.results, uiErr
	}
	return outcome.fileSet, outcome.results, outcome.err
}
