package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lememta/sage-lang/internal/ast"
	"github.com/lememta/sage-lang/internal/diag"
	"github.com/lememta/sage-lang/internal/lexer"
	"github.com/lememta/sage-lang/internal/parser"
	"github.com/lememta/sage-lang/internal/project"
	"github.com/lememta/sage-lang/internal/source"
	"github.com/lememta/sage-lang/internal/validate"
)

// SourceExt is the notation file extension.
const SourceExt = ".sage"

// CheckFileResult is the per-file outcome of CheckDir.
type CheckFileResult struct {
	Path   string
	FileID source.FileID
	Bag    *diag.Bag
	OK     bool
	Cached bool
}

// CheckDirOptions configure a directory check.
type CheckDirOptions struct {
	MaxDiagnostics int
	// Jobs bounds worker parallelism; <=0 means GOMAXPROCS.
	Jobs int
	// Progress receives per-file events; may be nil.
	Progress ProgressSink
	// Cache skips re-checking files whose content hash is cached; may
	// be nil.
	Cache *DiskCache
}

// ListSourceFiles returns the sorted list of *.sage files under dir.
func ListSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Deterministic order.
	sort.Strings(files)
	return files, nil
}

// CheckDir runs the full pipeline over every *.sage file under dir in
// parallel. Per-file results come back in the sorted file order; a
// file that fails to load gets an I/O diagnostic, not an error return.
func CheckDir(ctx context.Context, dir string, opts CheckDirOptions) (*source.FileSet, []CheckFileResult, error) {
	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return source.NewFileSetWithBase(dir), nil, nil
	}

	// Preload everything; FileSet mutation is not concurrency-safe so
	// loading stays on the caller's goroutine.
	fileSet := source.NewFileSetWithBase(dir)
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	for _, path := range files {
		emit(opts.Progress, Event{File: path, Stage: StageTokenize, Status: StatusQueued})
	}

	// Indices are unique per goroutine, no mutex needed.
	results := make([]CheckFileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			started := time.Now()
			results[i] = checkOne(fileSet, path, fileIDs[path], loadErrors[path], opts)

			status := StatusDone
			if !results[i].OK {
				status = StatusError
			}
			emit(opts.Progress, Event{
				File:    path,
				Stage:   StageValidate,
				Status:  status,
				Elapsed: time.Since(started),
			})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

func checkOne(fileSet *source.FileSet, path string, fileID source.FileID, loadErr error, opts CheckDirOptions) CheckFileResult {
	if loadErr != nil {
		bag := diag.NewBag(opts.MaxDiagnostics)
		bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.IOError,
			Message:  "failed to load file: " + loadErr.Error(),
			Primary:  source.Span{},
		})
		return CheckFileResult{Path: path, Bag: bag, OK: false}
	}

	file := fileSet.Get(fileID)
	hash := project.Digest(file.Hash)

	if opts.Cache != nil {
		var payload DiskPayload
		if hit, err := opts.Cache.Get(hash, &payload); err == nil && hit {
			return CheckFileResult{
				Path:   path,
				FileID: fileID,
				Bag:    bagFromPayload(&payload, fileID, opts.MaxDiagnostics),
				OK:     payload.OK,
				Cached: true,
			}
		}
	}

	bag := diag.NewBag(opts.MaxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}

	emit(opts.Progress, Event{File: path, Stage: StageTokenize, Status: StatusWorking})
	tokens := lexer.Tokenize(file, lexer.Options{Reporter: reporter})

	emit(opts.Progress, Event{File: path, Stage: StageParse, Status: StatusWorking})
	builder := ast.NewBuilder(ast.Hints{}, nil)
	parsed := parser.ParseTokens(file, tokens, builder, parser.Options{Reporter: reporter})

	emit(opts.Progress, Event{File: path, Stage: StageValidate, Status: StatusWorking})
	validate.Check(builder, parsed.Doc, validate.Options{Reporter: reporter})

	bag.Sort()
	ok := !bag.HasErrors()

	if opts.Cache != nil {
		// Best effort; a failed write never fails the check.
		_ = opts.Cache.Put(hash, payloadFromBag(path, hash, ok, bag))
	}

	return CheckFileResult{Path: path, FileID: fileID, Bag: bag, OK: ok}
}
