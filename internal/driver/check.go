package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"lace/internal/diag"
	"lace/internal/source"
)

// CheckOptions configures a batch check run.
type CheckOptions struct {
	Kind           Kind
	MaxDiagnostics int
	// Jobs bounds parallelism; 0 means GOMAXPROCS.
	Jobs int
	// Cache may be nil to disable result caching.
	Cache *DiskCache
}

// FileResult is one file's outcome. Err is set only for I/O failures;
// syntax problems land in Bag.
type FileResult struct {
	Path      string
	FileSet   *source.FileSet
	Bag       *diag.Bag
	OK        bool
	FromCache bool
	Err       error
}

// Check parses every file, in parallel, reusing cached results for
// files whose content has not changed. Results come back in input
// order.
func Check(ctx context.Context, files []string, opts CheckOptions) ([]FileResult, error) {
	results := make([]FileResult, len(files))
	if len(files) == 0 {
		return results, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = checkOne(path, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func checkOne(path string, opts CheckOptions) FileResult {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return FileResult{Path: path, Err: err}
	}
	file := fs.Get(fileID)

	if opts.Cache != nil {
		var payload CheckPayload
		// Cache read failures just force a re-parse.
		if hit, _ := opts.Cache.Get(file.Hash, &payload); hit && payload.Kind == uint8(opts.Kind) {
			bag := bagFromPayload(fileID, &payload, opts.MaxDiagnostics)
			return FileResult{
				Path:      path,
				FileSet:   fs,
				Bag:       bag,
				OK:        payload.Clean,
				FromCache: true,
			}
		}
	}

	res := parseFile(fs, fileID, opts.Kind, opts.MaxDiagnostics)
	res.Bag.Sort()

	if opts.Cache != nil {
		// A failed write costs the next run a re-parse, nothing more.
		_ = opts.Cache.Put(file.Hash, payloadFromBag(path, file.Hash, opts.Kind, res.Bag))
	}

	return FileResult{
		Path:    path,
		FileSet: fs,
		Bag:     res.Bag,
		OK:      res.OK,
	}
}
