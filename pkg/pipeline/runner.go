package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pyreqs/pkg/deps/python"
	errs "github.com/matzehuels/pyreqs/pkg/errors"
	"github.com/matzehuels/pyreqs/pkg/integrations"
	"github.com/matzehuels/pyreqs/pkg/observability"
)

// Fetcher retrieves a remote document as text.
// [*integrations.Client] is the production implementation.
type Fetcher interface {
	GetText(ctx context.Context, url string) (string, error)
}

// Runner executes the fetch → parse → convert → write pipeline.
type Runner struct {
	Fetcher Fetcher
	Logger  *log.Logger
}

// NewRunner creates a runner that fetches through f.
// If logger is nil, log.Default() is used.
func NewRunner(f Fetcher, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Fetcher: f, Logger: logger}
}

// Run executes the complete pipeline. Nothing is written unless every
// dependency converted successfully.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	result := &Result{OutputPath: opts.OutputPath}
	hooks := observability.Pipeline()

	// Stage 1+2: Fetch and parse
	fetchStart := time.Now()
	p, err := r.Fetch(ctx, opts.URL)
	if err != nil {
		return nil, err
	}
	result.Stats.FetchTime = time.Since(fetchStart)

	r.Logger.Info("fetched manifest",
		"url", opts.URL,
		"dependencies", len(p.Dependencies),
		"extras", len(p.Extras),
		"duration", result.Stats.FetchTime)

	// Stage 3: Convert
	convertStart := time.Now()
	c, err := Collect(p)
	if err != nil {
		hooks.OnConvertComplete(ctx, 0, time.Since(convertStart), err)
		return nil, err
	}
	result.Requirements = c.Requirements.List()
	result.Excluded = c.Excluded
	result.FromExtras = c.FromExtras
	result.Unresolved = c.Unresolved
	result.Stats.ConvertTime = time.Since(convertStart)
	hooks.OnConvertComplete(ctx, len(result.Requirements), result.Stats.ConvertTime, nil)

	for _, name := range c.Excluded {
		r.Logger.Debug("excluded dependency", "name", name)
	}
	for _, name := range c.Unresolved {
		r.Logger.Debug("skipped extras member", "name", name)
	}
	for _, req := range result.Requirements {
		r.Logger.Debug("converted", "name", req.Name, "constraint", req.Constraint)
	}
	r.Logger.Info("converted constraints",
		"requirements", len(result.Requirements),
		"from_extras", c.FromExtras,
		"excluded", len(c.Excluded),
		"duration", result.Stats.ConvertTime)

	// Stage 4: Write
	writeStart := time.Now()
	err = python.WriteRequirementsFile(opts.OutputPath, result.Requirements)
	result.Stats.WriteTime = time.Since(writeStart)
	hooks.OnWriteComplete(ctx, opts.OutputPath, len(result.Requirements), result.Stats.WriteTime, err)
	if err != nil {
		return nil, err
	}

	r.Logger.Info("wrote requirements",
		"path", opts.OutputPath,
		"duration", result.Stats.WriteTime)

	return result, nil
}

// Fetch downloads and parses the manifest at url.
func (r *Runner) Fetch(ctx context.Context, url string) (*python.Pyproject, error) {
	r.Logger.Debug("fetching manifest", "url", url)

	hooks := observability.Pipeline()
	hooks.OnFetchStart(ctx, url)
	start := time.Now()
	text, err := r.Fetcher.GetText(ctx, url)
	hooks.OnFetchComplete(ctx, url, len(text), time.Since(start), err)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return nil, err
		case errors.Is(err, integrations.ErrDecode):
			return nil, errs.Wrap(errs.ErrCodeInvalidManifest, err, "fetch %s", url)
		case errors.Is(err, integrations.ErrNotFound):
			return nil, errs.Wrap(errs.ErrCodeNotFound, err, "fetch %s", url)
		default:
			return nil, errs.Wrap(errs.ErrCodeNetwork, err, "fetch %s", url)
		}
	}
	return python.ParsePyproject(text)
}
