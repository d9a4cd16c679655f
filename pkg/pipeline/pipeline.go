// Package pipeline converts a remote Poetry manifest into a requirements file.
//
// # Architecture
//
// A run has four sequential stages:
//
//  1. Fetch: download the manifest text
//  2. Parse: decode dependencies and extras
//  3. Convert: translate each constraint and collect requirements
//  4. Write: emit the requirements file
//
// Every conversion happens before the output file is opened, so a failing
// run never leaves a partial file behind.
//
// # Usage
//
//	runner := pipeline.NewRunner(integrations.NewClient(nil), logger)
//	result, err := runner.Run(ctx, pipeline.Options{
//	    URL:        integrations.DefaultManifestURL,
//	    OutputPath: "requirements.txt",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(len(result.Requirements), "requirements written")
package pipeline

import (
	"time"

	"github.com/matzehuels/pyreqs/pkg/deps"
	errs "github.com/matzehuels/pyreqs/pkg/errors"
	"github.com/matzehuels/pyreqs/pkg/integrations"
)

// DefaultOutputPath is the file written when no output path is given.
const DefaultOutputPath = "requirements.txt"

// Options configures a pipeline run.
type Options struct {
	URL        string // Manifest URL (default: integrations.DefaultManifestURL)
	OutputPath string // Requirements file path, "-" for stdout (default: requirements.txt)
}

// ValidateAndSetDefaults fills zero values with defaults and validates the
// result.
func (o *Options) ValidateAndSetDefaults() error {
	if o.URL == "" {
		o.URL = integrations.DefaultManifestURL
	}
	if o.OutputPath == "" {
		o.OutputPath = DefaultOutputPath
	}
	return errs.ValidateURL(o.URL)
}

// Result describes a completed run.
type Result struct {
	Requirements []deps.Requirement // Written requirements, in output order
	Excluded     []string           // Main-table dependencies left out (runtime, platform-only)
	FromExtras   int                // Requirements contributed only by extras groups
	Unresolved   []string           // Extras members with no usable specifier
	OutputPath   string             // Where the requirements were written

	Stats Stats
}

// Stats holds per-stage timings.
type Stats struct {
	FetchTime   time.Duration
	ConvertTime time.Duration
	WriteTime   time.Duration
}
