// Package cli implements the pyreqs command-line interface.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pyreqs/pkg/buildinfo"
	"github.com/matzehuels/pyreqs/pkg/deps/python"
	"github.com/matzehuels/pyreqs/pkg/integrations"
	"github.com/matzehuels/pyreqs/pkg/pipeline"
)

// appName is the application name used for display.
const appName = "pyreqs"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Out    io.Writer // status output

	manifestURL string
	fetcher     pipeline.Fetcher
}

// New creates a new CLI instance logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:      newLogger(w, level),
		Out:         os.Stdout,
		manifestURL: integrations.DefaultManifestURL,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	setLevel(c.Logger, level)
}

// rootOpts holds the command-line flags of the root command.
type rootOpts struct {
	output  string // requirements file path
	verbose bool   // debug logging
}

// RootCommand creates the pyreqs command. It takes no arguments.
func (c *CLI) RootCommand() *cobra.Command {
	opts := rootOpts{output: pipeline.DefaultOutputPath}

	root := &cobra.Command{
		Use:   appName,
		Short: "Convert a Poetry pyproject.toml into requirements.txt",
		Long: `pyreqs downloads the langflow pyproject.toml, converts the Poetry version
constraints of its dependencies and extras into pip specifiers, and writes
one requirement per line.

Examples:
  pyreqs                        # writes requirements.txt
  pyreqs --out deps/base.txt    # custom output path
  pyreqs --out -                # print to stdout`,
		Version:       buildinfo.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.generate(cmd.Context(), opts.output)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.Flags().StringVar(&opts.output, "out", opts.output, `path to the output requirements file ("-" for stdout)`)
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.CompletionOptions.DisableDefaultCmd = true

	return root
}

// generate runs the pipeline and reports the outcome.
func (c *CLI) generate(ctx context.Context, output string) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	result, err := pipeline.NewRunner(c.newFetcher(), logger).Run(ctx, pipeline.Options{
		URL:        c.manifestURL,
		OutputPath: output,
	})
	if err != nil {
		return err
	}
	prog.done("generated requirements", "count", len(result.Requirements), "output", output)

	if output == python.StdoutPath {
		return nil
	}
	printSuccess(c.Out, "Wrote %d requirements", len(result.Requirements))
	printStats(c.Out, result.FromExtras, len(result.Excluded), len(result.Unresolved))
	printFile(c.Out, output)
	return nil
}

func (c *CLI) newFetcher() pipeline.Fetcher {
	if c.fetcher != nil {
		return c.fetcher
	}
	return integrations.NewClient(map[string]string{"User-Agent": buildinfo.UserAgent()})
}
