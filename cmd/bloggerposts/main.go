// Package main provides the entry point for the bloggerposts CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/gorewood/bloggerposts/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Default paths, relative to the working directory.
const (
	defaultInputFilename           = "input/blogger_posts.json"
	defaultOutputFilename          = "output/blogger_posts_info.csv"
	defaultOutputDocumentDirectory = "output/blogger_posts_docs"
)

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	err := execute(context.Background(), newRootCmd())
	return output.GetExitCode(err)
}

// execute runs cmd through fang with the CLI's version and error handling.
func execute(ctx context.Context, cmd *cobra.Command) error {
	return fang.Execute(ctx, cmd,
		fang.WithVersion(buildVersion()),
		fang.WithErrorHandler(handleError),
	)
}

// handleError renders errors cobra itself produced (bad flags, stray args).
// Pipeline errors are already reported by the command.
func handleError(w io.Writer, styles fang.Styles, err error) {
	if output.KindOf(err) != "" {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

// newRootCmd creates the root command for the bloggerposts CLI.
func newRootCmd() *cobra.Command {
	var opts convertOptions

	cmd := &cobra.Command{
		Use:   "bloggerposts",
		Short: "Extract post information from a Blogger JSON export",
		Long: `bloggerposts - Extract important post information from a Blogger JSON posts file.

Reads a Blogger Posts API export and produces:
  - A CSV summary with one row per post, sorted by publication time
  - One HTML file per post holding its raw content, named <unix timestamp>.html

Any unreadable input, malformed post or failed write aborts the run with exit code 1.`,
		Example: `  bloggerposts
  bloggerposts --input_filename export.json --output_filename out/posts.csv
  bloggerposts --output_document_directory out/html`,
		Version:       buildVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConvert(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.inputFilename, "input_filename", defaultInputFilename,
		"The input JSON file containing the Blogger posts in JSON format.")
	cmd.Flags().StringVar(&opts.outputFilename, "output_filename", defaultOutputFilename,
		"The output CSV file containing all info from the posts.")
	cmd.Flags().StringVar(&opts.outputDocumentDirectory, "output_document_directory", defaultOutputDocumentDirectory,
		"The output directory to store HTML posts.")

	return cmd
}
