package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/bloggerposts/internal/blogger"
	"github.com/gorewood/bloggerposts/internal/export"
	"github.com/gorewood/bloggerposts/internal/extract"
	"github.com/gorewood/bloggerposts/internal/output"
)

// convertOptions holds the resolved flag values for one run.
type convertOptions struct {
	inputFilename           string
	outputFilename          string
	outputDocumentDirectory string
}

// runConvert executes the whole pipeline and reports the outcome.
func runConvert(cmd *cobra.Command, opts convertOptions) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), output.IsTTY(cmd.OutOrStdout())).
		WithStderr(cmd.ErrOrStderr())

	count, err := convert(opts)
	if err != nil {
		printer.Error(err)
		return err
	}

	printer.Success("Process finished (number of posts extracted: %d). Check out your file at %s!",
		count, opts.outputFilename)
	return nil
}

// convert loads and extracts every post before touching the output paths,
// so a bad record leaves nothing behind. It returns the number of posts written.
func convert(opts convertOptions) (int, error) {
	posts, err := blogger.Load(opts.inputFilename)
	if err != nil {
		return 0, err
	}

	result, err := extract.Posts(posts)
	if err != nil {
		return 0, err
	}

	if err := export.EnsureParentDir(opts.outputFilename); err != nil {
		return 0, err
	}
	if err := export.EnsureDir(opts.outputDocumentDirectory); err != nil {
		return 0, err
	}

	if err := export.WriteCSV(result.Summaries, opts.outputFilename); err != nil {
		return 0, err
	}
	if err := export.WriteDocuments(result.Documents, opts.outputDocumentDirectory); err != nil {
		return 0, err
	}

	return len(result.Summaries), nil
}
