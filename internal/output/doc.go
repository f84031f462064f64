// Package output provides error classification and user-facing output for
// the bloggerposts CLI.
//
// # Printer
//
// The Printer writes the success summary to stdout and diagnostics to stderr,
// styling both with lipgloss when the destination is a terminal:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), output.IsTTY(cmd.OutOrStdout())).
//		WithStderr(cmd.ErrOrStderr())
//
//	printer.Success("Process finished (number of posts extracted: %d).", n)
//	printer.Error(err) // "Error: ..." on stderr
//
// # Exit Codes
//
//	output.ExitSuccess // 0: every post extracted and written
//	output.ExitFailure // 1: any failure; the run is aborted
//
// # Error Kinds
//
// Every failure is fatal, but errors record which stage produced them:
//
//	output.NewInputError("failed to read input file in.json", err)  // KindInput
//	output.NewRecordError(`items[2]: missing field "updated"`, nil) // KindRecord
//	output.NewOutputError("failed to write file out.csv", err)      // KindOutput
//
// The message names the offending file or record; Error() appends the cause.
package output
