// Package cmd implements CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"firestige.xyz/tracestat/internal/trace"
)

var validateCmd = &cobra.Command{
	Use:   "validate <trace_file>",
	Short: "Validate a trace file without producing a report",
	Long: `Check a trace file's header and record framing without computing
statistics.

This is useful for pre-checking traces before archiving them or feeding
them to slower tooling.

Examples:
  tracestat validate game.fcpt`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := setup(); err != nil {
			exitWithError("setup failed", err)
		}
		runValidateCommand(args[0])
	},
}

func runValidateCommand(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		exitWithError(fmt.Sprintf("failed to read file %s", path), err)
	}

	dec, err := trace.NewDecoder(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "INVALID: %v\n", err)
		os.Exit(1)
	}

	var records, payloadBytes uint64
	for {
		rec, err := dec.Next()
		if err == io.EOF {
			break
		}
		var trunc *trace.TruncatedError
		if errors.As(err, &trunc) {
			fmt.Fprintf(os.Stderr, "INVALID: %v (after %d intact records)\n", trunc, records)
			os.Exit(1)
		}
		records++
		payloadBytes += uint64(rec.DataLen)
	}

	fmt.Printf("VALID: version %d — %d record(s), %d payload byte(s)\n",
		dec.Header().Version, records, payloadBytes)
}
