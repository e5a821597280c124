// Package analyzer drives one analysis run: read the trace, decode and
// fold records, and assemble the report input.
package analyzer

import (
	"errors"
	"fmt"
	"io"
	"os"

	"firestige.xyz/tracestat/internal/core"
	"firestige.xyz/tracestat/internal/log"
	"firestige.xyz/tracestat/internal/names"
	"firestige.xyz/tracestat/internal/report"
	"firestige.xyz/tracestat/internal/stats"
	"firestige.xyz/tracestat/internal/trace"
)

// Run analyzes tracePath against the optional name table at namesPath
// (empty string means no table). Fatal conditions — unreadable trace,
// short file, bad magic — return an error and no result. Everything
// else is logged as a warning and analysis proceeds.
func Run(tracePath, namesPath string) (*report.Result, error) {
	logger := log.GetLogger()

	table := names.Empty()
	if namesPath != "" {
		var err error
		table, err = names.Load(namesPath)
		if err != nil {
			logger.WithError(err).Warn("Name table unavailable, all types will be labeled synthetically")
		} else {
			logger.Infof("Loaded %d packet type definitions from %s", table.Len(), namesPath)
		}
	}

	data, err := os.ReadFile(tracePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read trace file: %w", err)
	}

	dec, err := trace.NewDecoder(data)
	if err != nil {
		return nil, err
	}

	hdr := dec.Header()
	if hdr.Version != core.TraceVersion {
		logger.Warnf("Trace version %d (expected %d), decoding with the v%d layout",
			hdr.Version, core.TraceVersion, core.TraceVersion)
	}

	agg := stats.NewAggregate()
	for {
		rec, err := dec.Next()
		if err == io.EOF {
			break
		}
		var trunc *trace.TruncatedError
		if errors.As(err, &trunc) {
			logger.Warnf("Truncated record at offset %d, expected %d bytes but only %d remain",
				trunc.Offset, trunc.Declared, trunc.Remaining)
			break
		}
		agg.Add(rec)
	}

	if agg.OddDirections > 0 {
		logger.Warnf("%d records carry a direction byte other than 0/1 (classified as recv)",
			agg.OddDirections)
	}

	return &report.Result{
		TracePath: tracePath,
		FileSize:  int64(len(data)),
		Header:    hdr,
		Stats:     agg,
		Names:     table,
		Coverage:  agg.Coverage(table),
	}, nil
}
