// Package report formats aggregate statistics for output. Renderers are
// pure functions of their inputs; all decoding decisions happen upstream.
package report

import (
	"fmt"
	"io"
	"strings"

	"firestige.xyz/tracestat/internal/core"
	"firestige.xyz/tracestat/internal/names"
	"firestige.xyz/tracestat/internal/stats"
)

// Result bundles everything a renderer needs for one analysis run.
type Result struct {
	TracePath string
	FileSize  int64
	Header    core.Header
	Stats     *stats.Aggregate
	Names     *names.Table
	Coverage  *stats.Coverage
}

const lineWidth = 78

// WriteText renders the aligned-text report.
func WriteText(w io.Writer, res *Result) error {
	banner := strings.Repeat("=", lineWidth)
	rule := strings.Repeat("-", lineWidth)
	agg := res.Stats

	fmt.Fprintln(w, banner)
	fmt.Fprintln(w, "PACKET TRACE ANALYSIS")
	fmt.Fprintln(w, banner)
	fmt.Fprintf(w, "Trace file: %s\n", res.TracePath)
	fmt.Fprintf(w, "File size:  %d bytes\n", res.FileSize)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Total packets:     %10d\n", agg.TotalPackets)
	fmt.Fprintf(w, "Total data bytes:  %10d\n", agg.TotalBytes)
	fmt.Fprintf(w, "  Sent:            %10d\n", agg.SendCount)
	fmt.Fprintf(w, "  Received:        %10d\n", agg.RecvCount)
	fmt.Fprintln(w)

	if agg.HasTimestamps() {
		fmt.Fprintf(w, "Trace duration:    %10.2f seconds\n", agg.Duration())
		if pps, ok := agg.PacketsPerSecond(); ok {
			fmt.Fprintf(w, "Packets/second:    %10.1f\n", pps)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Unique connections: %d\n", len(agg.ByConn))
	for _, connID := range agg.Connections() {
		fmt.Fprintf(w, "  Connection %d: %d packets\n", connID, agg.ByConn[connID])
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%5s  %-40s %8s %10s %6s %6s %6s\n",
		"Type", "Name", "Count", "Bytes", "Avg", "Send", "Recv")
	fmt.Fprintln(w, rule)

	for _, pktType := range agg.Types() {
		ts := agg.ByType[pktType]
		fmt.Fprintf(w, "%5d  %-40s %8d %10d %6d %6d %6d\n",
			pktType, res.Names.Name(pktType), ts.Count, ts.Bytes, ts.AvgBytes(), ts.Send, ts.Recv)
	}

	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%5s  %-40s %8d %10d\n", "", "TOTAL", agg.TotalPackets, agg.TotalBytes)
	fmt.Fprintln(w)

	if res.Coverage != nil {
		writeCoverage(w, res, banner)
	}

	fmt.Fprintln(w, banner)
	return nil
}

func writeCoverage(w io.Writer, res *Result, banner string) {
	cov := res.Coverage

	fmt.Fprintln(w, banner)
	fmt.Fprintln(w, "PACKET TYPE COVERAGE")
	fmt.Fprintln(w, banner)
	fmt.Fprintf(w, "Defined packet types:  %d\n", cov.Defined)
	fmt.Fprintf(w, "Types seen in trace:   %d\n", cov.Seen)
	fmt.Fprintf(w, "Types NOT seen:        %d\n", len(cov.NotSeen))
	if len(cov.UnknownSeen) > 0 {
		fmt.Fprintf(w, "Unknown types seen:    %d\n", len(cov.UnknownSeen))
	}
	fmt.Fprintf(w, "Coverage:              %.1f%%\n", cov.Percent())
	fmt.Fprintln(w)

	if len(cov.NotSeen) > 0 {
		fmt.Fprintln(w, "Packet types NOT seen in trace:")
		for _, pktType := range cov.NotSeen {
			fmt.Fprintf(w, "  %5d  %s\n", pktType, res.Names.Name(pktType))
		}
		fmt.Fprintln(w)
	}
}
