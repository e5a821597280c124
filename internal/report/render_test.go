package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"firestige.xyz/tracestat/internal/core"
	"firestige.xyz/tracestat/internal/names"
	"firestige.xyz/tracestat/internal/stats"
)

func sampleResult(t *testing.T, defs string) *Result {
	t.Helper()

	table := names.Parse(strings.NewReader(defs))

	agg := stats.NewAggregate()
	agg.Add(core.PacketRecord{Type: 5, DataLen: 3, ConnID: 1, Direction: core.DirectionSend, TimestampUsec: 1000})
	agg.Add(core.PacketRecord{Type: 5, DataLen: 0, ConnID: 2, Direction: core.DirectionRecv, TimestampUsec: 2000})
	agg.Add(core.PacketRecord{Type: 9, DataLen: 10, ConnID: 1, Direction: core.DirectionRecv, TimestampUsec: 3000})

	return &Result{
		TracePath: "game.fcpt",
		FileSize:  int64(core.HeaderSize + 3*core.RecordHeaderSize + 13),
		Header:    core.Header{Magic: core.TraceMagic, Version: core.TraceVersion},
		Stats:     agg,
		Names:     table,
		Coverage:  agg.Coverage(table),
	}
}

func TestWriteTextSummaryAndTypes(t *testing.T) {
	res := sampleResult(t, "PACKET_HELLO = 5;\nPACKET_GOODBYE = 6;\n")

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, res))
	out := buf.String()

	assert.Contains(t, out, "PACKET TRACE ANALYSIS")
	assert.Contains(t, out, "Trace file: game.fcpt")
	assert.Contains(t, out, fmt.Sprintf("Total packets:     %10d", 3))
	assert.Contains(t, out, fmt.Sprintf("Total data bytes:  %10d", 13))
	assert.Contains(t, out, "Unique connections: 2")
	assert.Contains(t, out, "Connection 1: 2 packets")
	assert.Contains(t, out, "Connection 2: 1 packets")
	assert.Contains(t, out, "PACKET_HELLO")
	assert.Contains(t, out, "UNKNOWN_9", "undefined types get a synthesized label")
	assert.Contains(t, out, "TOTAL")

	// Connection and type sections are sorted ascending.
	assert.Less(t, strings.Index(out, "Connection 1:"), strings.Index(out, "Connection 2:"))
	assert.Less(t, strings.Index(out, "PACKET_HELLO"), strings.Index(out, "UNKNOWN_9"))
}

func TestWriteTextCoverageSection(t *testing.T) {
	res := sampleResult(t, "PACKET_HELLO = 5;\nPACKET_GOODBYE = 6;\n")

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, res))
	out := buf.String()

	assert.Contains(t, out, "PACKET TYPE COVERAGE")
	assert.Contains(t, out, "Defined packet types:  2")
	assert.Contains(t, out, "Types seen in trace:   1")
	assert.Contains(t, out, "Types NOT seen:        1")
	assert.Contains(t, out, "Unknown types seen:    1")
	assert.Contains(t, out, "Coverage:              50.0%")
	assert.Contains(t, out, "PACKET_GOODBYE", "not-seen types are listed by name")
}

func TestWriteTextWithoutNameTable(t *testing.T) {
	res := sampleResult(t, "")
	res.Coverage = res.Stats.Coverage(res.Names)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, res))
	out := buf.String()

	assert.NotContains(t, out, "PACKET TYPE COVERAGE")
	assert.Contains(t, out, "UNKNOWN_5")
}

func TestWriteTextEmptyTraceOmitsDuration(t *testing.T) {
	res := &Result{
		TracePath: "empty.fcpt",
		FileSize:  core.HeaderSize,
		Header:    core.Header{Magic: core.TraceMagic, Version: core.TraceVersion},
		Stats:     stats.NewAggregate(),
		Names:     names.Parse(strings.NewReader("")),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, res))
	out := buf.String()

	assert.Contains(t, out, fmt.Sprintf("Total packets:     %10d", 0))
	assert.NotContains(t, out, "Trace duration")
	assert.NotContains(t, out, "Packets/second")
}

func TestWriteJSON(t *testing.T) {
	res := sampleResult(t, "PACKET_HELLO = 5;\nPACKET_GOODBYE = 6;\n")

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, res))

	var doc document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, uint64(3), doc.Summary.TotalPackets)
	assert.Equal(t, uint64(13), doc.Summary.TotalBytes)
	assert.Equal(t, uint64(1), doc.Summary.SendCount)
	assert.Equal(t, uint64(2), doc.Summary.RecvCount)
	require.NotNil(t, doc.Summary.DurationSec)
	assert.InDelta(t, 0.002, *doc.Summary.DurationSec, 1e-9)

	require.Len(t, doc.Types, 2)
	assert.Equal(t, "PACKET_HELLO", doc.Types[0].Name)
	assert.Equal(t, "UNKNOWN_9", doc.Types[1].Name)

	require.NotNil(t, doc.Coverage)
	assert.Equal(t, []uint16{6}, doc.Coverage.NotSeen)
	assert.InDelta(t, 50.0, doc.Coverage.Percent, 1e-9)
}

func TestWriteYAML(t *testing.T) {
	res := sampleResult(t, "PACKET_HELLO = 5;\n")

	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, res))

	var doc document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, uint64(3), doc.Summary.TotalPackets)
	require.Len(t, doc.Connections, 2)
	assert.Equal(t, uint32(1), doc.Connections[0].ConnID)
	assert.Equal(t, uint64(2), doc.Connections[0].Packets)
}
