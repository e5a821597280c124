package report

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

// document is the machine-readable view of a Result. One shape serves
// both encoders.
type document struct {
	TraceFile string  `json:"trace_file" yaml:"trace_file"`
	FileSize  int64   `json:"file_size" yaml:"file_size"`
	Version   uint32  `json:"trace_version" yaml:"trace_version"`
	Summary   summary `json:"summary" yaml:"summary"`

	Connections []connEntry    `json:"connections" yaml:"connections"`
	Types       []typeEntry    `json:"types" yaml:"types"`
	Coverage    *coverageEntry `json:"coverage,omitempty" yaml:"coverage,omitempty"`
}

type summary struct {
	TotalPackets uint64   `json:"total_packets" yaml:"total_packets"`
	TotalBytes   uint64   `json:"total_data_bytes" yaml:"total_data_bytes"`
	SendCount    uint64   `json:"send_count" yaml:"send_count"`
	RecvCount    uint64   `json:"recv_count" yaml:"recv_count"`
	DurationSec  *float64 `json:"duration_sec,omitempty" yaml:"duration_sec,omitempty"`
	PacketsPerS  *float64 `json:"packets_per_second,omitempty" yaml:"packets_per_second,omitempty"`
}

type connEntry struct {
	ConnID  uint32 `json:"connection_id" yaml:"connection_id"`
	Packets uint64 `json:"packets" yaml:"packets"`
}

type typeEntry struct {
	Type  uint16 `json:"type" yaml:"type"`
	Name  string `json:"name" yaml:"name"`
	Count uint64 `json:"count" yaml:"count"`
	Bytes uint64 `json:"bytes" yaml:"bytes"`
	Avg   uint64 `json:"avg_bytes" yaml:"avg_bytes"`
	Send  uint64 `json:"send" yaml:"send"`
	Recv  uint64 `json:"recv" yaml:"recv"`
}

type coverageEntry struct {
	Defined     int      `json:"defined" yaml:"defined"`
	Seen        int      `json:"seen" yaml:"seen"`
	NotSeen     []uint16 `json:"not_seen" yaml:"not_seen"`
	UnknownSeen []uint16 `json:"unknown_seen,omitempty" yaml:"unknown_seen,omitempty"`
	Percent     float64  `json:"coverage_percent" yaml:"coverage_percent"`
}

func buildDocument(res *Result) document {
	agg := res.Stats

	doc := document{
		TraceFile: res.TracePath,
		FileSize:  res.FileSize,
		Version:   res.Header.Version,
		Summary: summary{
			TotalPackets: agg.TotalPackets,
			TotalBytes:   agg.TotalBytes,
			SendCount:    agg.SendCount,
			RecvCount:    agg.RecvCount,
		},
		Connections: []connEntry{},
		Types:       []typeEntry{},
	}

	if agg.HasTimestamps() {
		d := agg.Duration()
		doc.Summary.DurationSec = &d
		if pps, ok := agg.PacketsPerSecond(); ok {
			doc.Summary.PacketsPerS = &pps
		}
	}

	for _, connID := range agg.Connections() {
		doc.Connections = append(doc.Connections, connEntry{ConnID: connID, Packets: agg.ByConn[connID]})
	}
	for _, pktType := range agg.Types() {
		ts := agg.ByType[pktType]
		doc.Types = append(doc.Types, typeEntry{
			Type:  pktType,
			Name:  res.Names.Name(pktType),
			Count: ts.Count,
			Bytes: ts.Bytes,
			Avg:   ts.AvgBytes(),
			Send:  ts.Send,
			Recv:  ts.Recv,
		})
	}

	if cov := res.Coverage; cov != nil {
		doc.Coverage = &coverageEntry{
			Defined:     cov.Defined,
			Seen:        cov.Seen,
			NotSeen:     cov.NotSeen,
			UnknownSeen: cov.UnknownSeen,
			Percent:     cov.Percent(),
		}
	}

	return doc
}

// WriteJSON renders the report as indented JSON.
func WriteJSON(w io.Writer, res *Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(buildDocument(res))
}

// WriteYAML renders the report as YAML.
func WriteYAML(w io.Writer, res *Result) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(buildDocument(res))
}
