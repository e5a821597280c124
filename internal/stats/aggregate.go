// Package stats folds decoded packet records into aggregate statistics.
package stats

import (
	"sort"

	"firestige.xyz/tracestat/internal/core"
)

// TypeStats accumulates per-packet-type tallies.
type TypeStats struct {
	Count uint64
	Bytes uint64
	Send  uint64
	Recv  uint64
}

// AvgBytes returns the integer-truncated average payload size, zero when
// no records of the type were seen.
func (ts *TypeStats) AvgBytes() uint64 {
	if ts.Count == 0 {
		return 0
	}
	return ts.Bytes / ts.Count
}

// Aggregate is the accumulator for one analysis run. Records are folded
// in one at a time and discarded; nothing but the tallies is retained.
type Aggregate struct {
	TotalPackets uint64
	TotalBytes   uint64
	SendCount    uint64
	RecvCount    uint64

	// OddDirections counts direction bytes other than 0 or 1. They are
	// classified as recv, same as the tracer's binary branch, but the
	// count is surfaced as a data-quality warning.
	OddDirections uint64

	ByType map[uint16]*TypeStats
	ByConn map[uint32]uint64

	FirstTimestamp uint64
	LastTimestamp  uint64
	sawTimestamp   bool
}

// NewAggregate returns an empty accumulator.
func NewAggregate() *Aggregate {
	return &Aggregate{
		ByType: make(map[uint16]*TypeStats),
		ByConn: make(map[uint32]uint64),
	}
}

// Add folds one record into the aggregate.
func (a *Aggregate) Add(rec core.PacketRecord) {
	a.TotalPackets++
	a.TotalBytes += uint64(rec.DataLen)

	ts := a.ByType[rec.Type]
	if ts == nil {
		ts = &TypeStats{}
		a.ByType[rec.Type] = ts
	}
	ts.Count++
	ts.Bytes += uint64(rec.DataLen)

	if rec.IsSend() {
		a.SendCount++
		ts.Send++
	} else {
		a.RecvCount++
		ts.Recv++
		if rec.Direction != core.DirectionRecv {
			a.OddDirections++
		}
	}

	a.ByConn[rec.ConnID]++

	if !a.sawTimestamp {
		a.FirstTimestamp = rec.TimestampUsec
		a.sawTimestamp = true
	}
	a.LastTimestamp = rec.TimestampUsec
}

// HasTimestamps reports whether at least one record was folded in.
func (a *Aggregate) HasTimestamps() bool {
	return a.sawTimestamp
}

// Duration returns the span between the first and last record in
// seconds. Zero for a single record; negative when timestamps are
// non-monotonic — deliberately not clamped.
func (a *Aggregate) Duration() float64 {
	if !a.sawTimestamp {
		return 0
	}
	return (float64(a.LastTimestamp) - float64(a.FirstTimestamp)) / 1e6
}

// PacketsPerSecond returns the throughput and whether it is defined
// (duration must be strictly positive).
func (a *Aggregate) PacketsPerSecond() (float64, bool) {
	d := a.Duration()
	if d <= 0 {
		return 0, false
	}
	return float64(a.TotalPackets) / d, true
}

// Types returns the observed packet-type codes in ascending order.
func (a *Aggregate) Types() []uint16 {
	types := make([]uint16, 0, len(a.ByType))
	for t := range a.ByType {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// Connections returns the observed connection ids in ascending order.
func (a *Aggregate) Connections() []uint32 {
	conns := make([]uint32, 0, len(a.ByConn))
	for c := range a.ByConn {
		conns = append(conns, c)
	}
	sort.Slice(conns, func(i, j int) bool { return conns[i] < conns[j] })
	return conns
}
