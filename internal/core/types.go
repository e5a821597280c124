// Package core defines the trace wire-format types with zero external dependencies.
package core

// Trace file constants. The magic spells "FCPT" when read as ASCII.
const (
	TraceMagic   uint32 = 0x46435054
	TraceVersion uint32 = 1

	// HeaderSize is the fixed file header: magic(4) + version(4).
	HeaderSize = 8

	// RecordHeaderSize is the fixed per-record header:
	// type(2) + data_len(4) + connection_id(4) + direction(1) + timestamp(8).
	RecordHeaderSize = 19
)

// Direction values as written by the tracer.
const (
	DirectionSend uint8 = 0
	DirectionRecv uint8 = 1
)

// Header is the 8-byte trace file header.
type Header struct {
	Magic   uint32
	Version uint32
}

// PacketRecord is one logged packet event. Payload is a zero-copy slice
// into the trace buffer; it is opaque and only ever counted, never parsed.
type PacketRecord struct {
	Type          uint16
	DataLen       uint32
	ConnID        uint32
	Direction     uint8
	TimestampUsec uint64
	Payload       []byte
}

// IsSend reports whether the record was written on the send path.
// Anything other than DirectionSend is classified as receive, matching
// the tracer's binary branch.
func (r PacketRecord) IsSend() bool {
	return r.Direction == DirectionSend
}
