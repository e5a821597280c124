// Package trace implements decoding of FCPT binary packet-trace files.
package trace

import (
	"encoding/binary"
	"fmt"
	"io"

	"firestige.xyz/tracestat/internal/core"
)

// TruncatedError reports a record whose declared payload runs past the
// end of the trace. Decoding stops at the offending record; everything
// decoded before it remains valid.
type TruncatedError struct {
	Offset    int    // file offset of the record header
	Declared  uint32 // payload bytes the record claims
	Remaining int    // payload bytes actually left in the file
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("tracestat: truncated record at offset %d, expected %d bytes but only %d remain",
		e.Offset, e.Declared, e.Remaining)
}

// Decoder walks a trace buffer and yields packet records in file order.
// It is a forward-only, single-pass cursor: once Next returns a terminal
// error the decoder is exhausted. A Decoder holds no state beyond its
// position in the buffer and is not safe for concurrent use.
type Decoder struct {
	data   []byte
	offset int
	header core.Header
	done   bool
}

// NewDecoder validates the file header and positions the decoder at the
// first record. It fails with core.ErrTraceTooSmall or core.ErrBadMagic;
// an unexpected version is not an error — callers inspect Header() and
// decide whether to warn, since the record layout is the same.
func NewDecoder(data []byte) (*Decoder, error) {
	if len(data) < core.HeaderSize {
		return nil, fmt.Errorf("%w (%d bytes)", core.ErrTraceTooSmall, len(data))
	}

	hdr := core.Header{
		Magic:   binary.LittleEndian.Uint32(data[0:4]),
		Version: binary.LittleEndian.Uint32(data[4:8]),
	}
	if hdr.Magic != core.TraceMagic {
		return nil, fmt.Errorf("%w: 0x%08X (expected 0x%08X)",
			core.ErrBadMagic, hdr.Magic, core.TraceMagic)
	}

	return &Decoder{
		data:   data,
		offset: core.HeaderSize,
		header: hdr,
	}, nil
}

// Header returns the validated file header.
func (d *Decoder) Header() core.Header {
	return d.header
}

// Offset returns the current byte offset into the trace buffer.
func (d *Decoder) Offset() int {
	return d.offset
}

// Next decodes one record. It returns io.EOF at the end of the stream —
// fewer than RecordHeaderSize bytes remaining is the normal termination
// condition, not an error. A record whose payload overruns the buffer
// returns *TruncatedError once; calls after any terminal error return io.EOF.
func (d *Decoder) Next() (core.PacketRecord, error) {
	if d.done {
		return core.PacketRecord{}, io.EOF
	}
	if len(d.data)-d.offset < core.RecordHeaderSize {
		d.done = true
		return core.PacketRecord{}, io.EOF
	}

	buf := d.data[d.offset:]
	rec := core.PacketRecord{
		Type:          binary.LittleEndian.Uint16(buf[0:2]),
		DataLen:       binary.LittleEndian.Uint32(buf[2:6]),
		ConnID:        binary.LittleEndian.Uint32(buf[6:10]),
		Direction:     buf[10],
		TimestampUsec: binary.LittleEndian.Uint64(buf[11:19]),
	}

	payloadStart := d.offset + core.RecordHeaderSize
	payloadEnd := payloadStart + int(rec.DataLen)
	if payloadEnd > len(d.data) {
		d.done = true
		return core.PacketRecord{}, &TruncatedError{
			Offset:    d.offset,
			Declared:  rec.DataLen,
			Remaining: len(d.data) - payloadStart,
		}
	}

	rec.Payload = d.data[payloadStart:payloadEnd]
	d.offset = payloadEnd
	return rec, nil
}
