// Package core defines sentinel errors.
package core

import "errors"

// Sentinel errors for trace validation. Both are fatal: a trace that
// fails header validation produces no report at all.
var (
	ErrTraceTooSmall = errors.New("tracestat: trace file too small")
	ErrBadMagic      = errors.New("tracestat: bad magic")
)
