package stats

import "firestige.xyz/tracestat/internal/names"

// Coverage partitions packet-type codes into defined-and-seen,
// defined-but-not-seen, and seen-but-undefined sets.
type Coverage struct {
	Defined     int
	Seen        int      // defined types observed in the trace
	NotSeen     []uint16 // defined but absent, ascending
	UnknownSeen []uint16 // observed but undefined, ascending
}

// Percent returns the fraction of defined types observed, as a
// percentage. Callers only compute coverage against a non-empty table,
// but the zero guard keeps the method total.
func (c *Coverage) Percent() float64 {
	if c.Defined == 0 {
		return 0
	}
	return 100 * float64(c.Seen) / float64(c.Defined)
}

// Coverage compares the observed types against a name table. Returns
// nil for an empty table — there is nothing to measure coverage of.
func (a *Aggregate) Coverage(table *names.Table) *Coverage {
	if table == nil || table.Len() == 0 {
		return nil
	}

	cov := &Coverage{Defined: table.Len()}
	for _, code := range table.Codes() {
		if _, ok := a.ByType[code]; ok {
			cov.Seen++
		} else {
			cov.NotSeen = append(cov.NotSeen, code)
		}
	}
	for _, code := range a.Types() {
		if _, ok := table.Lookup(code); !ok {
			cov.UnknownSeen = append(cov.UnknownSeen, code)
		}
	}
	return cov
}
