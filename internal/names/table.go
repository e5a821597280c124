// Package names loads the packet-type name table from a packets.def file.
package names

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// defLine matches definitions of the form `PACKET_FOO = 123;`. Everything
// else in the file (comments, field lists, capabilities) is ignored.
var defLine = regexp.MustCompile(`^(PACKET_\w+)\s*=\s*(\d+)\s*;`)

// Table maps packet-type codes to display names. Built once, read-only
// afterward. An empty table is valid: every type renders synthetically.
type Table struct {
	byCode map[uint16]string
}

// Empty returns a table with no definitions.
func Empty() *Table {
	return &Table{byCode: map[uint16]string{}}
}

// Load reads a packets.def file. A missing or unreadable file is not
// fatal to analysis, so the error is returned alongside an empty usable
// table for the caller to warn about.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Empty(), fmt.Errorf("failed to read name table %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f), nil
}

// Parse extracts packet-type definitions from r. Later definitions of
// the same number overwrite earlier ones.
func Parse(r io.Reader) *Table {
	byCode := make(map[uint16]string)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		m := defLine.FindStringSubmatch(strings.TrimSpace(scanner.Text()))
		if m == nil {
			continue
		}
		num, err := strconv.ParseUint(m[2], 10, 16)
		if err != nil {
			// Out of uint16 range — can never match a trace record.
			continue
		}
		byCode[uint16(num)] = m[1]
	}

	return &Table{byCode: byCode}
}

// Lookup returns the defined name for code, if any.
func (t *Table) Lookup(code uint16) (string, bool) {
	name, ok := t.byCode[code]
	return name, ok
}

// Name returns the defined name for code, or a synthesized
// UNKNOWN_<code> label.
func (t *Table) Name(code uint16) string {
	if name, ok := t.byCode[code]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN_%d", code)
}

// Codes returns all defined type codes in ascending order.
func (t *Table) Codes() []uint16 {
	codes := make([]uint16, 0, len(t.byCode))
	for code := range t.byCode {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// Len returns the number of defined packet types.
func (t *Table) Len() int {
	return len(t.byCode)
}
