// Package lssea parses VIOS `lssea` command logs into topology records.
//
// An lssea log is semi-structured text: a "VIOS hostname:" marker followed
// by the hostname on the next line, then one block per Shared Ethernet
// Adapter introduced by "SEA : <name>". Each SEA block carries key:value
// property lines and up to three adapter tables (ETHERCHANNEL, REAL
// ADAPTERS, VIRTUAL ADAPTERS) with dashed header rows.
package lssea

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/seaviz/seaviz/pkg/topology"
)

var seaHeaderRe = regexp.MustCompile(`^SEA\s*:\s*(\S+)`)

// Section keywords inside a SEA block.
const (
	kwEtherchannel    = "ETHERCHANNEL"
	kwRealAdapters    = "REAL ADAPTERS"
	kwVirtualAdapters = "VIRTUAL ADAPTERS"
	kwNoControl       = "NO CONTROL CHANNEL"
	kwHostname        = "VIOS hostname:"
)

// Parse reads one lssea log from r and returns the host topology.
// Lines that do not match any known structure are skipped; a log with no
// recognizable SEA sections yields a topology with an empty section list,
// which still renders as a lone hostname box.
func Parse(r io.Reader) (topology.Topology, error) {
	var topo topology.Topology

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lines := make([]string, 0, 256)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r\n"))
	}
	if err := sc.Err(); err != nil {
		return topo, fmt.Errorf("read log: %w", err)
	}

	topo.Hostname = hostname(lines)

	for i := 0; i < len(lines); i++ {
		m := seaHeaderRe.FindStringSubmatch(strings.TrimSpace(lines[i]))
		if m == nil {
			continue
		}
		section, next := parseSection(lines, i, m[1])
		topo.Sections = append(topo.Sections, section)
		i = next - 1
	}

	return topo, nil
}

// ParseFile parses the lssea log at path.
func ParseFile(path string) (topology.Topology, error) {
	f, err := os.Open(path)
	if err != nil {
		return topology.Topology{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Glob returns the lssea*log files under dir, sorted by name so batch
// extraction order is stable.
func Glob(dir string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "lssea*log"))
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", dir, err)
	}
	sort.Strings(paths)
	return paths, nil
}

// hostname scans for the "VIOS hostname:" marker and returns the next
// non-empty line. Returns "" when the marker is absent; the layout engine
// substitutes a placeholder label.
func hostname(lines []string) string {
	for i, line := range lines {
		if strings.TrimSpace(line) != kwHostname {
			continue
		}
		for j := i + 1; j < len(lines); j++ {
			if name := strings.TrimSpace(lines[j]); name != "" {
				return name
			}
		}
	}
	return ""
}

// parseSection consumes one SEA block starting at the header line and
// returns the section plus the index of the first unconsumed line.
func parseSection(lines []string, start int, name string) (topology.SeaSection, int) {
	section := topology.SeaSection{Name: name}
	i := start + 1

	// Property lines until a blank line or the next structural marker.
	for ; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" || isMarker(line) {
			break
		}
		if key, value, ok := strings.Cut(line, ":"); ok && !strings.HasPrefix(line, "+") {
			if section.Properties == nil {
				section.Properties = map[string]string{}
			}
			section.Properties[strings.TrimSpace(key)] = strings.TrimSpace(value)
		}
	}

	// Adapter tables, in the order the lssea output emits them.
	for ; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if seaHeaderRe.MatchString(line) {
			break
		}
		switch {
		case strings.Contains(line, kwEtherchannel):
			var adapters []string
			adapters, i = parseAdapterTable(lines, i+1, func(fields []string) string {
				return fields[0]
			})
			if len(adapters) > 0 {
				section.Etherchannel = &topology.Etherchannel{Adapters: adapters}
			}
		case strings.Contains(line, kwRealAdapters):
			section.RealAdapters, i = parseRefTable(lines, i+1)
		case strings.Contains(line, kwVirtualAdapters):
			section.VirtualAdapters, i = parseRefTable(lines, i+1)
		}
	}

	return section, i
}

// isMarker reports whether line starts a new structural region of the log.
func isMarker(line string) bool {
	return seaHeaderRe.MatchString(line) ||
		strings.HasPrefix(line, "+--") ||
		strings.Contains(line, kwEtherchannel) ||
		strings.Contains(line, kwRealAdapters) ||
		strings.Contains(line, kwVirtualAdapters)
}

// isTableEnd reports whether line terminates an adapter table.
func isTableEnd(line string) bool {
	return line == "" ||
		strings.HasPrefix(line, "+--") ||
		strings.HasPrefix(line, kwNoControl) ||
		strings.Contains(line, kwRealAdapters) ||
		strings.Contains(line, kwVirtualAdapters) ||
		seaHeaderRe.MatchString(line)
}

// parseAdapterTable reads adapter rows until the table ends, extracting one
// string per row via pick. Dashed separator and column header rows are
// skipped. Returns the values and the index of the line that ended the table
// (left unconsumed for the caller's loop increment).
func parseAdapterTable(lines []string, start int, pick func(fields []string) string) ([]string, int) {
	var out []string
	i := start
	for ; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if isTableEnd(line) {
			break
		}
		if strings.HasPrefix(line, "-------") || strings.HasPrefix(line, "adapter") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) >= 1 && strings.HasPrefix(fields[0], "ent") {
			out = append(out, pick(fields))
		}
	}
	return out, i - 1
}

// parseRefTable reads real/virtual adapter rows. The lssea table layout puts
// the adapter name in the first column and the hardware path in the third.
func parseRefTable(lines []string, start int) ([]topology.AdapterRef, int) {
	var out []topology.AdapterRef
	i := start
	for ; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if isTableEnd(line) {
			break
		}
		if strings.HasPrefix(line, "-------") || strings.HasPrefix(line, "adapter") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 || !strings.HasPrefix(fields[0], "ent") {
			continue
		}
		ref := topology.AdapterRef{Name: fields[0]}
		if len(fields) >= 3 {
			ref.HardwarePath = fields[2]
		}
		out = append(out, ref)
	}
	return out, i - 1
}
