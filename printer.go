package rpn

import (
	"strconv"
	"strings"
)

// Format renders v the way results are printed: the shortest decimal form
// that parses back to the same float64. Integral values come out without a
// fraction ("10", not "10.000000").
func Format(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// FormatStack renders values space-separated, in the order given.
func FormatStack(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = Format(v)
	}
	return strings.Join(parts, " ")
}

// FormatSnapshot renders one dump line, e.g. "stack: 1 2 3" for a "?"
// snapshot (bottom to top) or "memory: 4 5" for a "&" snapshot (oldest
// first).
func FormatSnapshot(s Snapshot) string {
	label := "stack"
	if s.Kind == MemoryDump {
		label = "memory"
	}
	if len(s.Values) == 0 {
		return label + ": (empty)"
	}
	return label + ": " + FormatStack(s.Values)
}
