package flatten

import (
	"strings"

	"github.com/segmentio/encoding/json"
)

// rebuildAbstract reassembles the plain text abstract from an inverted
// index mapping term to positions. Positions never assigned a term are
// skipped when joining, so a sparse or malformed index yields a
// best-effort text rather than an error. Returns "" when the index is
// absent, empty or unusable.
func rebuildAbstract(v interface{}) string {
	idx := asMap(v)
	if len(idx) == 0 {
		return ""
	}
	maxPos := -1
	for _, positions := range idx {
		for _, p := range asList(positions) {
			if n, ok := asInt(p); ok && n > maxPos {
				maxPos = n
			}
		}
	}
	if maxPos < 0 {
		return ""
	}
	words := make([]string, maxPos+1)
	for term, positions := range idx {
		for _, p := range asList(positions) {
			if n, ok := asInt(p); ok && n >= 0 {
				words[n] = term
			}
		}
	}
	var parts []string
	for _, w := range words {
		if w != "" {
			parts = append(parts, w)
		}
	}
	return strings.Join(parts, " ")
}

func asInt(v interface{}) (int, bool) {
	switch t := v.(type) {
	case json.Number:
		n, err := t.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	case float64:
		return int(t), true
	}
	return 0, false
}
