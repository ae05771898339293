package flatten

import (
	"math"
	"strings"
)

// formatBool renders booleans per the configured style. Nil maps to
// the missing cell marker; a false boolean never does. Non-boolean
// values are stringified as-is.
func (o Options) formatBool(v interface{}) string {
	if v == nil {
		return o.CellMissing
	}
	b, ok := v.(bool)
	if !ok {
		return stringify(v)
	}
	if o.BoolStyle == BoolStyleFR {
		if b {
			return "Vrai"
		}
		return "Faux"
	}
	if b {
		return "True"
	}
	return "False"
}

// normMissing maps nil and NaN to the missing cell marker and
// stringifies everything else.
func (o Options) normMissing(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return o.CellMissing
	case float64:
		if math.IsNaN(t) {
			return o.CellMissing
		}
	}
	return stringify(v)
}

// orMissing renders v, falling back to the missing cell marker for nil
// and empty strings.
func (o Options) orMissing(v interface{}) string {
	if v == nil {
		return o.CellMissing
	}
	if s := stringify(v); s != "" {
		return s
	}
	return o.CellMissing
}

// tokenOr renders v as one list token, substituting the token marker
// for nil. Blank strings are normalized later, during the join.
func (o Options) tokenOr(v interface{}) string {
	if v == nil {
		return o.TokenMissing
	}
	return stringify(v)
}

// joinList joins raw values with the list separator. A nil or empty
// list yields the missing cell marker, which keeps "no list at all"
// distinguishable from "list of blanks". Blank elements are replaced
// by the token marker so output never contains runs like "a||b"; when
// every element is blank the whole cell collapses to a single token
// marker instead of a separator-joined repetition.
func (o Options) joinList(items []interface{}) string {
	if len(items) == 0 {
		return o.CellMissing
	}
	tokens := make([]string, len(items))
	for i, x := range items {
		if x == nil {
			tokens[i] = o.TokenMissing
			continue
		}
		tokens[i] = stringify(x)
	}
	return o.join(tokens)
}

// joinTokens is joinList for tokens that are already strings, e.g.
// pre-formatted entity encodings or nested joins.
func (o Options) joinTokens(tokens []string) string {
	if len(tokens) == 0 {
		return o.CellMissing
	}
	return o.join(tokens)
}

func (o Options) join(tokens []string) string {
	out := make([]string, len(tokens))
	allMissing := true
	for i, s := range tokens {
		s = strings.TrimSpace(s)
		if s == "" {
			s = o.TokenMissing
		}
		if s != o.TokenMissing {
			allMissing = false
		}
		out[i] = s
	}
	if allMissing {
		return o.TokenMissing
	}
	return strings.Join(out, o.ListSep)
}
