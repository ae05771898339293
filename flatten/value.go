package flatten

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/segmentio/encoding/json"
)

// Work is one decoded work record. Decode the payload with a
// json.Decoder and UseNumber so numeric lexemes survive verbatim.
type Work map[string]interface{}

// get walks a dotted path and returns nil when any step is absent or
// not an object. This replaces exception-driven traversal: a wrongly
// typed intermediate value reads as missing, never as an error.
func (w Work) get(path string) interface{} {
	var cur interface{} = map[string]interface{}(w)
	for _, p := range strings.Split(path, ".") {
		m, ok := cur.(map[string]interface{})
		if !ok {
			return nil
		}
		cur = m[p]
	}
	return cur
}

func asMap(v interface{}) map[string]interface{} {
	m, _ := v.(map[string]interface{})
	return m
}

func asList(v interface{}) []interface{} {
	l, _ := v.([]interface{})
	return l
}

// stringify renders a scalar the way the reference export prints it:
// numbers keep their JSON lexeme, booleans render True/False, nested
// objects and arrays fall back to the legacy debug representation.
func stringify(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return "None"
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		if t {
			return "True"
		}
		return "False"
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case []interface{}, map[string]interface{}:
		return legacyRepr(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// legacyRepr renders a decoded JSON value in the debug style of the
// export being emulated: ['a', 'b'], {'k': 1}, None, True. It is kept
// verbatim for the rarely populated datasets and versions columns and
// for the lineage lists embedded in entity tokens; downstream
// consumers match on the literal format. Object keys are emitted in
// sorted order so repeated runs produce identical rows.
func legacyRepr(v interface{}) string {
	var b strings.Builder
	writeRepr(&b, v)
	return b.String()
}

func writeRepr(b *strings.Builder, v interface{}) {
	switch t := v.(type) {
	case nil:
		b.WriteString("None")
	case bool:
		if t {
			b.WriteString("True")
		} else {
			b.WriteString("False")
		}
	case string:
		writeReprString(b, t)
	case json.Number:
		b.WriteString(t.String())
	case float64:
		b.WriteString(strconv.FormatFloat(t, 'f', -1, 64))
	case []interface{}:
		b.WriteByte('[')
		for i, e := range t {
			if i > 0 {
				b.WriteString(", ")
			}
			writeRepr(b, e)
		}
		b.WriteByte(']')
	case map[string]interface{}:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			writeReprString(b, k)
			b.WriteString(": ")
			writeRepr(b, t[k])
		}
		b.WriteByte('}')
	default:
		fmt.Fprintf(b, "%v", t)
	}
}

func writeReprString(b *strings.Builder, s string) {
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\'':
			b.WriteString(`\'`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
}
