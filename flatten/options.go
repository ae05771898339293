// Package flatten turns OpenAlex work records into flat rows with a
// fixed column layout that mirrors the search UI export. Records are
// decoded JSON values; any field may be absent, null or wrongly typed,
// and all of that is absorbed locally by substituting missing markers,
// never by skipping a record.
package flatten

// BoolStyle selects the textual rendering of boolean cells.
type BoolStyle string

const (
	BoolStyleEN BoolStyle = "en" // True / False
	BoolStyleFR BoolStyle = "fr" // Vrai / Faux
)

// Options configure one flattening run. Immutable once the run starts;
// every record sees the same separators and markers. The zero value is
// not useful, start from DefaultOptions.
type Options struct {
	// ListSep separates elements of repeated blocks (authors,
	// locations, topics, ...). It is also reused for multi-valued
	// fields nested inside one element, e.g. a source's issn list;
	// that collision is part of the export format being emulated.
	ListSep string
	// InnerSep separates the institutions (or affiliations) of a
	// single author inside that author's one list token.
	InnerSep string
	// BoolStyle selects True/False vs Vrai/Faux.
	BoolStyle BoolStyle
	// CellMissing renders a wholly absent cell.
	CellMissing string
	// TokenMissing replaces a blank element inside a joined list, so
	// positions stay aligned across parallel columns.
	TokenMissing string
}

// DefaultOptions match the reference export defaults.
func DefaultOptions() Options {
	return Options{
		ListSep:      "|",
		InnerSep:     "; ",
		BoolStyle:    BoolStyleEN,
		CellMissing:  "",
		TokenMissing: "None",
	}
}
