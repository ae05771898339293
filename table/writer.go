// Package table writes flattened rows as delimited text with a fixed
// header, plus the companion report listing columns and row count.
package table

import (
	"encoding/csv"
	"fmt"
	"io"
)

// Writer emits the fixed header once, then one delimited row per
// record, in the order rows are written.
type Writer struct {
	cw     *csv.Writer
	header []string
	wrote  bool
	rows   int
}

// NewWriter wraps w with the given header and cell delimiter (comma
// for CSV, tab for TSV).
func NewWriter(w io.Writer, header []string, delim rune) *Writer {
	cw := csv.NewWriter(w)
	cw.Comma = delim
	return &Writer{cw: cw, header: header}
}

// WriteHeader writes the header line if it has not been written yet.
// The header goes out even when no rows follow.
func (w *Writer) WriteHeader() error {
	if w.wrote {
		return nil
	}
	w.wrote = true
	return w.cw.Write(w.header)
}

// WriteRow writes one row, taking cells from the mapping in header
// order. A column missing from the mapping renders the missing marker,
// so every line has the full column set.
func (w *Writer) WriteRow(row map[string]string, missing string) error {
	if err := w.WriteHeader(); err != nil {
		return err
	}
	cells := make([]string, len(w.header))
	for i, col := range w.header {
		if v, ok := row[col]; ok {
			cells[i] = v
		} else {
			cells[i] = missing
		}
	}
	if err := w.cw.Write(cells); err != nil {
		return err
	}
	w.rows++
	return nil
}

// Rows returns the number of data rows written so far, excluding the
// header.
func (w *Writer) Rows() int {
	return w.rows
}

// Flush writes buffered output and reports any deferred write error.
func (w *Writer) Flush() error {
	w.cw.Flush()
	return w.cw.Error()
}

// WriteReport writes the companion log: the column list and the total
// number of data rows written.
func WriteReport(w io.Writer, header []string, rows int) error {
	if _, err := fmt.Fprintln(w, "# columns"); err != nil {
		return err
	}
	for _, col := range header {
		if _, err := fmt.Fprintln(w, col); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\n# rows written: %d\n", rows)
	return err
}
