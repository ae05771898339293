// oa2table converts OpenAlex work records from a JSON file into a
// flat CSV or TSV table that mirrors the search UI export.
//
// $ oa2table -i works.json -o works.tsv
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	gzip "github.com/klauspost/pgzip"
	"github.com/segmentio/encoding/json"
	log "github.com/sirupsen/logrus"

	"oa2table"
	"oa2table/flatten"
	"oa2table/table"
)

var (
	inputFile    = flag.String("i", "", "input JSON file; .gz and .zst are read transparently")
	outputFile   = flag.String("o", "", "output table path")
	format       = flag.String("f", "tsv", "output format (csv or tsv)")
	listSep      = flag.String("list-sep", "|", "separator between elements of flattened lists")
	boolStyle    = flag.String("bool-style", "en", "boolean rendering, en: True/False, fr: Vrai/Faux")
	cellMissing  = flag.String("cell-missing", "", "string for a wholly missing cell")
	tokenMissing = flag.String("list-missing-token", "None", "replacement token for blank values inside joined lists")
	logOut       = flag.String("log-out", "", "companion report listing columns and row count (default: output path + .log)")
	verbose      = flag.Bool("verbose", false, "debug output")
	showVersion  = flag.Bool("version", false, "show version")
)

var docs = strings.TrimLeft(`
# oa2table - flatten OpenAlex works into a table 🗃️

Emulates the CSV export of the OpenAlex search UI from a JSON file
fetched earlier, e.g. via the works API. No network access and no
pagination: one file in, one table out. TSV by default.

Accepted input shapes:

    { ... }                       a single work object
    [ { ... }, { ... } ]          an array of work objects
    { "results": [ { ... } ] }    an API response envelope

Examples:

    $ oa2table -i works.json -o works.tsv
    $ oa2table -i works.json.zst -o works.csv -f csv -bool-style fr

Flags:

`, "\n")

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, docs)
		flag.PrintDefaults()
	}
	flag.Parse()
	if *showVersion {
		fmt.Println(oa2table.Version)
		os.Exit(0)
	}
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}
	if *inputFile == "" || *outputFile == "" {
		log.Fatal("both -i and -o are required")
	}
	var delim rune
	switch *format {
	case "csv":
		delim = ','
	case "tsv":
		delim = '\t'
	default:
		log.Fatalf("unsupported format: %s", *format)
	}
	opts := flatten.Options{
		ListSep:      *listSep,
		InnerSep:     "; ",
		BoolStyle:    flatten.BoolStyle(*boolStyle),
		CellMissing:  *cellMissing,
		TokenMissing: *tokenMissing,
	}
	switch opts.BoolStyle {
	case flatten.BoolStyleEN, flatten.BoolStyleFR:
	default:
		log.Fatalf("unsupported bool style: %s", *boolStyle)
	}
	// Decode completely before touching the output path, so a broken
	// input never leaves a partial table behind.
	payload, err := decodePayload(*inputFile)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}
	if dir := filepath.Dir(*outputFile); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("create output dir: %v", err)
		}
	}
	f, err := os.Create(*outputFile)
	if err != nil {
		log.Fatalf("create output: %v", err)
	}
	tw := table.NewWriter(f, flatten.Columns, delim)
	if err := tw.WriteHeader(); err != nil {
		log.Fatalf("write header: %v", err)
	}
	for _, work := range flatten.IterWorks(payload) {
		if err := tw.WriteRow(opts.ToRow(work), opts.CellMissing); err != nil {
			log.Fatalf("write row: %v", err)
		}
	}
	if err := tw.Flush(); err != nil {
		log.Fatalf("flush output: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("close output: %v", err)
	}
	logPath := *logOut
	if logPath == "" {
		logPath = *outputFile + ".log"
	}
	lf, err := os.Create(logPath)
	if err != nil {
		log.Fatalf("create report: %v", err)
	}
	if err := table.WriteReport(lf, flatten.Columns, tw.Rows()); err != nil {
		log.Fatalf("write report: %v", err)
	}
	if err := lf.Close(); err != nil {
		log.Fatalf("close report: %v", err)
	}
	log.WithFields(log.Fields{
		"rows":   tw.Rows(),
		"format": *format,
		"output": *outputFile,
		"report": logPath,
	}).Info("done")
}

// decodePayload reads and decodes the whole input document. Numbers
// are kept as their JSON lexemes so ids and counts round-trip exactly.
func decodePayload(path string) (interface{}, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var r io.Reader = f
	switch {
	case strings.HasSuffix(path, ".gz"):
		gr, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer gr.Close()
		r = gr
	case strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		r = zr
	}
	dec := json.NewDecoder(bufio.NewReader(r))
	dec.UseNumber()
	var payload interface{}
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}
	return payload, nil
}
