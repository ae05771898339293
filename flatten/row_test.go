package flatten

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func loadWork(t *testing.T, path string) Work {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return decodeWork(t, string(b))
}

func TestToRowGolden(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "work-*.input"))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Fatal("no testdata inputs")
	}
	opts := DefaultOptions()
	for _, path := range paths {
		base := filepath.Base(path)
		name := strings.TrimSuffix(base, filepath.Ext(base))
		t.Run(name, func(t *testing.T) {
			row := opts.ToRow(loadWork(t, path))
			got, err := json.MarshalIndent(row, "", "    ")
			if err != nil {
				t.Fatal(err)
			}
			goldenfile := filepath.Join("testdata", name+".golden")
			want, err := os.ReadFile(goldenfile)
			if err != nil {
				if os.IsNotExist(err) {
					if err := os.WriteFile(goldenfile, got, 0644); err != nil {
						t.Fatal(err)
					}
					t.Logf("created golden file: %s", goldenfile)
					return
				}
				t.Fatal(err)
			}
			if diff := cmp.Diff(string(want), string(got)); diff != "" {
				t.Errorf("%s: mismatch (-want +got):\n%s", name, diff)
			}
		})
	}
}

func TestToRowBasicCells(t *testing.T) {
	opts := DefaultOptions()
	row := opts.ToRow(loadWork(t, filepath.Join("testdata", "work-basic.input")))
	want := map[string]string{
		"id":                            "https://openalex.org/W2741809807",
		"title":                         "The state of OA: a large-scale analysis",
		"publication_year":              "2018",
		"fwci":                          "76.992",
		"has_fulltext":                  "True",
		"is_retracted":                  "False",
		"indexed_in":                    "crossref|pubmed",
		"datasets":                      "[]",
		"versions":                      "[]",
		"referenced_works":              "https://openalex.org/W1560783210|https://openalex.org/W1979874437",
		"counts_by_year.year":           "2020|2021",
		"counts_by_year.cited_by_count": "5|9",
		"ids.mag":                       "2741809807",
		"ids.pmcid":                     "",
		"institution_assertions":        "",
		"corresponding_author_ids":      "https://openalex.org/A5048491430",
		"corresponding_institution_ids": "",
		"biblio.volume":                 "6",
		"biblio.issue":                  "",
		"primary_location.is_oa":        "True",
		"primary_location.source.issn":  "2167-8359|2167-8360",
		"primary_location.source.host_organization_lineage_names": "PeerJ, Inc.",
		"open_access.oa_status":                "gold",
		"apc_list.value":                       "1395",
		"citation_normalized_percentile.value": "0.999842",
		"cited_by_percentile_year.min":         "99",
		"primary_topic.subfield.display_name":  "Statistics, Probability and Uncertainty",
		"best_oa_location.license":             "cc-by",
		"best_oa_location.source.display_name": "PeerJ",
		"abstract":                             "Despite growing interest in open access",
		"authorships.author_position":          "first|last",
		"authorships.author.orcid":             "https://orcid.org/0000-0003-1613-5981|None",
		"authorships.raw_affiliation_strings":  "Impactstory, Sanford, NC, USA|None",
		"topics.domain.display_name":           "Social Sciences",
		"keywords.score":                       "0.573",
		"concepts.level":                       "2",
		"mesh.descriptor_ui":                   "D017145|D011642",
		"mesh.qualifier_ui":                    "Q000706|None",
		"mesh.is_major_topic":                  "True|False",
		"locations.license":                    "cc-by|None",
		"locations.pdf_url":                    "https://peerj.com/articles/4375.pdf|None",
		// nested issn list reuses the outer separator inside the
		// second-level join, as the emulated export does
		"locations.source.issn":                      "2167-8359|2167-8360|None",
		"locations.source.host_organization_lineage": "https://openalex.org/P4310320104|None",
		"locations.source.type":                      "journal|repository",
		"sustainable_development_goals.score":        "0.67",
		"grants.funder_display_name":                 "National Science Foundation|Alfred P. Sloan Foundation",
		// empty award id normalizes like null, unlike other fields
		"grants.award_id": "1561130|None",
	}
	for col, cell := range want {
		if row[col] != cell {
			t.Errorf("%s = %q, want %q", col, row[col], cell)
		}
	}
}

func TestToRowSparse(t *testing.T) {
	opts := DefaultOptions()
	row := opts.ToRow(loadWork(t, filepath.Join("testdata", "work-sparse.input")))
	want := map[string]string{
		"id":                            "https://openalex.org/W0000000001",
		"title":                         "",
		"publication_year":              "2025",
		"abstract":                      "A literal abstract with breaks.",
		"counts_by_year.year":           "",
		"authorships.author.id":         "",
		"biblio.volume":                 "",
		"primary_location.source.issn":  "",
		"best_oa_location.is_oa":        "",
		"locations.source.display_name": "",
		"grants.award_id":               "",
	}
	for col, cell := range want {
		if row[col] != cell {
			t.Errorf("%s = %q, want %q", col, row[col], cell)
		}
	}
}

func TestToRowCoversSchema(t *testing.T) {
	opts := DefaultOptions()
	for _, name := range []string{"work-basic.input", "work-sparse.input"} {
		row := opts.ToRow(loadWork(t, filepath.Join("testdata", name)))
		if len(row) != len(Columns) {
			t.Errorf("%s: row has %d cells, schema has %d", name, len(row), len(Columns))
		}
		for _, col := range Columns {
			if _, ok := row[col]; !ok {
				t.Errorf("%s: column %q missing from row", name, col)
			}
		}
	}
}

func TestToRowIdempotent(t *testing.T) {
	opts := DefaultOptions()
	w := loadWork(t, filepath.Join("testdata", "work-basic.input"))
	first := opts.ToRow(w)
	second := opts.ToRow(w)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("rows differ between runs (-first +second):\n%s", diff)
	}
}

func TestToRowBoolStyleFR(t *testing.T) {
	opts := DefaultOptions()
	opts.BoolStyle = BoolStyleFR
	w := decodeWork(t, `{"open_access": {"is_oa": true}, "is_retracted": false}`)
	row := opts.ToRow(w)
	if got := row["open_access.is_oa"]; got != "Vrai" {
		t.Errorf("open_access.is_oa = %q, want Vrai", got)
	}
	if got := row["is_retracted"]; got != "Faux" {
		t.Errorf("is_retracted = %q, want Faux", got)
	}
}
