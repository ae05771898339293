package flatten

import (
	"strings"
	"testing"
)

func TestFlattenAuthorshipsAlignment(t *testing.T) {
	// Two authors, only the first one has institutions and
	// affiliations: every authorships.* cell must still carry exactly
	// two tokens, with the token marker standing in for the second
	// author.
	w := decodeWork(t, `{
		"authorships": [
			{
				"author_position": "first",
				"author": {"id": "A1", "display_name": "Alice", "orcid": "https://orcid.org/0000-0001"},
				"countries": ["CA"],
				"is_corresponding": true,
				"raw_author_name": "Alice  A.",
				"raw_affiliation_strings": ["Univ  A"],
				"institutions": [{"id": "I1", "display_name": "U A", "ror": "r1", "country_code": "CA", "type": "education", "lineage": ["I1"]}],
				"affiliations": [{"raw_affiliation_string": "Univ A", "institution_ids": ["I1"]}]
			},
			{
				"author_position": "last",
				"author": {"id": "A2", "display_name": "Bob"},
				"is_corresponding": false,
				"raw_author_name": "Bob B."
			}
		]
	}`)
	opts := DefaultOptions()
	got := opts.flattenAuthorships(w["authorships"])

	want := map[string]string{
		"authorships.author_position":         "first|last",
		"authorships.institutions":            `I1, "U A", r1, CA, education, ['I1']|None`,
		"authorships.countries":               "CA|None",
		"authorships.is_corresponding":        "True|False",
		"authorships.raw_author_name":         "Alice A.|Bob B.",
		"authorships.raw_affiliation_strings": "Univ A|None",
		"authorships.affiliations":            `"Univ A", ['I1']|None`,
		"authorships.author.id":               "A1|A2",
		"authorships.author.display_name":     "Alice|Bob",
		"authorships.author.orcid":            "https://orcid.org/0000-0001|None",
	}
	for col, cell := range want {
		if got[col] != cell {
			t.Errorf("%s = %q, want %q", col, got[col], cell)
		}
	}
	for col, v := range got {
		if n := len(strings.Split(v, "|")); n != 2 {
			t.Errorf("%s has %d tokens, want 2 (%q)", col, n, v)
		}
	}
}

func TestFlattenAuthorshipsMultipleInstitutions(t *testing.T) {
	// All institutions of one author stay inside that author's single
	// token, joined by the inner separator.
	w := decodeWork(t, `{
		"authorships": [
			{
				"author": {"display_name": "Alice"},
				"institutions": [
					{"id": "https://openalex.org/I1", "display_name": "Université A", "ror": "https://ror.org/01aaaaa11", "country_code": "CA", "type": "education", "lineage": ["https://openalex.org/I1"]},
					{"id": "https://openalex.org/I2", "display_name": "Institut B", "ror": "https://ror.org/02bbbbb22", "country_code": "FR", "type": "nonprofit", "lineage": ["https://openalex.org/I2"]}
				]
			},
			{
				"author": {"display_name": "Bob"},
				"institutions": [
					{"id": "https://openalex.org/I3", "display_name": "Université C", "ror": "https://ror.org/03ccccc33", "country_code": "US", "type": "education", "lineage": ["https://openalex.org/I3"]}
				]
			}
		]
	}`)
	opts := DefaultOptions()
	got := opts.flattenAuthorships(w["authorships"])
	want := `https://openalex.org/I1, "Université A", https://ror.org/01aaaaa11, CA, education, ['https://openalex.org/I1']; ` +
		`https://openalex.org/I2, "Institut B", https://ror.org/02bbbbb22, FR, nonprofit, ['https://openalex.org/I2']|` +
		`https://openalex.org/I3, "Université C", https://ror.org/03ccccc33, US, education, ['https://openalex.org/I3']`
	if got["authorships.institutions"] != want {
		t.Errorf("authorships.institutions =\n%q\nwant\n%q", got["authorships.institutions"], want)
	}
}

func TestFlattenAuthorshipsEmpty(t *testing.T) {
	opts := DefaultOptions()
	got := opts.flattenAuthorships(nil)
	for col, v := range got {
		if v != opts.CellMissing {
			t.Errorf("%s = %q, want missing cell", col, v)
		}
	}
	if len(got) != 10 {
		t.Errorf("got %d columns, want 10", len(got))
	}
}

func TestFormatInstitutionMissingLeaves(t *testing.T) {
	w := decodeWork(t, `{"inst": {"display_name": "Only  Name"}}`)
	got := formatInstitution(asMap(w["inst"]))
	want := `, "Only Name", , , , []`
	if got != want {
		t.Errorf("formatInstitution = %q, want %q", got, want)
	}
}
