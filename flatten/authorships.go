package flatten

import (
	"strings"

	"oa2table/normal"
)

// flattenAuthorships produces the ten authorships.* columns. Element i
// of every column describes author i, so the columns stay aligned even
// when individual sub-fields are absent: the slot is then filled with
// the token marker, never dropped.
//
// Within one author, the full list of institutions (respectively
// affiliations) is joined with the inner separator and becomes a
// single token in the author-level list. An author with none gets one
// token marker, not an empty list rendering.
func (o Options) flattenAuthorships(v interface{}) map[string]string {
	auths := asList(v)
	var (
		positions []string
		insts     []string
		countries []string
		isCorr    []string
		rawNames  []string
		rawAffils []string
		affils    []string
		ids       []string
		names     []string
		orcids    []string
	)
	for _, e := range auths {
		a := asMap(e)
		positions = append(positions, o.tokenOr(a["author_position"]))
		countries = append(countries, o.joinList(asList(a["countries"])))
		isCorr = append(isCorr, o.formatBool(a["is_corresponding"]))

		if s, ok := a["raw_author_name"].(string); ok {
			rawNames = append(rawNames, normal.CollapseWS(s))
		} else {
			rawNames = append(rawNames, o.CellMissing)
		}
		var cleaned []interface{}
		for _, r := range asList(a["raw_affiliation_strings"]) {
			if s, ok := r.(string); ok {
				cleaned = append(cleaned, normal.CollapseWS(s))
			} else {
				cleaned = append(cleaned, r)
			}
		}
		rawAffils = append(rawAffils, o.joinList(cleaned))

		if instList := asList(a["institutions"]); len(instList) > 0 {
			tokens := make([]string, 0, len(instList))
			for _, it := range instList {
				tokens = append(tokens, formatInstitution(asMap(it)))
			}
			insts = append(insts, strings.Join(tokens, o.InnerSep))
		} else {
			insts = append(insts, o.TokenMissing)
		}

		if affList := asList(a["affiliations"]); len(affList) > 0 {
			tokens := make([]string, 0, len(affList))
			for _, it := range affList {
				tokens = append(tokens, formatAffiliation(asMap(it)))
			}
			affils = append(affils, strings.Join(tokens, o.InnerSep))
		} else {
			affils = append(affils, o.TokenMissing)
		}

		author := asMap(a["author"])
		ids = append(ids, o.tokenOr(author["id"]))
		names = append(names, o.tokenOr(author["display_name"]))
		if s := stringOr(author["orcid"]); s != "" {
			orcids = append(orcids, s)
		} else {
			orcids = append(orcids, o.TokenMissing)
		}
	}
	return map[string]string{
		"authorships.author_position":         o.joinTokens(positions),
		"authorships.institutions":            o.joinTokens(insts),
		"authorships.countries":               o.joinTokens(countries),
		"authorships.is_corresponding":        o.joinTokens(isCorr),
		"authorships.raw_author_name":         o.joinTokens(rawNames),
		"authorships.raw_affiliation_strings": o.joinTokens(rawAffils),
		"authorships.affiliations":            o.joinTokens(affils),
		"authorships.author.id":               o.joinTokens(ids),
		"authorships.author.display_name":     o.joinTokens(names),
		"authorships.author.orcid":            o.joinTokens(orcids),
	}
}
