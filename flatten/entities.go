package flatten

import (
	"fmt"

	"oa2table/normal"
)

// Entity formatters produce the compact single-line encodings embedded
// inside per-author list cells. They never fail on missing sub-fields;
// absent leaves render as empty strings inline.

// formatInstitution encodes one dehydrated institution:
//
//	id, "display_name", ror, country_code, type, ['lineage', ...]
//
// The lineage keeps the legacy list representation, it is nested
// inside an already-joined cell and must not use the list separator.
func formatInstitution(inst map[string]interface{}) string {
	return fmt.Sprintf(`%s, "%s", %s, %s, %s, %s`,
		stringOr(inst["id"]),
		normal.CollapseWS(stringOr(inst["display_name"])),
		stringOr(inst["ror"]),
		stringOr(inst["country_code"]),
		stringOr(inst["type"]),
		legacyRepr(listOrEmpty(inst["lineage"])),
	)
}

// formatAffiliation encodes one affiliation:
//
//	"raw_affiliation_string", ['institution_id', ...]
func formatAffiliation(aff map[string]interface{}) string {
	return fmt.Sprintf(`"%s", %s`,
		normal.CollapseWS(stringOr(aff["raw_affiliation_string"])),
		legacyRepr(listOrEmpty(aff["institution_ids"])),
	)
}

func stringOr(v interface{}) string {
	if v == nil {
		return ""
	}
	return stringify(v)
}

func listOrEmpty(v interface{}) []interface{} {
	if l := asList(v); l != nil {
		return l
	}
	return []interface{}{}
}
