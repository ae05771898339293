package flatten

import (
	"strings"

	"oa2table/normal"
)

// directFields maps output columns to dotted record paths rendered by
// the scalar normalizer. Everything repeating or nested beyond plain
// scalars is owned by a block flattener instead.
var directFields = []struct{ col, path string }{
	{"id", "id"},
	{"doi", "doi"},
	{"title", "title"},
	{"display_name", "display_name"},
	{"publication_year", "publication_year"},
	{"publication_date", "publication_date"},
	{"language", "language"},
	{"type", "type"},
	{"type_crossref", "type_crossref"},
	{"countries_distinct_count", "countries_distinct_count"},
	{"institutions_distinct_count", "institutions_distinct_count"},
	{"fwci", "fwci"},
	{"has_fulltext", "has_fulltext"},
	{"fulltext_origin", "fulltext_origin"},
	{"cited_by_count", "cited_by_count"},
	{"is_retracted", "is_retracted"},
	{"is_paratext", "is_paratext"},
	{"locations_count", "locations_count"},
	{"cited_by_api_url", "cited_by_api_url"},
	{"updated_date", "updated_date"},
	{"created_date", "created_date"},
	{"biblio.volume", "biblio.volume"},
	{"biblio.issue", "biblio.issue"},
	{"biblio.first_page", "biblio.first_page"},
	{"biblio.last_page", "biblio.last_page"},
	{"primary_topic.id", "primary_topic.id"},
	{"primary_topic.display_name", "primary_topic.display_name"},
	{"primary_topic.score", "primary_topic.score"},
	{"primary_topic.subfield.id", "primary_topic.subfield.id"},
	{"primary_topic.subfield.display_name", "primary_topic.subfield.display_name"},
	{"primary_topic.field.id", "primary_topic.field.id"},
	{"primary_topic.field.display_name", "primary_topic.field.display_name"},
	{"primary_topic.domain.id", "primary_topic.domain.id"},
	{"primary_topic.domain.display_name", "primary_topic.domain.display_name"},
}

// scalarCell normalizes one directly mapped value. Titles and raw*
// columns get whitespace cleanup; booleans render per style; stray
// lists are joined; stray objects keep the legacy debug rendering.
func (o Options) scalarCell(col string, v interface{}) string {
	if s, ok := v.(string); ok {
		if col == "title" || col == "display_name" || strings.HasPrefix(col, "raw") {
			v = normal.CollapseWS(s)
		}
	}
	switch t := v.(type) {
	case bool:
		return o.formatBool(t)
	case []interface{}:
		return o.joinList(t)
	case map[string]interface{}:
		return legacyRepr(t)
	}
	return o.normMissing(v)
}

func merge(dst, src map[string]string) {
	for k, v := range src {
		dst[k] = v
	}
}

// ToRow flattens one work record into a column to cell mapping
// covering the full schema. Each block flattener owns a disjoint
// column subset; any column no rule touched is filled with the missing
// cell marker at the end, so a row never lacks a schema column.
func (o Options) ToRow(w Work) map[string]string {
	row := make(map[string]string, len(Columns))

	for _, f := range directFields {
		row[f.col] = o.scalarCell(f.col, w.get(f.path))
	}

	merge(row, o.flattenCountsByYear(w["counts_by_year"]))

	// datasets and versions are rarely populated and officially
	// undocumented; they keep the legacy debug rendering untouched for
	// compatibility.
	row["datasets"] = o.reprOrMissing(w["datasets"])
	row["versions"] = o.reprOrMissing(w["versions"])
	row["referenced_works_count"] = o.normMissing(w["referenced_works_count"])
	row["referenced_works"] = o.joinList(asList(w["referenced_works"]))
	row["related_works"] = o.joinList(asList(w["related_works"]))

	ids := asMap(w["ids"])
	row["ids.openalex"] = o.normMissing(ids["openalex"])
	row["ids.doi"] = o.normMissing(ids["doi"])
	row["ids.mag"] = o.normMissing(ids["mag"])
	row["ids.pmid"] = o.normMissing(ids["pmid"])
	row["ids.pmcid"] = o.normMissing(ids["pmcid"])

	row["indexed_in"] = o.joinList(asList(w["indexed_in"]))
	// institution_assertions is present in the export header but not
	// populated by the API.
	row["institution_assertions"] = o.CellMissing
	row["corresponding_author_ids"] = o.joinList(asList(w["corresponding_author_ids"]))
	row["corresponding_institution_ids"] = o.joinList(asList(w["corresponding_institution_ids"]))

	merge(row, o.explodeLocation("primary_location", w["primary_location"]))

	oa := asMap(w["open_access"])
	row["open_access.is_oa"] = o.formatBool(oa["is_oa"])
	row["open_access.oa_status"] = o.orMissing(oa["oa_status"])
	row["open_access.oa_url"] = o.orMissing(oa["oa_url"])
	row["open_access.any_repository_has_fulltext"] = o.formatBool(oa["any_repository_has_fulltext"])

	apcList := asMap(w["apc_list"])
	row["apc_list.value"] = o.normMissing(apcList["value"])
	row["apc_list.currency"] = o.orMissing(apcList["currency"])
	row["apc_list.value_usd"] = o.normMissing(apcList["value_usd"])
	apcPaid := asMap(w["apc_paid"])
	row["apc_paid.value"] = o.normMissing(apcPaid["value"])
	row["apc_paid.currency"] = o.orMissing(apcPaid["currency"])
	row["apc_paid.value_usd"] = o.normMissing(apcPaid["value_usd"])

	cnp := asMap(w["citation_normalized_percentile"])
	row["citation_normalized_percentile.value"] = o.normMissing(cnp["value"])
	row["citation_normalized_percentile.is_in_top_1_percent"] = o.formatBool(cnp["is_in_top_1_percent"])
	row["citation_normalized_percentile.is_in_top_10_percent"] = o.formatBool(cnp["is_in_top_10_percent"])
	cpy := asMap(w["cited_by_percentile_year"])
	row["cited_by_percentile_year.min"] = o.normMissing(cpy["min"])
	row["cited_by_percentile_year.max"] = o.normMissing(cpy["max"])

	merge(row, o.explodeLocation("best_oa_location", w["best_oa_location"]))

	if abs := rebuildAbstract(w["abstract_inverted_index"]); abs != "" {
		row["abstract"] = normal.CollapseWS(abs)
	} else if s, ok := w["abstract"].(string); ok {
		row["abstract"] = normal.CollapseWS(s)
	} else {
		row["abstract"] = o.normMissing(w["abstract"])
	}

	merge(row, o.flattenAuthorships(w["authorships"]))
	merge(row, o.flattenTopics(w["topics"]))
	merge(row, o.flattenKeywords(w["keywords"]))
	merge(row, o.flattenConcepts(w["concepts"]))
	merge(row, o.flattenMesh(w["mesh"]))
	merge(row, o.flattenLocations(w["locations"]))
	merge(row, o.flattenSDGs(w["sustainable_development_goals"]))
	merge(row, o.flattenGrants(w["grants"]))

	for _, col := range Columns {
		if _, ok := row[col]; !ok {
			row[col] = o.CellMissing
		}
	}
	return row
}

func (o Options) reprOrMissing(v interface{}) string {
	if v == nil {
		return o.CellMissing
	}
	return legacyRepr(v)
}
