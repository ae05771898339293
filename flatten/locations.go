package flatten

// locationColumns is the per-location column layout of the repeating
// locations block, in header order.
var locationColumns = []string{
	"locations.is_oa", "locations.landing_page_url", "locations.pdf_url",
	"locations.license", "locations.license_id", "locations.version",
	"locations.is_accepted", "locations.is_published",
	"locations.source.id", "locations.source.display_name",
	"locations.source.issn_l", "locations.source.issn",
	"locations.source.is_oa", "locations.source.is_in_doaj",
	"locations.source.is_indexed_in_scopus", "locations.source.is_core",
	"locations.source.host_organization", "locations.source.host_organization_name",
	"locations.source.host_organization_lineage", "locations.source.host_organization_lineage_names",
	"locations.source.type",
}

// flattenLocations produces the repeating locations.* columns,
// location i in every column. Multi-valued source fields (issn, host
// organization lineages) are joined with the list separator and nested
// as one token, so the same separator appears at two depths. That
// collision is inherited from the export format being emulated and is
// kept on purpose.
func (o Options) flattenLocations(v interface{}) map[string]string {
	acc := make(map[string][]string, len(locationColumns))
	push := func(col, val string) {
		acc[col] = append(acc[col], val)
	}
	for _, e := range asList(v) {
		loc := asMap(e)
		push("locations.is_oa", o.formatBool(loc["is_oa"]))
		push("locations.landing_page_url", o.tokenOr(loc["landing_page_url"]))
		push("locations.pdf_url", o.tokenOr(loc["pdf_url"]))
		push("locations.license", o.tokenOr(loc["license"]))
		push("locations.license_id", o.tokenOr(loc["license_id"]))
		push("locations.version", o.tokenOr(loc["version"]))
		push("locations.is_accepted", o.formatBool(loc["is_accepted"]))
		push("locations.is_published", o.formatBool(loc["is_published"]))

		src := asMap(loc["source"])
		push("locations.source.id", o.tokenOr(src["id"]))
		push("locations.source.display_name", o.tokenOr(src["display_name"]))
		push("locations.source.issn_l", o.tokenOr(src["issn_l"]))
		push("locations.source.issn", o.joinList(asList(src["issn"])))
		push("locations.source.is_oa", o.formatBool(src["is_oa"]))
		push("locations.source.is_in_doaj", o.formatBool(src["is_in_doaj"]))
		push("locations.source.is_indexed_in_scopus", o.formatBool(src["is_indexed_in_scopus"]))
		push("locations.source.is_core", o.formatBool(src["is_core"]))
		push("locations.source.host_organization", o.tokenOr(src["host_organization"]))
		push("locations.source.host_organization_name", o.tokenOr(src["host_organization_name"]))
		push("locations.source.host_organization_lineage", o.joinList(asList(src["host_organization_lineage"])))
		push("locations.source.host_organization_lineage_names", o.joinList(asList(src["host_organization_lineage_names"])))
		push("locations.source.type", o.tokenOr(src["type"]))
	}
	out := make(map[string]string, len(locationColumns))
	for _, col := range locationColumns {
		out[col] = o.joinTokens(acc[col])
	}
	return out
}

// explodeLocation splits a single location object (primary_location or
// best_oa_location) into scalar columns under the given prefix. A nil
// or non-object value yields missing cells throughout; there is no
// list joining at the top level, only for the nested multi-valued
// source fields.
func (o Options) explodeLocation(prefix string, v interface{}) map[string]string {
	loc := asMap(v)
	src := asMap(loc["source"])
	out := make(map[string]string, 21)
	out[prefix+".is_oa"] = o.formatBool(loc["is_oa"])
	out[prefix+".landing_page_url"] = o.orMissing(loc["landing_page_url"])
	out[prefix+".pdf_url"] = o.orMissing(loc["pdf_url"])
	out[prefix+".source.id"] = o.orMissing(src["id"])
	out[prefix+".source.display_name"] = o.orMissing(src["display_name"])
	out[prefix+".source.issn_l"] = o.orMissing(src["issn_l"])
	out[prefix+".source.issn"] = o.joinList(asList(src["issn"]))
	out[prefix+".source.is_oa"] = o.formatBool(src["is_oa"])
	out[prefix+".source.is_in_doaj"] = o.formatBool(src["is_in_doaj"])
	out[prefix+".source.is_indexed_in_scopus"] = o.formatBool(src["is_indexed_in_scopus"])
	out[prefix+".source.is_core"] = o.formatBool(src["is_core"])
	out[prefix+".source.host_organization"] = o.orMissing(src["host_organization"])
	out[prefix+".source.host_organization_name"] = o.orMissing(src["host_organization_name"])
	out[prefix+".source.host_organization_lineage"] = o.joinList(asList(src["host_organization_lineage"]))
	out[prefix+".source.host_organization_lineage_names"] = o.joinList(asList(src["host_organization_lineage_names"]))
	out[prefix+".source.type"] = o.orMissing(src["type"])
	out[prefix+".license"] = o.orMissing(loc["license"])
	out[prefix+".license_id"] = o.orMissing(loc["license_id"])
	out[prefix+".version"] = o.orMissing(loc["version"])
	out[prefix+".is_accepted"] = o.formatBool(loc["is_accepted"])
	out[prefix+".is_published"] = o.formatBool(loc["is_published"])
	return out
}
