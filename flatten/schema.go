package flatten

// Columns is the fixed output header, in order. The order is part of
// the external contract: rows from heterogeneous batches align because
// every row carries exactly this column set, never a derived one.
var Columns = []string{
	// identity
	"id", "doi", "title", "display_name", "publication_year", "publication_date", "language",
	"type", "type_crossref", "indexed_in", "institution_assertions", "countries_distinct_count",
	"institutions_distinct_count", "corresponding_author_ids", "corresponding_institution_ids",
	"fwci", "has_fulltext", "fulltext_origin", "cited_by_count", "is_retracted", "is_paratext",
	"locations_count",
	// misc API data
	"datasets", "versions", "referenced_works_count", "referenced_works", "related_works", "cited_by_api_url",
	// counts_by_year split
	"counts_by_year.year", "counts_by_year.cited_by_count",
	// dates
	"updated_date", "created_date",
	// ids.*
	"ids.openalex", "ids.doi", "ids.mag", "ids.pmid", "ids.pmcid",
	// primary_location.*
	"primary_location.is_oa", "primary_location.landing_page_url", "primary_location.pdf_url",
	"primary_location.source.id", "primary_location.source.display_name", "primary_location.source.issn_l",
	"primary_location.source.issn", "primary_location.source.is_oa", "primary_location.source.is_in_doaj",
	"primary_location.source.is_indexed_in_scopus", "primary_location.source.is_core",
	"primary_location.source.host_organization", "primary_location.source.host_organization_name",
	"primary_location.source.host_organization_lineage", "primary_location.source.host_organization_lineage_names",
	"primary_location.source.type", "primary_location.license", "primary_location.license_id",
	"primary_location.version", "primary_location.is_accepted", "primary_location.is_published",
	// open_access.*
	"open_access.is_oa", "open_access.oa_status", "open_access.oa_url", "open_access.any_repository_has_fulltext",
	// APCs
	"apc_list.value", "apc_list.currency", "apc_list.value_usd", "apc_paid.value", "apc_paid.currency", "apc_paid.value_usd",
	// citation percentiles
	"citation_normalized_percentile.value", "citation_normalized_percentile.is_in_top_1_percent",
	"citation_normalized_percentile.is_in_top_10_percent", "cited_by_percentile_year.min", "cited_by_percentile_year.max",
	// biblio
	"biblio.volume", "biblio.issue", "biblio.first_page", "biblio.last_page",
	// primary_topic.*
	"primary_topic.id", "primary_topic.display_name", "primary_topic.score", "primary_topic.subfield.id",
	"primary_topic.subfield.display_name", "primary_topic.field.id", "primary_topic.field.display_name",
	"primary_topic.domain.id", "primary_topic.domain.display_name",
	// best_oa_location, split into scalar columns
	"best_oa_location.is_oa", "best_oa_location.landing_page_url", "best_oa_location.pdf_url",
	"best_oa_location.source.id", "best_oa_location.source.display_name", "best_oa_location.source.issn_l",
	"best_oa_location.source.issn", "best_oa_location.source.is_oa", "best_oa_location.source.is_in_doaj",
	"best_oa_location.source.is_indexed_in_scopus", "best_oa_location.source.is_core",
	"best_oa_location.source.host_organization", "best_oa_location.source.host_organization_name",
	"best_oa_location.source.host_organization_lineage", "best_oa_location.source.host_organization_lineage_names",
	"best_oa_location.source.type", "best_oa_location.license", "best_oa_location.license_id",
	"best_oa_location.version", "best_oa_location.is_accepted", "best_oa_location.is_published",
	// abstract
	"abstract",
	// authorships.*, ten per-author aligned columns
	"authorships.author_position", "authorships.institutions", "authorships.countries", "authorships.is_corresponding",
	"authorships.raw_author_name", "authorships.raw_affiliation_strings", "authorships.affiliations",
	"authorships.author.id", "authorships.author.display_name", "authorships.author.orcid",
	// topics / keywords / concepts
	"topics.id", "topics.display_name", "topics.score", "topics.subfield.id", "topics.subfield.display_name",
	"topics.field.id", "topics.field.display_name", "topics.domain.id", "topics.domain.display_name",
	"keywords.id", "keywords.display_name", "keywords.score",
	"concepts.id", "concepts.wikidata", "concepts.display_name", "concepts.level", "concepts.score",
	// mesh.*
	"mesh.descriptor_ui", "mesh.descriptor_name", "mesh.qualifier_ui", "mesh.qualifier_name", "mesh.is_major_topic",
	// locations.*
	"locations.is_oa", "locations.landing_page_url", "locations.pdf_url", "locations.license", "locations.license_id",
	"locations.version", "locations.is_accepted", "locations.is_published", "locations.source.id",
	"locations.source.display_name", "locations.source.issn_l", "locations.source.issn", "locations.source.is_oa",
	"locations.source.is_in_doaj", "locations.source.is_indexed_in_scopus", "locations.source.is_core",
	"locations.source.host_organization", "locations.source.host_organization_name",
	"locations.source.host_organization_lineage", "locations.source.host_organization_lineage_names",
	"locations.source.type",
	// sustainable development goals
	"sustainable_development_goals.id", "sustainable_development_goals.display_name", "sustainable_development_goals.score",
	// grants.*
	"grants.funder", "grants.funder_display_name", "grants.award_id",
}
