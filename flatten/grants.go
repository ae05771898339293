package flatten

// flattenSDGs produces the sustainable development goal columns.
func (o Options) flattenSDGs(v interface{}) map[string]string {
	var ids, names, scores []string
	for _, e := range asList(v) {
		s := asMap(e)
		ids = append(ids, o.tokenOr(s["id"]))
		names = append(names, o.tokenOr(s["display_name"]))
		scores = append(scores, o.tokenOr(s["score"]))
	}
	return map[string]string{
		"sustainable_development_goals.id":           o.joinTokens(ids),
		"sustainable_development_goals.display_name": o.joinTokens(names),
		"sustainable_development_goals.score":        o.joinTokens(scores),
	}
}

// flattenGrants produces the funder/award triples. An empty award_id
// normalizes like null; the other two fields do not get that
// treatment. The asymmetry matches the export being emulated.
func (o Options) flattenGrants(v interface{}) map[string]string {
	var funders, names, awards []string
	for _, e := range asList(v) {
		g := asMap(e)
		funders = append(funders, o.tokenOr(g["funder"]))
		names = append(names, o.tokenOr(g["funder_display_name"]))
		if s := stringOr(g["award_id"]); s != "" {
			awards = append(awards, s)
		} else {
			awards = append(awards, o.TokenMissing)
		}
	}
	return map[string]string{
		"grants.funder":              o.joinTokens(funders),
		"grants.funder_display_name": o.joinTokens(names),
		"grants.award_id":            o.joinTokens(awards),
	}
}
