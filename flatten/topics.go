package flatten

// flattenTopics produces the repeating topic hierarchy columns. Topic
// i contributes slot i of every column, including the subfield, field
// and domain levels.
func (o Options) flattenTopics(v interface{}) map[string]string {
	var ids, names, scores, sfIDs, sfNames, fIDs, fNames, dIDs, dNames []string
	for _, e := range asList(v) {
		t := asMap(e)
		ids = append(ids, o.tokenOr(t["id"]))
		names = append(names, o.tokenOr(t["display_name"]))
		scores = append(scores, o.tokenOr(t["score"]))
		sub, field, dom := asMap(t["subfield"]), asMap(t["field"]), asMap(t["domain"])
		sfIDs = append(sfIDs, o.tokenOr(sub["id"]))
		sfNames = append(sfNames, o.tokenOr(sub["display_name"]))
		fIDs = append(fIDs, o.tokenOr(field["id"]))
		fNames = append(fNames, o.tokenOr(field["display_name"]))
		dIDs = append(dIDs, o.tokenOr(dom["id"]))
		dNames = append(dNames, o.tokenOr(dom["display_name"]))
	}
	return map[string]string{
		"topics.id":                    o.joinTokens(ids),
		"topics.display_name":          o.joinTokens(names),
		"topics.score":                 o.joinTokens(scores),
		"topics.subfield.id":           o.joinTokens(sfIDs),
		"topics.subfield.display_name": o.joinTokens(sfNames),
		"topics.field.id":              o.joinTokens(fIDs),
		"topics.field.display_name":    o.joinTokens(fNames),
		"topics.domain.id":             o.joinTokens(dIDs),
		"topics.domain.display_name":   o.joinTokens(dNames),
	}
}

func (o Options) flattenKeywords(v interface{}) map[string]string {
	var ids, names, scores []string
	for _, e := range asList(v) {
		k := asMap(e)
		ids = append(ids, o.tokenOr(k["id"]))
		names = append(names, o.tokenOr(k["display_name"]))
		scores = append(scores, o.tokenOr(k["score"]))
	}
	return map[string]string{
		"keywords.id":           o.joinTokens(ids),
		"keywords.display_name": o.joinTokens(names),
		"keywords.score":        o.joinTokens(scores),
	}
}

func (o Options) flattenConcepts(v interface{}) map[string]string {
	var ids, wikidata, names, levels, scores []string
	for _, e := range asList(v) {
		c := asMap(e)
		ids = append(ids, o.tokenOr(c["id"]))
		wikidata = append(wikidata, o.tokenOr(c["wikidata"]))
		names = append(names, o.tokenOr(c["display_name"]))
		levels = append(levels, o.tokenOr(c["level"]))
		scores = append(scores, o.tokenOr(c["score"]))
	}
	return map[string]string{
		"concepts.id":           o.joinTokens(ids),
		"concepts.wikidata":     o.joinTokens(wikidata),
		"concepts.display_name": o.joinTokens(names),
		"concepts.level":        o.joinTokens(levels),
		"concepts.score":        o.joinTokens(scores),
	}
}
