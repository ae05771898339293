package flatten

// flattenMesh produces the MeSH descriptor/qualifier columns, with the
// is_major_topic flag rendered per boolean style.
func (o Options) flattenMesh(v interface{}) map[string]string {
	var dUI, dName, qUI, qName, major []string
	for _, e := range asList(v) {
		m := asMap(e)
		dUI = append(dUI, o.tokenOr(m["descriptor_ui"]))
		dName = append(dName, o.tokenOr(m["descriptor_name"]))
		qUI = append(qUI, o.tokenOr(m["qualifier_ui"]))
		qName = append(qName, o.tokenOr(m["qualifier_name"]))
		major = append(major, o.formatBool(m["is_major_topic"]))
	}
	return map[string]string{
		"mesh.descriptor_ui":   o.joinTokens(dUI),
		"mesh.descriptor_name": o.joinTokens(dName),
		"mesh.qualifier_ui":    o.joinTokens(qUI),
		"mesh.qualifier_name":  o.joinTokens(qName),
		"mesh.is_major_topic":  o.joinTokens(major),
	}
}
