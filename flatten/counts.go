package flatten

// flattenCountsByYear splits counts_by_year into two strictly parallel
// columns: index i holds year i and its cited-by count. Non-object
// array entries are skipped.
func (o Options) flattenCountsByYear(v interface{}) map[string]string {
	var years, counts []string
	for _, e := range asList(v) {
		c := asMap(e)
		if c == nil {
			continue
		}
		years = append(years, o.tokenOr(c["year"]))
		counts = append(counts, o.tokenOr(c["cited_by_count"]))
	}
	return map[string]string{
		"counts_by_year.year":           o.joinTokens(years),
		"counts_by_year.cited_by_count": o.joinTokens(counts),
	}
}
