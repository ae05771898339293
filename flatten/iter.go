package flatten

// IterWorks extracts individual work records from a decoded payload,
// preserving input order. Accepted shapes: a single work object, an
// array of work objects, or an API response envelope with a "results"
// array. Non-object array elements are skipped; any other payload
// shape yields no records, which is not an error.
func IterWorks(payload interface{}) []Work {
	switch t := payload.(type) {
	case map[string]interface{}:
		if results, ok := t["results"].([]interface{}); ok {
			return collectWorks(results)
		}
		return []Work{Work(t)}
	case []interface{}:
		return collectWorks(t)
	}
	return nil
}

func collectWorks(items []interface{}) []Work {
	var works []Work
	for _, e := range items {
		if m, ok := e.(map[string]interface{}); ok {
			works = append(works, Work(m))
		}
	}
	return works
}
