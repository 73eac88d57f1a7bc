// Package query builds engine-native query bodies from structured intents.
// Every constructor returns the JSON object that goes under the top-level
// "query" key of a search request.
package query

import "time"

// Query is an engine query body fragment.
type Query map[string]any

// Keyword returns the untokenized form of a text field. Exact-match style
// queries (term, terms, prefix, wildcard, fuzzy) must target this form:
// running them against the analyzed form breaks exact comparison.
func Keyword(field string) string {
	return field + ".keyword"
}

// MatchAll matches every document in the index.
func MatchAll() Query {
	return Query{"match_all": map[string]any{}}
}

// Term matches documents whose keyword field equals value, ignoring case.
// Never use it for free text.
func Term(field, value string) Query {
	return Query{
		"term": map[string]any{
			Keyword(field): map[string]any{
				"value":            value,
				"case_insensitive": true,
			},
		},
	}
}

// Terms matches documents whose keyword field equals any of the values.
func Terms(field string, values []string) Query {
	return Query{
		"terms": map[string]any{
			Keyword(field): values,
		},
	}
}

// Prefix matches documents whose keyword field starts with value.
func Prefix(field, value string) Query {
	return Query{
		"prefix": map[string]any{
			Keyword(field): map[string]any{
				"value": value,
			},
		},
	}
}

// DateRange matches start <= field < end.
func DateRange(field string, start, end time.Time) Query {
	return Query{
		"range": map[string]any{
			field: map[string]any{
				"gte": start.Format(time.RFC3339),
				"lt":  end.Format(time.RFC3339),
			},
		},
	}
}

// DateAfter matches field >= t. Used as a non-binding should clause in
// compound queries.
func DateAfter(field string, t time.Time) Query {
	return Query{
		"range": map[string]any{
			field: map[string]any{
				"gte": t.Format(time.RFC3339),
			},
		},
	}
}

// DateBefore matches field <= t.
func DateBefore(field string, t time.Time) Query {
	return Query{
		"range": map[string]any{
			field: map[string]any{
				"lte": t.Format(time.RFC3339),
			},
		},
	}
}

// NumberRange matches start <= field <= end.
func NumberRange(field string, start, end float64) Query {
	return Query{
		"range": map[string]any{
			field: map[string]any{
				"gte": start,
				"lte": end,
			},
		},
	}
}

// NumberMin matches field >= min.
func NumberMin(field string, min float64) Query {
	return Query{
		"range": map[string]any{
			field: map[string]any{
				"gte": min,
			},
		},
	}
}

// NumberMax matches field <= max.
func NumberMax(field string, max float64) Query {
	return Query{
		"range": map[string]any{
			field: map[string]any{
				"lte": max,
			},
		},
	}
}

// TermFilter matches field equal to value with no keyword rewriting and no
// case folding. Filter-context clauses target fields that are keyword-typed
// already.
func TermFilter(field, value string) Query {
	return Query{
		"term": map[string]any{
			field: map[string]any{
				"value": value,
			},
		},
	}
}

// Wildcard matches the keyword field against a glob pattern, ignoring case.
// `?` stands for exactly one character, `*` for zero or more.
func Wildcard(field, pattern string) Query {
	return Query{
		"wildcard": map[string]any{
			Keyword(field): map[string]any{
				"value":            pattern,
				"case_insensitive": true,
			},
		},
	}
}

// Fuzzy matches the keyword field within maxEdits character edits
// (substitution, insertion, deletion, transposition) of value.
func Fuzzy(field, value string, maxEdits int) Query {
	return Query{
		"fuzzy": map[string]any{
			Keyword(field): map[string]any{
				"value":     value,
				"fuzziness": maxEdits,
			},
		},
	}
}

// Match runs a full-text query against the analyzed field. Terms are
// OR-combined: a document matching any query term scores positively.
func Match(field, text string, maxEdits int) Query {
	return Query{
		"match": map[string]any{
			field: map[string]any{
				"query":     text,
				"fuzziness": maxEdits,
				"operator":  "or",
			},
		},
	}
}

// MatchBoolPrefix runs a prefix-tolerant analyzed match: all tokens but the
// last are matched as terms (with fuzziness when maxEdits > 0), the last as
// a prefix. Users type partial words; a plain match would require exact
// token equality and return nothing for partial input.
func MatchBoolPrefix(field, text string, maxEdits int) Query {
	body := map[string]any{
		"query": text,
	}
	if maxEdits > 0 {
		body["fuzziness"] = maxEdits
	}
	return Query{
		"match_bool_prefix": map[string]any{
			field: body,
		},
	}
}

// Bool combines clauses with the engine's boolean semantics: must is AND and
// scores, mustNot excludes, should boosts without filtering (when must is
// present), filter is AND without scoring. Empty groups are omitted.
func Bool(must, should, mustNot, filter []Query) Query {
	body := map[string]any{}
	if len(must) > 0 {
		body["must"] = must
	}
	if len(should) > 0 {
		body["should"] = should
	}
	if len(mustNot) > 0 {
		body["must_not"] = mustNot
	}
	if len(filter) > 0 {
		body["filter"] = filter
	}
	return Query{"bool": body}
}
