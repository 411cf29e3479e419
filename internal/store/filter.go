package store

import "strings"

// ILike is a case-insensitive pattern match against one column.
// Pattern uses SQL LIKE wildcards.
type ILike struct {
	Column  string
	Pattern string
}

// String renders the clause in the backend's filter syntax,
// e.g. "title.ilike.%foo%".
func (c ILike) String() string {
	return c.Column + ".ilike." + c.Pattern
}

// OrFilter matches a row when any of its clauses matches.
type OrFilter []ILike

// String renders the filter as comma-separated clauses,
// e.g. "title.ilike.%foo%,content.ilike.%foo%".
func (f OrFilter) String() string {
	parts := make([]string, len(f))
	for i, c := range f {
		parts[i] = c.String()
	}
	return strings.Join(parts, ",")
}

// ContainsAny builds a filter matching rows where any of the columns
// contains query as a substring, ignoring case.
func ContainsAny(query string, columns ...string) OrFilter {
	pattern := "%" + query + "%"
	filter := make(OrFilter, 0, len(columns))
	for _, col := range columns {
		filter = append(filter, ILike{Column: col, Pattern: pattern})
	}
	return filter
}
