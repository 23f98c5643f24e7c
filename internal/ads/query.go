package ads

import (
	"fmt"
	"strings"
)

// BuildQuery assembles a GAQL query from structured parts. Condition and
// ordering fragments are passed through verbatim; the remote query engine is
// the validation boundary.
func BuildQuery(resource string, fields []string, conditions []string, orderings []string, limit int64) string {
	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(strings.Join(fields, ", "))
	b.WriteString(" FROM ")
	b.WriteString(resource)

	if len(conditions) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(conditions, " AND "))
	}
	if len(orderings) > 0 {
		b.WriteString(" ORDER BY ")
		b.WriteString(strings.Join(orderings, ", "))
	}
	if limit > 0 {
		b.WriteString(fmt.Sprintf(" LIMIT %d", limit))
	}
	return b.String()
}

// PreprocessGAQL appends omit_unselected_resource_names=true to a query that
// does not already set it. Queries that already carry a PARAMETERS clause with
// include_drafts get the flag appended to that clause instead of a second one.
// Applying it twice yields the same string as applying it once.
func PreprocessGAQL(query string) string {
	if strings.Contains(query, "omit_unselected_resource_names") {
		return query
	}
	if strings.Contains(query, "PARAMETERS") && strings.Contains(query, "include_drafts") {
		return query + " omit_unselected_resource_names=true"
	}
	return query + " PARAMETERS omit_unselected_resource_names=true"
}
