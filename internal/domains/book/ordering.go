package book

import "strings"

// Orderable columns for the list endpoint. The external field name maps
// to a qualified column so the ORDER BY clause can never be injected.
// Snapshot-specific field sets are configuration: extend the map, not
// the SQL.
var orderableFields = map[string]string{
	"title":            "b.title",
	"publication_year": "b.publication_year",
	"created_at":       "b.created_at",
}

// DefaultOrdering sorts by the primary display field
const DefaultOrdering = "title"

// BuildOrderClause translates an ordering parameter ("field" ascending,
// "-field" descending) into a SQL ORDER BY fragment. An empty parameter
// falls back to DefaultOrdering. Unknown fields are rejected.
func BuildOrderClause(ordering string) (string, error) {
	if ordering == "" {
		ordering = DefaultOrdering
	}

	direction := "ASC"
	field := ordering
	if strings.HasPrefix(ordering, "-") {
		direction = "DESC"
		field = strings.TrimPrefix(ordering, "-")
	}

	column, ok := orderableFields[field]
	if !ok {
		return "", ErrInvalidOrdering
	}

	return column + " " + direction, nil
}
