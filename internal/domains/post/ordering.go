package post

import "strings"

// Orderable columns for the post list endpoint
var orderableFields = map[string]string{
	"title":          "p.title",
	"published_date": "p.published_date",
	"created_at":     "p.created_at",
}

// DefaultOrdering shows newest posts first
const DefaultOrdering = "-published_date"

// BuildOrderClause translates an ordering parameter ("field" ascending,
// "-field" descending) into a SQL ORDER BY fragment
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
