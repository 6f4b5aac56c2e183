package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500

	orderByCreated = "created_at"
	orderByPrice   = "price"
	orderByTitle   = "title"
)

// validOrderBy maps allowed OrderBy values to their SQL column expressions.
var validOrderBy = map[string]string{
	orderByCreated: "created_at DESC",
	orderByPrice:   "price ASC",
	orderByTitle:   "title ASC",
}

const defaultOrderBy = "created_at DESC"

const baseFavoritesSelect = "SELECT " + favoriteColumns + " FROM favorites"

const countFavoritesSelect = "SELECT COUNT(*) FROM favorites"

// ToSQL builds the data and count queries for q along with their
// positional parameters. A nil query lists everything with defaults.
func (q *FavoriteQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	if q == nil {
		q = &FavoriteQuery{}
	}

	var conditions []string
	add := func(format string, v any) {
		args = append(args, v)
		conditions = append(conditions, fmt.Sprintf(format, len(args)))
	}

	if q.Currency != nil {
		add("currency = $%d", *q.Currency)
	}
	if q.MinPrice != nil {
		add("price >= $%d", *q.MinPrice)
	}
	if q.MaxPrice != nil {
		add("price <= $%d", *q.MaxPrice)
	}
	if q.Title != nil {
		add("title ILIKE '%%' || $%d || '%%'", *q.Title)
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	orderClause := defaultOrderBy
	if col, ok := validOrderBy[q.OrderBy]; ok {
		orderClause = col
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	limit = min(limit, maxLimit)

	offset := max(q.Offset, 0)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s, id LIMIT %d OFFSET %d",
		baseFavoritesSelect, whereClause, orderClause, limit, offset,
	)
	countSQL = countFavoritesSelect + whereClause

	return dataSQL, countSQL, args
}
