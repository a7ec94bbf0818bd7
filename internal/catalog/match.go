package catalog

import (
	"strings"

	"tuisearch/internal/domain"
)

// Match returns the entries matching query, ignoring case. Entries whose term
// starts with the query come first, then entries containing it in the term,
// then entries matching only on the detail. Catalog order is kept within each
// group. An empty query matches everything.
func Match(entries []domain.Entry, query string) []domain.Entry {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return append([]domain.Entry(nil), entries...)
	}

	var prefix, contains, detail []domain.Entry
	for _, e := range entries {
		term := strings.ToLower(e.Term)
		switch {
		case strings.HasPrefix(term, query):
			prefix = append(prefix, e)
		case strings.Contains(term, query):
			contains = append(contains, e)
		case e.Detail != "" && strings.Contains(strings.ToLower(e.Detail), query):
			detail = append(detail, e)
		}
	}

	results := append(prefix, contains...)
	return append(results, detail...)
}
