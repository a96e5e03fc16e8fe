package gorm

import (
	"fmt"
	"strings"

	"github.com/coralstream/catalog/internal/domain"
)

var (
	videoSortColumns      = map[string]string{"title": "title", "created_at": "created_at", "launched_at": "launched_at"}
	categorySortColumns   = map[string]string{"name": "name", "created_at": "created_at"}
	genreSortColumns      = map[string]string{"name": "name", "created_at": "created_at"}
	castMemberSortColumns = map[string]string{"name": "name", "created_at": "created_at", "type": "type"}
)

// orderClause maps the query's sort field through a per-model whitelist so
// user input never reaches the ORDER BY clause directly.
func orderClause(query domain.SearchQuery, columns map[string]string) string {
	column, ok := columns[strings.ToLower(query.Sort)]
	if !ok {
		column = "created_at"
	}
	direction := "ASC"
	if strings.EqualFold(query.Direction, "desc") {
		direction = "DESC"
	}
	return fmt.Sprintf("%s %s", column, direction)
}
