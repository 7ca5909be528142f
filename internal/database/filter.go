package database

import (
	"fmt"
	"strings"

	"github.com/RishikeshSreekumar/vibevault/internal/models"
)

// likeEscaper neutralizes LIKE metacharacters so filter criteria match as
// literal substrings.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// filterClause translates the optional filter criteria into an AND-combined
// SQL fragment appended after "WHERE 1=1", with positional args starting at
// $1. Text criteria match as case-insensitive substrings; release_year
// matches the year of release_date exactly, so rows with a NULL release_date
// never match.
func filterClause(filter *models.SongFilter) (string, []interface{}) {
	clause := ""
	args := []interface{}{}

	if filter == nil {
		return clause, args
	}

	substring := func(column string, value *string) {
		if value == nil {
			return
		}
		args = append(args, "%"+likeEscaper.Replace(*value)+"%")
		clause += fmt.Sprintf(" AND %s ILIKE $%d", column, len(args))
	}

	substring("title", filter.Title)
	substring("singer", filter.Singer)
	substring("album", filter.Album)
	substring("composer", filter.Composer)
	substring("genre", filter.Genre)

	if filter.ReleaseYear != nil {
		args = append(args, *filter.ReleaseYear)
		clause += fmt.Sprintf(" AND EXTRACT(YEAR FROM release_date) = $%d", len(args))
	}

	return clause, args
}
