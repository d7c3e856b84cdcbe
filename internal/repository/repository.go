// Package repository holds the gorm-backed stores for games and reviews.
// Every method takes the request context; errors are wrapped with the
// operation that failed and ErrNotFound marks a missing row.
package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned when the requested row does not exist.
var ErrNotFound = errors.New("record not found")

// Sort is a whitelisted ORDER BY column.
type Sort struct {
	Column string
	Desc   bool
}

// DefaultSort orders by creation time, newest first.
var DefaultSort = Sort{Column: "created_at", Desc: true}

// Wire field names accepted by sortBy, mapped to their columns.
var (
	GameSortColumns = map[string]string{
		"titulo":             "title",
		"genero":             "genre",
		"plataforma":         "platform",
		"añoLanzamiento":     "release_year",
		"desarrollador":      "developer",
		"completado":         "completed",
		"fechaCreacion":      "created_at",
		"createdAt":          "created_at",
		"fechaActualizacion": "updated_at",
		"updatedAt":          "updated_at",
	}
	ReviewSortColumns = map[string]string{
		"puntuacion":         "score",
		"horasJugadas":       "hours_played",
		"dificultad":         "difficulty",
		"recomendaria":       "would_recommend",
		"fechaCreacion":      "created_at",
		"createdAt":          "created_at",
		"fechaActualizacion": "updated_at",
		"updatedAt":          "updated_at",
	}
)

// ParseSort resolves sortBy against columns. Unknown fields fall back to the
// creation time; only "desc" sorts descending.
func ParseSort(columns map[string]string, sortBy, sortOrder string) Sort {
	column, ok := columns[sortBy]
	if !ok {
		column = DefaultSort.Column
	}
	return Sort{Column: column, Desc: sortOrder == "desc"}
}

func (s Sort) orderBy(table string) clause.OrderBy {
	if s.Column == "" {
		s = DefaultSort
	}
	return clause.OrderBy{Columns: []clause.OrderByColumn{
		{Column: clause.Column{Table: table, Name: s.Column}, Desc: s.Desc},
		// id keeps ties in a stable order
		{Column: clause.Column{Table: table, Name: "id"}, Desc: s.Desc},
	}}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching s anywhere.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
