package repository

import (
	"strings"

	"clinic-admin/internal/domain/entity"

	"gorm.io/gorm"
)

// paginate applies the offset window of a list query.
func paginate(page entity.Page) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page.Limit > 0 {
			db = db.Limit(page.Limit)
		}
		if page.Offset > 0 {
			db = db.Offset(page.Offset)
		}
		return db
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern matches value anywhere in the column. LIKE wildcards in value
// are escaped so they match literally.
func likePattern(value string) string {
	return "%" + likeEscaper.Replace(value) + "%"
}

// ilike builds a case-insensitive condition for likePattern arguments.
func ilike(column string) string {
	return column + ` ILIKE ? ESCAPE '\'`
}
