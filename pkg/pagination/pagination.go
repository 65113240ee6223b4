// Package pagination holds the page/itemsPerPage arithmetic shared by list endpoints.
package pagination

import "math"

const (
	DefaultPage         = 1
	DefaultItemsPerPage = 10
	MaxItemsPerPage     = 100
)

// Offset returns the number of rows to skip for a 1-based page. Pages past
// what an int can address saturate at math.MaxInt.
func Offset(page, itemsPerPage int) int {
	if page < 1 || itemsPerPage < 1 {
		return 0
	}
	if page-1 > math.MaxInt/itemsPerPage {
		return math.MaxInt
	}
	return (page - 1) * itemsPerPage
}

// ReconcileTotal keeps a reported total consistent with the rows returned:
// a count taken before concurrent inserts may lag behind the page itself.
func ReconcileTotal(total int64, items int) int64 {
	if int64(items) > total {
		return int64(items)
	}
	return total
}
