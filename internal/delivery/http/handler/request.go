package handler

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"clinic-admin/internal/delivery/dto"
	"clinic-admin/pkg/pagination"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
)

// decodeJSON reads a single JSON document from the request body.
func decodeJSON(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	return decoder.Decode(dst)
}

// pathID parses the {id} route variable as a positive integer.
func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// queryParser reads list filters from the query string. Parameters that are
// present but unparsable are collected as field errors keyed by name.
type queryParser struct {
	values url.Values
	errs   map[string]string
}

func newQueryParser(r *http.Request) *queryParser {
	return &queryParser{values: r.URL.Query(), errs: map[string]string{}}
}

// page reads page and itemsPerPage; absent values take the defaults.
func (p *queryParser) page() dto.PageRequest {
	req := dto.PageRequest{
		Page:         pagination.DefaultPage,
		ItemsPerPage: pagination.DefaultItemsPerPage,
	}
	if v := p.intValue("page"); v != nil {
		req.Page = *v
	}
	if v := p.intValue("itemsPerPage"); v != nil {
		req.ItemsPerPage = *v
	}
	return req
}

func (p *queryParser) intValue(key string) *int {
	raw := strings.TrimSpace(p.values.Get(key))
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.errs[key] = key + " must be an integer"
		return nil
	}
	return &v
}

func (p *queryParser) stringValue(key string) *string {
	if !p.values.Has(key) {
		return nil
	}
	v := p.values.Get(key)
	return &v
}

func (p *queryParser) failed() bool {
	return len(p.errs) > 0
}
