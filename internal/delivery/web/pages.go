package web

import (
	"bytes"
	"embed"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
)

//go:embed templates/*.html
var templateFS embed.FS

// DefaultTable returns the route table backed by the embedded templates.
func DefaultTable() *Table {
	return NewTable(TemplateLoader(templateFS))
}

type entityInfo struct {
	title    string
	resource string
	options  []string
}

// entities maps a route entity to its API resource and the lookup lists its form needs.
var entities = map[string]entityInfo{
	"status":      {title: "Statuses", resource: "statuses"},
	"specialty":   {title: "Specialties", resource: "specialties"},
	"patient":     {title: "Patients", resource: "patients", options: []string{"statuses"}},
	"doctor":      {title: "Doctors", resource: "doctors", options: []string{"specialties", "statuses"}},
	"appointment": {title: "Appointments", resource: "appointments"},
}

type Link struct {
	Title string
	URL   string
}

// PageData is what every page template receives.
type PageData struct {
	Title     string
	Route     string
	Page      string
	Mode      Mode
	ID        string
	Endpoint  string
	Options   map[string]string
	Links     []Link
	ListURL   string
	InsertURL string
	UpdateURL string
}

// Pages serves the route table as HTML.
type Pages struct {
	table    *Table
	basePath string
	log      *logrus.Logger
}

func NewPages(table *Table, basePath string, log *logrus.Logger) *Pages {
	return &Pages{
		table:    table,
		basePath: strings.TrimRight(basePath, "/"),
		log:      log,
	}
}

func (p *Pages) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	route, params, ok := p.table.Match(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}

	page, err := route.Component.Resolve()
	if err != nil {
		p.log.WithError(err).WithField("route", route.Name).Error("Failed to load page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := page.Execute(&buf, p.pageData(route, params)); err != nil {
		p.log.WithError(err).WithField("route", route.Name).Error("Failed to render page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodGet {
		w.Write(buf.Bytes())
	}
}

func (p *Pages) pageData(route Route, params map[string]string) PageData {
	data := PageData{
		Title: "Clinic",
		Route: route.Name,
		Page:  route.Component.Name,
		Mode:  route.Mode(),
		ID:    params["id"],
	}

	entity := route.Entity()
	info, ok := entities[entity]
	if !ok {
		for _, r := range p.table.Routes() {
			if r.Mode() != ModeList {
				continue
			}
			data.Links = append(data.Links, Link{Title: entities[r.Entity()].title, URL: r.Path})
		}
		return data
	}

	data.Title = info.title
	data.Endpoint = p.basePath + "/" + info.resource
	if data.Mode == ModeEdit {
		data.Endpoint += "/" + url.PathEscape(data.ID)
	}

	if len(info.options) > 0 && data.Mode != ModeList {
		data.Options = make(map[string]string, len(info.options))
		for _, o := range info.options {
			data.Options[o] = p.basePath + "/" + o + "/options"
		}
	}

	data.ListURL, _ = p.table.URLFor(entity+"-list", nil)
	data.InsertURL, _ = p.table.URLFor(entity+"-insert", nil)
	data.UpdateURL, _ = p.table.URLFor(entity+"-update", map[string]string{"id": ":id"})

	return data
}
