package web

import (
	"fmt"
	"strings"
)

// Mode tells a page which view of its entity to render.
type Mode string

const (
	ModeDashboard Mode = "dashboard"
	ModeList      Mode = "list"
	ModeCreate    Mode = "create"
	ModeEdit      Mode = "edit"
)

// Route maps a path pattern and a symbolic name to a page component.
// Patterns are static or carry named segments such as ":id".
type Route struct {
	Path      string
	Name      string
	Component *Component
}

// Entity is the first path segment, empty for the dashboard.
func (r Route) Entity() string {
	return strings.SplitN(strings.TrimPrefix(r.Path, "/"), "/", 2)[0]
}

func (r Route) Mode() Mode {
	switch {
	case r.Path == "/":
		return ModeDashboard
	case strings.HasSuffix(r.Path, "/insert"):
		return ModeCreate
	case strings.Contains(r.Path, "/update/"):
		return ModeEdit
	default:
		return ModeList
	}
}

// match reports whether path fits the route pattern and returns the named segments.
func (r Route) match(path string) (map[string]string, bool) {
	pattern := splitPath(r.Path)
	segments := splitPath(path)
	if len(pattern) != len(segments) {
		return nil, false
	}

	params := map[string]string{}
	for i, p := range pattern {
		if strings.HasPrefix(p, ":") {
			if segments[i] == "" {
				return nil, false
			}
			params[p[1:]] = segments[i]
			continue
		}
		if p != segments[i] {
			return nil, false
		}
	}
	return params, true
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

// Table is the ordered page route table.
type Table struct {
	routes []Route
	byName map[string]int
}

// NewTable builds the clinic page routes, loading each chunk through load.
func NewTable(load Loader) *Table {
	chunks := map[string]*chunk{}
	component := func(chunkName, name string) *Component {
		c, ok := chunks[chunkName]
		if !ok {
			c = newChunk(chunkName, load)
			chunks[chunkName] = c
		}
		return &Component{Name: name, chunk: c}
	}

	dashboard := component("dashboard", "DashboardPage")
	statusList := component("status", "StatusListPage")
	statusForm := component("status", "StatusFormPage")
	specialtyList := component("specialty", "SpecialtyListPage")
	specialtyForm := component("specialty", "SpecialtyFormPage")
	patientList := component("patient", "PatientListPage")
	patientForm := component("patient", "PatientFormPage")
	doctorList := component("doctor", "DoctorListPage")
	doctorForm := component("doctor", "DoctorFormPage")
	appointmentList := component("appointment", "AppointmentListPage")

	routes := []Route{
		{Path: "/", Name: "dashboard", Component: dashboard},
		{Path: "/status", Name: "status-list", Component: statusList},
		{Path: "/status/insert", Name: "status-insert", Component: statusForm},
		{Path: "/status/update/:id", Name: "status-update", Component: statusForm},
		{Path: "/specialty", Name: "specialty-list", Component: specialtyList},
		{Path: "/specialty/insert", Name: "specialty-insert", Component: specialtyForm},
		{Path: "/specialty/update/:id", Name: "specialty-update", Component: specialtyForm},
		{Path: "/patient", Name: "patient-list", Component: patientList},
		{Path: "/patient/insert", Name: "patient-insert", Component: patientForm},
		{Path: "/patient/update/:id", Name: "patient-update", Component: patientForm},
		{Path: "/doctor", Name: "doctor-list", Component: doctorList},
		{Path: "/doctor/insert", Name: "doctor-insert", Component: doctorForm},
		{Path: "/doctor/update/:id", Name: "doctor-update", Component: doctorForm},
		{Path: "/appointment", Name: "appointment-list", Component: appointmentList},
	}

	t := &Table{routes: routes, byName: make(map[string]int, len(routes))}
	for i, r := range routes {
		t.byName[r.Name] = i
	}
	return t
}

// Routes returns the table in declaration order.
func (t *Table) Routes() []Route {
	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	return out
}

// Match returns the first route whose pattern matches path, with its params.
func (t *Table) Match(path string) (Route, map[string]string, bool) {
	for _, r := range t.routes {
		if params, ok := r.match(path); ok {
			return r, params, true
		}
	}
	return Route{}, nil, false
}

// Lookup finds a route by name.
func (t *Table) Lookup(name string) (Route, bool) {
	i, ok := t.byName[name]
	if !ok {
		return Route{}, false
	}
	return t.routes[i], true
}

// URLFor builds the path of a named route, filling its named segments.
func (t *Table) URLFor(name string, params map[string]string) (string, error) {
	r, ok := t.Lookup(name)
	if !ok {
		return "", fmt.Errorf("unknown route %q", name)
	}

	segments := splitPath(r.Path)
	for i, s := range segments {
		if !strings.HasPrefix(s, ":") {
			continue
		}
		value, ok := params[s[1:]]
		if !ok || value == "" {
			return "", fmt.Errorf("route %q: missing param %q", name, s[1:])
		}
		segments[i] = value
	}
	return "/" + strings.Join(segments, "/"), nil
}
