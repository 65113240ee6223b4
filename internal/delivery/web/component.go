package web

import (
	"fmt"
	"html/template"
	"io/fs"
	"sync"
)

// Loader parses the templates of one chunk.
type Loader func(chunk string) (*template.Template, error)

// chunk groups the page components of one entity. It is resolved at most
// once; a failed resolution is retried on the next request.
type chunk struct {
	name string
	load Loader

	mu       sync.Mutex
	resolved bool
	tmpl     *template.Template
}

func newChunk(name string, load Loader) *chunk {
	return &chunk{name: name, load: load}
}

func (c *chunk) resolve() (*template.Template, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.resolved {
		return c.tmpl, nil
	}

	tmpl, err := c.load(c.name)
	if err != nil {
		return nil, fmt.Errorf("load chunk %s: %w", c.name, err)
	}

	c.tmpl = tmpl
	c.resolved = true
	return tmpl, nil
}

// Component is a page whose template lives in a lazily loaded chunk.
type Component struct {
	Name  string
	chunk *chunk
}

// Chunk names the group the component is loaded with.
func (c *Component) Chunk() string {
	return c.chunk.name
}

// Resolve loads the component's chunk if needed and returns its template.
func (c *Component) Resolve() (*template.Template, error) {
	tmpl, err := c.chunk.resolve()
	if err != nil {
		return nil, err
	}

	page := tmpl.Lookup(c.Name)
	if page == nil {
		return nil, fmt.Errorf("chunk %s has no page %s", c.chunk.name, c.Name)
	}
	return page, nil
}

// TemplateLoader parses the shared layout plus templates/<chunk>.html from fsys.
func TemplateLoader(fsys fs.FS) Loader {
	return func(chunk string) (*template.Template, error) {
		return template.ParseFS(fsys, "templates/layout.html", "templates/"+chunk+".html")
	}
}
