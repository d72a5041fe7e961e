package http

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"os"

	"github.com/fwojciec/simplesearch"
)

//go:embed templates/*.html
var defaultTemplates embed.FS

// Template names understood by RenderTemplate.
const (
	TemplateForm    = "form"
	TemplateResults = "results"
	TemplateLayout  = "layout"
)

// Templates renders the search form, search results, and page layout.
type Templates struct {
	templates map[string]*template.Template
}

// NewTemplates loads the templates. An empty path selects the embedded
// default for that template.
func NewTemplates(formPath, resultsPath string) (*Templates, error) {
	t := &Templates{templates: make(map[string]*template.Template)}
	for name, path := range map[string]string{
		TemplateForm:    formPath,
		TemplateResults: resultsPath,
		TemplateLayout:  "",
	} {
		tmpl, err := loadTemplate(name, path)
		if err != nil {
			return nil, err
		}
		t.templates[name] = tmpl
	}
	return t, nil
}

func loadTemplate(name, path string) (*template.Template, error) {
	var src []byte
	var err error
	if path == "" {
		src, err = defaultTemplates.ReadFile("templates/" + name + ".html")
	} else {
		src, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, simplesearch.Errorf(simplesearch.EINVALID, "load %s template: %v", name, err)
	}

	tmpl, err := template.New(name).Parse(string(src))
	if err != nil {
		return nil, simplesearch.Errorf(simplesearch.EINVALID, "parse %s template: %v", name, err)
	}
	return tmpl, nil
}

// RenderTemplate executes the named template with vars and writes the output to w.
func (t *Templates) RenderTemplate(w io.Writer, name string, vars map[string]any) error {
	tmpl, ok := t.templates[name]
	if !ok {
		return simplesearch.Errorf(simplesearch.ENOTFOUND, "template %q not found", name)
	}
	return tmpl.Execute(w, vars)
}

// renderString executes the named template and returns its output as trusted HTML.
func (t *Templates) renderString(name string, vars map[string]any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := t.RenderTemplate(&buf, name, vars); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
