package http

import (
	"fmt"
	"html/template"
	"path/filepath"

	"github.com/AFCVentura/Bookstore/internal/format"
)

// TemplateFuncs returns the helpers available to every page.
func TemplateFuncs(f *format.Formatter) template.FuncMap {
	return template.FuncMap{
		"money":     f.Money,
		"date":      f.Date,
		"inputDate": f.InputDate,
		"add": func(a, b int) int {
			return a + b
		},
		"subtract": func(a, b int) int {
			return a - b
		},
		"deref": func(id *uint) uint {
			if id == nil {
				return 0
			}
			return *id
		},
	}
}

// LoadTemplates parses every page under dir with the formatting helpers.
func LoadTemplates(dir string, f *format.Formatter) (*template.Template, error) {
	tmpl, err := template.New("").Funcs(TemplateFuncs(f)).ParseGlob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates in %s: %w", dir, err)
	}
	return tmpl, nil
}
