// Package web embeds the HTML templates so the binary and its tests do not
// depend on the working directory.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"time"
)

//go:embed templates/*.html
var files embed.FS

// Templates parses every embedded template. Templates are addressed by file
// name, e.g. "index.html".
func Templates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"percent": func(f float64) string {
			return fmt.Sprintf("%.0f%%", f*100)
		},
		"timestamp": func(t time.Time) string {
			return t.UTC().Format("2006-01-02 15:04:05")
		},
	}).ParseFS(files, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}
