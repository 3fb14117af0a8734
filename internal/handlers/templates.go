package handlers

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"

	"timeclash/internal/utils"
)

// LoadTemplates parses the base layout and every page template in templatesPath
func LoadTemplates(templatesPath string) (*template.Template, error) {
	pages, err := filepath.Glob(filepath.Join(templatesPath, "pages", "*.tmpl"))
	if err != nil {
		return nil, fmt.Errorf("failed to glob page templates: %w", err)
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("no page templates found in %s", templatesPath)
	}

	files := append([]string{filepath.Join(templatesPath, "base.tmpl")}, pages...)

	funcMap := template.FuncMap{
		"formatNumber": utils.FormatNumber,
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFiles(files...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}

// render buffers the page so template errors can still be reported with a 500
func render(w http.ResponseWriter, templates *template.Template, name string, data interface{}) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error rendering "+name, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}
