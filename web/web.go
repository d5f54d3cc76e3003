// Package web holds the embedded HTML templates and static assets served by
// the HTTP transport layer.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/booknotes/models"
)

//go:embed templates
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// funcs are the helper functions available inside every template.
var funcs = template.FuncMap{
	"formatDate": FormatDate,
	"stars":      Stars,
	"categories": func() []string { return models.Categories },
}

// Templates parses every embedded page template with the shared helper
// functions registered. Pages are rendered by name via ExecuteTemplate.
func Templates() (*template.Template, error) {
	return template.New("booknotes").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")
}

// Static returns a handler serving the embedded static assets under /static/.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}

// FormatDate renders an optional date the way the pages expect: the reading
// date when set, "Not specified" otherwise.
func FormatDate(t *time.Time) string {
	if t == nil {
		return "Not specified"
	}
	return t.Format("2006-01-02")
}

// Stars renders an integer rating as five filled or empty stars.
func Stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}
