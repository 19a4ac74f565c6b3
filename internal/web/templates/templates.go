package templates

import (
	"embed"
	"html/template"
	"io"
)

//go:embed *.html
var templatesFS embed.FS

var pages = template.Must(template.ParseFS(templatesFS, "*.html"))

// Render executes the named page template with the given data
func Render(w io.Writer, name string, data any) error {
	return pages.ExecuteTemplate(w, name, data)
}
