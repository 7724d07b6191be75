package render

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"railbook/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer implements echo.Renderer over html/template. Templates are
// embedded so the server binary is self-contained.
type Renderer struct {
	templates *template.Template
}

// New parses the embedded page templates.
func New() (*Renderer, error) {
	t, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: t}, nil
}

// Render executes the named template. When data is an echo.Map the
// pending flash message is injected under "Flash" so every page can
// surface it without the handlers repeating themselves.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	if m, ok := data.(echo.Map); ok {
		if _, set := m["Flash"]; !set {
			m["Flash"] = session.TakeFlash(c)
		}
	}
	return r.templates.ExecuteTemplate(w, name, data)
}
