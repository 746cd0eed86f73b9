package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates static
var assets embed.FS

// NewViews returns the HTML engine for the page routes.
func NewViews() *html.Engine {
	templates, err := fs.Sub(assets, "templates")
	if err != nil {
		panic(err)
	}
	return html.NewFileSystem(http.FS(templates), ".html")
}

// StaticFS serves the embedded static assets.
func StaticFS() http.FileSystem {
	static, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(static)
}
