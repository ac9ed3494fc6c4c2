package presenter

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates/*.html
var templateFiles embed.FS

// NewEngine returns the Fiber view engine serving the embedded listing templates.
func NewEngine() *html.Engine {
	sub, err := fs.Sub(templateFiles, "templates")
	if err != nil {
		// The embed pattern above guarantees the directory exists.
		panic(err)
	}
	return html.NewFileSystem(http.FS(sub), ".html")
}
