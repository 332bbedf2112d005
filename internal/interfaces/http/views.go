package http

import (
	"embed"
	"io/fs"
	nethttp "net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"

	"github.com/jhoicas/inventario-cafe/pkg/money"
)

//go:embed views/*.html
var viewsFS embed.FS

// NewViews motor de plantillas HTML embebido en el binario; se pasa en fiber.Config.Views.
func NewViews() fiber.Views {
	sub, err := fs.Sub(viewsFS, "views")
	if err != nil {
		panic("views: " + err.Error())
	}
	engine := html.NewFileSystem(nethttp.FS(sub), ".html")
	engine.AddFunc("money", money.Format)
	engine.AddFunc("qty", money.Quantity)
	return engine
}
