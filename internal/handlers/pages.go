package handlers

import (
	"embed"
	"net/http"
	"path"
	"strings"

	"github.com/statusgrab/statusgrab/internal/utils"
	"github.com/valyala/fasthttp"
)

//go:embed templates/*.gohtml
var templatesFS embed.FS

//go:embed all:static
var staticFS embed.FS

func (h handler) Index(ctx *fasthttp.RequestCtx) {
	ctx.SetContentType("text/html; charset=utf-8")

	data := map[string]any{
		"UIConfig": h.uiConfig,
	}

	if err := h.index.ExecuteTemplate(ctx, "index.gohtml", data); err != nil {
		utils.Log.Error(err)
		ctx.Error("template error", http.StatusInternalServerError)
	}
}

func (h handler) Static(ctx *fasthttp.RequestCtx) {
	p := strings.TrimPrefix(string(ctx.Path()), "/static/")

	b, err := staticFS.ReadFile(path.Join("static", p))
	if err != nil {
		ctx.Error("not found", http.StatusNotFound)
		return
	}

	switch {
	case strings.HasSuffix(p, ".js"):
		ctx.SetContentType("application/javascript")
	case strings.HasSuffix(p, ".css"):
		ctx.SetContentType("text/css")
	case strings.HasSuffix(p, ".svg"):
		ctx.SetContentType("image/svg+xml")
	}

	ctx.SetBody(b)
}

func (h handler) Health(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, http.StatusOK, map[string]any{
		"status":  "ok",
		"service": "statusgrab",
	})
}
