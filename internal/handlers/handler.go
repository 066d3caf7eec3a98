package handlers

import (
	"encoding/json"
	"html/template"
	"net/http"
	"strings"

	"github.com/statusgrab/statusgrab/internal/cache"
	"github.com/statusgrab/statusgrab/internal/config"
	"github.com/statusgrab/statusgrab/internal/resolvers"
	"github.com/statusgrab/statusgrab/internal/utils"
	"github.com/valyala/fasthttp"
)

type handler struct {
	resolvers []resolvers.IResolver
	cache     *cache.Cache
	client    *http.Client
	index     *template.Template
	uiConfig  template.JS
}

func NewHandler(resolverList []resolvers.IResolver, videoCache *cache.Cache, client *http.Client, ui config.UI) handler {
	cfg, err := json.Marshal(map[string]any{
		"debounceMs":      ui.DebounceMS,
		"revealStaggerMs": ui.RevealStaggerMS,
		"batchedDom":      ui.BatchedDOM,
	})
	if err != nil {
		utils.Log.Panic(err)
	}

	return handler{
		resolvers: resolverList,
		cache:     videoCache,
		client:    client,
		index:     template.Must(template.ParseFS(templatesFS, "templates/index.gohtml")),
		uiConfig:  template.JS(cfg),
	}
}

func (h handler) Route(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())

	switch {
	case path == "/":
		h.Index(ctx)
	case strings.HasPrefix(path, "/static/"):
		h.Static(ctx)
	case path == "/api/video":
		h.ApiVideo(ctx)
	case path == "/api/download":
		h.Download(ctx)
	case path == "/api/health":
		h.Health(ctx)
	default:
		ctx.Error("not found", http.StatusNotFound)
	}
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json; charset=utf-8")

	if err := json.NewEncoder(ctx).Encode(v); err != nil {
		utils.Log.Error(err)
	}
}

func writeError(ctx *fasthttp.RequestCtx, status int, msg string) {
	writeJSON(ctx, status, map[string]string{"error": msg})
}
