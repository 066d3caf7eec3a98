package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

func routeCtx(method, uri string) *fasthttp.RequestCtx {
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.SetRequestURI(uri)
	ctx.Request.Header.SetMethod(method)

	return ctx
}

func TestRouteIndex(t *testing.T) {
	h := NewHandler(nil, nil, http.DefaultClient, testUI())

	ctx := routeCtx("GET", "/")
	h.Route(ctx)

	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	assert.Contains(t, string(ctx.Response.Header.ContentType()), "text/html")

	body := string(ctx.Response.Body())
	assert.Contains(t, body, "window.SG_CONFIG")
	assert.Contains(t, body, `"debounceMs":250`)
	assert.Contains(t, body, `id="submit-form"`)
}

func TestRouteStatic(t *testing.T) {
	h := NewHandler(nil, nil, http.DefaultClient, testUI())

	ctx := routeCtx("GET", "/static/app.js")
	h.Route(ctx)

	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, "application/javascript", string(ctx.Response.Header.ContentType()))
	assert.Contains(t, string(ctx.Response.Body()), "/api/video")

	ctx = routeCtx("GET", "/static/style.css")
	h.Route(ctx)
	assert.Equal(t, "text/css", string(ctx.Response.Header.ContentType()))

	ctx = routeCtx("GET", "/static/missing.js")
	h.Route(ctx)
	assert.Equal(t, http.StatusNotFound, ctx.Response.StatusCode())
}

func TestRouteHealth(t *testing.T) {
	h := NewHandler(nil, nil, http.DefaultClient, testUI())

	ctx := routeCtx("GET", "/api/health")
	h.Route(ctx)

	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())

	var resp map[string]string
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, "statusgrab", resp["service"])
}

func TestRouteNotFound(t *testing.T) {
	h := NewHandler(nil, nil, http.DefaultClient, testUI())

	ctx := routeCtx("GET", "/nope")
	h.Route(ctx)

	assert.Equal(t, http.StatusNotFound, ctx.Response.StatusCode())
}
