package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

func downloadCtx(rawQuery string) *fasthttp.RequestCtx {
	var req fasthttp.Request
	req.SetRequestURI("/api/download?" + rawQuery)
	req.Header.SetMethod("GET")

	ctx := &fasthttp.RequestCtx{}
	ctx.Init(&req, nil, nil)

	return ctx
}

func mediaServer(t *testing.T, status int, body []byte) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "video/mp4")
		w.WriteHeader(status)
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestDownload(t *testing.T) {
	payload := []byte("fake mp4 bytes")
	srv := mediaServer(t, http.StatusOK, payload)
	h := NewHandler(nil, nil, srv.Client(), testUI())

	ctx := downloadCtx("url=" + url.QueryEscape(srv.URL+"/vid/720x1280/a.mp4"))
	h.Download(ctx)

	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, "video/mp4", string(ctx.Response.Header.ContentType()))
	assert.Equal(t, payload, ctx.Response.Body())

	// preview playback, not a user download
	assert.Empty(t, string(ctx.Response.Header.Peek("Content-Disposition")))
}

func TestDownloadAttachment(t *testing.T) {
	srv := mediaServer(t, http.StatusOK, []byte("fake mp4 bytes"))
	h := NewHandler(nil, nil, srv.Client(), testUI())

	ctx := downloadCtx("url=" + url.QueryEscape(srv.URL+"/a.mp4") + "&quality=720p")
	h.Download(ctx)

	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())

	disposition := string(ctx.Response.Header.Peek("Content-Disposition"))
	assert.Contains(t, disposition, "attachment")
	assert.Contains(t, disposition, "x-video-720p-")
	assert.Contains(t, disposition, ".mp4")
}

func TestDownloadMissingURL(t *testing.T) {
	h := NewHandler(nil, nil, http.DefaultClient, testUI())

	ctx := downloadCtx("quality=720p")
	h.Download(ctx)

	assert.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode())
}

func TestDownloadBadScheme(t *testing.T) {
	h := NewHandler(nil, nil, http.DefaultClient, testUI())

	ctx := downloadCtx("url=" + url.QueryEscape("ftp://video.twimg.com/a.mp4"))
	h.Download(ctx)

	assert.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode())
}

func TestDownloadUpstreamStatus(t *testing.T) {
	srv := mediaServer(t, http.StatusNotFound, nil)
	h := NewHandler(nil, nil, srv.Client(), testUI())

	ctx := downloadCtx("url=" + url.QueryEscape(srv.URL+"/gone.mp4"))
	h.Download(ctx)

	assert.Equal(t, http.StatusBadGateway, ctx.Response.StatusCode())
}

func TestDownloadUnreachableUpstream(t *testing.T) {
	h := NewHandler(nil, nil, &http.Client{}, testUI())

	ctx := downloadCtx("url=" + url.QueryEscape("http://127.0.0.1:1/a.mp4"))
	h.Download(ctx)

	assert.Equal(t, http.StatusBadGateway, ctx.Response.StatusCode())
}
