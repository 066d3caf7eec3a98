package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/statusgrab/statusgrab/internal/utils"
	"github.com/valyala/fasthttp"
)

// Download relays the media bytes so the page never touches the CDN origin
// directly. The same endpoint backs the preview player and the save button;
// the quality parameter marks a user download and switches the response to an
// attachment with a collision-free filename.
func (h handler) Download(ctx *fasthttp.RequestCtx) {
	src := string(ctx.QueryArgs().Peek("url"))
	if src == "" {
		ctx.Error("missing url query", http.StatusBadRequest)
		return
	}

	targetURL, err := url.Parse(src)
	if err != nil || (targetURL.Scheme != "http" && targetURL.Scheme != "https") {
		ctx.Error("invalid url", http.StatusBadRequest)
		return
	}

	req, err := http.NewRequestWithContext(ctx, "GET", targetURL.String(), nil)
	if err != nil {
		ctx.Error("invalid url", http.StatusBadRequest)
		return
	}

	resp, err := h.client.Do(req)
	if err != nil {
		utils.Log.Errorf("proxy %s: %v", targetURL, err)
		ctx.Error("error fetching media", http.StatusBadGateway)

		return
	}

	if resp.StatusCode != http.StatusOK {
		if err := resp.Body.Close(); err != nil {
			utils.Log.Error(err)
		}

		ctx.Error("error fetching media", http.StatusBadGateway)

		return
	}

	ctx.Response.Header.Set("Content-Type", utils.StringNotEmptyCoalesce(resp.Header.Get("Content-Type"), "video/mp4"))

	if quality := string(ctx.QueryArgs().Peek("quality")); quality != "" {
		name := utils.DownloadFileName(quality, time.Now())
		ctx.Response.Header.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	}

	ctx.SetBodyStream(resp.Body, int(resp.ContentLength))
}
