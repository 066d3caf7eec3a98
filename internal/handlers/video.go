package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/statusgrab/statusgrab/internal/resolvers"
	"github.com/statusgrab/statusgrab/internal/utils"
	"github.com/valyala/fasthttp"
)

type videoRequest struct {
	URL string `json:"url"`
}

type qualityPayload struct {
	Quality string `json:"quality"`
	Size    string `json:"size"`
	Bitrate int    `json:"bitrate,omitempty"`
	URL     string `json:"url"`
}

type videoPayload struct {
	Title      string           `json:"title"`
	Author     string           `json:"author"`
	AuthorName string           `json:"authorName"`
	Duration   string           `json:"duration"`
	Thumbnail  string           `json:"thumbnail"`
	Qualities  []qualityPayload `json:"qualities"`
}

type videoResponse struct {
	Success bool          `json:"success"`
	Data    *videoPayload `json:"data,omitempty"`
}

func (h handler) ApiVideo(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req videoRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, http.StatusBadRequest, "invalid request body")
		return
	}

	url := strings.TrimSpace(req.URL)
	if url == "" {
		writeError(ctx, http.StatusUnprocessableEntity, "url is required")
		return
	}

	var resolver resolvers.IResolver

	for _, d := range h.resolvers {
		if d.Valid(url) {
			resolver = d

			break
		}
	}

	if resolver == nil {
		writeError(ctx, http.StatusUnprocessableEntity, "only twitter.com and x.com status links are supported")
		return
	}

	video, ok := h.cache.Get(ctx, url)
	if !ok {
		var err error

		video, err = resolver.Resolve(ctx, url)
		if err != nil {
			utils.Log.Errorf("resolve %s: %v", url, err)
			writeError(ctx, resolveStatus(err), resolveMessage(err))

			return
		}

		h.cache.Set(ctx, url, video)
	}

	writeJSON(ctx, http.StatusOK, videoResponse{Success: true, Data: toPayload(video)})
}

func toPayload(v *resolvers.Video) *videoPayload {
	qualities := make([]qualityPayload, 0, len(v.Qualities))
	for _, q := range v.Qualities {
		qualities = append(qualities, qualityPayload{
			Quality: q.Label,
			Size:    utils.FormatFileSize(q.Bitrate),
			Bitrate: q.Bitrate,
			URL:     q.URL,
		})
	}

	return &videoPayload{
		Title:      v.Title,
		Author:     v.Author,
		AuthorName: v.AuthorName,
		Duration:   v.Duration,
		Thumbnail:  v.ThumbnailURL,
		Qualities:  qualities,
	}
}

func resolveStatus(err error) int {
	if errors.Is(err, resolvers.ErrNoVideo) || errors.Is(err, resolvers.ErrUnavailable) {
		return http.StatusUnprocessableEntity
	}

	return http.StatusBadGateway
}

func resolveMessage(err error) string {
	switch {
	case errors.Is(err, resolvers.ErrNoVideo):
		return "this post has no downloadable video"
	case errors.Is(err, resolvers.ErrUnavailable):
		return "this post is unavailable or has been deleted"
	default:
		return "could not fetch the video, try again later"
	}
}
