package twitter

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"sort"
	"strings"

	"github.com/statusgrab/statusgrab/internal/resolvers"
	"github.com/statusgrab/statusgrab/internal/utils"
)

// statusRe matches status links on either platform domain, case-insensitively,
// with an optional www prefix.
var (
	statusRe     = regexp.MustCompile(`(?i)^https?://(?:www\.)?(?:twitter\.com|x\.com)/([A-Za-z0-9_]{1,15})/status/(\d+)`)
	resolutionRe = regexp.MustCompile(`/(\d+)x(\d+)/`)
)

type resolver struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

func New(client *http.Client, baseURL, userAgent string) resolvers.IResolver {
	if baseURL == "" {
		baseURL = BaseUrl
	}

	return &resolver{
		client:    client,
		baseURL:   baseURL,
		userAgent: userAgent,
	}
}

func (d *resolver) Valid(url string) bool {
	return statusRe.MatchString(strings.TrimSpace(url))
}

func (d *resolver) Resolve(ctx context.Context, url string) (*resolvers.Video, error) {
	m := statusRe.FindStringSubmatch(strings.TrimSpace(url))
	if m == nil {
		return nil, fmt.Errorf("%w: not a status link", resolvers.ErrNoVideo)
	}

	meta, err := fetchTweet(ctx, d.client, d.baseURL, d.userAgent, m[2])
	if err != nil {
		return nil, err
	}

	qualities := mapQualities(meta.MediaDetails)
	if len(qualities) == 0 {
		return nil, resolvers.ErrNoVideo
	}

	video := &resolvers.Video{
		Title:      utils.StringNotEmptyCoalesce(titleFromText(meta.Text), "X video"),
		Author:     "@" + utils.StringNotEmptyCoalesce(meta.User.ScreenName, "unknown"),
		AuthorName: utils.StringNotEmptyCoalesce(meta.User.Name, "Unknown"),
		Duration:   "0:00",
		Qualities:  qualities,
	}

	for _, md := range meta.MediaDetails {
		if md.VideoInfo.DurationMillis > 0 {
			video.Duration = utils.FormatSecondsToMMSS(md.VideoInfo.DurationMillis / 1000)
		}

		if video.ThumbnailURL == "" {
			video.ThumbnailURL = md.MediaURLHTTPS
		}
	}

	return video, nil
}

func mapQualities(details []MediaDetail) []resolvers.Quality {
	var out []resolvers.Quality

	for _, md := range details {
		if md.Type != "video" && md.Type != "animated_gif" {
			continue
		}

		for _, v := range md.VideoInfo.Variants {
			if v.ContentType != "video/mp4" || v.URL == "" {
				continue
			}

			out = append(out, resolvers.Quality{
				Label:   qualityLabel(v),
				Bitrate: v.Bitrate,
				URL:     v.URL,
			})
		}

		// one video per descriptor; the first media with variants wins
		if len(out) > 0 {
			break
		}
	}

	// Highest quality first: the page treats the first entry as the default.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Bitrate > out[j].Bitrate
	})

	return out
}

// qualityLabel derives the familiar "720p" label from the WxH segment of the
// variant URL, labelling by the shorter side so portrait clips read the same
// as landscape ones.
func qualityLabel(v VideoVariant) string {
	if m := resolutionRe.FindStringSubmatch(v.URL); m != nil {
		if len(m[1]) > len(m[2]) || (len(m[1]) == len(m[2]) && m[1] > m[2]) {
			return m[2] + "p"
		}

		return m[1] + "p"
	}

	if v.Bitrate == 0 {
		return "GIF"
	}

	return "source"
}

func titleFromText(text string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(text), "\n")

	runes := []rune(line)
	if len(runes) > 80 {
		return string(runes[:80]) + "…"
	}

	return line
}
