//go:generate easyjson api.go
package twitter

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"

	netUrl "net/url"

	easyjson "github.com/mailru/easyjson"
	"github.com/statusgrab/statusgrab/internal/resolvers"
	"github.com/statusgrab/statusgrab/internal/utils"
)

const (
	BaseUrl = "https://cdn.syndication.twimg.com/tweet-result"

	tombstoneType = "TweetTombstone"
)

func fetchTweet(ctx context.Context, client *http.Client, baseURL, userAgent, id string) (TweetResponse, error) {
	reqURL := fmt.Sprintf("%s?id=%s&token=%s&lang=en", baseURL, netUrl.QueryEscape(id), syndicationToken(id))

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return TweetResponse{}, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return TweetResponse{}, fmt.Errorf("%w: %v", resolvers.ErrUpstream, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			utils.Log.Error(err)
		}
	}()

	if resp.StatusCode == http.StatusNotFound {
		return TweetResponse{}, resolvers.ErrUnavailable
	}

	if resp.StatusCode != http.StatusOK {
		return TweetResponse{}, fmt.Errorf("%w: status %d", resolvers.ErrUpstream, resp.StatusCode)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return TweetResponse{}, err
	}

	var data TweetResponse

	err = easyjson.Unmarshal(b, &data)
	if err != nil {
		return TweetResponse{}, fmt.Errorf("%w: %v", resolvers.ErrUpstream, err)
	}

	if data.TypeName == tombstoneType {
		return data, resolvers.ErrUnavailable
	}

	return data, nil
}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// syndicationToken mirrors the id scrambling the syndication endpoint expects:
// base36 of id/1e15*pi with zeros and the radix point stripped.
func syndicationToken(id string) string {
	num, err := strconv.ParseFloat(id, 64)
	if err != nil {
		return ""
	}

	val := num / 1e15 * math.Pi

	intPart := int64(val)
	frac := val - float64(intPart)

	var sb strings.Builder
	sb.WriteString(strconv.FormatInt(intPart, 36))

	for i := 0; i < 8 && frac > 0; i++ {
		frac *= 36
		digit := int(frac)
		sb.WriteByte(base36[digit])
		frac -= float64(digit)
	}

	return strings.ReplaceAll(sb.String(), "0", "")
}

// easyjson:json
type TweetResponse struct {
	TypeName          string        `json:"__typename,omitempty"`
	Lang              string        `json:"lang,omitempty"`
	CreatedAt         string        `json:"created_at,omitempty"`
	Text              string        `json:"text,omitempty"`
	FavoriteCount     int           `json:"favorite_count,omitempty"`
	ConversationCount int           `json:"conversation_count,omitempty"`
	User              TweetUser     `json:"user,omitempty"`
	MediaDetails      []MediaDetail `json:"mediaDetails,omitempty"`
}

type TweetUser struct {
	Name            string `json:"name,omitempty"`
	ScreenName      string `json:"screen_name,omitempty"`
	ProfileImageURL string `json:"profile_image_url_https,omitempty"`
	IsBlueVerified  bool   `json:"is_blue_verified,omitempty"`
}

type MediaDetail struct {
	Type          string    `json:"type,omitempty"`
	MediaURLHTTPS string    `json:"media_url_https,omitempty"`
	VideoInfo     VideoInfo `json:"video_info,omitempty"`
}

type VideoInfo struct {
	AspectRatio    []int          `json:"aspect_ratio,omitempty"`
	DurationMillis int            `json:"duration_millis,omitempty"`
	Variants       []VideoVariant `json:"variants,omitempty"`
}

type VideoVariant struct {
	Bitrate     int    `json:"bitrate,omitempty"`
	ContentType string `json:"content_type,omitempty"`
	URL         string `json:"url,omitempty"`
}
