package resolvers

import (
	"context"
	"errors"
)

var (
	ErrUnavailable = errors.New("post is unavailable")
	ErrNoVideo     = errors.New("post has no video")
	ErrUpstream    = errors.New("upstream error")
)

type IResolver interface {
	Resolve(ctx context.Context, url string) (*Video, error)
	Valid(url string) bool
}

// Video is the descriptor handed to the page: metadata plus the ordered quality
// variants. Qualities is never empty on a successful resolve and is sorted by
// bitrate descending, so the first entry is always the default choice.
type Video struct {
	Title        string    `json:"title"`
	Author       string    `json:"author"`
	AuthorName   string    `json:"authorName"`
	Duration     string    `json:"duration"`
	ThumbnailURL string    `json:"thumbnail"`
	Qualities    []Quality `json:"qualities"`
}

type Quality struct {
	Label   string `json:"quality"`
	Bitrate int    `json:"bitrate"`
	URL     string `json:"url"`
}
