package cache_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/statusgrab/statusgrab/internal/cache"
	"github.com/statusgrab/statusgrab/internal/resolvers"
	"github.com/statusgrab/statusgrab/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	utils.InitLogger("error")
	os.Exit(m.Run())
}

func testCache(t *testing.T) (*cache.Cache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	return cache.NewWithClient(rdb, time.Minute), mr
}

func sampleVideo() *resolvers.Video {
	return &resolvers.Video{
		Title:        "Check this out",
		Author:       "@jack",
		AuthorName:   "Jack",
		Duration:     "0:14",
		ThumbnailURL: "https://pbs.twimg.com/thumb.jpg",
		Qualities: []resolvers.Quality{
			{Label: "720p", Bitrate: 2176000, URL: "https://video.twimg.com/high.mp4"},
			{Label: "320p", Bitrate: 632000, URL: "https://video.twimg.com/low.mp4"},
		},
	}
}

func TestCacheRoundTrip(t *testing.T) {
	c, _ := testCache(t)
	ctx := context.Background()

	c.Set(ctx, "https://x.com/jack/status/20", sampleVideo())

	got, ok := c.Get(ctx, "https://x.com/jack/status/20")
	require.True(t, ok)
	assert.Equal(t, sampleVideo(), got)
}

func TestCacheMiss(t *testing.T) {
	c, _ := testCache(t)

	got, ok := c.Get(context.Background(), "https://x.com/jack/status/21")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestCacheExpiry(t *testing.T) {
	c, mr := testCache(t)
	ctx := context.Background()

	c.Set(ctx, "https://x.com/jack/status/20", sampleVideo())
	mr.FastForward(2 * time.Minute)

	_, ok := c.Get(ctx, "https://x.com/jack/status/20")
	assert.False(t, ok)
}

func TestCacheCorruptEntry(t *testing.T) {
	c, mr := testCache(t)

	require.NoError(t, mr.Set("video:https://x.com/jack/status/20", "{not json"))

	_, ok := c.Get(context.Background(), "https://x.com/jack/status/20")
	assert.False(t, ok)
}

func TestNilCacheIsNoOp(t *testing.T) {
	var c *cache.Cache
	ctx := context.Background()

	c.Set(ctx, "https://x.com/jack/status/20", sampleVideo())

	got, ok := c.Get(ctx, "https://x.com/jack/status/20")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestNewWithoutAddr(t *testing.T) {
	assert.Nil(t, cache.New("", time.Minute))
	assert.NotNil(t, cache.New("127.0.0.1:6379", time.Minute))
}
