package feed

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhatlepham/inkwell/internal/content"
)

// fixedRepo is a content.Repository over a fixed post list.
type fixedRepo struct {
	posts []*content.Post
}

func (repo *fixedRepo) ListAll() []*content.Post { return repo.posts }

func (repo *fixedRepo) GetByPath(segments []string) (*content.Post, bool) {
	key := strings.Join(segments, "/")
	for _, post := range repo.posts {
		if post.Key == key {
			return post, true
		}
	}
	return nil, false
}

func (repo *fixedRepo) GetManifest(string) (*content.SeriesManifest, bool) {
	return nil, false
}

func testSite() Site {
	return Site{
		Name:        "Inkwell",
		URL:         "https://inkwell.dev",
		Description: "Notes on software",
	}
}

func testFeedService(posts []*content.Post) *Service {
	logger := slog.New(slog.DiscardHandler)
	repo := &fixedRepo{posts: posts}
	return NewService(repo, content.NewService(repo, logger), testSite(), logger)
}

func datedPost(key, title, category string, date string) *content.Post {
	parsed, _ := time.Parse("2006-01-02", date)
	return &content.Post{
		Key:      key,
		URL:      "/" + key,
		Title:    title,
		Category: category,
		Author:   "Anonymous",
		Date:     parsed,
	}
}

/*
TestService_RSS verifies the channel metadata, item links, and XML escaping
of post titles.
*/
func TestService_RSS(t *testing.T) {
	service := testFeedService([]*content.Post{
		datedPost("go/generics", "Generics <T> & You", "golang", "2026-02-01"),
		datedPost("hello-world", "Hello World", "general", "2026-01-01"),
	})

	body, err := service.RSS(context.Background())
	require.NoError(t, err)

	document := string(body)
	assert.True(t, strings.HasPrefix(document, "<?xml"))
	assert.Contains(t, document, "<title>Inkwell</title>")
	assert.Contains(t, document, "<link>https://inkwell.dev/go/generics</link>")

	// Markup-significant characters in titles must be escaped.
	assert.Contains(t, document, "Generics &lt;T&gt; &amp; You")
	assert.NotContains(t, document, "<T>")
}

/*
TestService_RSS_LimitsItems verifies the feed only carries the newest posts.
*/
func TestService_RSS_LimitsItems(t *testing.T) {
	posts := make([]*content.Post, 0, 25)
	for i := 0; i < 25; i++ {
		key := fmt.Sprintf("misc/post-%02d", i)
		posts = append(posts, datedPost(key, key, "misc", "2026-01-01"))
	}
	service := testFeedService(posts)

	body, err := service.RSS(context.Background())
	require.NoError(t, err)

	assert.Equal(t, feedItemLimit, strings.Count(string(body), "<item>"))
}

/*
TestService_Sitemap verifies that home, post, and taxonomy URLs all appear
with their priorities.
*/
func TestService_Sitemap(t *testing.T) {
	service := testFeedService([]*content.Post{
		datedPost("go/generics", "Generics", "golang", "2026-02-01"),
	})

	body, err := service.Sitemap(context.Background())
	require.NoError(t, err)

	document := string(body)
	assert.Contains(t, document, "<loc>https://inkwell.dev/</loc>")
	assert.Contains(t, document, "<loc>https://inkwell.dev/go/generics</loc>")
	assert.Contains(t, document, "<lastmod>2026-02-01</lastmod>")
	assert.Contains(t, document, "<loc>https://inkwell.dev/categories/golang</loc>")
	assert.Contains(t, document, "<loc>https://inkwell.dev/authors/anonymous</loc>")
	assert.Contains(t, document, "<priority>1.0</priority>")
	assert.Contains(t, document, "<priority>0.8</priority>")
}

/*
TestService_Robots verifies the crawler policy points at the sitemap.
*/
func TestService_Robots(t *testing.T) {
	service := testFeedService(nil)

	policy := string(service.Robots())
	assert.Contains(t, policy, "User-agent: *")
	assert.Contains(t, policy, "Sitemap: https://inkwell.dev/sitemap.xml")
}
