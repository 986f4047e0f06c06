package series

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhatlepham/inkwell/internal/content"
)

// manifestMap is a test ManifestSource backed by a plain map.
type manifestMap map[string]*content.SeriesManifest

func (m manifestMap) GetManifest(groupKey string) (*content.SeriesManifest, bool) {
	manifest, ok := m[groupKey]
	return manifest, ok
}

func makePost(key, title, category string, date string) *content.Post {
	parsed, _ := time.Parse("2006-01-02", date)
	segments := splitKey(key)
	group := ""
	if len(segments) >= 2 {
		group = segments[0]
	}
	return &content.Post{
		Path:     segments,
		Key:      key,
		Group:    group,
		URL:      "/" + key,
		Title:    title,
		Category: category,
		Date:     parsed,
	}
}

func splitKey(key string) []string {
	var segments []string
	start := 0
	for i := 0; i <= len(key); i++ {
		if i == len(key) || key[i] == '/' {
			segments = append(segments, key[start:i])
			start = i + 1
		}
	}
	return segments
}

func testResolver(manifests manifestMap) *Resolver {
	return NewResolver(manifests, slog.New(slog.DiscardHandler))
}

/*
TestResolver_Resolve_TopLevelPostIsNotASeries verifies that posts without a
group folder never resolve to a series.
*/
func TestResolver_Resolve_TopLevelPostIsNotASeries(t *testing.T) {
	resolver := testResolver(manifestMap{})

	standalone := makePost("hello-world", "Hello World", "general", "2026-01-01")
	all := []*content.Post{
		standalone,
		makePost("dsa/intro", "Intro", "dsa", "2026-01-02"),
		makePost("dsa/arrays", "Arrays", "dsa", "2026-01-03"),
	}

	assert.Nil(t, resolver.Resolve(standalone, all))
}

/*
TestResolver_Resolve_SingleMemberGroupIsNotASeries verifies that a group with
exactly one post resolves to nil.
*/
func TestResolver_Resolve_SingleMemberGroupIsNotASeries(t *testing.T) {
	resolver := testResolver(manifestMap{})

	lone := makePost("go/intro", "Intro", "go", "2026-01-01")
	all := []*content.Post{
		lone,
		makePost("dsa/intro", "Intro", "dsa", "2026-01-02"),
		makePost("dsa/arrays", "Arrays", "dsa", "2026-01-03"),
	}

	assert.Nil(t, resolver.Resolve(lone, all))
}

/*
TestResolver_Resolve_ManifestOrder verifies that listed posts come first in
manifest order and unlisted posts follow alphabetically.
*/
func TestResolver_Resolve_ManifestOrder(t *testing.T) {
	resolver := testResolver(manifestMap{
		"dsa": {
			Title: "Data Structures",
			Order: []string{"dsa/b", "dsa/a"},
		},
	})

	current := makePost("dsa/a", "A", "dsa", "2026-01-01")
	all := []*content.Post{
		makePost("dsa/c", "C", "dsa", "2026-01-03"),
		current,
		makePost("dsa/b", "B", "dsa", "2026-01-02"),
	}

	// 1. Resolve against a manifest that only orders two of three posts.
	info := resolver.Resolve(current, all)
	require.NotNil(t, info)
	require.Len(t, info.Posts, 3)

	// 2. Listed entries first in listed order, unlisted entries after.
	assert.Equal(t, "dsa/b", info.Posts[0].Key)
	assert.Equal(t, "dsa/a", info.Posts[1].Key)
	assert.Equal(t, "dsa/c", info.Posts[2].Key)

	// 3. Manifest title wins over the generated fallback.
	assert.Equal(t, "Data Structures", info.Title)
}

/*
TestResolver_Resolve_OrderAndAdjacency verifies the 1-based position numbers
and the previous/next navigation pointers.
*/
func TestResolver_Resolve_OrderAndAdjacency(t *testing.T) {
	resolver := testResolver(manifestMap{})

	middle := makePost("go/generics", "Generics", "go", "2026-01-02")
	all := []*content.Post{
		makePost("go/modules", "Modules", "go", "2026-01-03"),
		middle,
		makePost("go/channels", "Channels", "go", "2026-01-01"),
	}

	// 1. No manifest, so members sort alphabetically by key.
	info := resolver.Resolve(middle, all)
	require.NotNil(t, info)
	require.Len(t, info.Posts, 3)
	assert.Equal(t, "go/channels", info.Posts[0].Key)
	assert.Equal(t, "go/generics", info.Posts[1].Key)
	assert.Equal(t, "go/modules", info.Posts[2].Key)

	// 2. Positions are 1-based.
	for i, post := range info.Posts {
		assert.Equal(t, i+1, post.Order)
	}

	// 3. The current post sits in the middle with both neighbors set.
	assert.Equal(t, 1, info.CurrentIndex)
	assert.True(t, info.Posts[1].IsCurrent)
	require.NotNil(t, info.PreviousPost)
	require.NotNil(t, info.NextPost)
	assert.Equal(t, "go/channels", info.PreviousPost.Key)
	assert.Equal(t, "go/modules", info.NextPost.Key)
}

/*
TestResolver_Resolve_EdgeAdjacency verifies that the first post has no
previous pointer and the last post has no next pointer.
*/
func TestResolver_Resolve_EdgeAdjacency(t *testing.T) {
	resolver := testResolver(manifestMap{})

	first := makePost("go/a", "A", "go", "2026-01-01")
	last := makePost("go/b", "B", "go", "2026-01-02")
	all := []*content.Post{first, last}

	infoFirst := resolver.Resolve(first, all)
	require.NotNil(t, infoFirst)
	assert.Nil(t, infoFirst.PreviousPost)
	require.NotNil(t, infoFirst.NextPost)
	assert.Equal(t, "go/b", infoFirst.NextPost.Key)

	infoLast := resolver.Resolve(last, all)
	require.NotNil(t, infoLast)
	assert.Nil(t, infoLast.NextPost)
	require.NotNil(t, infoLast.PreviousPost)
	assert.Equal(t, "go/a", infoLast.PreviousPost.Key)
}

/*
TestResolver_Resolve_FallbackTitle verifies the generated title and the
per-post title override chain when no manifest exists.
*/
func TestResolver_Resolve_FallbackTitle(t *testing.T) {
	resolver := testResolver(manifestMap{})

	current := makePost("kubernetes/intro", "Intro to K8s", "devops", "2026-01-01")
	all := []*content.Post{
		current,
		makePost("kubernetes/pods", "Pods", "devops", "2026-01-02"),
	}

	info := resolver.Resolve(current, all)
	require.NotNil(t, info)
	assert.Equal(t, "Kubernetes Series", info.Title)
	assert.Nil(t, info.Description)
	assert.Equal(t, "Intro to K8s", info.Posts[0].Title)
}

/*
TestResolver_Resolve_ManifestTitleOverride verifies that per-post title
overrides from the manifest items map replace the post's own title.
*/
func TestResolver_Resolve_ManifestTitleOverride(t *testing.T) {
	resolver := testResolver(manifestMap{
		"go": {
			Title: "Learning Go",
			Items: map[string]string{"go/a": "Part One"},
		},
	})

	current := makePost("go/a", "A", "go", "2026-01-01")
	all := []*content.Post{
		current,
		makePost("go/b", "B", "go", "2026-01-02"),
	}

	info := resolver.Resolve(current, all)
	require.NotNil(t, info)
	assert.Equal(t, "Part One", info.Posts[0].Title)
	assert.Equal(t, "B", info.Posts[1].Title)
}

/*
TestResolver_ListAll verifies the site-wide series listing: only multi-post
groups appear, with episode counts, display dates, and dominant categories.
*/
func TestResolver_ListAll(t *testing.T) {
	resolver := testResolver(manifestMap{
		"dsa": {Title: "Data Structures"},
	})

	all := []*content.Post{
		makePost("dsa/trees", "Trees", "algorithms", "2026-03-15"),
		makePost("dsa/arrays", "Arrays", "algorithms", "2026-01-02"),
		makePost("dsa/intro", "Intro", "fundamentals", "2026-01-01"),
		makePost("go/solo", "Solo", "go", "2026-02-01"),
		makePost("hello-world", "Hello", "general", "2026-02-02"),
	}

	summaries := resolver.ListAll(all)
	require.Len(t, summaries, 1)

	summary := summaries[0]
	assert.Equal(t, "dsa", summary.Slug)
	assert.Equal(t, "Data Structures", summary.Title)
	assert.Equal(t, 3, summary.EpisodeCount)
	assert.Equal(t, "Mar 15, 2026", summary.LastUpdated)
	assert.Equal(t, "algorithms", summary.Category)
}
