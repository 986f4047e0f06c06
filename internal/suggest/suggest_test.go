package suggest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhatlepham/inkwell/internal/content"
)

func makePost(key, category string, tags []string, date string) *content.Post {
	parsed, _ := time.Parse("2006-01-02", date)
	return &content.Post{
		Key:      key,
		URL:      "/" + key,
		Title:    key,
		Category: category,
		Tags:     tags,
		Date:     parsed,
	}
}

/*
TestRank_SameCategoryFillsFirst verifies that with enough same-category
candidates the lower tiers are never consulted.
*/
func TestRank_SameCategoryFillsFirst(t *testing.T) {
	current := makePost("web/a", "web-development", []string{"go"}, "2026-01-01")
	all := []*content.Post{
		current,
		makePost("web/b", "web-development", nil, "2026-01-02"),
		makePost("web/c", "web-development", nil, "2026-01-03"),
		makePost("web/d", "web-development", nil, "2026-01-04"),
		makePost("web/e", "web-development", nil, "2026-01-05"),
		makePost("web/f", "web-development", nil, "2026-01-06"),
		makePost("misc/g", "devops", []string{"go"}, "2026-01-07"),
	}

	suggestions := Rank(current, all, 3)

	require.Len(t, suggestions, 3)
	for _, suggestion := range suggestions {
		assert.Equal(t, ReasonSameCategory, suggestion.Reason)
		assert.Equal(t, "web-development", suggestion.Category)
	}

	// Original list order is preserved within the tier.
	assert.Equal(t, "web/b", suggestions[0].Key)
	assert.Equal(t, "web/c", suggestions[1].Key)
	assert.Equal(t, "web/d", suggestions[2].Key)
}

/*
TestRank_TierFallback verifies that shared-tag matches fill before the
recency tier when same-category candidates run out.
*/
func TestRank_TierFallback(t *testing.T) {
	current := makePost("go/a", "golang", []string{"concurrency"}, "2026-01-01")
	all := []*content.Post{
		current,
		makePost("rust/b", "rust", []string{"concurrency", "async"}, "2026-01-02"),
		makePost("misc/c", "devops", nil, "2026-03-01"),
		makePost("misc/d", "devops", nil, "2026-02-01"),
		makePost("misc/e", "devops", nil, "2026-04-01"),
	}

	// 1. No same-category candidates exist, one shares a tag.
	suggestions := Rank(current, all, 3)
	require.Len(t, suggestions, 3)

	// 2. The shared-tag match leads, then the two most recent posts.
	assert.Equal(t, "rust/b", suggestions[0].Key)
	assert.Equal(t, ReasonSimilarTopics, suggestions[0].Reason)

	assert.Equal(t, "misc/e", suggestions[1].Key)
	assert.Equal(t, ReasonRecent, suggestions[1].Reason)
	assert.Equal(t, "misc/c", suggestions[2].Key)
	assert.Equal(t, ReasonRecent, suggestions[2].Reason)
}

/*
TestRank_NeverIncludesCurrentOrDuplicates verifies the exclusion and
deduplication guarantees across tiers.
*/
func TestRank_NeverIncludesCurrentOrDuplicates(t *testing.T) {
	current := makePost("go/a", "golang", []string{"go"}, "2026-01-01")
	all := []*content.Post{
		current,
		makePost("go/b", "golang", []string{"go"}, "2026-01-02"),
		makePost("go/c", "golang", []string{"go"}, "2026-01-03"),
		makePost("misc/d", "devops", []string{"go"}, "2026-01-04"),
	}

	suggestions := Rank(current, all, 10)
	require.Len(t, suggestions, 3)

	seen := make(map[string]bool)
	for _, suggestion := range suggestions {
		assert.NotEqual(t, current.Key, suggestion.Key)
		assert.False(t, seen[suggestion.URL], "duplicate url %s", suggestion.URL)
		seen[suggestion.URL] = true
	}
}

/*
TestRank_EdgeCases verifies the empty-input and non-positive-count contracts.
*/
func TestRank_EdgeCases(t *testing.T) {
	current := makePost("go/a", "golang", []string{"go"}, "2026-01-01")

	assert.Empty(t, Rank(current, nil, 3))
	assert.Empty(t, Rank(current, []*content.Post{current}, 3))
	assert.Empty(t, Rank(current, []*content.Post{current, makePost("b", "golang", nil, "2026-01-02")}, 0))
	assert.Empty(t, Rank(current, []*content.Post{current, makePost("b", "golang", nil, "2026-01-02")}, -1))
}

/*
TestRank_TaglessPostSkipsSharedTagTier verifies that a current post with no
tags cannot match tier 2 and falls straight through to recency.
*/
func TestRank_TaglessPostSkipsSharedTagTier(t *testing.T) {
	current := makePost("go/a", "", nil, "2026-01-01")
	all := []*content.Post{
		current,
		makePost("rust/b", "rust", []string{"async"}, "2026-01-02"),
		makePost("misc/c", "devops", []string{"ops"}, "2026-01-03"),
	}

	suggestions := Rank(current, all, 3)
	require.Len(t, suggestions, 2)
	for _, suggestion := range suggestions {
		assert.Equal(t, ReasonRecent, suggestion.Reason)
	}
}

/*
TestParseLimit verifies clamping of the client-supplied limit parameter.
*/
func TestParseLimit(t *testing.T) {
	assert.Equal(t, 3, parseLimit(""))
	assert.Equal(t, 3, parseLimit("abc"))
	assert.Equal(t, 5, parseLimit("5"))
	assert.Equal(t, 1, parseLimit("0"))
	assert.Equal(t, 1, parseLimit("-2"))
	assert.Equal(t, 10, parseLimit("50"))
}
