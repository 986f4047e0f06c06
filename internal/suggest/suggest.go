// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: nhat.lepham.dev@gmail.com

/*
Package suggest ranks related-reading candidates for a post.

Ranking is a three-tier fallback: same category first, then posts sharing a
tag, then whatever is most recent. Each candidate carries a reason code so
the client can label why it was picked. Like series resolution, ranking is
pure over the immutable content snapshot.
*/
package suggest

import (
	"sort"

	"github.com/nhatlepham/inkwell/internal/content"
)

// Reason codes attached to each suggestion.
const (
	ReasonSameCategory  = "same-category"
	ReasonSimilarTopics = "similar-topics"
	ReasonRecent        = "recent"
)

// Suggestion is one related-reading candidate with the tier it came from.
type Suggestion struct {
	*content.Post
	Reason string `json:"reason"`
}

// Rank produces up to maxCount suggestions for current, deduplicated by URL
// with first occurrence winning.
//
// # Tiers
//  1. Same category (when the current post has one). Original list order.
//  2. Shared tags among posts not yet selected. Original list order. Skipped
//     entirely when the current post has no tags.
//  3. Most recent remaining posts, date descending.
func Rank(current *content.Post, all []*content.Post, maxCount int) []Suggestion {
	suggestions := make([]Suggestion, 0, max(maxCount, 0))
	if current == nil || maxCount <= 0 {
		return suggestions
	}

	seen := make(map[string]bool, maxCount)
	add := func(post *content.Post, reason string) {
		if seen[post.URL] {
			return
		}
		seen[post.URL] = true
		suggestions = append(suggestions, Suggestion{Post: post, Reason: reason})
	}

	// Tier 1: same category.
	if current.Category != "" {
		for _, post := range all {
			if len(suggestions) >= maxCount {
				break
			}
			if post.Key == current.Key {
				continue
			}
			if post.Category == current.Category {
				add(post, ReasonSameCategory)
			}
		}
	}

	// Tier 2: shared tags. Posts without tags never match.
	if len(suggestions) < maxCount && len(current.Tags) > 0 {
		for _, post := range all {
			if len(suggestions) >= maxCount {
				break
			}
			if post.Key == current.Key || seen[post.URL] {
				continue
			}
			if sharesTag(current.Tags, post.Tags) {
				add(post, ReasonSimilarTopics)
			}
		}
	}

	// Tier 3: recency fallback over whatever is left.
	if len(suggestions) < maxCount {
		remaining := make([]*content.Post, 0, len(all))
		for _, post := range all {
			if post.Key == current.Key || seen[post.URL] {
				continue
			}
			remaining = append(remaining, post)
		}
		sort.SliceStable(remaining, func(i, j int) bool {
			return remaining[i].Date.After(remaining[j].Date)
		})
		for _, post := range remaining {
			if len(suggestions) >= maxCount {
				break
			}
			add(post, ReasonRecent)
		}
	}

	return suggestions
}

// sharesTag reports whether the two tag sets intersect.
func sharesTag(a, b []string) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	lookup := make(map[string]bool, len(a))
	for _, tag := range a {
		lookup[tag] = true
	}
	for _, tag := range b {
		if lookup[tag] {
			return true
		}
	}
	return false
}
