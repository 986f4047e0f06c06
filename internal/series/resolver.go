// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: nhat.lepham.dev@gmail.com

/*
Package series derives reading-order navigation for posts that live together
in a content folder.

A "series" is implicit in the storage layout: every post whose path starts
with the same top-level folder belongs to the same group. An optional
per-folder manifest (meta.json) supplies the display title, description,
explicit ordering, and per-post title overrides; without one the resolver
falls back to alphabetical ordering and a generated title.

Resolution is pure and synchronous: it only reads the immutable content
snapshot and never fails. The worst outcome of a broken manifest is the
alphabetical fallback.
*/
package series

import (
	"log/slog"
	"sort"
	"strings"
	"unicode"

	"github.com/nhatlepham/inkwell/internal/content"
)

// ManifestSource supplies per-group manifests. Satisfied by
// [content.Repository]; declared here so tests can inject fixtures.
type ManifestSource interface {
	GetManifest(groupKey string) (*content.SeriesManifest, bool)
}

// Resolver computes series navigation from the content snapshot.
type Resolver struct {
	manifests ManifestSource
	logger    *slog.Logger
}

func NewResolver(manifests ManifestSource, logger *slog.Logger) *Resolver {
	return &Resolver{
		manifests: manifests,
		logger:    logger,
	}
}

// Resolve determines whether current belongs to a multi-post group and, if
// so, produces the fully ordered [Info] with adjacency pointers.
//
// It returns nil when the post is top-level (path depth < 2) or when its
// group contains no other posts; a lone post is not a series.
func (resolver *Resolver) Resolve(current *content.Post, all []*content.Post) *Info {
	if current == nil || current.Group == "" {
		return nil
	}

	members := make([]*content.Post, 0, 4)
	for _, post := range all {
		if post.Group == current.Group {
			members = append(members, post)
		}
	}
	if len(members) <= 1 {
		return nil
	}

	manifest, _ := resolver.manifests.GetManifest(current.Group)

	posts := make([]Post, 0, len(members))
	for _, member := range members {
		posts = append(posts, Post{
			Key:       member.Key,
			Title:     postTitle(member, manifest),
			URL:       member.URL,
			IsCurrent: member.Key == current.Key,
		})
	}

	sortPosts(posts, manifest)

	// 1-based positions after sorting.
	for i := range posts {
		posts[i].Order = i + 1
	}

	currentIndex := 0
	for i := range posts {
		if posts[i].IsCurrent {
			currentIndex = i
			break
		}
	}

	info := &Info{
		Title:        groupTitle(current.Group, manifest),
		Posts:        posts,
		CurrentIndex: currentIndex,
	}
	if manifest != nil {
		info.Description = manifest.Description
	}
	if currentIndex > 0 {
		info.PreviousPost = &posts[currentIndex-1]
	}
	if currentIndex < len(posts)-1 {
		info.NextPost = &posts[currentIndex+1]
	}

	return info
}

// ListAll groups every post by its group attribute and summarizes the groups
// that actually form a series (more than one member).
func (resolver *Resolver) ListAll(all []*content.Post) []Summary {
	groupOrder := make([]string, 0)
	groups := make(map[string][]*content.Post)

	for _, post := range all {
		if post.Group == "" {
			continue
		}
		if _, seen := groups[post.Group]; !seen {
			groupOrder = append(groupOrder, post.Group)
		}
		groups[post.Group] = append(groups[post.Group], post)
	}

	summaries := make([]Summary, 0, len(groupOrder))
	for _, groupKey := range groupOrder {
		members := groups[groupKey]
		if len(members) <= 1 {
			continue
		}

		manifest, _ := resolver.manifests.GetManifest(groupKey)

		summary := Summary{
			Slug:         groupKey,
			Title:        groupTitle(groupKey, manifest),
			EpisodeCount: len(members),
			LastUpdated:  latestDate(members),
			Category:     dominantCategory(members),
		}
		if manifest != nil {
			summary.Description = manifest.Description
		}

		summaries = append(summaries, summary)
	}

	return summaries
}

// sortPosts orders series entries by the manifest order when present,
// otherwise alphabetically by key.
//
// Manifest semantics: listed posts come first in listed order; unlisted
// posts follow, alphabetically among themselves.
func sortPosts(posts []Post, manifest *content.SeriesManifest) {
	var order []string
	if manifest != nil {
		order = manifest.Order
	}

	if len(order) == 0 {
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].Key < posts[j].Key
		})
		return
	}

	indexOf := make(map[string]int, len(order))
	for i, key := range order {
		indexOf[key] = i
	}

	sort.SliceStable(posts, func(i, j int) bool {
		indexI, okI := indexOf[posts[i].Key]
		indexJ, okJ := indexOf[posts[j].Key]

		switch {
		case okI && okJ:
			return indexI < indexJ
		case okI:
			return true
		case okJ:
			return false
		default:
			return posts[i].Key < posts[j].Key
		}
	})
}

// postTitle picks the manifest override, then the post's own title, then the key.
func postTitle(post *content.Post, manifest *content.SeriesManifest) string {
	if manifest != nil {
		if override, ok := manifest.Items[post.Key]; ok && override != "" {
			return override
		}
	}
	if post.Title != "" {
		return post.Title
	}
	return post.Key
}

// groupTitle uses the manifest title when present, else derives one from the
// folder name ("dsa" becomes "Dsa Series").
func groupTitle(groupKey string, manifest *content.SeriesManifest) string {
	if manifest != nil && manifest.Title != "" {
		return manifest.Title
	}
	return capitalize(groupKey) + " Series"
}

// capitalize upper-cases the first rune only.
func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// latestDate formats the most recent post date in the group for display.
func latestDate(members []*content.Post) string {
	var latest *content.Post
	for _, member := range members {
		if latest == nil || member.Date.After(latest.Date) {
			latest = member
		}
	}
	if latest == nil || latest.Date.IsZero() {
		return ""
	}
	return latest.Date.Format("Jan 2, 2006")
}

// dominantCategory returns the most frequent category across the group,
// breaking ties in favor of the first one encountered.
func dominantCategory(members []*content.Post) string {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)

	for i, member := range members {
		category := strings.TrimSpace(member.Category)
		if category == "" {
			continue
		}
		if _, seen := counts[category]; !seen {
			firstSeen[category] = i
		}
		counts[category]++
	}

	best := ""
	for category, count := range counts {
		if best == "" {
			best = category
			continue
		}
		if count > counts[best] || (count == counts[best] && firstSeen[category] < firstSeen[best]) {
			best = category
		}
	}
	return best
}
