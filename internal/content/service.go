package content

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/nhatlepham/inkwell/internal/platform/apperr"
	"github.com/nhatlepham/inkwell/pkg/pagination"
	"github.com/nhatlepham/inkwell/pkg/slice"
	"github.com/nhatlepham/inkwell/pkg/slug"
)

// Filter narrows the post listing. Zero values mean "no constraint".
type Filter struct {
	Category     string
	Tag          string
	Author       string
	FeaturedOnly bool
}

// Stat is a browsing aggregate: one category/tag/author and its post count.
type Stat struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count"`
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListPosts returns one page of the (optionally filtered) post listing,
// newest first.
func (service *Service) ListPosts(ctx context.Context, filter Filter, params pagination.Params) ([]*Post, pagination.Meta) {
	posts := slice.Filter(service.repo.ListAll(), func(post *Post) bool {
		return matches(post, filter)
	})

	total := len(posts)
	offset := params.Offset()
	if offset > total {
		offset = total
	}
	end := offset + params.Limit
	if end > total {
		end = total
	}

	page := posts[offset:end]
	if page == nil {
		page = []*Post{}
	}
	return page, pagination.NewMeta(params.Page, params.Limit, total)
}

// GetPost looks up a single post by its path segments.
func (service *Service) GetPost(ctx context.Context, segments []string) (*Post, error) {
	post, ok := service.repo.GetByPath(segments)
	if !ok {
		return nil, apperr.NotFound("Post")
	}
	return post, nil
}

// Categories aggregates post counts per category.
func (service *Service) Categories(ctx context.Context) []Stat {
	counts := make(map[string]int)
	for _, post := range service.repo.ListAll() {
		if post.Category != "" {
			counts[post.Category]++
		}
	}
	return sortedStats(counts)
}

// Tags aggregates post counts per tag. Tags are lowercased for aggregation,
// matching how tag listing URLs are generated.
func (service *Service) Tags(ctx context.Context) []Stat {
	counts := make(map[string]int)
	for _, post := range service.repo.ListAll() {
		for _, tag := range post.Tags {
			if tag != "" {
				counts[strings.ToLower(tag)]++
			}
		}
	}
	return sortedStats(counts)
}

// Authors aggregates post counts per author.
func (service *Service) Authors(ctx context.Context) []Stat {
	counts := make(map[string]int)
	for _, post := range service.repo.ListAll() {
		counts[post.Author]++
	}
	return sortedStats(counts)
}

// matches reports whether a post satisfies every set filter constraint.
func matches(post *Post, filter Filter) bool {
	if filter.FeaturedOnly && !post.Featured {
		return false
	}
	if filter.Category != "" && post.Category != filter.Category {
		return false
	}
	if filter.Author != "" && !strings.EqualFold(post.Author, filter.Author) {
		return false
	}
	if filter.Tag != "" {
		found := false
		for _, tag := range post.Tags {
			if strings.EqualFold(tag, filter.Tag) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// sortedStats converts a count map into a deterministic listing:
// most posts first, name as the tiebreaker.
func sortedStats(counts map[string]int) []Stat {
	stats := make([]Stat, 0, len(counts))
	for name, count := range counts {
		stats = append(stats, Stat{
			Name:  name,
			Slug:  slug.From(name),
			Count: count,
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Name < stats[j].Name
	})

	return stats
}
