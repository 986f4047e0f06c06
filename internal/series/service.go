package series

import (
	"context"
	"log/slog"

	"github.com/nhatlepham/inkwell/internal/content"
	"github.com/nhatlepham/inkwell/internal/platform/apperr"
)

type Service struct {
	repo     content.Repository
	resolver *Resolver
	logger   *slog.Logger
}

func NewService(repo content.Repository, resolver *Resolver, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		resolver: resolver,
		logger:   logger,
	}
}

// List returns a summary of every multi-post series on the site.
func (service *Service) List(ctx context.Context) []Summary {
	return service.resolver.ListAll(service.repo.ListAll())
}

// Get returns the resolved series for a group folder. The group must contain
// more than one post to qualify.
func (service *Service) Get(ctx context.Context, groupKey string) (*Info, error) {
	for _, post := range service.repo.ListAll() {
		if post.Group == groupKey {
			info := service.resolver.Resolve(post, service.repo.ListAll())
			if info == nil {
				break
			}
			// Resolved relative to an arbitrary member; clear the
			// navigation state so the payload is member-neutral.
			for i := range info.Posts {
				info.Posts[i].IsCurrent = false
			}
			info.CurrentIndex = 0
			info.NextPost = nil
			info.PreviousPost = nil
			return info, nil
		}
	}
	return nil, apperr.NotFound("Series")
}

// ResolveForPost returns the series navigation for one post, or nil when the
// post exists but does not belong to a series.
func (service *Service) ResolveForPost(ctx context.Context, segments []string) (*Info, error) {
	post, ok := service.repo.GetByPath(segments)
	if !ok {
		return nil, apperr.NotFound("Post")
	}
	return service.resolver.Resolve(post, service.repo.ListAll()), nil
}
