package suggest

import (
	"context"
	"log/slog"

	"github.com/nhatlepham/inkwell/internal/content"
	"github.com/nhatlepham/inkwell/internal/platform/apperr"
)

type Service struct {
	repo   content.Repository
	logger *slog.Logger
}

func NewService(repo content.Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ForPost ranks related-reading suggestions for the post at the given path.
func (service *Service) ForPost(ctx context.Context, segments []string, maxCount int) ([]Suggestion, error) {
	post, ok := service.repo.GetByPath(segments)
	if !ok {
		return nil, apperr.NotFound("Post")
	}
	return Rank(post, service.repo.ListAll(), maxCount), nil
}
