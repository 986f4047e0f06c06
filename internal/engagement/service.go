// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: nhat.lepham.dev@gmail.com

package engagement

import (
	"context"
	"log/slog"
	"strings"

	"github.com/nhatlepham/inkwell/internal/content"
	"github.com/nhatlepham/inkwell/internal/platform/apperr"
	"github.com/nhatlepham/inkwell/internal/platform/validate"
)

// Service enforces the engagement rules on top of the counter store.
//
// # Failure semantics
//
// Reads degrade: a store error is logged and the zero value returned, so a
// counter outage never breaks post pages. Writes fail loudly, the client is
// expected to retry or drop the interaction.
type Service struct {
	store  Repository
	posts  content.Repository
	logger *slog.Logger
}

func NewService(store Repository, posts content.Repository, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		posts:  posts,
		logger: logger,
	}
}

// Views returns the view counter for a post path.
func (service *Service) Views(ctx context.Context, path string) (ViewCount, error) {
	if err := service.checkPost(path); err != nil {
		return ViewCount{}, err
	}

	count, err := service.store.Views(ctx, path)
	if err != nil {
		service.logger.Error("engagement_views_read_failed", slog.String("path", path), slog.Any("error", err))
		return ViewCount{}, nil
	}
	return ViewCount{Count: count}, nil
}

// RecordView counts a view once per visitor.
func (service *Service) RecordView(ctx context.Context, path, visitorID string) (ViewResult, error) {
	validator := &validate.Validator{}
	if err := validator.Required("visitor_id", visitorID).Err(); err != nil {
		return ViewResult{}, err
	}
	if err := service.checkPost(path); err != nil {
		return ViewResult{}, err
	}

	counted, err := service.store.RecordView(ctx, path, visitorID)
	if err != nil {
		service.logger.Error("engagement_view_write_failed", slog.String("path", path), slog.Any("error", err))
		return ViewResult{}, apperr.ServiceUnavailable("Engagement store unavailable")
	}
	return ViewResult{Counted: counted}, nil
}

// Likes returns the like counter for a post path.
func (service *Service) Likes(ctx context.Context, path string) (LikeCount, error) {
	if err := service.checkPost(path); err != nil {
		return LikeCount{}, err
	}

	count, err := service.store.Likes(ctx, path)
	if err != nil {
		service.logger.Error("engagement_likes_read_failed", slog.String("path", path), slog.Any("error", err))
		return LikeCount{}, nil
	}
	return LikeCount{Count: count}, nil
}

// AddLike increments the like counter. One-shot-per-visitor is enforced
// client-side, so no identifier is required here.
func (service *Service) AddLike(ctx context.Context, path string) error {
	if err := service.checkPost(path); err != nil {
		return err
	}

	if err := service.store.AddLike(ctx, path); err != nil {
		service.logger.Error("engagement_like_write_failed", slog.String("path", path), slog.Any("error", err))
		return apperr.ServiceUnavailable("Engagement store unavailable")
	}
	return nil
}

// Reactions returns the zero-filled per-kind counters plus the requesting
// visitor's active reaction when a visitor id was supplied.
func (service *Service) Reactions(ctx context.Context, path, visitorID string) (ReactionSummary, error) {
	if err := service.checkPost(path); err != nil {
		return ReactionSummary{}, err
	}

	summary := ReactionSummary{Counts: zeroCounts()}

	counts, err := service.store.Reactions(ctx, path)
	if err != nil {
		service.logger.Error("engagement_reactions_read_failed", slog.String("path", path), slog.Any("error", err))
		return summary, nil
	}
	for kind, count := range counts {
		if kind.Valid() {
			summary.Counts[kind] = count
		}
	}

	if visitorID != "" {
		current, err := service.store.VisitorReaction(ctx, path, visitorID)
		if err != nil {
			service.logger.Error("engagement_visitor_reaction_read_failed", slog.String("path", path), slog.Any("error", err))
			return summary, nil
		}
		if current != "" {
			summary.CurrentUserReaction = &current
		}
	}

	return summary, nil
}

// SetReaction makes kind the visitor's single active reaction for a post.
func (service *Service) SetReaction(ctx context.Context, path, visitorID string, kind Kind) error {
	validator := &validate.Validator{}
	validator.Required("visitor_id", visitorID)
	validator.OneOf("reaction", string(kind), KindStrings()...)
	if err := validator.Err(); err != nil {
		return err
	}
	if err := service.checkPost(path); err != nil {
		return err
	}

	if err := service.store.SetReaction(ctx, path, visitorID, kind); err != nil {
		service.logger.Error("engagement_reaction_write_failed", slog.String("path", path), slog.Any("error", err))
		return apperr.ServiceUnavailable("Engagement store unavailable")
	}
	return nil
}

// checkPost rejects engagement traffic for paths that have no published post.
func (service *Service) checkPost(path string) error {
	if _, ok := service.posts.GetByPath(strings.Split(path, "/")); !ok {
		return apperr.NotFound("Post")
	}
	return nil
}

// zeroCounts builds a counts map carrying every kind explicitly.
func zeroCounts() map[Kind]int64 {
	counts := make(map[Kind]int64, len(Kinds()))
	for _, kind := range Kinds() {
		counts[kind] = 0
	}
	return counts
}
