// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: nhat.lepham.dev@gmail.com

/*
Package engagement tracks per-post visitor activity: view counts, likes, and
emoji reactions.

Views are deduplicated per visitor identifier. Likes are an unconditional
counter; one-shot enforcement is the client's job via its persisted local
state. Reactions are exclusive per visitor: choosing a new kind revokes the
previous one.

Counters live in an external store (Redis by default, Postgres as an
alternative backend) so they survive redeploys of the stateless API.
*/
package engagement

import "context"

// Kind is one of the supported reaction types.
type Kind string

const (
	KindLike       Kind = "like"
	KindLove       Kind = "love"
	KindDislike    Kind = "dislike"
	KindClap       Kind = "clap"
	KindFire       Kind = "fire"
	KindInsightful Kind = "insightful"
)

// Kinds lists every supported reaction type in display order.
func Kinds() []Kind {
	return []Kind{KindLike, KindLove, KindDislike, KindClap, KindFire, KindInsightful}
}

// KindStrings is Kinds as plain strings, for validation rules.
func KindStrings() []string {
	kinds := Kinds()
	values := make([]string, len(kinds))
	for i, kind := range kinds {
		values[i] = string(kind)
	}
	return values
}

// Valid reports whether the kind is one of the supported reaction types.
func (kind Kind) Valid() bool {
	switch kind {
	case KindLike, KindLove, KindDislike, KindClap, KindFire, KindInsightful:
		return true
	}
	return false
}

// ViewCount is the read payload for a post's view counter.
type ViewCount struct {
	Count int64 `json:"count"`
}

// ViewResult reports whether a view submission actually counted. Counted is
// false when the visitor was already recorded for the path.
type ViewResult struct {
	Counted bool `json:"counted"`
}

// LikeCount is the read payload for a post's like counter.
type LikeCount struct {
	Count int64 `json:"count"`
}

// ReactionSummary is the read payload for a post's reactions. Counts always
// carries every kind, zero-filled. CurrentUserReaction is nil when the
// requesting visitor has not reacted (or did not identify themselves).
type ReactionSummary struct {
	Counts              map[Kind]int64 `json:"counts"`
	CurrentUserReaction *Kind          `json:"current_user_reaction"`
}

// Repository is the engagement counter store.
//
// Implementations must make the counter updates themselves atomic
// (server-side increments, not read-then-write). The membership checks
// guarding them may race between two requests from the same visitor; the
// worst case is a one-count overcount, which is accepted.
type Repository interface {
	// Views returns the view counter for a path, 0 when absent.
	Views(ctx context.Context, path string) (int64, error)

	// RecordView counts a view once per visitor. It reports false without
	// touching the counter when the visitor was already recorded.
	RecordView(ctx context.Context, path, visitorID string) (bool, error)

	// Likes returns the like counter for a path, 0 when absent.
	Likes(ctx context.Context, path string) (int64, error)

	// AddLike increments the like counter unconditionally.
	AddLike(ctx context.Context, path string) error

	// Reactions returns the per-kind counters for a path. Kinds with no
	// reactions yet may be missing from the map.
	Reactions(ctx context.Context, path string) (map[Kind]int64, error)

	// VisitorReaction returns the visitor's active reaction for a path,
	// or "" when they have none.
	VisitorReaction(ctx context.Context, path, visitorID string) (Kind, error)

	// SetReaction makes kind the visitor's single active reaction for a
	// path, decrementing whatever they had chosen before. Re-submitting
	// the same kind is a no-op.
	SetReaction(ctx context.Context, path, visitorID string, kind Kind) error
}
