// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: nhat.lepham.dev@gmail.com

package engagement

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nhatlepham/inkwell/internal/platform/database/schema"
	"github.com/nhatlepham/inkwell/internal/platform/dberr"
)

// PostgresRepository implements Repository on relational counters.
//
// All counter updates are single-statement upserts (ON CONFLICT), so the
// increments themselves never race. Reaction switching needs a transaction
// because it reads the visitor's previous choice first.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) Views(ctx context.Context, path string) (int64, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		schema.EngagementView.Count, schema.EngagementView.Table, schema.EngagementView.Path)

	return repository.readCounter(ctx, query, path, "get_view_count")
}

func (repository *PostgresRepository) RecordView(ctx context.Context, path, visitorID string) (bool, error) {
	dedupQuery := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		schema.EngagementViewUser.Table, schema.EngagementViewUser.Path, schema.EngagementViewUser.VisitorID)

	tag, err := repository.db.Exec(ctx, dedupQuery, path, visitorID)
	if err != nil {
		return false, dberr.Wrap(err, "record_view_dedup")
	}
	if tag.RowsAffected() == 0 {
		// Visitor already counted for this path.
		return false, nil
	}

	countQuery := fmt.Sprintf(`
		INSERT INTO %s (%s, %s) VALUES ($1, 1)
		ON CONFLICT (%s) DO UPDATE SET %s = %s.%s + 1
	`,
		schema.EngagementView.Table, schema.EngagementView.Path, schema.EngagementView.Count,
		schema.EngagementView.Path, schema.EngagementView.Count,
		schema.EngagementView.Alias, schema.EngagementView.Count,
	)
	if _, err := repository.db.Exec(ctx, countQuery, path); err != nil {
		return false, dberr.Wrap(err, "record_view_incr")
	}
	return true, nil
}

func (repository *PostgresRepository) Likes(ctx context.Context, path string) (int64, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		schema.EngagementLike.Count, schema.EngagementLike.Table, schema.EngagementLike.Path)

	return repository.readCounter(ctx, query, path, "get_like_count")
}

func (repository *PostgresRepository) AddLike(ctx context.Context, path string) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s) VALUES ($1, 1)
		ON CONFLICT (%s) DO UPDATE SET %s = %s.%s + 1
	`,
		schema.EngagementLike.Table, schema.EngagementLike.Path, schema.EngagementLike.Count,
		schema.EngagementLike.Path, schema.EngagementLike.Count,
		schema.EngagementLike.Alias, schema.EngagementLike.Count,
	)
	if _, err := repository.db.Exec(ctx, query, path); err != nil {
		return dberr.Wrap(err, "add_like")
	}
	return nil
}

func (repository *PostgresRepository) Reactions(ctx context.Context, path string) (map[Kind]int64, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = $1`,
		schema.EngagementReaction.Kind, schema.EngagementReaction.Count,
		schema.EngagementReaction.Table, schema.EngagementReaction.Path)

	rows, err := repository.db.Query(ctx, query, path)
	if err != nil {
		return nil, dberr.Wrap(err, "get_reactions")
	}
	defer rows.Close()

	counts := make(map[Kind]int64)
	for rows.Next() {
		var kind string
		var count int64
		if err := rows.Scan(&kind, &count); err != nil {
			return nil, dberr.Wrap(err, "scan_reaction")
		}
		counts[Kind(kind)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "iterate_reactions")
	}
	return counts, nil
}

func (repository *PostgresRepository) VisitorReaction(ctx context.Context, path, visitorID string) (Kind, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s = $2`,
		schema.EngagementReactionUser.Kind, schema.EngagementReactionUser.Table,
		schema.EngagementReactionUser.Path, schema.EngagementReactionUser.VisitorID)

	var kind string
	err := repository.db.QueryRow(ctx, query, path, visitorID).Scan(&kind)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", dberr.Wrap(err, "get_visitor_reaction")
	}
	return Kind(kind), nil
}

/*
SetReaction makes kind the visitor's single active reaction for a path.

Description: Runs in a transaction: locks the visitor's membership row,
decrements the previous kind if one exists, then upserts the membership and
increments the new kind. The row lock removes the switch race two concurrent
requests from the same visitor would otherwise have.

Returns:
  - error: Execution errors
*/
func (repository *PostgresRepository) SetReaction(ctx context.Context, path, visitorID string, kind Kind) error {
	transaction, err := repository.db.Begin(ctx)
	if err != nil {
		return dberr.Wrap(err, "set_reaction_begin")
	}
	defer transaction.Rollback(ctx)

	previousQuery := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s = $2 FOR UPDATE`,
		schema.EngagementReactionUser.Kind, schema.EngagementReactionUser.Table,
		schema.EngagementReactionUser.Path, schema.EngagementReactionUser.VisitorID)

	var previous string
	err = transaction.QueryRow(ctx, previousQuery, path, visitorID).Scan(&previous)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return dberr.Wrap(err, "set_reaction_previous")
	}
	if Kind(previous) == kind {
		return transaction.Commit(ctx)
	}

	counterQuery := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)
		ON CONFLICT (%s, %s) DO UPDATE SET %s = %s.%s + $3
	`,
		schema.EngagementReaction.Table, schema.EngagementReaction.Path,
		schema.EngagementReaction.Kind, schema.EngagementReaction.Count,
		schema.EngagementReaction.Path, schema.EngagementReaction.Kind,
		schema.EngagementReaction.Count, schema.EngagementReaction.Alias, schema.EngagementReaction.Count,
	)

	if previous != "" {
		if _, err := transaction.Exec(ctx, counterQuery, path, previous, int64(-1)); err != nil {
			return dberr.Wrap(err, "set_reaction_decrement")
		}
	}
	if _, err := transaction.Exec(ctx, counterQuery, path, string(kind), int64(1)); err != nil {
		return dberr.Wrap(err, "set_reaction_increment")
	}

	membershipQuery := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)
		ON CONFLICT (%s, %s) DO UPDATE SET %s = $3
	`,
		schema.EngagementReactionUser.Table, schema.EngagementReactionUser.Path,
		schema.EngagementReactionUser.VisitorID, schema.EngagementReactionUser.Kind,
		schema.EngagementReactionUser.Path, schema.EngagementReactionUser.VisitorID,
		schema.EngagementReactionUser.Kind,
	)
	if _, err := transaction.Exec(ctx, membershipQuery, path, visitorID, string(kind)); err != nil {
		return dberr.Wrap(err, "set_reaction_membership")
	}

	if err := transaction.Commit(ctx); err != nil {
		return dberr.Wrap(err, "set_reaction_commit")
	}
	return nil
}

// readCounter runs a single-column counter query, mapping absence to zero.
func (repository *PostgresRepository) readCounter(ctx context.Context, query, path, operation string) (int64, error) {
	var count int64
	err := repository.db.QueryRow(ctx, query, path).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, dberr.Wrap(err, operation)
	}
	return count, nil
}
