package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vncsmyrnk/vote/internal/core/domain"
	"github.com/vncsmyrnk/vote/internal/core/ports"
)

type voteContext struct {
	db     *sql.DB
	staged []domain.Vote
}

func NewVoteContext(db *sql.DB) ports.VoteContext {
	return &voteContext{
		db: db,
	}
}

func (c *voteContext) Add(vote domain.Vote) {
	c.staged = append(c.staged, vote)
}

func (c *voteContext) Commit(ctx context.Context) error {
	if len(c.staged) == 0 {
		return nil
	}
	batch := c.staged
	c.staged = nil

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to begin transaction: %w", domain.ErrPersistence, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO votes (voter_id, voted_for) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("%w: failed to prepare vote statement: %w", domain.ErrPersistence, err)
	}
	defer stmt.Close()

	for _, v := range batch {
		if _, err := stmt.ExecContext(ctx, v.VoterID.String(), v.VotedFor); err != nil {
			return fmt.Errorf("%w: failed to save vote %s: %w", domain.ErrPersistence, v.VoterID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: failed to commit transaction: %w", domain.ErrPersistence, err)
	}
	return nil
}

func (c *voteContext) QueryAll(ctx context.Context) ([]domain.Vote, error) {
	return c.QueryBy(ctx, ports.VoteFilter{})
}

func (c *voteContext) QueryBy(ctx context.Context, filter ports.VoteFilter) ([]domain.Vote, error) {
	query := "SELECT voter_id, voted_for FROM votes WHERE 1 = 1"
	var args []any
	if filter.VoterID.Valid {
		query += " AND voter_id = ?"
		args = append(args, filter.VoterID.UUID.String())
	}
	if filter.VotedFor != "" {
		query += " AND voted_for = ?"
		args = append(args, filter.VotedFor)
	}
	query += " ORDER BY rowid"

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query votes: %w", domain.ErrPersistence, err)
	}
	defer rows.Close()

	votes := []domain.Vote{}
	for rows.Next() {
		var v domain.Vote
		if err := rows.Scan(&v.VoterID, &v.VotedFor); err != nil {
			return nil, fmt.Errorf("%w: failed to scan vote: %w", domain.ErrPersistence, err)
		}
		votes = append(votes, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error iterating votes: %w", domain.ErrPersistence, err)
	}
	return votes, nil
}
