package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/vncsmyrnk/vote/internal/core/domain"
	"github.com/vncsmyrnk/vote/internal/core/ports"
)

var errDuplicateVoter = errors.New("voter id already stored")

// Votes live in two keys under prefix: a hash from voter id to candidate and
// a list of voter ids in commit order.
type voteContext struct {
	client   redis.UniversalClient
	hashKey  string
	orderKey string
	staged   []domain.Vote
}

func NewVoteContext(client redis.UniversalClient, prefix string) ports.VoteContext {
	return &voteContext{
		client:   client,
		hashKey:  prefix + ":votes",
		orderKey: prefix + ":order",
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

	ids := make([]string, len(batch))
	seen := make(map[string]struct{}, len(batch))
	for i, v := range batch {
		ids[i] = v.VoterID.String()
		if _, ok := seen[ids[i]]; ok {
			return fmt.Errorf("%w: failed to save vote %s: %w", domain.ErrPersistence, ids[i], errDuplicateVoter)
		}
		seen[ids[i]] = struct{}{}
	}

	txf := func(tx *redis.Tx) error {
		existing, err := tx.HMGet(ctx, c.hashKey, ids...).Result()
		if err != nil {
			return err
		}
		for i, e := range existing {
			if e != nil {
				return fmt.Errorf("failed to save vote %s: %w", ids[i], errDuplicateVoter)
			}
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			for i, v := range batch {
				pipe.HSet(ctx, c.hashKey, ids[i], v.VotedFor)
				pipe.RPush(ctx, c.orderKey, ids[i])
			}
			return nil
		})
		return err
	}

	if err := c.client.Watch(ctx, txf, c.hashKey); err != nil {
		return fmt.Errorf("%w: failed to commit votes: %w", domain.ErrPersistence, err)
	}
	return nil
}

func (c *voteContext) QueryAll(ctx context.Context) ([]domain.Vote, error) {
	return c.QueryBy(ctx, ports.VoteFilter{})
}

func (c *voteContext) QueryBy(ctx context.Context, filter ports.VoteFilter) ([]domain.Vote, error) {
	if filter.VoterID.Valid {
		return c.queryOne(ctx, filter)
	}

	ids, err := c.client.LRange(ctx, c.orderKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list votes: %w", domain.ErrPersistence, err)
	}
	votes := []domain.Vote{}
	if len(ids) == 0 {
		return votes, nil
	}

	candidates, err := c.client.HMGet(ctx, c.hashKey, ids...).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get votes: %w", domain.ErrPersistence, err)
	}

	for i, raw := range candidates {
		votedFor, ok := raw.(string)
		if !ok {
			continue
		}
		id, err := uuid.Parse(ids[i])
		if err != nil {
			return nil, fmt.Errorf("%w: corrupt voter id %q: %w", domain.ErrPersistence, ids[i], err)
		}
		v := domain.Vote{VoterID: id, VotedFor: votedFor}
		if filter.Match(v) {
			votes = append(votes, v)
		}
	}
	return votes, nil
}

func (c *voteContext) queryOne(ctx context.Context, filter ports.VoteFilter) ([]domain.Vote, error) {
	votedFor, err := c.client.HGet(ctx, c.hashKey, filter.VoterID.UUID.String()).Result()
	if errors.Is(err, redis.Nil) {
		return []domain.Vote{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get vote: %w", domain.ErrPersistence, err)
	}

	v := domain.Vote{VoterID: filter.VoterID.UUID, VotedFor: votedFor}
	if !filter.Match(v) {
		return []domain.Vote{}, nil
	}
	return []domain.Vote{v}, nil
}
