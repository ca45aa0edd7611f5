package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/vote/internal/core/domain"
	"github.com/vncsmyrnk/vote/internal/core/ports"
)

var errDuplicateVoter = errors.New("voter id already stored")

// Store is a process-local vote collection. It is safe for concurrent use and
// is meant to be shared by many contexts.
type Store struct {
	mu     sync.RWMutex
	votes  []domain.Vote
	voters map[uuid.UUID]struct{}
}

func NewStore() *Store {
	return &Store{
		voters: map[uuid.UUID]struct{}{},
	}
}

func (s *Store) insert(batch []domain.Vote) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[uuid.UUID]struct{}, len(batch))
	for _, v := range batch {
		if _, ok := s.voters[v.VoterID]; ok {
			return fmt.Errorf("%w: failed to save vote %s: %w", domain.ErrPersistence, v.VoterID, errDuplicateVoter)
		}
		if _, ok := seen[v.VoterID]; ok {
			return fmt.Errorf("%w: failed to save vote %s: %w", domain.ErrPersistence, v.VoterID, errDuplicateVoter)
		}
		seen[v.VoterID] = struct{}{}
	}

	for _, v := range batch {
		s.votes = append(s.votes, v)
		s.voters[v.VoterID] = struct{}{}
	}
	return nil
}

func (s *Store) filter(match func(domain.Vote) bool) []domain.Vote {
	s.mu.RLock()
	defer s.mu.RUnlock()

	votes := make([]domain.Vote, 0, len(s.votes))
	for _, v := range s.votes {
		if match(v) {
			votes = append(votes, v)
		}
	}
	return votes
}

type voteContext struct {
	store  *Store
	staged []domain.Vote
}

func NewVoteContext(store *Store) ports.VoteContext {
	return &voteContext{
		store: store,
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

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
	return c.store.insert(batch)
}

func (c *voteContext) QueryAll(ctx context.Context) ([]domain.Vote, error) {
	return c.QueryBy(ctx, ports.VoteFilter{})
}

func (c *voteContext) QueryBy(ctx context.Context, filter ports.VoteFilter) ([]domain.Vote, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
	return c.store.filter(filter.Match), nil
}
