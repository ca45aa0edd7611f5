package services

import (
	"context"
	"log/slog"

	"github.com/vncsmyrnk/vote/internal/core/domain"
	"github.com/vncsmyrnk/vote/internal/core/ports"
)

type voteService struct {
	db ports.VoteContext
}

func NewVoteService(db ports.VoteContext) ports.VoteService {
	return &voteService{
		db: db,
	}
}

func (s *voteService) GetVote(ctx context.Context, ref domain.VoterRef) (*domain.Vote, error) {
	id, err := ref.UUID()
	if err != nil {
		return nil, err
	}

	votes, err := s.db.QueryBy(ctx, ports.ByVoterID(id))
	if err != nil {
		slog.Warn("vote_event", "event", "get_vote_failed", "voter_id", id, "error", err)
		return nil, err
	}
	if len(votes) == 0 {
		return nil, domain.ErrVoteNotFound
	}

	slog.Debug("vote_event", "event", "vote_fetched", "voter_id", id)
	return &votes[0], nil
}

func (s *voteService) GetVotes(ctx context.Context) ([]domain.Vote, error) {
	votes, err := s.db.QueryAll(ctx)
	if err != nil {
		slog.Warn("vote_event", "event", "get_votes_failed", "error", err)
		return nil, err
	}
	if votes == nil {
		votes = []domain.Vote{}
	}

	slog.Debug("vote_event", "event", "votes_listed", "count", len(votes))
	return votes, nil
}

func (s *voteService) VoteExists(ctx context.Context, ref domain.VoterRef) (bool, error) {
	id, err := ref.UUID()
	if err != nil {
		return false, err
	}

	votes, err := s.db.QueryBy(ctx, ports.ByVoterID(id))
	if err != nil {
		slog.Warn("vote_event", "event", "vote_exists_failed", "voter_id", id, "error", err)
		return false, err
	}

	return len(votes) > 0, nil
}

func (s *voteService) Vote(ctx context.Context, vote domain.Vote) error {
	s.db.Add(vote)
	if err := s.db.Commit(ctx); err != nil {
		slog.Warn("vote_event", "event", "vote_failed", "voter_id", vote.VoterID, "error", err)
		return err
	}

	slog.Debug("vote_event", "event", "vote_recorded", "voter_id", vote.VoterID, "voted_for", vote.VotedFor)
	return nil
}

// Results counts the votes known to svc per candidate.
func Results(ctx context.Context, svc ports.VoteService) (map[string]int, error) {
	votes, err := svc.GetVotes(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Tally(votes), nil
}
