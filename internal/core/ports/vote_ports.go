package ports

//go:generate mockgen -source=vote_ports.go -destination=mocks/mocks.go -package=mocks VoteContext,VoteService

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/vote/internal/core/domain"
)

// VoteFilter selects votes. Zero-valued fields match everything.
type VoteFilter struct {
	VoterID  uuid.NullUUID
	VotedFor string
}

func ByVoterID(id uuid.UUID) VoteFilter {
	return VoteFilter{VoterID: uuid.NullUUID{UUID: id, Valid: true}}
}

func (f VoteFilter) Match(v domain.Vote) bool {
	if f.VoterID.Valid && f.VoterID.UUID != v.VoterID {
		return false
	}
	if f.VotedFor != "" && f.VotedFor != v.VotedFor {
		return false
	}
	return true
}

// VoteContext is a unit of work over a vote store. Added votes stay staged
// until Commit. A context is owned by a single caller; the store behind it
// may be shared.
type VoteContext interface {
	Add(vote domain.Vote)
	Commit(ctx context.Context) error
	QueryAll(ctx context.Context) ([]domain.Vote, error)
	QueryBy(ctx context.Context, filter VoteFilter) ([]domain.Vote, error)
}

type VoteService interface {
	GetVote(ctx context.Context, ref domain.VoterRef) (*domain.Vote, error)
	GetVotes(ctx context.Context) ([]domain.Vote, error)
	VoteExists(ctx context.Context, ref domain.VoterRef) (bool, error)
	Vote(ctx context.Context, vote domain.Vote) error
}
