package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vncsmyrnk/vote/internal/adapters/repository/memory"
	"github.com/vncsmyrnk/vote/internal/core/domain"
	"github.com/vncsmyrnk/vote/internal/core/ports"
	"github.com/vncsmyrnk/vote/internal/core/ports/mocks"
)

// seed commits votes through a context of its own, so the service under test
// only sees what is durably stored.
func seed(t *testing.T, store *memory.Store, votes ...domain.Vote) {
	t.Helper()
	c := memory.NewVoteContext(store)
	for _, v := range votes {
		c.Add(v)
	}
	require.NoError(t, c.Commit(context.Background()))
}

func newVotes(n int) []domain.Vote {
	votes := make([]domain.Vote, n)
	for i := range votes {
		candidate := domain.CandidateMessi
		if i%2 == 1 {
			candidate = domain.CandidateRonaldo
		}
		votes[i] = domain.Vote{VoterID: uuid.New(), VotedFor: candidate}
	}
	return votes
}

func TestGetVote(t *testing.T) {
	ctx := context.Background()
	vote := domain.Vote{VoterID: uuid.New(), VotedFor: domain.CandidateMessi}
	store := memory.NewStore()
	seed(t, store, vote)
	svc := NewVoteService(memory.NewVoteContext(store))

	t.Run("by uuid", func(t *testing.T) {
		got, err := svc.GetVote(ctx, domain.RefID(vote.VoterID))
		require.NoError(t, err)
		assert.Equal(t, vote, *got)
	})

	t.Run("by string id", func(t *testing.T) {
		got, err := svc.GetVote(ctx, domain.RefString(vote.VoterID.String()))
		require.NoError(t, err)
		assert.Equal(t, vote, *got)
	})

	t.Run("missing vote", func(t *testing.T) {
		_, err := svc.GetVote(ctx, domain.RefID(uuid.New()))
		assert.ErrorIs(t, err, domain.ErrVoteNotFound)
	})

	t.Run("invalid string id", func(t *testing.T) {
		_, err := svc.GetVote(ctx, domain.RefString("messi"))
		assert.ErrorIs(t, err, domain.ErrInvalidVoterID)
		assert.NotErrorIs(t, err, domain.ErrVoteNotFound)
	})
}

func TestGetVotes(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store", func(t *testing.T) {
		svc := NewVoteService(memory.NewVoteContext(memory.NewStore()))
		votes, err := svc.GetVotes(ctx)
		require.NoError(t, err)
		assert.NotNil(t, votes)
		assert.Empty(t, votes)
	})

	t.Run("five votes in commit order", func(t *testing.T) {
		store := memory.NewStore()
		expected := newVotes(5)
		for _, v := range expected {
			seed(t, store, v)
		}

		votes, err := NewVoteService(memory.NewVoteContext(store)).GetVotes(ctx)
		require.NoError(t, err)
		require.Len(t, votes, 5)
		assert.Equal(t, expected, votes)
	})
}

func TestVoteExists(t *testing.T) {
	ctx := context.Background()
	vote := domain.Vote{VoterID: uuid.New(), VotedFor: domain.CandidateMessi}
	store := memory.NewStore()
	seed(t, store, vote)
	svc := NewVoteService(memory.NewVoteContext(store))
	missing := uuid.New()

	tests := []struct {
		name string
		ref  domain.VoterRef
		want bool
	}{
		{"existing by uuid", domain.RefID(vote.VoterID), true},
		{"existing by string id", domain.RefString(vote.VoterID.String()), true},
		{"missing by uuid", domain.RefID(missing), false},
		{"missing by string id", domain.RefString(missing.String()), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := svc.VoteExists(ctx, tt.ref)
			require.NoError(t, err)
			assert.Equal(t, tt.want, found)
		})
	}

	t.Run("invalid string id", func(t *testing.T) {
		_, err := svc.VoteExists(ctx, domain.RefString("not-a-uuid"))
		assert.ErrorIs(t, err, domain.ErrInvalidVoterID)
	})
}

func TestVote(t *testing.T) {
	ctx := context.Background()
	vote := domain.Vote{VoterID: uuid.New(), VotedFor: domain.CandidateMessi}
	store := memory.NewStore()

	require.NoError(t, NewVoteService(memory.NewVoteContext(store)).Vote(ctx, vote))

	votes, err := memory.NewVoteContext(store).QueryAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Vote{vote}, votes)
}

func TestVoteTwiceWithSameVoter(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	svc := NewVoteService(memory.NewVoteContext(memory.NewStore()))

	require.NoError(t, svc.Vote(ctx, domain.Vote{VoterID: id, VotedFor: domain.CandidateMessi}))
	err := svc.Vote(ctx, domain.Vote{VoterID: id, VotedFor: domain.CandidateRonaldo})
	assert.ErrorIs(t, err, domain.ErrPersistence)

	got, err := svc.GetVote(ctx, domain.RefID(id))
	require.NoError(t, err)
	assert.Equal(t, domain.CandidateMessi, got.VotedFor)
}

func TestKnownVoterScenario(t *testing.T) {
	ctx := context.Background()
	const id = "11111111-1111-1111-1111-111111111111"
	svc := NewVoteService(memory.NewVoteContext(memory.NewStore()))

	require.NoError(t, svc.Vote(ctx, domain.Vote{VoterID: uuid.MustParse(id), VotedFor: domain.CandidateMessi}))

	got, err := svc.GetVote(ctx, domain.RefString(id))
	require.NoError(t, err)
	assert.Equal(t, domain.CandidateMessi, got.VotedFor)

	found, err := svc.VoteExists(ctx, domain.RefString(id))
	require.NoError(t, err)
	assert.True(t, found)

	found, err = svc.VoteExists(ctx, domain.RefID(uuid.New()))
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStorageErrorsPropagate(t *testing.T) {
	ctx := context.Background()
	storageErr := fmt.Errorf("%w: connection refused", domain.ErrPersistence)
	id := uuid.New()

	t.Run("get vote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		db := mocks.NewMockVoteContext(ctrl)
		db.EXPECT().QueryBy(ctx, ports.ByVoterID(id)).Return(nil, storageErr)

		_, err := NewVoteService(db).GetVote(ctx, domain.RefID(id))
		assert.Equal(t, storageErr, err)
	})

	t.Run("get votes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		db := mocks.NewMockVoteContext(ctrl)
		db.EXPECT().QueryAll(ctx).Return(nil, storageErr)

		_, err := NewVoteService(db).GetVotes(ctx)
		assert.Equal(t, storageErr, err)
	})

	t.Run("vote exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		db := mocks.NewMockVoteContext(ctrl)
		db.EXPECT().QueryBy(ctx, ports.ByVoterID(id)).Return(nil, storageErr)

		found, err := NewVoteService(db).VoteExists(ctx, domain.RefString(id.String()))
		assert.Equal(t, storageErr, err)
		assert.False(t, found)
	})

	t.Run("vote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		db := mocks.NewMockVoteContext(ctrl)
		vote := domain.Vote{VoterID: id, VotedFor: domain.CandidateRonaldo}
		gomock.InOrder(
			db.EXPECT().Add(vote),
			db.EXPECT().Commit(ctx).Return(storageErr),
		)

		err := NewVoteService(db).Vote(ctx, vote)
		assert.True(t, errors.Is(err, domain.ErrPersistence))
	})
}

func TestInvalidIDSkipsStorage(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mocks.NewMockVoteContext(ctrl)
	svc := NewVoteService(db)

	_, err := svc.GetVote(context.Background(), domain.RefString(""))
	assert.ErrorIs(t, err, domain.ErrInvalidVoterID)

	_, err = svc.VoteExists(context.Background(), domain.RefString("1234"))
	assert.ErrorIs(t, err, domain.ErrInvalidVoterID)
}

func TestResults(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seed(t, store, newVotes(5)...)

	counts, err := Results(ctx, NewVoteService(memory.NewVoteContext(store)))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{domain.CandidateMessi: 3, domain.CandidateRonaldo: 2}, counts)
}
