// Package repotest holds the behaviour every VoteContext backend must share.
package repotest

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/vncsmyrnk/vote/internal/core/domain"
	"github.com/vncsmyrnk/vote/internal/core/ports"
)

// VoteContextSuite runs against a backend through Open, which must return a
// factory of contexts over one empty store. It is called before every test.
type VoteContextSuite struct {
	suite.Suite
	Open func(t *testing.T) func() ports.VoteContext

	newContext func() ports.VoteContext
	ctx        context.Context
}

func (s *VoteContextSuite) SetupTest() {
	s.ctx = context.Background()
	s.newContext = s.Open(s.T())
}

func (s *VoteContextSuite) commit(votes ...domain.Vote) {
	c := s.newContext()
	for _, v := range votes {
		c.Add(v)
	}
	s.Require().NoError(c.Commit(s.ctx))
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

func (s *VoteContextSuite) TestEmptyStore() {
	votes, err := s.newContext().QueryAll(s.ctx)
	s.Require().NoError(err)
	s.Empty(votes)

	votes, err = s.newContext().QueryBy(s.ctx, ports.ByVoterID(uuid.New()))
	s.Require().NoError(err)
	s.Empty(votes)
}

func (s *VoteContextSuite) TestAddIsStagedUntilCommit() {
	vote := newVotes(1)[0]
	writer := s.newContext()
	writer.Add(vote)

	votes, err := s.newContext().QueryAll(s.ctx)
	s.Require().NoError(err)
	s.Empty(votes)

	s.Require().NoError(writer.Commit(s.ctx))

	votes, err = s.newContext().QueryAll(s.ctx)
	s.Require().NoError(err)
	s.Equal([]domain.Vote{vote}, votes)
}

func (s *VoteContextSuite) TestQueryAllKeepsCommitOrder() {
	expected := newVotes(5)
	for _, v := range expected {
		s.commit(v)
	}

	votes, err := s.newContext().QueryAll(s.ctx)
	s.Require().NoError(err)
	s.Equal(expected, votes)
}

func (s *VoteContextSuite) TestQueryAllKeepsBatchOrder() {
	expected := newVotes(5)
	s.commit(expected...)

	votes, err := s.newContext().QueryAll(s.ctx)
	s.Require().NoError(err)
	s.Equal(expected, votes)
}

func (s *VoteContextSuite) TestQueryByVoterID() {
	stored := newVotes(3)
	s.commit(stored...)

	votes, err := s.newContext().QueryBy(s.ctx, ports.ByVoterID(stored[1].VoterID))
	s.Require().NoError(err)
	s.Equal([]domain.Vote{stored[1]}, votes)
}

func (s *VoteContextSuite) TestQueryByCandidate() {
	stored := newVotes(5)
	s.commit(stored...)

	votes, err := s.newContext().QueryBy(s.ctx, ports.VoteFilter{VotedFor: domain.CandidateRonaldo})
	s.Require().NoError(err)
	s.Equal([]domain.Vote{stored[1], stored[3]}, votes)
}

func (s *VoteContextSuite) TestCommitWithoutChanges() {
	s.NoError(s.newContext().Commit(s.ctx))
}

func (s *VoteContextSuite) TestDuplicateVoterFailsCommit() {
	first := domain.Vote{VoterID: uuid.New(), VotedFor: domain.CandidateMessi}
	s.commit(first)

	c := s.newContext()
	c.Add(domain.Vote{VoterID: first.VoterID, VotedFor: domain.CandidateRonaldo})
	err := c.Commit(s.ctx)
	s.ErrorIs(err, domain.ErrPersistence)

	votes, err := s.newContext().QueryAll(s.ctx)
	s.Require().NoError(err)
	s.Equal([]domain.Vote{first}, votes)

	// the failed batch is dropped, not retried
	s.NoError(c.Commit(s.ctx))
}

func (s *VoteContextSuite) TestFailedBatchIsAtomic() {
	existing := newVotes(1)[0]
	s.commit(existing)

	fresh := newVotes(1)[0]
	c := s.newContext()
	c.Add(fresh)
	c.Add(existing)
	s.ErrorIs(c.Commit(s.ctx), domain.ErrPersistence)

	votes, err := s.newContext().QueryAll(s.ctx)
	s.Require().NoError(err)
	s.Equal([]domain.Vote{existing}, votes)
}
