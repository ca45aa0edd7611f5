package domain

import (
	"github.com/google/uuid"
)

const (
	CandidateMessi   = "Messi"
	CandidateRonaldo = "Ronaldo"
)

// Vote is a single ballot. VotedFor is not restricted to the known candidates.
type Vote struct {
	VoterID  uuid.UUID `json:"voter_id"`
	VotedFor string    `json:"voted_for"`
}

// Tally counts votes per candidate. Both standard candidates are always
// present in the result.
func Tally(votes []Vote) map[string]int {
	counts := map[string]int{
		CandidateMessi:   0,
		CandidateRonaldo: 0,
	}
	for _, v := range votes {
		counts[v.VotedFor]++
	}
	return counts
}
