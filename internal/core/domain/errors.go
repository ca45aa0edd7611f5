package domain

import "errors"

var (
	ErrVoteNotFound   = errors.New("vote not found")
	ErrInvalidVoterID = errors.New("invalid voter id")
	ErrPersistence    = errors.New("vote storage failure")
)
