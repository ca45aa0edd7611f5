package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// VoterRef identifies a voter either by a parsed uuid or by its string form.
// Build one with RefID or RefString.
type VoterRef struct {
	id     uuid.UUID
	raw    string
	parsed bool
}

func RefID(id uuid.UUID) VoterRef {
	return VoterRef{id: id, parsed: true}
}

func RefString(s string) VoterRef {
	return VoterRef{raw: s}
}

// UUID normalizes the reference to its canonical uuid. The string variant
// fails with ErrInvalidVoterID when it does not parse.
func (r VoterRef) UUID() (uuid.UUID, error) {
	if r.parsed {
		return r.id, nil
	}

	id, err := uuid.Parse(r.raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrInvalidVoterID, r.raw)
	}
	return id, nil
}

func (r VoterRef) String() string {
	if r.parsed {
		return r.id.String()
	}
	return r.raw
}
