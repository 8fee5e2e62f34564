package ports

import (
	"context"
	"time"

	"veredicto/contexts/governance/ruling-engine/domain/entities"
)

type RulingRepository interface {
	SaveRuling(ctx context.Context, ruling entities.Ruling) error
	GetRuling(ctx context.Context, rulingID string) (entities.Ruling, error)
	ListRulings(ctx context.Context, open *bool) ([]entities.Ruling, error)
}

type VoteRepository interface {
	HasVote(ctx context.Context, voterID string, rulingID string) (bool, error)
}

// TallyStore applies a vote to its ruling as one atomic unit: exactly one
// counter increment plus the vote row, or neither. Implementations must make
// the duplicate check race-free (unique constraint on voter+ruling) and
// re-check expiry and the open flag under the same lock, using now for the
// calendar comparison.
type TallyStore interface {
	RecordVote(ctx context.Context, vote entities.Vote, now time.Time) (entities.Ruling, error)
}

type EligibilityStatus string

const (
	EligibilityStatusEligible   EligibilityStatus = "eligible"
	EligibilityStatusIneligible EligibilityStatus = "ineligible"
)

// EligibilityChecker resolves whether a voter identity may vote. Errors mean
// the decision could not be obtained, never an implicit allow or deny.
type EligibilityChecker interface {
	CheckVoter(ctx context.Context, voterID string) (EligibilityStatus, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
