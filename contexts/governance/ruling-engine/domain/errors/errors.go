package errors

import "errors"

var (
	ErrInvalidRulingInput     = errors.New("invalid ruling input")
	ErrInvalidVoteInput       = errors.New("invalid vote input")
	ErrRulingNotFound         = errors.New("ruling not found")
	ErrRulingClosed           = errors.New("ruling is closed for voting")
	ErrRulingExpired          = errors.New("ruling end date has already passed")
	ErrDuplicateVote          = errors.New("vote already registered for this voter and ruling")
	ErrIneligibleVoter        = errors.New("voter is not able to vote")
	ErrEligibilityUnavailable = errors.New("voter eligibility service unavailable")
)
