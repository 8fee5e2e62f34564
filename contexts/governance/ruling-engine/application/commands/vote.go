package commands

import (
	"context"
	"log/slog"
	"strings"

	application "veredicto/contexts/governance/ruling-engine/application"
	"veredicto/contexts/governance/ruling-engine/domain/entities"
	domainerrors "veredicto/contexts/governance/ruling-engine/domain/errors"
	"veredicto/contexts/governance/ruling-engine/ports"
)

// SubmitVoteCommand is the write-model input for a single vote.
type SubmitVoteCommand struct {
	RulingID string
	VoterID  string
	InFavor  bool
}

// SubmitVoteResult carries the persisted vote and the ruling tally as it
// stood immediately after the increment.
type SubmitVoteResult struct {
	Vote   entities.Vote
	Ruling entities.Ruling
}

// VoteUseCase orchestrates vote submission: duplicate fast path, eligibility
// check, then the atomic tally mutation. The pre-flight duplicate check is an
// optimization only; correctness against concurrent submissions comes from
// the store's uniqueness guarantee inside RecordVote.
type VoteUseCase struct {
	Votes       ports.VoteRepository
	Tally       ports.TallyStore
	Eligibility ports.EligibilityChecker
	Clock       ports.Clock
	IDGen       ports.IDGenerator
	Logger      *slog.Logger
}

func (uc VoteUseCase) SubmitVote(ctx context.Context, cmd SubmitVoteCommand) (SubmitVoteResult, error) {
	logger := application.ResolveLogger(uc.Logger)

	rulingID := strings.TrimSpace(cmd.RulingID)
	voterID := strings.TrimSpace(cmd.VoterID)
	if rulingID == "" || voterID == "" {
		logger.Warn("vote submit validation failed",
			"event", "vote_submit_validation_failed",
			"module", "governance/ruling-engine",
			"layer", "application",
			"ruling_id", rulingID,
		)
		return SubmitVoteResult{}, domainerrors.ErrInvalidVoteInput
	}

	if exists, err := uc.Votes.HasVote(ctx, voterID, rulingID); err != nil {
		return SubmitVoteResult{}, err
	} else if exists {
		logger.Warn("vote submit rejected as duplicate",
			"event", "vote_submit_duplicate",
			"module", "governance/ruling-engine",
			"layer", "application",
			"ruling_id", rulingID,
		)
		return SubmitVoteResult{}, domainerrors.ErrDuplicateVote
	}

	status, err := uc.Eligibility.CheckVoter(ctx, voterID)
	if err != nil {
		logger.Error("vote submit eligibility check failed",
			"event", "vote_submit_eligibility_failed",
			"module", "governance/ruling-engine",
			"layer", "application",
			"ruling_id", rulingID,
			"error", err.Error(),
		)
		return SubmitVoteResult{}, err
	}
	if status != ports.EligibilityStatusEligible {
		logger.Warn("vote submit rejected for ineligible voter",
			"event", "vote_submit_ineligible",
			"module", "governance/ruling-engine",
			"layer", "application",
			"ruling_id", rulingID,
		)
		return SubmitVoteResult{}, domainerrors.ErrIneligibleVoter
	}

	voteID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return SubmitVoteResult{}, err
	}

	now := uc.Clock.Now()
	vote := entities.Vote{
		VoteID:    voteID,
		RulingID:  rulingID,
		VoterID:   voterID,
		InFavor:   cmd.InFavor,
		CreatedAt: now,
	}

	ruling, err := uc.Tally.RecordVote(ctx, vote, now)
	if err != nil {
		return SubmitVoteResult{}, err
	}

	logger.Info("vote tallied",
		"event", "vote_tallied",
		"module", "governance/ruling-engine",
		"layer", "application",
		"vote_id", vote.VoteID,
		"ruling_id", rulingID,
		"in_favor", vote.InFavor,
		"votes_in_favor", ruling.VotesInFavor,
		"votes_against", ruling.VotesAgainst,
	)
	return SubmitVoteResult{Vote: vote, Ruling: ruling}, nil
}
