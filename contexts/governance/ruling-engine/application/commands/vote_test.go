package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"veredicto/contexts/governance/ruling-engine/adapters/memory"
	"veredicto/contexts/governance/ruling-engine/domain/entities"
	domainerrors "veredicto/contexts/governance/ruling-engine/domain/errors"
	"veredicto/contexts/governance/ruling-engine/ports"
)

type stubChecker struct {
	status ports.EligibilityStatus
	err    error
	calls  int
}

func (c *stubChecker) CheckVoter(_ context.Context, _ string) (ports.EligibilityStatus, error) {
	c.calls++
	return c.status, c.err
}

func newVoteUseCase(store *memory.Store, checker ports.EligibilityChecker) VoteUseCase {
	return VoteUseCase{
		Votes:       store,
		Tally:       store,
		Eligibility: checker,
		Clock:       store,
		IDGen:       store,
	}
}

func seedOpenRuling(store *memory.Store, id string) {
	now := time.Now().UTC()
	store.SetRuling(entities.Ruling{
		RulingID:    id,
		Title:       "title",
		Description: "description",
		StartDate:   entities.DateOnly(now),
		EndDate:     entities.DateOnly(now.AddDate(0, 0, 7)),
		Open:        true,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func TestSubmitVoteChecksDuplicateBeforeEligibility(t *testing.T) {
	store := memory.NewStore(nil)
	seedOpenRuling(store, "ruling-1")
	checker := &stubChecker{status: ports.EligibilityStatusEligible}
	uc := newVoteUseCase(store, checker)

	if _, err := uc.SubmitVote(context.Background(), SubmitVoteCommand{
		RulingID: "ruling-1", VoterID: "voter-1", InFavor: true,
	}); err != nil {
		t.Fatalf("first vote failed: %v", err)
	}

	// A duplicate submission must fail before the eligibility service is
	// consulted again, even if the checker would now deny or fail.
	checker.status = ports.EligibilityStatusIneligible
	callsBefore := checker.calls
	_, err := uc.SubmitVote(context.Background(), SubmitVoteCommand{
		RulingID: "ruling-1", VoterID: "voter-1", InFavor: false,
	})
	if !errors.Is(err, domainerrors.ErrDuplicateVote) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
	if checker.calls != callsBefore {
		t.Fatalf("eligibility must not be consulted for a duplicate")
	}
}

func TestSubmitVoteEligibilityOutcomes(t *testing.T) {
	store := memory.NewStore(nil)
	seedOpenRuling(store, "ruling-1")

	ineligible := newVoteUseCase(store, &stubChecker{status: ports.EligibilityStatusIneligible})
	_, err := ineligible.SubmitVote(context.Background(), SubmitVoteCommand{
		RulingID: "ruling-1", VoterID: "voter-1", InFavor: true,
	})
	if !errors.Is(err, domainerrors.ErrIneligibleVoter) {
		t.Fatalf("expected ineligible error, got %v", err)
	}

	unavailable := newVoteUseCase(store, &stubChecker{err: domainerrors.ErrEligibilityUnavailable})
	_, err = unavailable.SubmitVote(context.Background(), SubmitVoteCommand{
		RulingID: "ruling-1", VoterID: "voter-2", InFavor: true,
	})
	if !errors.Is(err, domainerrors.ErrEligibilityUnavailable) {
		t.Fatalf("expected unavailable error, got %v", err)
	}

	// Neither failure may leave a vote behind.
	if got := store.VoteCount("ruling-1"); got != 0 {
		t.Fatalf("failed submissions must not persist votes, got %d", got)
	}
}

func TestSubmitVoteValidatesInput(t *testing.T) {
	store := memory.NewStore(nil)
	uc := newVoteUseCase(store, &stubChecker{status: ports.EligibilityStatusEligible})

	_, err := uc.SubmitVote(context.Background(), SubmitVoteCommand{RulingID: "", VoterID: "voter-1"})
	if !errors.Is(err, domainerrors.ErrInvalidVoteInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	_, err = uc.SubmitVote(context.Background(), SubmitVoteCommand{RulingID: "ruling-1", VoterID: "  "})
	if !errors.Is(err, domainerrors.ErrInvalidVoteInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}
