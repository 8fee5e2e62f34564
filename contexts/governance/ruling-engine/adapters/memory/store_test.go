package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"veredicto/contexts/governance/ruling-engine/domain/entities"
	domainerrors "veredicto/contexts/governance/ruling-engine/domain/errors"
)

func openRuling(id string, endOffsetDays int) entities.Ruling {
	now := time.Now().UTC()
	return entities.Ruling{
		RulingID:    id,
		Title:       "title",
		Description: "description",
		StartDate:   entities.DateOnly(now),
		EndDate:     entities.DateOnly(now.AddDate(0, 0, endOffsetDays)),
		Open:        true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestRecordVotePreconditions(t *testing.T) {
	store := NewStore(nil)
	now := time.Now().UTC()
	vote := entities.Vote{VoteID: "vote-1", RulingID: "ruling-1", VoterID: "voter-1", InFavor: true, CreatedAt: now}

	if _, err := store.RecordVote(context.Background(), vote, now); !errors.Is(err, domainerrors.ErrRulingNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	expired := openRuling("ruling-1", -1)
	store.SetRuling(expired)
	if _, err := store.RecordVote(context.Background(), vote, now); !errors.Is(err, domainerrors.ErrRulingExpired) {
		t.Fatalf("expected expired, got %v", err)
	}

	closed := openRuling("ruling-1", 7)
	closed.Open = false
	store.SetRuling(closed)
	if _, err := store.RecordVote(context.Background(), vote, now); !errors.Is(err, domainerrors.ErrRulingClosed) {
		t.Fatalf("expected closed, got %v", err)
	}

	store.SetRuling(openRuling("ruling-1", 7))
	ruling, err := store.RecordVote(context.Background(), vote, now)
	if err != nil {
		t.Fatalf("record vote failed: %v", err)
	}
	if ruling.VotesInFavor != 1 || ruling.VotesAgainst != 0 {
		t.Fatalf("unexpected counters: %+v", ruling)
	}

	duplicate := entities.Vote{VoteID: "vote-2", RulingID: "ruling-1", VoterID: "voter-1", InFavor: false, CreatedAt: now}
	if _, err := store.RecordVote(context.Background(), duplicate, now); !errors.Is(err, domainerrors.ErrDuplicateVote) {
		t.Fatalf("expected duplicate, got %v", err)
	}

	// Failed duplicate must leave both the counters and the record set alone.
	stored, err := store.GetRuling(context.Background(), "ruling-1")
	if err != nil {
		t.Fatalf("get ruling failed: %v", err)
	}
	if stored.VotesInFavor != 1 || stored.VotesAgainst != 0 {
		t.Fatalf("counters changed by failed vote: %+v", stored)
	}
	if got := store.VoteCount("ruling-1"); got != 1 {
		t.Fatalf("expected one vote record, got %d", got)
	}
}

func TestHasVoteAndListFilters(t *testing.T) {
	store := NewStore([]entities.Ruling{openRuling("ruling-a", 7)})
	closed := openRuling("ruling-b", 7)
	closed.Open = false
	closed.CreatedAt = closed.CreatedAt.Add(time.Second)
	store.SetRuling(closed)

	now := time.Now().UTC()
	if _, err := store.RecordVote(context.Background(), entities.Vote{
		VoteID: "vote-1", RulingID: "ruling-a", VoterID: "voter-1", InFavor: true, CreatedAt: now,
	}, now); err != nil {
		t.Fatalf("record vote failed: %v", err)
	}

	if exists, _ := store.HasVote(context.Background(), "voter-1", "ruling-a"); !exists {
		t.Fatalf("expected vote to exist")
	}
	if exists, _ := store.HasVote(context.Background(), "voter-1", "ruling-b"); exists {
		t.Fatalf("vote must be scoped to its ruling")
	}

	all, err := store.ListRulings(context.Background(), nil)
	if err != nil || len(all) != 2 {
		t.Fatalf("expected 2 rulings, got %d (%v)", len(all), err)
	}
	openOnly := true
	open, err := store.ListRulings(context.Background(), &openOnly)
	if err != nil || len(open) != 1 || open[0].RulingID != "ruling-a" {
		t.Fatalf("expected only ruling-a open, got %+v (%v)", open, err)
	}
}
