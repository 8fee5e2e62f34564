package unit

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"golang.org/x/sync/errgroup"

	rulingengine "veredicto/contexts/governance/ruling-engine"
	domainerrors "veredicto/contexts/governance/ruling-engine/domain/errors"
	httptransport "veredicto/contexts/governance/ruling-engine/transport/http"
)

func TestConcurrentDuplicateVotesYieldOneSuccess(t *testing.T) {
	module := rulingengine.NewInMemoryModule(nil, nil, nil)
	rulingID := createOpenRuling(t, module, 7)

	const attempts = 16
	var mu sync.Mutex
	var successes, duplicates int

	var group errgroup.Group
	for i := 0; i < attempts; i++ {
		group.Go(func() error {
			_, err := module.Handler.VoteHandler(context.Background(), rulingID, httptransport.VoteRequest{
				VoterID: "voter-racer",
				InFavor: true,
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, domainerrors.ErrDuplicateVote):
				duplicates++
			default:
				return err
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		t.Fatalf("unexpected vote error: %v", err)
	}

	if successes != 1 {
		t.Fatalf("expected exactly one successful vote, got %d", successes)
	}
	if duplicates != attempts-1 {
		t.Fatalf("expected %d duplicates, got %d", attempts-1, duplicates)
	}

	result, err := module.Handler.ResultHandler(context.Background(), rulingID)
	if err != nil {
		t.Fatalf("result failed: %v", err)
	}
	if result.TotalVotes != 1 || result.VotesInFavor != 1 {
		t.Fatalf("counters drifted under concurrency: %+v", result)
	}
	if got := module.Store.VoteCount(rulingID); got != result.TotalVotes {
		t.Fatalf("counter/record invariant broken: %d records vs %d total", got, result.TotalVotes)
	}
}

func TestConcurrentDistinctVotersAllSucceed(t *testing.T) {
	module := rulingengine.NewInMemoryModule(nil, nil, nil)
	rulingID := createOpenRuling(t, module, 7)

	const voters = 24
	var group errgroup.Group
	for i := 0; i < voters; i++ {
		voterID := fmt.Sprintf("voter-%02d", i)
		inFavor := i%3 != 0
		group.Go(func() error {
			_, err := module.Handler.VoteHandler(context.Background(), rulingID, httptransport.VoteRequest{
				VoterID: voterID,
				InFavor: inFavor,
			})
			return err
		})
	}
	if err := group.Wait(); err != nil {
		t.Fatalf("distinct voters must all succeed: %v", err)
	}

	result, err := module.Handler.ResultHandler(context.Background(), rulingID)
	if err != nil {
		t.Fatalf("result failed: %v", err)
	}
	if result.TotalVotes != voters {
		t.Fatalf("expected %d total votes, got %d", voters, result.TotalVotes)
	}
	expectedInFavor := 0
	for i := 0; i < voters; i++ {
		if i%3 != 0 {
			expectedInFavor++
		}
	}
	if result.VotesInFavor != expectedInFavor || result.VotesAgainst != voters-expectedInFavor {
		t.Fatalf("per-direction counts drifted: %+v", result)
	}
	if got := module.Store.VoteCount(rulingID); got != voters {
		t.Fatalf("counter/record invariant broken: %d records vs %d voters", got, voters)
	}
}
