package unit

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	rulingengine "veredicto/contexts/governance/ruling-engine"
	"veredicto/contexts/governance/ruling-engine/adapters/eligibility"
	domainerrors "veredicto/contexts/governance/ruling-engine/domain/errors"
)

const (
	ableVoter    = "11111111111"
	unableVoter  = "22222222222"
	unknownVoter = "33333333333"
	brokenVoter  = "44444444444"
)

func newEligibilityServer() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /users/{voter_id}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.PathValue("voter_id") {
		case ableVoter:
			_, _ = w.Write([]byte(`{"status":"ABLE_TO_VOTE"}`))
		case unableVoter:
			_, _ = w.Write([]byte(`{"status":"UNABLE_TO_VOTE"}`))
		case unknownVoter:
			_, _ = w.Write([]byte(`{"status":"MAYBE"}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	})
	return httptest.NewServer(mux)
}

func TestRemoteEligibilityDecisions(t *testing.T) {
	server := newEligibilityServer()
	defer server.Close()

	checker := eligibility.NewClient(server.URL, 2*time.Second, nil)
	module := rulingengine.NewInMemoryModule(nil, checker, nil)
	rulingID := createOpenRuling(t, module, 7)

	if err := submitVote(t, module, rulingID, ableVoter, true); err != nil {
		t.Fatalf("eligible voter must pass: %v", err)
	}

	err := submitVote(t, module, rulingID, unableVoter, true)
	if !errors.Is(err, domainerrors.ErrIneligibleVoter) {
		t.Fatalf("expected ineligible voter error, got %v", err)
	}

	err = submitVote(t, module, rulingID, unknownVoter, true)
	if !errors.Is(err, domainerrors.ErrEligibilityUnavailable) {
		t.Fatalf("unknown status must map to unavailable, got %v", err)
	}

	err = submitVote(t, module, rulingID, brokenVoter, true)
	if !errors.Is(err, domainerrors.ErrEligibilityUnavailable) {
		t.Fatalf("5xx must map to unavailable, got %v", err)
	}

	// Only the eligible voter's ballot landed.
	result, err := module.Handler.ResultHandler(context.Background(), rulingID)
	if err != nil {
		t.Fatalf("result failed: %v", err)
	}
	if result.TotalVotes != 1 {
		t.Fatalf("failed eligibility checks must leave no side effects, got %+v", result)
	}
}

func TestUnreachableEligibilityService(t *testing.T) {
	server := newEligibilityServer()
	server.Close() // no listener behind the URL anymore

	checker := eligibility.NewClient(server.URL, time.Second, nil)
	module := rulingengine.NewInMemoryModule(nil, checker, nil)
	rulingID := createOpenRuling(t, module, 7)

	err := submitVote(t, module, rulingID, ableVoter, true)
	if !errors.Is(err, domainerrors.ErrEligibilityUnavailable) {
		t.Fatalf("transport failure must map to unavailable, got %v", err)
	}
	if got := module.Store.VoteCount(rulingID); got != 0 {
		t.Fatalf("no vote may be recorded when eligibility is unavailable, got %d", got)
	}
}

func TestPassthroughEligibilityWhenUnconfigured(t *testing.T) {
	module := rulingengine.NewInMemoryModule(nil, eligibility.Passthrough{}, nil)
	rulingID := createOpenRuling(t, module, 7)

	if err := submitVote(t, module, rulingID, "99999999999", true); err != nil {
		t.Fatalf("pass-through must accept every voter: %v", err)
	}
}
