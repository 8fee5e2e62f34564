package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"veredicto/contexts/governance/ruling-engine/domain/entities"
	domainerrors "veredicto/contexts/governance/ruling-engine/domain/errors"

	"github.com/google/uuid"
)

// Store is the in-memory adapter used by tests and local development. A
// single mutex covers every ruling/vote mutation, which makes RecordVote
// trivially atomic: the duplicate check, counter increment, and vote insert
// all happen under the same lock.
type Store struct {
	mu sync.Mutex

	rulings   map[string]entities.Ruling
	votes     map[string]entities.Vote
	voteIndex map[string]string
}

func NewStore(seed []entities.Ruling) *Store {
	rulings := make(map[string]entities.Ruling, len(seed))
	for _, ruling := range seed {
		rulings[ruling.RulingID] = ruling
	}
	return &Store{
		rulings:   rulings,
		votes:     make(map[string]entities.Vote),
		voteIndex: make(map[string]string),
	}
}

func (s *Store) SetRuling(ruling entities.Ruling) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rulings[strings.TrimSpace(ruling.RulingID)] = ruling
}

// VoteCount reports how many vote records exist for a ruling. Test helper
// for checking the counter/record invariant.
func (s *Store) VoteCount(rulingID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, vote := range s.votes {
		if vote.RulingID == strings.TrimSpace(rulingID) {
			count++
		}
	}
	return count
}

func (s *Store) SaveRuling(_ context.Context, ruling entities.Ruling) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rulings[strings.TrimSpace(ruling.RulingID)] = ruling
	return nil
}

func (s *Store) GetRuling(_ context.Context, rulingID string) (entities.Ruling, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ruling, ok := s.rulings[strings.TrimSpace(rulingID)]
	if !ok {
		return entities.Ruling{}, domainerrors.ErrRulingNotFound
	}
	return ruling, nil
}

func (s *Store) ListRulings(_ context.Context, open *bool) ([]entities.Ruling, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rulings := make([]entities.Ruling, 0, len(s.rulings))
	for _, ruling := range s.rulings {
		if open != nil && ruling.Open != *open {
			continue
		}
		rulings = append(rulings, ruling)
	}
	sort.Slice(rulings, func(i, j int) bool {
		return rulings[i].CreatedAt.Before(rulings[j].CreatedAt)
	})
	return rulings, nil
}

func (s *Store) HasVote(_ context.Context, voterID string, rulingID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.voteIndex[voteKey(voterID, rulingID)]
	return ok, nil
}

func (s *Store) RecordVote(_ context.Context, vote entities.Vote, now time.Time) (entities.Ruling, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ruling, ok := s.rulings[strings.TrimSpace(vote.RulingID)]
	if !ok {
		return entities.Ruling{}, domainerrors.ErrRulingNotFound
	}
	if ruling.ExpiredOn(now) {
		return entities.Ruling{}, domainerrors.ErrRulingExpired
	}
	if !ruling.Open {
		return entities.Ruling{}, domainerrors.ErrRulingClosed
	}

	key := voteKey(vote.VoterID, vote.RulingID)
	if _, exists := s.voteIndex[key]; exists {
		return entities.Ruling{}, domainerrors.ErrDuplicateVote
	}

	if vote.InFavor {
		ruling.VotesInFavor++
	} else {
		ruling.VotesAgainst++
	}
	ruling.UpdatedAt = now

	s.votes[strings.TrimSpace(vote.VoteID)] = vote
	s.voteIndex[key] = strings.TrimSpace(vote.VoteID)
	s.rulings[ruling.RulingID] = ruling
	return ruling, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func voteKey(voterID string, rulingID string) string {
	return strings.TrimSpace(voterID) + "|" + strings.TrimSpace(rulingID)
}
