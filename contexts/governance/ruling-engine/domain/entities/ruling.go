package entities

import "time"

type RulingStatus string

const (
	RulingStatusOpen   RulingStatus = "open"
	RulingStatusClosed RulingStatus = "closed"
)

type Outcome string

const (
	OutcomeCounting Outcome = "counting"
	OutcomeApproved Outcome = "approved"
	OutcomeRejected Outcome = "rejected"
)

// Ruling is a votable proposal with a bounded voting window and a running
// tally. Counters must only move through the tally store so they stay in
// lockstep with persisted votes.
type Ruling struct {
	RulingID     string
	Title        string
	Description  string
	StartDate    time.Time
	EndDate      time.Time
	VotesInFavor int
	VotesAgainst int
	Open         bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DateOnly strips the clock component so end-date comparisons follow
// calendar days, not instants.
func DateOnly(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ExpiredOn reports whether the voting window had already ended before the
// given day. Expiry is authoritative over the stored open flag.
func (r Ruling) ExpiredOn(now time.Time) bool {
	return DateOnly(r.EndDate).Before(DateOnly(now))
}

func (r Ruling) TotalVotes() int {
	return r.VotesInFavor + r.VotesAgainst
}

// Result derives the read-only tally projection. Ties resolve to rejected.
func (r Ruling) Result() Result {
	total := r.TotalVotes()

	var percentage float64
	if total > 0 {
		percentage = float64(r.VotesInFavor) / float64(total) * 100
	}

	outcome := OutcomeCounting
	if !r.Open {
		if r.VotesInFavor > r.VotesAgainst {
			outcome = OutcomeApproved
		} else {
			outcome = OutcomeRejected
		}
	}

	return Result{
		RulingID:          r.RulingID,
		TotalVotes:        total,
		VotesInFavor:      r.VotesInFavor,
		VotesAgainst:      r.VotesAgainst,
		PercentageInFavor: percentage,
		Outcome:           outcome,
	}
}

// Vote is a single voter's one-time, immutable choice on a ruling.
type Vote struct {
	VoteID    string
	RulingID  string
	VoterID   string
	InFavor   bool
	CreatedAt time.Time
}

// Result is the derived projection of a ruling's tally. It is never stored.
type Result struct {
	RulingID          string
	TotalVotes        int
	VotesInFavor      int
	VotesAgainst      int
	PercentageInFavor float64
	Outcome           Outcome
}
