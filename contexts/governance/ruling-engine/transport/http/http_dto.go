package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateRulingRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	EndDate     string `json:"end_date"`
	Status      string `json:"status,omitempty"`
}

type RulingCreatedResponse struct {
	RulingID string `json:"ruling_id"`
}

type RulingSummary struct {
	RulingID     string `json:"ruling_id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	VotesInFavor int    `json:"votes_in_favor"`
	VotesAgainst int    `json:"votes_against"`
	Open         bool   `json:"open"`
}

type RulingListResponse struct {
	Items []RulingSummary `json:"items"`
}

type VoteRequest struct {
	VoterID string `json:"voter_id"`
	InFavor bool   `json:"in_favor"`
}

type VoteResponse struct {
	VoteID       string `json:"vote_id"`
	RulingID     string `json:"ruling_id"`
	VotesInFavor int    `json:"votes_in_favor"`
	VotesAgainst int    `json:"votes_against"`
}

type ResultResponse struct {
	RulingID          string  `json:"ruling_id"`
	TotalVotes        int     `json:"total_votes"`
	VotesInFavor      int     `json:"votes_in_favor"`
	VotesAgainst      int     `json:"votes_against"`
	PercentageInFavor float64 `json:"percentage_in_favor"`
	Outcome           string  `json:"outcome"`
}
