package httpadapter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"veredicto/contexts/governance/ruling-engine/application/commands"
	"veredicto/contexts/governance/ruling-engine/application/queries"
	"veredicto/contexts/governance/ruling-engine/domain/entities"
	domainerrors "veredicto/contexts/governance/ruling-engine/domain/errors"
	httptransport "veredicto/contexts/governance/ruling-engine/transport/http"
)

type Handler struct {
	Rulings commands.RulingUseCase
	Votes   commands.VoteUseCase
	Results queries.ResultUseCase
	Logger  *slog.Logger
}

func (h Handler) CreateRulingHandler(ctx context.Context, req httptransport.CreateRulingRequest) (httptransport.RulingCreatedResponse, error) {
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return httptransport.RulingCreatedResponse{}, domainerrors.ErrInvalidRulingInput
	}
	status, err := parseStatus(req.Status)
	if err != nil {
		return httptransport.RulingCreatedResponse{}, err
	}

	ruling, err := h.Rulings.CreateRuling(ctx, commands.CreateRulingCommand{
		Title:       req.Title,
		Description: req.Description,
		EndDate:     endDate,
		Status:      status,
	})
	if err != nil {
		return httptransport.RulingCreatedResponse{}, err
	}
	return httptransport.RulingCreatedResponse{RulingID: ruling.RulingID}, nil
}

func (h Handler) ListRulingsHandler(ctx context.Context, rulingID string, status string) (httptransport.RulingListResponse, error) {
	var open *bool
	if strings.TrimSpace(status) != "" {
		parsed, err := parseStatus(status)
		if err != nil {
			return httptransport.RulingListResponse{}, err
		}
		value := parsed == entities.RulingStatusOpen
		open = &value
	}

	rulings, err := h.Results.ListRulings(ctx, queries.ListRulingsQuery{
		RulingID: rulingID,
		Open:     open,
	})
	if err != nil {
		return httptransport.RulingListResponse{}, err
	}

	items := make([]httptransport.RulingSummary, 0, len(rulings))
	for _, ruling := range rulings {
		items = append(items, httptransport.RulingSummary{
			RulingID:     ruling.RulingID,
			Title:        ruling.Title,
			Description:  ruling.Description,
			StartDate:    ruling.StartDate.Format(time.DateOnly),
			EndDate:      ruling.EndDate.Format(time.DateOnly),
			VotesInFavor: ruling.VotesInFavor,
			VotesAgainst: ruling.VotesAgainst,
			Open:         ruling.Open,
		})
	}
	return httptransport.RulingListResponse{Items: items}, nil
}

func (h Handler) VoteHandler(ctx context.Context, rulingID string, req httptransport.VoteRequest) (httptransport.VoteResponse, error) {
	result, err := h.Votes.SubmitVote(ctx, commands.SubmitVoteCommand{
		RulingID: rulingID,
		VoterID:  req.VoterID,
		InFavor:  req.InFavor,
	})
	if err != nil {
		return httptransport.VoteResponse{}, err
	}
	return httptransport.VoteResponse{
		VoteID:       result.Vote.VoteID,
		RulingID:     result.Ruling.RulingID,
		VotesInFavor: result.Ruling.VotesInFavor,
		VotesAgainst: result.Ruling.VotesAgainst,
	}, nil
}

func (h Handler) ResultHandler(ctx context.Context, rulingID string) (httptransport.ResultResponse, error) {
	result, err := h.Results.Result(ctx, rulingID)
	if err != nil {
		return httptransport.ResultResponse{}, err
	}
	return httptransport.ResultResponse{
		RulingID:          result.RulingID,
		TotalVotes:        result.TotalVotes,
		VotesInFavor:      result.VotesInFavor,
		VotesAgainst:      result.VotesAgainst,
		PercentageInFavor: result.PercentageInFavor,
		Outcome:           string(result.Outcome),
	}, nil
}

func (h Handler) OpenRulingHandler(ctx context.Context, rulingID string) error {
	return h.Rulings.OpenRuling(ctx, rulingID)
}

func (h Handler) CloseRulingHandler(ctx context.Context, rulingID string) error {
	return h.Rulings.CloseRuling(ctx, rulingID)
}

func parseDate(raw string) (time.Time, error) {
	return time.Parse(time.DateOnly, strings.TrimSpace(raw))
}

func parseStatus(raw string) (entities.RulingStatus, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "":
		return entities.RulingStatusOpen, nil
	case "OPEN":
		return entities.RulingStatusOpen, nil
	case "CLOSED":
		return entities.RulingStatusClosed, nil
	default:
		return "", domainerrors.ErrInvalidRulingInput
	}
}
