package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "veredicto/contexts/governance/ruling-engine/application"
	"veredicto/contexts/governance/ruling-engine/domain/entities"
	domainerrors "veredicto/contexts/governance/ruling-engine/domain/errors"
	"veredicto/contexts/governance/ruling-engine/ports"
)

// CreateRulingCommand is the write-model input for ruling creation. Status
// defaults to open when empty.
type CreateRulingCommand struct {
	Title       string
	Description string
	EndDate     time.Time
	Status      entities.RulingStatus
}

// RulingUseCase owns ruling creation and the open/close lifecycle.
type RulingUseCase struct {
	Rulings ports.RulingRepository
	Clock   ports.Clock
	IDGen   ports.IDGenerator
	Logger  *slog.Logger
}

// CreateRuling registers a new ruling with zero counters. An end date in the
// past is accepted; the ruling is simply never votable (expiry is checked on
// every submission).
func (uc RulingUseCase) CreateRuling(ctx context.Context, cmd CreateRulingCommand) (entities.Ruling, error) {
	logger := application.ResolveLogger(uc.Logger)

	title := strings.TrimSpace(cmd.Title)
	description := strings.TrimSpace(cmd.Description)
	if title == "" || description == "" || cmd.EndDate.IsZero() {
		logger.Warn("ruling create validation failed",
			"event", "ruling_create_validation_failed",
			"module", "governance/ruling-engine",
			"layer", "application",
			"title", title,
		)
		return entities.Ruling{}, domainerrors.ErrInvalidRulingInput
	}

	status := cmd.Status
	if status == "" {
		status = entities.RulingStatusOpen
	}
	if status != entities.RulingStatusOpen && status != entities.RulingStatusClosed {
		return entities.Ruling{}, domainerrors.ErrInvalidRulingInput
	}

	rulingID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.Ruling{}, err
	}

	now := uc.Clock.Now()
	ruling := entities.Ruling{
		RulingID:     rulingID,
		Title:        title,
		Description:  description,
		StartDate:    entities.DateOnly(now),
		EndDate:      entities.DateOnly(cmd.EndDate),
		VotesInFavor: 0,
		VotesAgainst: 0,
		Open:         status == entities.RulingStatusOpen,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.Rulings.SaveRuling(ctx, ruling); err != nil {
		return entities.Ruling{}, err
	}

	logger.Info("ruling created",
		"event", "ruling_created",
		"module", "governance/ruling-engine",
		"layer", "application",
		"ruling_id", ruling.RulingID,
		"end_date", ruling.EndDate.Format(time.DateOnly),
		"open", ruling.Open,
	)
	return ruling, nil
}

// OpenRuling reopens a closed ruling. Reopening a date-expired ruling is
// rejected; the voting window cannot be extended by flipping the flag.
func (uc RulingUseCase) OpenRuling(ctx context.Context, rulingID string) error {
	ruling, err := uc.Rulings.GetRuling(ctx, strings.TrimSpace(rulingID))
	if err != nil {
		return err
	}

	now := uc.Clock.Now()
	if ruling.ExpiredOn(now) {
		return domainerrors.ErrRulingExpired
	}

	ruling.Open = true
	ruling.UpdatedAt = now
	if err := uc.Rulings.SaveRuling(ctx, ruling); err != nil {
		return err
	}

	application.ResolveLogger(uc.Logger).Info("ruling opened",
		"event", "ruling_opened",
		"module", "governance/ruling-engine",
		"layer", "application",
		"ruling_id", ruling.RulingID,
	)
	return nil
}

// CloseRuling closes a ruling for voting. Closing is always allowed and
// idempotent, including for rulings already expired by date.
func (uc RulingUseCase) CloseRuling(ctx context.Context, rulingID string) error {
	ruling, err := uc.Rulings.GetRuling(ctx, strings.TrimSpace(rulingID))
	if err != nil {
		return err
	}

	ruling.Open = false
	ruling.UpdatedAt = uc.Clock.Now()
	if err := uc.Rulings.SaveRuling(ctx, ruling); err != nil {
		return err
	}

	application.ResolveLogger(uc.Logger).Info("ruling closed",
		"event", "ruling_closed",
		"module", "governance/ruling-engine",
		"layer", "application",
		"ruling_id", ruling.RulingID,
	)
	return nil
}
