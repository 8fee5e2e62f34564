package queries

import (
	"context"
	"errors"
	"strings"

	"veredicto/contexts/governance/ruling-engine/domain/entities"
	domainerrors "veredicto/contexts/governance/ruling-engine/domain/errors"
	"veredicto/contexts/governance/ruling-engine/ports"
)

// ListRulingsQuery filters the ruling listing. A non-empty RulingID narrows
// the listing to that single ruling (empty result when absent or filtered
// out by Open).
type ListRulingsQuery struct {
	RulingID string
	Open     *bool
}

// ResultUseCase serves the read side: tally projections and listings. Both
// are pure reads with no side effects.
type ResultUseCase struct {
	Rulings ports.RulingRepository
}

// Result computes the tally projection for one ruling from its current
// stored state.
func (uc ResultUseCase) Result(ctx context.Context, rulingID string) (entities.Result, error) {
	ruling, err := uc.Rulings.GetRuling(ctx, strings.TrimSpace(rulingID))
	if err != nil {
		return entities.Result{}, err
	}
	return ruling.Result(), nil
}

func (uc ResultUseCase) ListRulings(ctx context.Context, query ListRulingsQuery) ([]entities.Ruling, error) {
	if id := strings.TrimSpace(query.RulingID); id != "" {
		ruling, err := uc.Rulings.GetRuling(ctx, id)
		if err != nil {
			if errors.Is(err, domainerrors.ErrRulingNotFound) {
				return []entities.Ruling{}, nil
			}
			return nil, err
		}
		if query.Open != nil && ruling.Open != *query.Open {
			return []entities.Ruling{}, nil
		}
		return []entities.Ruling{ruling}, nil
	}

	rulings, err := uc.Rulings.ListRulings(ctx, query.Open)
	if err != nil {
		return nil, err
	}
	if rulings == nil {
		rulings = []entities.Ruling{}
	}
	return rulings, nil
}
