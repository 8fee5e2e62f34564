package rulingengine

import (
	"log/slog"

	"veredicto/contexts/governance/ruling-engine/adapters/eligibility"
	httpadapter "veredicto/contexts/governance/ruling-engine/adapters/http"
	"veredicto/contexts/governance/ruling-engine/adapters/memory"
	"veredicto/contexts/governance/ruling-engine/application/commands"
	"veredicto/contexts/governance/ruling-engine/application/queries"
	"veredicto/contexts/governance/ruling-engine/domain/entities"
	"veredicto/contexts/governance/ruling-engine/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Rulings     ports.RulingRepository
	Votes       ports.VoteRepository
	Tally       ports.TallyStore
	Eligibility ports.EligibilityChecker
	Clock       ports.Clock
	IDGen       ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	rulingUseCase := commands.RulingUseCase{
		Rulings: deps.Rulings,
		Clock:   deps.Clock,
		IDGen:   deps.IDGen,
		Logger:  deps.Logger,
	}
	voteUseCase := commands.VoteUseCase{
		Votes:       deps.Votes,
		Tally:       deps.Tally,
		Eligibility: deps.Eligibility,
		Clock:       deps.Clock,
		IDGen:       deps.IDGen,
		Logger:      deps.Logger,
	}
	resultUseCase := queries.ResultUseCase{
		Rulings: deps.Rulings,
	}
	return Module{
		Handler: httpadapter.Handler{
			Rulings: rulingUseCase,
			Votes:   voteUseCase,
			Results: resultUseCase,
			Logger:  deps.Logger,
		},
	}
}

// NewInMemoryModule wires the module against the in-memory store with a
// pass-through eligibility checker. Tests override Eligibility through
// NewModule when they need the remote path.
func NewInMemoryModule(seed []entities.Ruling, checker ports.EligibilityChecker, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	if checker == nil {
		checker = eligibility.Passthrough{}
	}
	module := NewModule(Dependencies{
		Rulings:     store,
		Votes:       store,
		Tally:       store,
		Eligibility: checker,
		Clock:       store,
		IDGen:       store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
