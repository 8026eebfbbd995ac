package accessgate

import (
	"log/slog"

	"askboard/contexts/identity-access/access-gate/adapters/memory"
	"askboard/contexts/identity-access/access-gate/application/queries"
	"askboard/contexts/identity-access/access-gate/ports"
)

// Module is the access-gate composition root exposed to runtime wiring.
type Module struct {
	Gate  queries.AuthorizeActionUseCase
	Store *memory.Store
}

// Dependencies captures the runtime ports required by NewModule.
type Dependencies struct {
	Sessions ports.SessionRepository
	Logger   *slog.Logger
}

// NewModule wires the token validator and authorization gate use-cases.
func NewModule(deps Dependencies) Module {
	validate := queries.ValidateTokenUseCase{
		Sessions: deps.Sessions,
		Logger:   deps.Logger,
	}
	return Module{
		Gate: queries.AuthorizeActionUseCase{
			ValidateToken: validate,
			Logger:        deps.Logger,
		},
	}
}

// NewInMemoryModule builds a development/testing module with the in-memory
// session adapter, exposed for seeding.
func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Sessions: store,
		Logger:   logger,
	})
	module.Store = store
	return module
}
