package queries

import (
	"context"
	"log/slog"
	"strings"

	application "askboard/contexts/identity-access/access-gate/application"
	"askboard/contexts/identity-access/access-gate/domain/entities"
	domainerrors "askboard/contexts/identity-access/access-gate/domain/errors"
	"askboard/contexts/identity-access/access-gate/ports"
)

// ValidateTokenUseCase classifies a bearer token against issuance and
// termination state. Pure lookup, no side effects.
type ValidateTokenUseCase struct {
	Sessions ports.SessionRepository
	Logger   *slog.Logger
}

// Execute returns the live session for token, ErrNotAuthenticated when no
// session was ever issued for it, or ErrSessionExpired when the session
// has been terminated. Empty or malformed tokens behave like unknown ones.
func (u ValidateTokenUseCase) Execute(ctx context.Context, token string) (entities.Session, error) {
	logger := application.ResolveLogger(u.Logger)

	if strings.TrimSpace(token) == "" {
		return entities.Session{}, domainerrors.ErrNotAuthenticated
	}

	session, found, err := u.Sessions.FindByToken(ctx, token)
	if err != nil {
		logger.Error("session lookup failed",
			"event", "gate_session_lookup_failed",
			"module", "identity-access/access-gate",
			"layer", "application",
			"error", err.Error(),
		)
		return entities.Session{}, err
	}
	if !found {
		return entities.Session{}, domainerrors.ErrNotAuthenticated
	}
	if !session.Live() {
		return entities.Session{}, domainerrors.ErrSessionExpired
	}
	return session, nil
}
