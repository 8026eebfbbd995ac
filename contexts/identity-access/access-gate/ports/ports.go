package ports

import (
	"context"

	"askboard/contexts/identity-access/access-gate/domain/entities"
)

// SessionRepository is the read boundary over persisted sessions. The gate
// never writes sessions; login/logout belong to the credential service.
type SessionRepository interface {
	// FindByToken resolves a session (live or terminated) by its bearer
	// token. found=false means no such session was ever issued.
	FindByToken(ctx context.Context, token string) (entities.Session, bool, error)
}
