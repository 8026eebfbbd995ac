package queries

import (
	"context"
	"errors"
	"testing"
	"time"

	"askboard/contexts/identity-access/access-gate/adapters/memory"
	"askboard/contexts/identity-access/access-gate/domain/entities"
	domainerrors "askboard/contexts/identity-access/access-gate/domain/errors"
)

func seedSession(store *memory.Store, token, userID string, role entities.Role) {
	store.PutSession(entities.Session{
		Token: token,
		User: entities.UserAccount{
			UserID: userID,
			Role:   role,
		},
		IssuedAt: time.Now().UTC(),
	})
}

func TestValidateTokenLiveSession(t *testing.T) {
	store := memory.NewStore()
	seedSession(store, "token-1", "user-1", entities.RoleUser)
	useCase := ValidateTokenUseCase{Sessions: store}

	session, err := useCase.Execute(context.Background(), "token-1")
	if err != nil {
		t.Fatalf("live session should validate: %v", err)
	}
	if session.User.UserID != "user-1" {
		t.Fatalf("expected user-1, got %s", session.User.UserID)
	}
}

func TestValidateTokenEmptyToken(t *testing.T) {
	useCase := ValidateTokenUseCase{Sessions: memory.NewStore()}

	_, err := useCase.Execute(context.Background(), "")
	if !errors.Is(err, domainerrors.ErrNotAuthenticated) {
		t.Fatalf("expected not-authenticated for empty token, got %v", err)
	}

	_, err = useCase.Execute(context.Background(), "   ")
	if !errors.Is(err, domainerrors.ErrNotAuthenticated) {
		t.Fatalf("expected not-authenticated for blank token, got %v", err)
	}
}

func TestValidateTokenUnknownToken(t *testing.T) {
	useCase := ValidateTokenUseCase{Sessions: memory.NewStore()}

	_, err := useCase.Execute(context.Background(), "never-issued")
	if !errors.Is(err, domainerrors.ErrNotAuthenticated) {
		t.Fatalf("expected not-authenticated for unknown token, got %v", err)
	}
}

func TestValidateTokenTerminatedSession(t *testing.T) {
	store := memory.NewStore()
	seedSession(store, "token-out", "user-1", entities.RoleUser)
	store.TerminateSession("token-out", time.Now().UTC())
	useCase := ValidateTokenUseCase{Sessions: store}

	_, err := useCase.Execute(context.Background(), "token-out")
	if !errors.Is(err, domainerrors.ErrSessionExpired) {
		t.Fatalf("expected session-expired for terminated session, got %v", err)
	}
}

type failingSessions struct{}

func (failingSessions) FindByToken(context.Context, string) (entities.Session, bool, error) {
	return entities.Session{}, false, errors.New("connection refused")
}

func TestValidateTokenStoreFaultPropagates(t *testing.T) {
	useCase := ValidateTokenUseCase{Sessions: failingSessions{}}

	_, err := useCase.Execute(context.Background(), "token-1")
	if err == nil {
		t.Fatal("expected store fault to propagate")
	}
	if errors.Is(err, domainerrors.ErrNotAuthenticated) || errors.Is(err, domainerrors.ErrSessionExpired) {
		t.Fatalf("store fault must not be classified as a denial: %v", err)
	}
}
