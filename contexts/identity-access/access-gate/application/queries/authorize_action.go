package queries

import (
	"context"
	"errors"
	"log/slog"

	application "askboard/contexts/identity-access/access-gate/application"
	"askboard/contexts/identity-access/access-gate/domain/entities"
	domainerrors "askboard/contexts/identity-access/access-gate/domain/errors"
	"askboard/contexts/identity-access/access-gate/domain/services"
	"askboard/contexts/identity-access/access-gate/faults"
)

// SubjectLookup resolves the content item (or existence-checked subject) an
// action targets. A nil item with a nil error means the subject does not
// exist. Lookup errors are infrastructure faults, never denials.
type SubjectLookup func(ctx context.Context) (*entities.ContentItem, error)

// AuthorizeActionQuery is one authorization request: the bearer token, the
// requested action, the endpoint whose wording applies on denial, and an
// optional subject lookup for actions that target an existing record.
type AuthorizeActionQuery struct {
	Token    string
	Action   entities.Action
	Endpoint faults.Endpoint
	Subject  SubjectLookup
}

// AuthorizeActionUseCase is the single authorization entry point for
// endpoint handlers: token check, then subject resolution, then ownership
// policy. The first failure short-circuits into an endpoint-specific
// denial; later stages are never evaluated.
type AuthorizeActionUseCase struct {
	ValidateToken ValidateTokenUseCase
	Logger        *slog.Logger
}

// Execute returns the acting account on Allow. On Deny it returns a
// *faults.Denial carrying the remapped code/message for query.Endpoint.
// Store faults propagate unwrapped so callers surface them as server
// errors rather than denials.
func (u AuthorizeActionUseCase) Execute(ctx context.Context, query AuthorizeActionQuery) (entities.UserAccount, error) {
	logger := application.ResolveLogger(u.Logger)

	session, err := u.ValidateToken.Execute(ctx, query.Token)
	if err != nil {
		if kind, ok := failureKind(err); ok {
			logger.Warn("authorization denied at token check",
				"event", "gate_denied_token",
				"module", "identity-access/access-gate",
				"layer", "application",
				"endpoint", string(query.Endpoint),
				"action", string(query.Action),
				"kind", string(kind),
			)
			return entities.UserAccount{}, faults.Remap(query.Endpoint, kind)
		}
		return entities.UserAccount{}, err
	}
	actor := session.User

	var item *entities.ContentItem
	if query.Subject != nil {
		item, err = query.Subject(ctx)
		if err != nil {
			logger.Error("subject lookup failed",
				"event", "gate_subject_lookup_failed",
				"module", "identity-access/access-gate",
				"layer", "application",
				"endpoint", string(query.Endpoint),
				"error", err.Error(),
			)
			return entities.UserAccount{}, err
		}
		if item == nil {
			logger.Warn("authorization denied, subject missing",
				"event", "gate_denied_subject",
				"module", "identity-access/access-gate",
				"layer", "application",
				"endpoint", string(query.Endpoint),
				"action", string(query.Action),
				"user_id", actor.UserID,
			)
			return entities.UserAccount{}, faults.Remap(query.Endpoint, faults.KindSubjectNotFound)
		}
	}

	if err := services.Authorize(actor, item, query.Action); err != nil {
		if kind, ok := failureKind(err); ok {
			logger.Warn("authorization denied by ownership policy",
				"event", "gate_denied_policy",
				"module", "identity-access/access-gate",
				"layer", "application",
				"endpoint", string(query.Endpoint),
				"action", string(query.Action),
				"user_id", actor.UserID,
				"kind", string(kind),
			)
			return entities.UserAccount{}, faults.Remap(query.Endpoint, kind)
		}
		return entities.UserAccount{}, err
	}

	logger.Debug("authorization allowed",
		"event", "gate_allowed",
		"module", "identity-access/access-gate",
		"layer", "application",
		"endpoint", string(query.Endpoint),
		"action", string(query.Action),
		"user_id", actor.UserID,
	)
	return actor, nil
}

func failureKind(err error) (faults.Kind, bool) {
	switch {
	case errors.Is(err, domainerrors.ErrNotAuthenticated):
		return faults.KindNotAuthenticated, true
	case errors.Is(err, domainerrors.ErrSessionExpired):
		return faults.KindSessionExpired, true
	case errors.Is(err, domainerrors.ErrForbidden):
		return faults.KindForbidden, true
	case errors.Is(err, domainerrors.ErrSubjectNotFound):
		return faults.KindSubjectNotFound, true
	default:
		return "", false
	}
}
