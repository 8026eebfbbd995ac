package services

import (
	"askboard/contexts/identity-access/access-gate/domain/entities"
	domainerrors "askboard/contexts/identity-access/access-gate/domain/errors"
)

// Authorize decides whether actor may perform action on item. Ownership is
// identity equality on the owning account's id, never token equality.
//
// The caller resolves the item before invoking the policy; a missing item
// is the caller's not-found condition, not a policy outcome. CREATE and
// READ_ALL therefore accept a nil item.
func Authorize(actor entities.UserAccount, item *entities.ContentItem, action entities.Action) error {
	switch action {
	case entities.ActionCreate, entities.ActionReadAll:
		// Any authenticated caller; content either does not exist yet or
		// is read without ownership constraint.
		return nil
	case entities.ActionEdit:
		if item == nil || item.OwnerID != actor.UserID {
			// Admin role does not override edit permission.
			return domainerrors.ErrForbidden
		}
		return nil
	case entities.ActionDelete:
		if item == nil {
			return domainerrors.ErrForbidden
		}
		if item.OwnerID == actor.UserID || actor.IsAdmin() {
			return nil
		}
		return domainerrors.ErrForbidden
	default:
		return domainerrors.ErrForbidden
	}
}
