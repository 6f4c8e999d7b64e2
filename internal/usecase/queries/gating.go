package queries

import (
	"request-market/internal/usecase/entitlement"

	"github.com/google/uuid"
)

// Viewer is the caller a read path is answering for. A Nil ID means
// unauthenticated.
type Viewer struct {
	ID           uuid.UUID
	Entitlements entitlement.Entitlements
	HasResponded bool
}

func (v Viewer) IsAnonymous() bool {
	return v.ID == uuid.Nil
}

// ApplyGating masks requester contact data in place and stamps the derived
// booleans. Every read path that returns RequestView records must go through
// here; alternate paths would bypass the masking policy.
//
// The quota entitlement does not gate contact visibility directly: only
// ownership or having already responded does. Messaging additionally opens up
// with remaining quota. The phone is stripped for non-qualified viewers while
// the email stays visible, preserving the asymmetric masking policy as-is.
func ApplyGating(view *RequestView, viewer Viewer) {
	isOwner := !viewer.IsAnonymous() && viewer.ID == view.OwnerID

	view.ContactVisible = isOwner || viewer.HasResponded
	view.CanMessage = isOwner || viewer.HasResponded || viewer.Entitlements.CanMessage

	if !view.ContactVisible {
		view.Phone = nil
	}
}
