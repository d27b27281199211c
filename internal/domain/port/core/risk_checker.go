package core

import "context"

// RiskChecker models the external blacklist/risk screening boundary consulted
// during onboarding. Implementations call a third-party verification API.
type RiskChecker interface {
	// IsBlacklisted reports whether the identity (email, phone, BVN) is
	// flagged by the external screening service. A non-nil error means the
	// check itself could not be completed.
	IsBlacklisted(ctx context.Context, identity string) (bool, error)
}
