package persistence

import (
	"context"

	"github.com/lendmark/demo-credit/internal/domain/entity"
)

// WalletCache is a read cache for wallet lookups keyed by owning user.
// Cache failures are soft: implementations log and degrade to misses,
// they never fail the calling operation.
type WalletCache interface {
	// Get returns the cached wallet for the user, if any.
	Get(ctx context.Context, userID string) (*entity.Wallet, bool)
	// Set stores the wallet under its owning user.
	Set(ctx context.Context, wallet *entity.Wallet)
	// Invalidate drops the cached wallets for the given users. Called after
	// every committed balance mutation.
	Invalidate(ctx context.Context, userIDs ...string)
}
