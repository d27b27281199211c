package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/lendmark/demo-credit/internal/domain/entity"
	errs "github.com/lendmark/demo-credit/internal/domain/error"
	coreport "github.com/lendmark/demo-credit/internal/domain/port/core"
	"github.com/lendmark/demo-credit/internal/domain/port/persistence"
)

// Fixed user-facing failure messages for the money-movement operations.
const (
	msgUserNotFound        = "User not found."
	msgWalletNotFound      = "Wallet not found for this user."
	msgCounterpartyMissing = "Counterparty not found."
	msgCounterpartyWallet  = "Counterparty wallet not found."
)

// Service implements the money-movement core: deposit, withdraw, transfer
// and history queries over wallets and ledger entries. Every balance
// mutation runs inside the transactional retry wrapper; the paired ledger
// rows are written in the same scope as the balance change they record.
type Service struct {
	users        persistence.Repository[entity.User]
	wallets      persistence.Repository[entity.Wallet]
	transactions persistence.Repository[entity.Transaction]
	tx           persistence.TxRunner
	cache        persistence.WalletCache
	logger       coreport.Logger

	// systemAccountID is the counterparty recorded on deposits and
	// withdrawals, which have no real external party.
	systemAccountID string
}

// NewService creates the ledger service. cache may be nil when caching is
// disabled.
func NewService(
	users persistence.Repository[entity.User],
	wallets persistence.Repository[entity.Wallet],
	transactions persistence.Repository[entity.Transaction],
	tx persistence.TxRunner,
	cache persistence.WalletCache,
	systemAccountID string,
	logger coreport.Logger,
) *Service {
	return &Service{
		users:           users,
		wallets:         wallets,
		transactions:    transactions,
		tx:              tx,
		cache:           cache,
		systemAccountID: systemAccountID,
		logger:          logger,
	}
}

// loadUserWallet fetches the user and their wallet inside the current
// scope. Both are required preconditions for every money movement; absence
// of either is a Forbidden, not a NotFound, matching the API contract.
func (s *Service) loadUserWallet(ctx context.Context, userID string) (*entity.User, *entity.Wallet, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errs.IsNotFound(err) {
			return nil, nil, errs.Forbidden(msgUserNotFound)
		}
		return nil, nil, err
	}

	wallet, err := s.wallets.GetOne(ctx, persistence.Filter{"user_id": userID})
	if err != nil {
		if errs.IsNotFound(err) {
			return nil, nil, errs.Forbidden(msgWalletNotFound)
		}
		return nil, nil, err
	}

	return user, wallet, nil
}

// applyBalance writes the wallet's new balance with the observed balance in
// the update filter. The wallet row is known to exist inside this scope, so
// zero matched rows can only mean a concurrent mutation got there first;
// that surfaces as ErrStaleBalance, which the retry wrapper treats like any
// transient store conflict and replays on a fresh read.
func (s *Service) applyBalance(ctx context.Context, userID string, observed, next int64) error {
	err := s.wallets.UpdateFields(ctx,
		persistence.Filter{"user_id": userID, "balance": observed},
		map[string]any{"balance": next},
	)
	if err != nil {
		if errs.IsNotFound(err) {
			return fmt.Errorf("apply balance for user %s: %w", userID, errs.ErrStaleBalance)
		}
		return err
	}
	return nil
}

// validateAmount is the core's defensive re-check; the API surface has
// already bounded the amount before invocation.
func (s *Service) validateAmount(amount int64, message string) error {
	if err := entity.ValidateAmount(amount); err != nil {
		if errors.Is(err, errs.ErrInvalidAmount) {
			return errs.BadRequest(message)
		}
		return err
	}
	return nil
}

// invalidateWallets drops cached balances after a committed mutation.
func (s *Service) invalidateWallets(ctx context.Context, userIDs ...string) {
	if s.cache == nil {
		return
	}
	s.cache.Invalidate(ctx, userIDs...)
}
