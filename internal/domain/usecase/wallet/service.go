package wallet

import (
	"context"

	"github.com/lendmark/demo-credit/internal/domain/entity"
	errs "github.com/lendmark/demo-credit/internal/domain/error"
	coreport "github.com/lendmark/demo-credit/internal/domain/port/core"
	"github.com/lendmark/demo-credit/internal/domain/port/persistence"
)

// Service provisions wallets and serves balance lookups. Balance reads go
// through the wallet cache when one is configured.
type Service struct {
	users   persistence.Repository[entity.User]
	wallets persistence.Repository[entity.Wallet]
	cache   persistence.WalletCache
	logger  coreport.Logger
}

// NewService creates the wallet service. cache may be nil.
func NewService(
	users persistence.Repository[entity.User],
	wallets persistence.Repository[entity.Wallet],
	cache persistence.WalletCache,
	logger coreport.Logger,
) *Service {
	return &Service{users: users, wallets: wallets, cache: cache, logger: logger}
}

// CreateWallet provisions the user's single wallet with a zero balance.
func (s *Service) CreateWallet(ctx context.Context, userID string) (*entity.Wallet, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errs.IsNotFound(err) {
			return nil, errs.Forbidden("User not found.")
		}
		return nil, err
	}

	w := &entity.Wallet{
		UserID:   user.ID,
		Email:    user.Email,
		Currency: entity.DefaultCurrency,
		Balance:  0,
	}
	if err := s.wallets.Create(ctx, w); err != nil {
		return nil, err
	}

	s.logger.Info("Wallet provisioned", map[string]any{
		"user_id":   userID,
		"wallet_id": w.ID,
	})
	return w, nil
}

// GetBalance returns the user's wallet, serving from cache when possible.
func (s *Service) GetBalance(ctx context.Context, userID string) (*entity.Wallet, error) {
	if s.cache != nil {
		if w, ok := s.cache.Get(ctx, userID); ok {
			return w, nil
		}
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errs.IsNotFound(err) {
			return nil, errs.Forbidden("User not found.")
		}
		return nil, err
	}

	w, err := s.wallets.GetOne(ctx, persistence.Filter{"user_id": user.ID})
	if err != nil {
		if errs.IsNotFound(err) {
			return nil, errs.Forbidden("Wallet not found for this user.")
		}
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, w)
	}
	return w, nil
}
