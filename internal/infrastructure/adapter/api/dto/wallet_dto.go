package dto

import (
	"time"

	"github.com/lendmark/demo-credit/internal/domain/entity"
)

// WalletResponse is the public view of a wallet. Balance is in minor
// units; balanceFormatted carries the display form.
type WalletResponse struct {
	ID               string    `json:"id"`
	Currency         string    `json:"currency"`
	Balance          int64     `json:"balance"`
	BalanceFormatted string    `json:"balanceFormatted"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// NewWalletResponse maps a wallet entity to its public view
func NewWalletResponse(wallet *entity.Wallet) WalletResponse {
	return WalletResponse{
		ID:               wallet.ID,
		Currency:         wallet.Currency,
		Balance:          wallet.Balance,
		BalanceFormatted: entity.FormatAmount(wallet.Balance),
		UpdatedAt:        wallet.UpdatedAt,
	}
}
