package dto

import (
	"time"

	"github.com/lendmark/demo-credit/internal/domain/entity"
	"github.com/lendmark/demo-credit/internal/domain/usecase/ledger"
)

// AmountRequest represents the API request for a deposit or withdrawal.
// Amount is in minor units.
type AmountRequest struct {
	Amount    int64  `json:"amount" binding:"required,gt=0"`
	Narration string `json:"narration" binding:"max=255"`
}

// TransferRequest represents the API request for moving funds to another wallet
type TransferRequest struct {
	CounterpartyID string `json:"counterpartyId" binding:"required,uuid"`
	Amount         int64  `json:"amount" binding:"required,gt=0"`
	Narration      string `json:"narration" binding:"max=255"`
}

// TransactionResponse is the public view of a ledger entry
type TransactionResponse struct {
	ID                   string    `json:"id"`
	Reference            string    `json:"reference"`
	Type                 string    `json:"type"`
	Amount               int64     `json:"amount"`
	Currency             string    `json:"currency"`
	BalanceBefore        int64     `json:"balanceBefore"`
	BalanceAfter         int64     `json:"balanceAfter"`
	Status               string    `json:"status"`
	Narration            string    `json:"narration"`
	Category             string    `json:"category"`
	CounterpartyID       string    `json:"counterpartyId"`
	RelatedTransactionID *string   `json:"relatedTransactionId,omitempty"`
	CreatedAt            time.Time `json:"createdAt"`
}

// TransactionListResponse is one page of ledger entries with pagination meta
type TransactionListResponse struct {
	Data []TransactionResponse `json:"data"`
	Meta ledger.PageMeta       `json:"meta"`
}

// NewTransactionResponse maps a ledger entry to its public view
func NewTransactionResponse(txn *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:                   txn.ID,
		Reference:            txn.TransactionReference,
		Type:                 string(txn.Type),
		Amount:               txn.Amount,
		Currency:             txn.Currency,
		BalanceBefore:        txn.BalanceBefore,
		BalanceAfter:         txn.BalanceAfter,
		Status:               string(txn.Status),
		Narration:            txn.Narration,
		Category:             txn.Category,
		CounterpartyID:       txn.CounterpartyID,
		RelatedTransactionID: txn.RelatedTransactionID,
		CreatedAt:            txn.CreatedAt,
	}
}

// NewTransactionListResponse maps a history page to its public view
func NewTransactionListResponse(page *ledger.TransactionPage) TransactionListResponse {
	data := make([]TransactionResponse, 0, len(page.Data))
	for _, txn := range page.Data {
		data = append(data, NewTransactionResponse(txn))
	}
	return TransactionListResponse{Data: data, Meta: page.Meta}
}
