package ledger

import (
	"context"
	"fmt"

	"github.com/lendmark/demo-credit/internal/domain/entity"
)

// Deposit credits amount kobo to the user's wallet and records a single
// credit ledger entry with the system account as counterparty. The balance
// update and the ledger row commit or roll back together.
func (s *Service) Deposit(ctx context.Context, userID string, amount int64, narration string) (*entity.Transaction, error) {
	if err := s.validateAmount(amount, "Deposit amount must be greater than zero."); err != nil {
		return nil, err
	}

	var created *entity.Transaction

	err := s.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		_, wallet, err := s.loadUserWallet(txCtx, userID)
		if err != nil {
			return err
		}

		balanceBefore := wallet.Balance
		balanceAfter := balanceBefore + amount

		if err := s.applyBalance(txCtx, userID, balanceBefore, balanceAfter); err != nil {
			return err
		}

		if narration == "" {
			narration = fmt.Sprintf("Deposited %s", entity.FormatAmount(amount))
		}

		txn := &entity.Transaction{
			TransactionReference: entity.NewTransactionReference(),
			UserID:               userID,
			CounterpartyID:       s.systemAccountID,
			WalletID:             wallet.ID,
			Type:                 entity.TypeCredit,
			Amount:               amount,
			Currency:             wallet.Currency,
			BalanceBefore:        balanceBefore,
			BalanceAfter:         balanceAfter,
			Status:               entity.StatusSuccessful,
			Narration:            narration,
			Category:             "deposit",
		}
		if err := s.transactions.Create(txCtx, txn); err != nil {
			return err
		}

		created = txn
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateWallets(ctx, userID)
	s.logger.Info("Deposit applied", map[string]any{
		"user_id":   userID,
		"amount":    amount,
		"reference": created.TransactionReference,
	})

	return created, nil
}
