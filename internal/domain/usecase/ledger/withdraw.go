package ledger

import (
	"context"
	"fmt"

	"github.com/lendmark/demo-credit/internal/domain/entity"
	errs "github.com/lendmark/demo-credit/internal/domain/error"
)

// Withdraw debits amount kobo from the user's wallet and records a single
// debit ledger entry with the system account as counterparty. The wallet
// must hold at least amount; an insufficient balance aborts the scope
// before any mutation is applied.
func (s *Service) Withdraw(ctx context.Context, userID string, amount int64, narration string) (*entity.Transaction, error) {
	if err := s.validateAmount(amount, "Withdrawal amount must be greater than zero."); err != nil {
		return nil, err
	}

	var created *entity.Transaction

	err := s.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		_, wallet, err := s.loadUserWallet(txCtx, userID)
		if err != nil {
			return err
		}

		if !wallet.CanDebit(amount) {
			return errs.BadRequest("Insufficient balance for withdrawal.")
		}

		balanceBefore := wallet.Balance
		balanceAfter := balanceBefore - amount

		if err := s.applyBalance(txCtx, userID, balanceBefore, balanceAfter); err != nil {
			return err
		}

		txn := &entity.Transaction{
			TransactionReference: entity.NewTransactionReference(),
			UserID:               userID,
			CounterpartyID:       s.systemAccountID,
			WalletID:             wallet.ID,
			Type:                 entity.TypeDebit,
			Amount:               amount,
			Currency:             wallet.Currency,
			BalanceBefore:        balanceBefore,
			BalanceAfter:         balanceAfter,
			Status:               entity.StatusSuccessful,
			Narration:            narrationOrDefault(narration, fmt.Sprintf("Withdrew %s", entity.FormatAmount(amount))),
			Category:             "withdrawal",
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
	s.logger.Info("Withdrawal applied", map[string]any{
		"user_id":   userID,
		"amount":    amount,
		"reference": created.TransactionReference,
	})

	return created, nil
}
