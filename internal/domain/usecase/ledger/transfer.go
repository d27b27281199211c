package ledger

import (
	"context"
	"fmt"

	"github.com/lendmark/demo-credit/internal/domain/entity"
	errs "github.com/lendmark/demo-credit/internal/domain/error"
	"github.com/lendmark/demo-credit/internal/domain/port/persistence"
)

// Transfer moves amount kobo from the sender's wallet to the counterparty's
// wallet inside one transactional scope, producing two linked ledger rows
// that share a single transaction reference: the sender's debit leg and the
// counterparty's credit leg. Either both rows commit or neither does.
//
// The sender's wallet is decremented before the counterparty's wallet is
// incremented; both balance updates complete before either ledger row is
// inserted. The debit leg is returned.
func (s *Service) Transfer(ctx context.Context, userID, counterpartyID string, amount int64, narration string) (*entity.Transaction, error) {
	if err := s.validateAmount(amount, "Transfer amount must be greater than zero."); err != nil {
		return nil, err
	}
	if counterpartyID == userID {
		return nil, errs.BadRequest("Cannot transfer to your own wallet.")
	}

	var debitLeg *entity.Transaction

	err := s.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		sender, senderWallet, err := s.loadUserWallet(txCtx, userID)
		if err != nil {
			return err
		}

		if !senderWallet.CanDebit(amount) {
			return errs.BadRequest("Insufficient balance for transfer.")
		}

		counterparty, err := s.users.GetByID(txCtx, counterpartyID)
		if err != nil {
			if errs.IsNotFound(err) {
				return errs.Forbidden(msgCounterpartyMissing)
			}
			return err
		}

		counterpartyWallet, err := s.wallets.GetOne(txCtx, persistence.Filter{"user_id": counterpartyID})
		if err != nil {
			if errs.IsNotFound(err) {
				return errs.Forbidden(msgCounterpartyWallet)
			}
			return err
		}

		senderBefore := senderWallet.Balance
		counterpartyBefore := counterpartyWallet.Balance
		senderAfter := senderBefore - amount
		counterpartyAfter := counterpartyBefore + amount

		// Both balances are computed up front; the guarded updates are
		// issued on the shared session, sender first, and must both succeed
		// before either ledger row is written.
		if err := s.applyBalance(txCtx, userID, senderBefore, senderAfter); err != nil {
			return err
		}
		if err := s.applyBalance(txCtx, counterpartyID, counterpartyBefore, counterpartyAfter); err != nil {
			return err
		}

		reference := entity.NewTransactionReference()

		debit := &entity.Transaction{
			TransactionReference: reference,
			UserID:               userID,
			CounterpartyID:       counterpartyID,
			WalletID:             senderWallet.ID,
			Type:                 entity.TypeDebit,
			Amount:               amount,
			Currency:             senderWallet.Currency,
			BalanceBefore:        senderBefore,
			BalanceAfter:         senderAfter,
			Status:               entity.StatusSuccessful,
			Narration:            narrationOrDefault(narration, fmt.Sprintf("Transferred %s to %s", entity.FormatAmount(amount), counterparty.FullName())),
			Category:             "transfer",
		}
		if err := s.transactions.Create(txCtx, debit); err != nil {
			return err
		}

		credit := &entity.Transaction{
			TransactionReference: reference,
			UserID:               counterpartyID,
			CounterpartyID:       userID,
			WalletID:             counterpartyWallet.ID,
			Type:                 entity.TypeCredit,
			Amount:               amount,
			Currency:             counterpartyWallet.Currency,
			BalanceBefore:        counterpartyBefore,
			BalanceAfter:         counterpartyAfter,
			Status:               entity.StatusSuccessful,
			Narration:            fmt.Sprintf("Received %s from %s", entity.FormatAmount(amount), sender.FullName()),
			Category:             "transfer",
			RelatedTransactionID: &debit.ID,
		}
		if err := s.transactions.Create(txCtx, credit); err != nil {
			return err
		}

		debitLeg = debit
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateWallets(ctx, userID, counterpartyID)
	s.logger.Info("Transfer applied", map[string]any{
		"user_id":         userID,
		"counterparty_id": counterpartyID,
		"amount":          amount,
		"reference":       debitLeg.TransactionReference,
	})

	return debitLeg, nil
}

func narrationOrDefault(narration, fallback string) string {
	if narration != "" {
		return narration
	}
	return fallback
}
