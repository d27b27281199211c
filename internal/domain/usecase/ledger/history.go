package ledger

import (
	"context"

	"github.com/lendmark/demo-credit/internal/domain/entity"
	errs "github.com/lendmark/demo-credit/internal/domain/error"
	"github.com/lendmark/demo-credit/internal/domain/port/persistence"
)

// PageMeta is the count-derived pagination block returned alongside a page
// of ledger entries.
type PageMeta struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Pages int   `json:"pages"`
	Limit int   `json:"limit"`
}

// NewPageMeta derives pagination metadata from a total row count.
func NewPageMeta(total int64, page, limit int) PageMeta {
	pages := 0
	if limit > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}
	return PageMeta{Total: total, Page: page, Pages: pages, Limit: limit}
}

// TransactionPage is one page of a user's ledger history.
type TransactionPage struct {
	Data []*entity.Transaction `json:"data"`
	Meta PageMeta              `json:"meta"`
}

// GetTransactions returns a page of the user's ledger entries matching
// filter, newest first unless the options say otherwise. History is a pure
// read, so it runs outside a transactional scope.
func (s *Service) GetTransactions(ctx context.Context, userID string, filter persistence.Filter, page, limit int, opts persistence.ListOptions) (*TransactionPage, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errs.IsNotFound(err) {
			return nil, errs.Forbidden(msgUserNotFound)
		}
		return nil, err
	}

	if filter == nil {
		filter = persistence.Filter{}
	}
	filter["user_id"] = userID

	total, err := s.transactions.Count(ctx, filter, persistence.ListOptions{From: opts.From, To: opts.To})
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = 10
	}
	if page <= 0 {
		page = 1
	}
	opts.Limit = limit
	opts.Offset = (page - 1) * limit
	if opts.SortBy == "" {
		opts.SortBy = "created_at"
	}
	if opts.SortOrder == "" {
		opts.SortOrder = persistence.SortDesc
	}

	data, err := s.transactions.List(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	return &TransactionPage{
		Data: data,
		Meta: NewPageMeta(total, page, limit),
	}, nil
}

// GetTransaction returns one ledger entry owned by the user.
func (s *Service) GetTransaction(ctx context.Context, userID, transactionID string) (*entity.Transaction, error) {
	txn, err := s.transactions.GetOne(ctx, persistence.Filter{"id": transactionID, "user_id": userID})
	if err != nil {
		if errs.IsNotFound(err) {
			return nil, errs.Forbidden("Transaction not found.")
		}
		return nil, err
	}
	return txn, nil
}
