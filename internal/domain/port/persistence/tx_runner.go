package persistence

import "context"

// TxRunner is the sole mechanism by which the ledger core obtains
// atomicity. It acquires a transactional session, invokes the unit of work
// with a session-scoped context, commits on success and rolls back on
// failure. Transient store errors (deadlock, serialization failure,
// connection loss) are retried with exponential backoff up to the
// configured budget; all other errors propagate immediately.
//
// No ledger operation may mutate a wallet or insert a transaction outside
// a TxRunner scope.
type TxRunner interface {
	RunInTransaction(ctx context.Context, fn func(txCtx context.Context) error) error
}
