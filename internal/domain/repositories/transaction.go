package repositories

import "context"

// TxFn is a function that runs within a transaction.
type TxFn func(ctx context.Context) error

// TransactionManager wraps multi-step cascades (chat deletion, trailing
// message deletion, document version deletion) so a failure mid-cascade
// rolls back instead of leaving partial state.
type TransactionManager interface {
	ExecTx(ctx context.Context, fn TxFn) error
}
