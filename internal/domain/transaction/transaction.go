package transaction

import "context"

// Tx is the transaction boundary shared by repositories.
// Keeps the domain layer independent of the infra layer (sqlx etc).
type Tx interface {
	// Commit commits the transaction.
	Commit() error
	// Rollback rolls the transaction back. Calling it after Commit is a no-op.
	Rollback() error
}

// Manager starts transactions.
type Manager interface {
	// Begin opens a new transaction.
	Begin(ctx context.Context) (Tx, error)
}
