package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/bacembenakkari/Flight-Reservation-System/internal/domain/transaction"
)

// TxWrapper adapts sqlx.Tx to the transaction.Tx interface.
type TxWrapper struct {
	*sqlx.Tx
}

func (t *TxWrapper) Commit() error {
	return t.Tx.Commit()
}

func (t *TxWrapper) Rollback() error {
	return t.Tx.Rollback()
}

// TxManager starts sqlx transactions.
type TxManager struct {
	db *sqlx.DB
}

func NewTxManager(db *sqlx.DB) *TxManager {
	return &TxManager{db: db}
}

// Begin opens a new transaction.
func (m *TxManager) Begin(ctx context.Context) (transaction.Tx, error) {
	tx, err := m.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &TxWrapper{Tx: tx}, nil
}

// UnwrapTx extracts the sqlx.Tx from a transaction.Tx.
// Used by the repository implementations.
func UnwrapTx(tx transaction.Tx) *sqlx.Tx {
	if wrapper, ok := tx.(*TxWrapper); ok {
		return wrapper.Tx
	}
	return nil
}

var _ transaction.Manager = (*TxManager)(nil)
